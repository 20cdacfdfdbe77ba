package contact

import (
	"github.com/divgaze/api/internal/api/sanitization"
)

// ContactRequest represents a contact form submission as received from the
// browser. Field order matters: validation reports the first failing field,
// and fields are checked in declaration order.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,contact_name"`
	Email   string `json:"email" validate:"required,contact_email"`
	Phone   string `json:"phone" validate:"required,contact_phone"`
	Service string `json:"service" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}

// SanitizedSubmission is a ContactRequest after the sanitization transform.
// It is the only form in which submission data may reach outbound email.
type SanitizedSubmission struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

// Sanitize applies the sanitization transform to every field.
func (r ContactRequest) Sanitize() SanitizedSubmission {
	return SanitizedSubmission{
		Name:    sanitization.SanitizeString(r.Name),
		Email:   sanitization.SanitizeEmail(r.Email),
		Phone:   sanitization.SanitizeString(r.Phone),
		Service: sanitization.SanitizeString(r.Service),
		Message: sanitization.SanitizeString(r.Message),
	}
}

// ContactResponse represents the response after a successful submission
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse represents every non-success response body
type ErrorResponse struct {
	Error string `json:"error"`
}
