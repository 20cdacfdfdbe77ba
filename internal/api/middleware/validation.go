package middleware

import (
	"net/http"

	"github.com/divgaze/api/internal/api/constants"
	"github.com/divgaze/api/internal/api/dto/v1/contact"
	"github.com/divgaze/api/internal/api/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return &ValidationMiddleware{
		validate: validate,
	}
}

// contactFieldErrors maps a failing field to its public error message.
// The validator reports fields in struct declaration order, so the first
// entry of the returned errors is always the first rule violated.
var contactFieldErrors = map[string]string{
	"Name":    "Invalid name",
	"Email":   "Invalid email",
	"Phone":   "Invalid phone number",
	"Service": "Please select a service",
	"Message": "Message too short",
}

// ValidateContactRequest binds and validates a contact form submission.
// On success the parsed request is stored in the context for the handler.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, contact.ErrorResponse{
				Error: "Invalid request body",
			})
			c.Abort()
			return
		}

		if err := m.validate.Struct(req); err != nil {
			message := "Invalid request body"
			if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
				if msg, found := contactFieldErrors[validationErrors[0].Field()]; found {
					message = msg
				}
			}
			c.JSON(http.StatusBadRequest, contact.ErrorResponse{Error: message})
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}
