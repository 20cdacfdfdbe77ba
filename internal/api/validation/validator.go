package validation

import (
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Name accepts Latin letters, whitespace, Sinhala (U+0D80-U+0DFF) and
// Devanagari (U+0900-U+097F) script, dot and hyphen. Phone accepts digits,
// whitespace, plus, parentheses and hyphen. The patterns are part of the
// public contract and must not be loosened.
var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\s\x{0D80}-\x{0DFF}\x{0900}-\x{097F}.-]+$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9\s+()-]+$`)
)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("contact_name", validateName)
	v.RegisterValidation("contact_email", validateEmail)
	v.RegisterValidation("contact_phone", validatePhone)
}

// ValidateName checks name length (1-100) and character set
func ValidateName(name string) bool {
	length := utf8.RuneCountInString(name)
	if length < 1 || length > 100 {
		return false
	}
	return nameRegex.MatchString(name)
}

// ValidateEmail checks length (max 254) and local@domain.tld shape
func ValidateEmail(email string) bool {
	if email == "" || utf8.RuneCountInString(email) > 254 {
		return false
	}
	return emailRegex.MatchString(email)
}

// ValidatePhone checks length (7-20) and character set
func ValidatePhone(phone string) bool {
	length := utf8.RuneCountInString(phone)
	if length < 7 || length > 20 {
		return false
	}
	return phoneRegex.MatchString(phone)
}

func validateName(fl validator.FieldLevel) bool {
	return ValidateName(fl.Field().String())
}

func validateEmail(fl validator.FieldLevel) bool {
	return ValidateEmail(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	return ValidatePhone(fl.Field().String())
}
