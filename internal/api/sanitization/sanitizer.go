package sanitization

import (
	"strings"
)

// maxFieldLength caps every sanitized field before it is embedded in
// outbound email content.
const maxFieldLength = 1000

// SanitizeString trims whitespace, strips HTML angle brackets and caps the
// result at 1000 characters. The transform is total and idempotent:
// applying it to already-sanitized input is a no-op.
func SanitizeString(input string) string {
	safe := strings.TrimSpace(input)
	safe = strings.ReplaceAll(safe, "<", "")
	safe = strings.ReplaceAll(safe, ">", "")

	if runes := []rune(safe); len(runes) > maxFieldLength {
		// Truncation can expose trailing whitespace; trim again so the
		// transform stays idempotent.
		safe = strings.TrimSpace(string(runes[:maxFieldLength]))
	}

	return safe
}

// SanitizeEmail lower-cases and trims an email address
func SanitizeEmail(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
