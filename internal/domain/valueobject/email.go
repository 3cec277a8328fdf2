// Package valueobject defines the immutable, self-validating value objects of the domain.
package valueobject

import (
	"regexp"
	"strings"

	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// maxEmailLength is the maximum allowed length for an email address.
const maxEmailLength = 255

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email represents a validated, normalized email address.
// The zero value is invalid; construct via NewEmail.
type Email struct {
	value string
}

// NewEmail creates an Email from a raw string. The input is trimmed and
// lower-cased before validation, so construction is idempotent under
// repeated normalization.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	if normalized == "" {
		return Email{}, domainerror.NewValidationError(
			domainerror.ErrCodeEmptyEmail,
			"email cannot be empty",
		)
	}

	if !emailRegex.MatchString(normalized) {
		return Email{}, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidEmailFormat,
			"invalid email format",
		)
	}

	if len(normalized) > maxEmailLength {
		return Email{}, domainerror.NewValidationError(
			domainerror.ErrCodeEmailTooLong,
			"email must not exceed 255 characters",
		)
	}

	return Email{value: normalized}, nil
}

// String returns the normalized email address.
func (e Email) String() string {
	return e.value
}

// Equals reports whether two emails hold the same normalized value.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// IsZero reports whether the email was never constructed via NewEmail.
func (e Email) IsZero() bool {
	return e.value == ""
}
