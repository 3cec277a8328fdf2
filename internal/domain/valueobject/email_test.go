package valueobject

import (
	"errors"
	"strings"
	"testing"

	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

func TestNewEmail(t *testing.T) {
	t.Run("accepts a valid email", func(t *testing.T) {
		email, err := NewEmail("user@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if email.String() != "user@example.com" {
			t.Errorf("expected user@example.com, got %s", email.String())
		}
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		email, err := NewEmail("  User@EXAMPLE.Com  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if email.String() != "user@example.com" {
			t.Errorf("expected normalized email, got %s", email.String())
		}
	})

	t.Run("normalization is idempotent", func(t *testing.T) {
		first, err := NewEmail(" User@Example.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := NewEmail(first.String())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !first.Equals(second) {
			t.Errorf("expected %s to equal %s", first.String(), second.String())
		}
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := NewEmail("   ")
		assertValidationCode(t, err, domainerror.ErrCodeEmptyEmail)
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, raw := range []string{"plainaddress", "missing@tld", "@no-local.com", "spaces in@example.com", "double@@example.com"} {
			_, err := NewEmail(raw)
			assertValidationCode(t, err, domainerror.ErrCodeInvalidEmailFormat)
		}
	})

	t.Run("rejects overlong addresses", func(t *testing.T) {
		raw := strings.Repeat("a", 250) + "@example.com"
		_, err := NewEmail(raw)
		assertValidationCode(t, err, domainerror.ErrCodeEmailTooLong)
	})
}

func TestEmailIsZero(t *testing.T) {
	var zero Email
	if !zero.IsZero() {
		t.Error("expected zero value to report IsZero")
	}

	email, err := NewEmail("user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email.IsZero() {
		t.Error("expected constructed email not to report IsZero")
	}
}

func assertValidationCode(t *testing.T, err error, code domainerror.ValidationErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var validationErr *domainerror.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if validationErr.Code != code {
		t.Errorf("expected code %s, got %s", code, validationErr.Code)
	}
}
