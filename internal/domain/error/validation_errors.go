// Package error defines domain-specific errors for the PocketLedger application.
package error

// ValidationErrorCode defines error codes for value-object validation errors.
// Format: VAL-XXYYYY where XX is category and YYYY is specific error.
type ValidationErrorCode string

const (
	// Email errors (01XXXX)
	ErrCodeEmptyEmail         ValidationErrorCode = "VAL-010001"
	ErrCodeInvalidEmailFormat ValidationErrorCode = "VAL-010002"
	ErrCodeEmailTooLong       ValidationErrorCode = "VAL-010003"

	// Money errors (02XXXX)
	ErrCodeNegativeAmount ValidationErrorCode = "VAL-020001"
	ErrCodeAmountTooLarge ValidationErrorCode = "VAL-020002"

	// Transaction type errors (03XXXX)
	ErrCodeInvalidTransactionType ValidationErrorCode = "VAL-030001"
)

// ValidationError represents a value-object construction failure with code
// and message. The code names the violated rule.
type ValidationError struct {
	Code    ValidationErrorCode
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new ValidationError with the given code and message.
func NewValidationError(code ValidationErrorCode, message string) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: message,
	}
}
