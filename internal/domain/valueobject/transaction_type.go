// Package valueobject defines the immutable, self-validating value objects of the domain.
package valueobject

import (
	"fmt"

	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// TransactionType represents the type of a transaction (income or expense).
type TransactionType string

const (
	// TransactionTypeIncome marks money flowing into the account.
	TransactionTypeIncome TransactionType = "INCOME"
	// TransactionTypeExpense marks money flowing out of the account.
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// NewTransactionType creates a TransactionType from a raw string. Any value
// other than the two literals fails construction.
func NewTransactionType(raw string) (TransactionType, error) {
	t := TransactionType(raw)
	if t != TransactionTypeIncome && t != TransactionTypeExpense {
		return "", domainerror.NewValidationError(
			domainerror.ErrCodeInvalidTransactionType,
			fmt.Sprintf("invalid transaction type: %s, must be INCOME or EXPENSE", raw),
		)
	}
	return t, nil
}

// IsIncome reports whether this is an income transaction type.
func (t TransactionType) IsIncome() bool {
	return t == TransactionTypeIncome
}

// IsExpense reports whether this is an expense transaction type.
func (t TransactionType) IsExpense() bool {
	return t == TransactionTypeExpense
}

// String returns the type literal.
func (t TransactionType) String() string {
	return string(t)
}
