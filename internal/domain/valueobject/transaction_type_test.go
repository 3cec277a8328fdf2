package valueobject

import (
	"testing"

	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

func TestNewTransactionType(t *testing.T) {
	t.Run("accepts INCOME", func(t *testing.T) {
		tt, err := NewTransactionType("INCOME")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tt.IsIncome() || tt.IsExpense() {
			t.Error("expected an income type")
		}
	})

	t.Run("accepts EXPENSE", func(t *testing.T) {
		tt, err := NewTransactionType("EXPENSE")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tt.IsExpense() || tt.IsIncome() {
			t.Error("expected an expense type")
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, raw := range []string{"", "income", "Expense", "TRANSFER", " INCOME"} {
			_, err := NewTransactionType(raw)
			assertValidationCode(t, err, domainerror.ErrCodeInvalidTransactionType)
		}
	})
}
