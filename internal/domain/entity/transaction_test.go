package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/valueobject"
)

func newTestTransaction(t *testing.T, typeLiteral string, cents int64) *Transaction {
	t.Helper()
	amount, err := valueobject.NewMoney(cents)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	transactionType, err := valueobject.NewTransactionType(typeLiteral)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewTransaction(uuid.New(), "Lunch", amount, transactionType, "Food", time.Time{})
}

func TestNewTransaction(t *testing.T) {
	t.Run("assigns an id and timestamps", func(t *testing.T) {
		txn := newTestTransaction(t, "EXPENSE", 1500)
		if txn.ID == uuid.Nil {
			t.Error("expected a non-nil id")
		}
		if txn.CreatedAt.IsZero() || txn.UpdatedAt.IsZero() {
			t.Error("expected timestamps to be set")
		}
	})

	t.Run("zero date defaults to creation time", func(t *testing.T) {
		txn := newTestTransaction(t, "EXPENSE", 1500)
		if !txn.Date.Equal(txn.CreatedAt) {
			t.Errorf("expected date %v to default to creation time %v", txn.Date, txn.CreatedAt)
		}
	})

	t.Run("explicit date is preserved", func(t *testing.T) {
		amount, _ := valueobject.NewMoney(100)
		transactionType, _ := valueobject.NewTransactionType("INCOME")
		date := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
		txn := NewTransaction(uuid.New(), "Salary", amount, transactionType, "Work", date)
		if !txn.Date.Equal(date) {
			t.Errorf("expected date %v, got %v", date, txn.Date)
		}
	})
}

func TestTransactionSignedAmount(t *testing.T) {
	income := newTestTransaction(t, "INCOME", 5000)
	if income.SignedAmount() != 5000 {
		t.Errorf("expected +5000, got %d", income.SignedAmount())
	}

	expense := newTestTransaction(t, "EXPENSE", 5000)
	if expense.SignedAmount() != -5000 {
		t.Errorf("expected -5000, got %d", expense.SignedAmount())
	}
}

func TestTransactionBelongsTo(t *testing.T) {
	txn := newTestTransaction(t, "EXPENSE", 100)

	if !txn.BelongsTo(txn.UserID) {
		t.Error("expected transaction to belong to its owner")
	}
	if txn.BelongsTo(uuid.New()) {
		t.Error("expected transaction not to belong to another user")
	}
}

func TestTransactionIsWithinDateRange(t *testing.T) {
	amount, _ := valueobject.NewMoney(100)
	transactionType, _ := valueobject.NewTransactionType("EXPENSE")
	date := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	txn := NewTransaction(uuid.New(), "Coffee", amount, transactionType, "Food", date)

	start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)

	if !txn.IsWithinDateRange(start, end) {
		t.Error("expected date inside the range to match")
	}
	if !txn.IsWithinDateRange(date, date) {
		t.Error("expected the range to be inclusive of both bounds")
	}
	if txn.IsWithinDateRange(end.Add(24*time.Hour), end.Add(48*time.Hour)) {
		t.Error("expected date outside the range not to match")
	}
}
