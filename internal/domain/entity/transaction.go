// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/valueobject"
)

// Transaction represents a financial transaction in the PocketLedger system.
// The amount is always non-negative; the sign is derived from the type.
// UserID is an ownership key only, the domain never loads the owning User
// when handling a transaction.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Amount    valueobject.Money
	Type      valueobject.TransactionType
	Category  string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a new Transaction entity. A zero date defaults to
// the creation time.
func NewTransaction(
	userID uuid.UUID,
	title string,
	amount valueobject.Money,
	transactionType valueobject.TransactionType,
	category string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}

	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Amount:    amount,
		Type:      transactionType,
		Category:  category,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsIncome reports whether this is an income transaction.
func (t *Transaction) IsIncome() bool {
	return t.Type.IsIncome()
}

// IsExpense reports whether this is an expense transaction.
func (t *Transaction) IsExpense() bool {
	return t.Type.IsExpense()
}

// SignedAmount returns the amount in cents, positive for income and negative
// for expenses.
func (t *Transaction) SignedAmount() int64 {
	if t.IsIncome() {
		return t.Amount.Cents()
	}
	return -t.Amount.Cents()
}

// BelongsTo reports whether the transaction is owned by the given user.
// Ownership is exclusive: only an exact id match qualifies.
func (t *Transaction) BelongsTo(userID uuid.UUID) bool {
	return t.UserID == userID
}

// IsWithinDateRange reports whether the transaction date falls inside the
// inclusive [start, end] range.
func (t *Transaction) IsWithinDateRange(start, end time.Time) bool {
	return !t.Date.Before(start) && !t.Date.After(end)
}

// Equals reports whether two transactions share the same identity.
func (t *Transaction) Equals(other *Transaction) bool {
	if other == nil {
		return false
	}
	return t.ID == other.ID
}
