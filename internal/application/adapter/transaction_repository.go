// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// DashboardStats represents the month-over-month dashboard summary for a
// user. Monetary fields are in cents; Balance and the change fields may be
// negative. Percent changes are rounded to two decimal places and are zero
// when the previous month had no matching transactions.
type DashboardStats struct {
	TotalIncome          int64
	TotalExpense         int64
	Balance              int64
	TransactionCount     int64
	PreviousMonthIncome  int64
	PreviousMonthExpense int64
	IncomeChange         int64
	IncomeChangePercent  decimal.Decimal
	ExpenseChange        int64
	ExpenseChangePercent decimal.Decimal
}

// TransactionRepository defines the interface for transaction persistence
// operations. Ownership checks live in the use cases, not here.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID. Returns
	// ErrTransactionNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByDateRange retrieves a user's transactions with dates inside the
	// inclusive [start, end] range, newest first.
	FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// Update persists changes to an existing transaction. Returns
	// ErrTransactionNotFound when the id is absent.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction. Returns ErrTransactionNotFound when the
	// id is absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts a user's transactions, optionally restricted to the
	// inclusive [start, end] range when both bounds are provided.
	Count(ctx context.Context, userID uuid.UUID, start, end *time.Time) (int64, error)

	// GetDashboardStats aggregates the user's transactions over the calendar
	// month containing now and the immediately preceding month.
	GetDashboardStats(ctx context.Context, userID uuid.UUID, now time.Time) (*DashboardStats, error)
}
