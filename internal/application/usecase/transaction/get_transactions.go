// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// GetTransactionsInput represents the input for listing transactions.
// When both dates are present the listing is restricted to the inclusive
// [StartDate, EndDate] range.
type GetTransactionsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetTransactionsOutput represents the output of listing transactions,
// ordered by date descending.
type GetTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// GetTransactionsUseCase handles listing transactions logic.
type GetTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionsUseCase creates a new GetTransactionsUseCase instance.
func NewGetTransactionsUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionsUseCase {
	return &GetTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *GetTransactionsUseCase) Execute(ctx context.Context, input GetTransactionsInput) (*GetTransactionsOutput, error) {
	var (
		transactions []*entity.Transaction
		err          error
	)

	if input.StartDate != nil && input.EndDate != nil {
		transactions, err = uc.transactionRepo.FindByDateRange(ctx, input.UserID, *input.StartDate, *input.EndDate)
	} else {
		transactions, err = uc.transactionRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &GetTransactionsOutput{
		Transactions: transactions,
	}, nil
}
