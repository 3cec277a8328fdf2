// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/domain/valueobject"
)

// MaxTitleLength is the maximum allowed length for transaction titles.
const MaxTitleLength = 255

// CreateTransactionInput represents the input for transaction creation.
// Amount is in cents. A nil Date defaults to the creation time.
type CreateTransactionInput struct {
	UserID   uuid.UUID
	Title    string
	Amount   int64
	Type     string
	Category string
	Date     *time.Time
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Title == "" || len(input.Title) > MaxTitleLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionInput,
			fmt.Sprintf("title must be between 1 and %d characters", MaxTitleLength),
			nil,
		)
	}

	amount, err := valueobject.NewMoney(input.Amount)
	if err != nil {
		return nil, err
	}

	transactionType, err := valueobject.NewTransactionType(input.Type)
	if err != nil {
		return nil, err
	}

	var date time.Time
	if input.Date != nil {
		date = *input.Date
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Title,
		amount,
		transactionType,
		input.Category,
		date,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}
