package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/domain/valueobject"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Title         *string
	Amount        *int64
	Type          *string
	Category      *string
	Date          *time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update. A transaction owned by another
// user is reported as not found, identically to a missing id.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.findOwned(ctx, input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" || len(*input.Title) > MaxTitleLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionInput,
				fmt.Sprintf("title must be between 1 and %d characters", MaxTitleLength),
				nil,
			)
		}
		transaction.Title = *input.Title
	}

	if input.Amount != nil {
		amount, err := valueobject.NewMoney(*input.Amount)
		if err != nil {
			return nil, err
		}
		transaction.Amount = amount
	}

	if input.Type != nil {
		transactionType, err := valueobject.NewTransactionType(*input.Type)
		if err != nil {
			return nil, err
		}
		transaction.Type = transactionType
	}

	if input.Category != nil {
		transaction.Category = *input.Category
	}

	if input.Date != nil {
		transaction.Date = *input.Date
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}

// findOwned loads a transaction and verifies ownership, folding absence and
// ownership mismatch into the same error.
func (uc *UpdateTransactionUseCase) findOwned(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if !transaction.BelongsTo(userID) {
		return nil, notFoundError()
	}

	return transaction, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domainerror.ErrTransactionNotFound)
}

func notFoundError() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}
