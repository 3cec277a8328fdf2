package dto

import (
	"time"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction
// creation. Amount is in integer cents and must not be negative.
type CreateTransactionRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=255"`
	Amount   *int64 `json:"amount" binding:"required,gte=0"`
	Type     string `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category string `json:"category" binding:"required,min=1,max=100"`
	Date     string `json:"date,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction
// update. Omitted fields are left unchanged.
type UpdateTransactionRequest struct {
	Title    *string `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Amount   *int64  `json:"amount,omitempty" binding:"omitempty,gte=0"`
	Type     *string `json:"type,omitempty" binding:"omitempty,oneof=INCOME EXPENSE"`
	Category *string `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Date     *string `json:"date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Amount    int64     `json:"amount"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        transaction.ID.String(),
		UserID:    transaction.UserID.String(),
		Title:     transaction.Title,
		Amount:    transaction.Amount.Cents(),
		Type:      transaction.Type.String(),
		Category:  transaction.Category,
		Date:      transaction.Date.Format("2006-01-02"),
		CreatedAt: transaction.CreatedAt,
		UpdatedAt: transaction.UpdatedAt,
	}
}

// ToTransactionListResponse converts domain Transaction entities to a
// TransactionListResponse DTO.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		responses[i] = ToTransactionResponse(transaction)
	}
	return TransactionListResponse{
		Transactions: responses,
		Total:        len(responses),
	}
}
