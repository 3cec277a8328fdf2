package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
	"github.com/pocketledger/backend/internal/domain/valueobject"
)

// TransactionModel represents the transactions table in the database.
// Amounts are stored as non-negative integer cents.
type TransactionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	AmountCents int64     `gorm:"column:amount_cents;not null"`
	Type        string    `gorm:"type:varchar(10);not null"`
	Category    string    `gorm:"type:varchar(100);not null"`
	Date        time.Time `gorm:"index;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() (*entity.Transaction, error) {
	amount, err := valueobject.NewMoney(m.AmountCents)
	if err != nil {
		return nil, err
	}

	transactionType, err := valueobject.NewTransactionType(m.Type)
	if err != nil {
		return nil, err
	}

	return &entity.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Amount:    amount,
		Type:      transactionType,
		Category:  m.Category,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		Title:       transaction.Title,
		AmountCents: transaction.Amount.Cents(),
		Type:        transaction.Type.String(),
		Category:    transaction.Category,
		Date:        transaction.Date,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
