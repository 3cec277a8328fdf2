package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/application/usecase/dashboard"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity()
}

// FindByUser retrieves all transactions for a user, newest first.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(transactionModels)
}

// FindByDateRange retrieves a user's transactions with dates inside the
// inclusive [start, end] range, newest first.
func (r *transactionRepository) FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(transactionModels)
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	// Select("*") forces zero-valued columns (an amount updated to 0) to be
	// written; a bare struct update would skip them.
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", transaction.ID).
		Select("*").
		Updates(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// Count counts a user's transactions, optionally restricted to the inclusive
// [start, end] range when both bounds are provided.
func (r *transactionRepository) Count(ctx context.Context, userID uuid.UUID, start, end *time.Time) (int64, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{}).Where("user_id = ?", userID)
	if start != nil && end != nil {
		query = query.Where("date >= ? AND date <= ?", *start, *end)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetDashboardStats aggregates the user's transactions over the calendar
// month containing now and the immediately preceding month. The window math
// and the derivation of balances and percent changes live in the dashboard
// use case package; this method only runs the grouped sums.
func (r *transactionRepository) GetDashboardStats(ctx context.Context, userID uuid.UUID, now time.Time) (*adapter.DashboardStats, error) {
	current, previous := dashboard.MonthBounds(now)

	currentTotals, err := r.monthTotals(ctx, userID, current)
	if err != nil {
		return nil, fmt.Errorf("failed to sum current month: %w", err)
	}

	previousTotals, err := r.monthTotals(ctx, userID, previous)
	if err != nil {
		return nil, fmt.Errorf("failed to sum previous month: %w", err)
	}

	count, err := r.Count(ctx, userID, &current.Start, &current.End)
	if err != nil {
		return nil, fmt.Errorf("failed to count current month: %w", err)
	}

	return dashboard.ComputeStats(currentTotals, previousTotals, count), nil
}

// monthTotals sums income and expense cents inside a single month window.
func (r *transactionRepository) monthTotals(ctx context.Context, userID uuid.UUID, window dashboard.MonthWindow) (dashboard.MonthTotals, error) {
	var result struct {
		Income  int64 `gorm:"column:income"`
		Expense int64 `gorm:"column:expense"`
	}

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount_cents ELSE 0 END), 0) as income,
			COALESCE(SUM(CASE WHEN type = 'EXPENSE' THEN amount_cents ELSE 0 END), 0) as expense
		FROM transactions
		WHERE user_id = ?
			AND date >= ?
			AND date <= ?
	`

	err := r.db.WithContext(ctx).
		Raw(query, userID, window.Start, window.End).
		Scan(&result).Error
	if err != nil {
		return dashboard.MonthTotals{}, err
	}

	return dashboard.MonthTotals{
		Income:  result.Income,
		Expense: result.Expense,
	}, nil
}

func toEntities(transactionModels []model.TransactionModel) ([]*entity.Transaction, error) {
	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transaction, err := transactionModels[i].ToEntity()
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}
