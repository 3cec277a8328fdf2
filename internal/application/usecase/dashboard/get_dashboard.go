package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
)

// GetDashboardInput represents the input for dashboard retrieval.
type GetDashboardInput struct {
	UserID uuid.UUID
}

// GetDashboardOutput represents the output of dashboard retrieval.
type GetDashboardOutput struct {
	Stats *adapter.DashboardStats
}

// GetDashboardUseCase handles the month-over-month dashboard aggregation.
type GetDashboardUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(transactionRepo adapter.TransactionRepository) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		transactionRepo: transactionRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Execute aggregates the user's current and previous calendar month.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	stats, err := uc.transactionRepo.GetDashboardStats(ctx, input.UserID, uc.now())
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate dashboard stats: %w", err)
	}

	return &GetDashboardOutput{
		Stats: stats,
	}, nil
}
