// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
// It is a pure data-access contract: uniqueness and other business rules
// are enforced by the use cases, not here.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID. Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their normalized email address.
	// Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves all users.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update persists changes to an existing user. Returns ErrUserNotFound
	// when the id is absent.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user. Returns ErrUserNotFound when the id is absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
