// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/valueobject"
)

// User represents a user in the PocketLedger system. The password hash is
// opaque to the domain; it is produced and verified by the password service.
type User struct {
	ID           uuid.UUID
	Email        valueobject.Email
	PasswordHash string
	Name         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User for registration.
func NewUser(email valueobject.Email, passwordHash string, name *string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Equals reports whether two users share the same identity.
func (u *User) Equals(other *User) bool {
	if other == nil {
		return false
	}
	return u.ID == other.ID
}
