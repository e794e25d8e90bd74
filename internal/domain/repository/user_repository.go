// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"kuliner/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their document ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Create persists a new user entity and fills in its assigned ID.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile partially updates the user's mutable profile fields.
	// Nil pointers leave the corresponding field untouched.
	UpdateProfile(ctx context.Context, id string, name, handle *string) error

	// IncrementReviewCount atomically adds delta to the user's review count.
	IncrementReviewCount(ctx context.Context, id string, delta int) error
}
