package repository

import (
	"context"
	"errors"

	"kuliner/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session matches the token hash.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists refresh-token sessions.
type SessionRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by its refresh-token hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes the session with the given token hash.
	// Deleting a hash that does not exist is not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}
