package repository

import (
	"context"
	"errors"

	"kuliner/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no credential matches the lookup.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository persists authentication methods for user accounts.
type CredentialRepository interface {
	// FindByProvider retrieves the credential for a provider/provider-user pair,
	// e.g. ("email", "foo@bar.com") or ("google", "<google sub>").
	FindByProvider(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Credential, error)

	// Create persists a new credential and fills in its assigned ID.
	Create(ctx context.Context, credential *entity.Credential) error
}
