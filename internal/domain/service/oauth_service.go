package service

import (
	"context"

	"kuliner/internal/domain/entity"
)

// OAuthUser is the normalized identity returned by a federated provider.
type OAuthUser struct {
	ID            string
	Email         string
	Name          string
	Provider      entity.ProviderType
	AvatarURL     string
	EmailVerified bool
}

// OAuthAuthService verifies federated sign-in tokens.
type OAuthAuthService interface {
	// VerifyIDToken validates a provider ID token and returns the identity it carries.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
