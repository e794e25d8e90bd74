package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"kuliner/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "test-client-id.apps.googleusercontent.com"

func newTestService() *AuthServiceImpl {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: testClientID}}

	return NewAuthService(cfg, slog.Default()).(*AuthServiceImpl)
}

// buildIDToken assembles an unsigned JWT with the given claims. Signature
// verification is delegated to Google's JWKS in production paths that need
// it; the claim checks are what these tests cover.
func buildIDToken(t *testing.T, claims IDTokenClaims) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))

	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".signature"
}

func validClaims() IDTokenClaims {
	return IDTokenClaims{
		Iss:           "https://accounts.google.com",
		Sub:           "google-sub-123",
		Aud:           testClientID,
		Exp:           time.Now().Add(time.Hour).Unix(),
		Iat:           time.Now().Unix(),
		Email:         "user@example.com",
		EmailVerified: true,
		Name:          "Test User",
	}
}

func TestVerifyIDToken_Valid(t *testing.T) {
	svc := newTestService()

	user, err := svc.VerifyIDToken(context.Background(), buildIDToken(t, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "google-sub-123", user.ID)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.True(t, user.EmailVerified)
}

func TestVerifyIDToken_InvalidFormat(t *testing.T) {
	svc := newTestService()

	user, err := svc.VerifyIDToken(context.Background(), "not-a-jwt")
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestVerifyIDToken_WrongAudience(t *testing.T) {
	svc := newTestService()

	claims := validClaims()
	claims.Aud = "another-client-id"

	user, err := svc.VerifyIDToken(context.Background(), buildIDToken(t, claims))
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "invalid audience")
}

func TestVerifyIDToken_Expired(t *testing.T) {
	svc := newTestService()

	claims := validClaims()
	claims.Exp = time.Now().Add(-time.Hour).Unix()

	user, err := svc.VerifyIDToken(context.Background(), buildIDToken(t, claims))
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "token expired")
}

func TestVerifyIDToken_UnverifiedEmail(t *testing.T) {
	svc := newTestService()

	claims := validClaims()
	claims.EmailVerified = false

	user, err := svc.VerifyIDToken(context.Background(), buildIDToken(t, claims))
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "email not verified")
}

func TestVerifyIDToken_WrongIssuer(t *testing.T) {
	svc := newTestService()

	claims := validClaims()
	claims.Iss = "https://evil.example.com"

	user, err := svc.VerifyIDToken(context.Background(), buildIDToken(t, claims))
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "invalid issuer")
}
