package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"kuliner/internal/domain/entity"
	domainerrors "kuliner/internal/domain/errors"
	"kuliner/internal/domain/service"
	"kuliner/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for account service tests.
type userServiceFixtures struct {
	service usecase.UserUsecase
	store   *memStore
	oauth   *fakeOAuthService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	store := newMemStore()
	oauth := &fakeOAuthService{users: map[string]*service.OAuthUser{}}

	svc := NewUserService(
		&memTxManager{store: store},
		&memCredentialRepo{store: store},
		&memUserRepo{store: store},
		&memSessionRepo{store: store},
		fakeHasher{},
		fakeTokenService{},
		oauth,
		slog.Default(),
	)

	return userServiceFixtures{service: svc, store: store, oauth: oauth}
}

func TestUserService_RegisterUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	out, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "StrongPass123!",
	})
	require.NoError(t, err)
	require.NotNil(t, out.User)

	assert.NotEmpty(t, out.User.ID)
	assert.Equal(t, "Budi", out.User.Name)
	assert.Equal(t, 0, out.User.ReviewCount)

	// The email credential was created alongside the user.
	require.Len(t, fx.store.credentials, 1)
	assert.Equal(t, entity.ProviderTypeEmail, fx.store.credentials[0].Provider)
	assert.Equal(t, "budi@example.com", fx.store.credentials[0].ProviderUserID)
	assert.Equal(t, "hashed:StrongPass123!", fx.store.credentials[0].PasswordHash)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterUserInput{Name: "Budi", Email: "budi@example.com", Password: "pw"}

	_, err := fx.service.RegisterUser(ctx, input)
	require.NoError(t, err)

	out, err := fx.service.RegisterUser(ctx, input)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Login(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name: "Budi", Email: "budi@example.com", Password: "StrongPass123!",
	})
	require.NoError(t, err)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "budi@example.com", Password: "StrongPass123!"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, "Budi", out.User.Name)

	// A session backs the refresh token.
	assert.Len(t, fx.store.sessions, 1)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name: "Budi", Email: "budi@example.com", Password: "StrongPass123!",
	})
	require.NoError(t, err)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "budi@example.com", Password: "wrong"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	out, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "nobody@example.com", Password: "pw"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_LoginWithGoogle_ProvisionsAccount(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.oauth.users["good-token"] = &service.OAuthUser{
		ID:            "google-sub-1",
		Email:         "siti@example.com",
		Name:          "Siti",
		Provider:      entity.ProviderTypeGoogle,
		EmailVerified: true,
	}

	out, err := fx.service.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{IDToken: "good-token"})
	require.NoError(t, err)
	assert.Equal(t, "Siti", out.User.Name)
	assert.NotEmpty(t, out.AccessToken)

	// Second sign-in reuses the provisioned account.
	again, err := fx.service.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{IDToken: "good-token"})
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, again.User.ID)
	assert.Len(t, fx.store.users, 1)
	assert.Len(t, fx.store.credentials, 1)
}

func TestUserService_LoginWithGoogle_BadToken(t *testing.T) {
	fx := createTestUserService(t)

	out, err := fx.service.LoginWithGoogle(context.Background(), &usecase.GoogleLoginInput{IDToken: "bad-token"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}

func TestUserService_RefreshTokens(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name: "Budi", Email: "budi@example.com", Password: "pw",
	})
	require.NoError(t, err)

	login, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "budi@example.com", Password: "pw"})
	require.NoError(t, err)

	out, err := fx.service.RefreshTokens(ctx, &usecase.RefreshInput{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}

func TestUserService_RefreshTokens_UnknownSession(t *testing.T) {
	fx := createTestUserService(t)

	out, err := fx.service.RefreshTokens(context.Background(), &usecase.RefreshInput{RefreshToken: "refresh.user-1"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestUserService_RefreshTokens_ExpiredSession(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name: "Budi", Email: "budi@example.com", Password: "pw",
	})
	require.NoError(t, err)

	login, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "budi@example.com", Password: "pw"})
	require.NoError(t, err)

	// Force the stored session past its expiry.
	for _, session := range fx.store.sessions {
		session.ExpiresAt = time.Now().Add(-time.Minute)
	}

	out, err := fx.service.RefreshTokens(ctx, &usecase.RefreshInput{RefreshToken: login.RefreshToken})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestUserService_Logout(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name: "Budi", Email: "budi@example.com", Password: "pw",
	})
	require.NoError(t, err)

	login, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "budi@example.com", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: login.RefreshToken}))
	assert.Empty(t, fx.store.sessions)

	// Logging out again is a no-op, not an error.
	assert.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: login.RefreshToken}))

	// The session is gone, so the refresh token no longer works.
	_, err = fx.service.RefreshTokens(ctx, &usecase.RefreshInput{RefreshToken: login.RefreshToken})
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestUserService_NilInputsAreRejected(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	require.NotPanics(t, func() {
		_, err := fx.service.RegisterUser(ctx, nil)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		_, err = fx.service.Login(ctx, nil)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		_, err = fx.service.LoginWithGoogle(ctx, nil)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		_, err = fx.service.RefreshTokens(ctx, nil)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		err = fx.service.Logout(ctx, nil)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	assert.Empty(t, fx.store.users)
}
