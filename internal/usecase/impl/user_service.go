// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"kuliner/internal/domain/entity"
	domainerrors "kuliner/internal/domain/errors"
	"kuliner/internal/domain/repository"
	"kuliner/internal/domain/service"
	"kuliner/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	credentialRepo    repository.CredentialRepository
	userRepo          repository.UserRepository
	sessionRepo       repository.SessionRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	credentialRepo repository.CredentialRepository,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	googleAuthService service.OAuthAuthService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:         txManager,
		credentialRepo:    credentialRepo,
		userRepo:          userRepo,
		sessionRepo:       sessionRepo,
		hasher:            hasher,
		tokenService:      tokenService,
		googleAuthService: googleAuthService,
		logger:            logger,
	}
}

// RegisterUser orchestrates the complete registration process.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("registration input is required")
	}

	srv.logger.Info("Starting user registration", "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	var registeredUser *entity.User

	// Execute the entire creation process within a single store transaction
	// to ensure data consistency (atomicity).
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		credentialRepo := repoFactory.CredentialRepo()

		// 1. Check if a credential with this email already exists.
		_, err := credentialRepo.FindByProvider(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			// If no error, it means a credential was found.
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
		}
		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.Wrap(err, "failed to find credential")
		}

		// 2. Create the User entity.
		newUser := &entity.User{
			Name:  input.Name,
			Email: input.Email,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		// 3. Create the email/password credential.
		newCredential := &entity.Credential{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := credentialRepo.Create(ctx, newCredential); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute user registration transaction", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}
	srv.logger.Debug("User registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies an email/password pair and opens a new session.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("login input is required")
	}

	srv.logger.Info("Starting login", "email", input.Email)

	credential, err := srv.credentialRepo.FindByProvider(ctx, entity.ProviderTypeEmail, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	user, err := srv.userRepo.FindByID(ctx, credential.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for login")
	}

	return srv.openSession(ctx, user)
}

// LoginWithGoogle verifies a Google ID token, provisioning the account on
// first sign-in.
func (srv *userService) LoginWithGoogle(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("google sign-in input is required")
	}

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("google sign-in failed")
	}

	credential, err := srv.credentialRepo.FindByProvider(ctx, entity.ProviderTypeGoogle, oauthUser.ID)
	if err == nil {
		user, err := srv.userRepo.FindByID(ctx, credential.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load user for google login")
		}

		return srv.openSession(ctx, user)
	}
	if !errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, errors.Wrap(err, "failed to find google credential")
	}

	// First sign-in: create the user and the google credential atomically.
	var newUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user := &entity.User{
			Name:  oauthUser.Name,
			Email: oauthUser.Email,
		}
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.WithStack(err)
		}

		newCredential := &entity.Credential{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeGoogle,
			ProviderUserID: oauthUser.ID,
		}
		if err := repoFactory.CredentialRepo().Create(ctx, newCredential); err != nil {
			return errors.WithStack(err)
		}
		newUser = user

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to provision google account", "error", err, "email", oauthUser.Email)

		return nil, errors.Wrap(err, "failed to provision google account")
	}

	srv.logger.Info("Provisioned new account from google sign-in", "userID", newUser.ID)

	return srv.openSession(ctx, newUser)
}

// RefreshTokens validates a refresh token against its stored session and
// issues a fresh access token.
func (srv *userService) RefreshTokens(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("refresh input is required")
	}

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("refresh token rejected")
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionInvalid.WrapMessage("session not found")
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	if session.UserID != claims.UserID {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("session user mismatch")
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("session expired")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

// Logout deletes the session for the presented refresh token. Logging out
// an unknown token is a no-op.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("logout input is required")
	}

	if err := srv.sessionRepo.DeleteByTokenHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// openSession issues a token pair and persists the refresh-token session.
func (srv *userService) openSession(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.Session{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.logger.Debug("Session opened", "userID", user.ID)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
