package impl

import (
	"context"
	"log/slog"

	domainerrors "kuliner/internal/domain/errors"
	"kuliner/internal/domain/progression"
	"kuliner/internal/domain/repository"
	"kuliner/internal/usecase"
	"kuliner/internal/util"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(userRepo repository.UserRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile returns the user together with their derived progression
// state. The level is always computed from the stored review count.
func (srv *profileService) GetProfile(ctx context.Context, userID string) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return &usecase.ProfileOutput{
		User:        user,
		Progression: progression.Compute(user.ReviewCount),
	}, nil
}

// UpdateProfile applies a partial update to name and handle, then returns
// the refreshed profile. Handles are stored in canonical form.
func (srv *profileService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*usecase.ProfileOutput, error) {
	if input.Handle != nil {
		normalized := util.NormalizeHandle(*input.Handle)
		input.Handle = &normalized
	}

	if err := srv.userRepo.UpdateProfile(ctx, userID, input.Name, input.Handle); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile update failed")
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.logger.Debug("Profile updated", "userID", userID)

	return srv.GetProfile(ctx, userID)
}

// GetLevelPage returns the full tier table plus the user's progression
// state, which is what the level screen renders.
func (srv *profileService) GetLevelPage(ctx context.Context, userID string) (*usecase.LevelOutput, error) {
	profile, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.LevelOutput{
		Tiers:       progression.Tiers(),
		Progression: profile.Progression,
	}, nil
}
