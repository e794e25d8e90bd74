package usecase

import (
	"context"

	"kuliner/internal/domain/entity"
	"kuliner/internal/domain/progression"
)

// UpdateProfileInput defines the partial profile update. Nil fields are
// left untouched.
type UpdateProfileInput struct {
	Name   *string
	Handle *string
}

// ProfileOutput bundles the user with their derived gamification state.
type ProfileOutput struct {
	User        *entity.User
	Progression progression.State
}

// LevelOutput is the level-page payload: the full tier table plus the
// user's current progression state.
type LevelOutput struct {
	Tiers       []progression.Tier
	Progression progression.State
}

// ProfileUsecase defines the interface for profile and gamification reads.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*ProfileOutput, error)
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*ProfileOutput, error)
	GetLevelPage(ctx context.Context, userID string) (*LevelOutput, error)
}
