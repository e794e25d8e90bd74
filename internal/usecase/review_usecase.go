package usecase

import (
	"context"
	"io"

	"kuliner/internal/domain/entity"
)

// MediaUpload is one media file attached to a review submission.
type MediaUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// SubmitReviewInput defines a new review submission. UserID is the
// authenticated author, passed explicitly by the delivery layer.
type SubmitReviewInput struct {
	UserID         string
	RestaurantID   string
	Description    string
	FoodRating     float64
	ServiceRating  float64
	AmbianceRating float64
	Photos         []MediaUpload
	Video          *MediaUpload
}

// ToggleLikeOutput is the two-phase result of a like toggle. Speculative is
// the optimistic state computed before the store round-trip; Authoritative
// is the committed state. Clients render Speculative immediately and
// reconcile with Authoritative.
type ToggleLikeOutput struct {
	Speculative   entity.LikeState
	Authoritative entity.LikeState
}

// ReviewUsecase defines the interface for review operations.
type ReviewUsecase interface {
	SubmitReview(ctx context.Context, input *SubmitReviewInput) (*entity.Review, error)
	GetReview(ctx context.Context, reviewID string) (*entity.Review, error)
	ListRestaurantReviews(ctx context.Context, restaurantID string) ([]*entity.Review, error)
	ListUserReviews(ctx context.Context, userID string) ([]*entity.Review, error)

	// ToggleLike flips the user's like on a review. The counter update and
	// the liker-set update commit in one transaction; on error the stored
	// state is unchanged and only Speculative is populated.
	ToggleLike(ctx context.Context, reviewID, userID string) (*ToggleLikeOutput, error)

	// HasLiked reports the user's current like state for a review.
	HasLiked(ctx context.Context, reviewID, userID string) (entity.LikeState, error)
}
