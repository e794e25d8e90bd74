package repository

import (
	"context"
	"errors"

	"kuliner/internal/domain/entity"
)

// ErrReviewNotFound is returned when a review document does not exist.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository persists reviews and their like state.
type ReviewRepository interface {
	// Create persists a new review and fills in its assigned ID.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a single review by its document ID.
	FindByID(ctx context.Context, id string) (*entity.Review, error)

	// ListByRestaurant retrieves all reviews for a restaurant.
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Review, error)

	// ListByUser retrieves all reviews written by a user.
	ListByUser(ctx context.Context, userID string) ([]*entity.Review, error)

	// AddLike atomically increments the like counter and adds the user to the
	// liker set. Within a transaction both mutations commit together.
	AddLike(ctx context.Context, reviewID, userID string) error

	// RemoveLike atomically decrements the like counter and removes the user
	// from the liker set.
	RemoveLike(ctx context.Context, reviewID, userID string) error
}
