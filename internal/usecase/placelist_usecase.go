package usecase

import (
	"context"

	"kuliner/internal/domain/entity"
)

// CreatePlaceListInput defines the data for a user's first (and only)
// place list.
type CreatePlaceListInput struct {
	CreatorID string
	Title     string
	Notes     string
	IsPublic  bool
}

// PlaceListOutput bundles a place list with its hydrated restaurants.
// List is nil when the owner has not created one yet.
type PlaceListOutput struct {
	List        *entity.PlaceList
	Restaurants []*entity.Restaurant
}

// PlaceListUsecase defines the interface for bookmark-list operations.
type PlaceListUsecase interface {
	// GetPlaceList returns the owner's list hydrated with restaurant
	// details. A missing list yields a nil List, not an error.
	GetPlaceList(ctx context.Context, ownerID string) (*PlaceListOutput, error)

	CreatePlaceList(ctx context.Context, input *CreatePlaceListInput) (*entity.PlaceList, error)

	// AddRestaurant bookmarks a restaurant. It fails when the owner has no
	// list; it never creates one implicitly. Duplicate adds are no-ops.
	AddRestaurant(ctx context.Context, ownerID, restaurantID string) error

	// RemoveRestaurant removes the bookmark. Removing from a missing list
	// fails the same way adding does.
	RemoveRestaurant(ctx context.Context, ownerID, restaurantID string) error

	// IsBookmarked reports membership. A missing list means false, never
	// an error.
	IsBookmarked(ctx context.Context, ownerID, restaurantID string) (bool, error)

	// SharePlaceListQR renders the share QR code for the owner's list.
	// Only public lists can be shared.
	SharePlaceListQR(ctx context.Context, ownerID string) ([]byte, error)
}
