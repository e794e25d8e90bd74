package repository

import (
	"context"
	"errors"

	"kuliner/internal/domain/entity"
)

// ErrPlaceListNotFound is returned when the owner has no place list yet.
var ErrPlaceListNotFound = errors.New("place list not found")

// ErrPlaceListExists is returned when creating a second list for an owner.
var ErrPlaceListExists = errors.New("place list already exists")

// PlaceListRepository persists each user's single bookmark list. The store
// keys the document by the owner's user ID, which is what enforces the
// one-list-per-user invariant.
type PlaceListRepository interface {
	// FindByOwner retrieves the owner's place list.
	FindByOwner(ctx context.Context, ownerID string) (*entity.PlaceList, error)

	// Create persists a new, empty-membership place list for the owner.
	// Returns ErrPlaceListExists if the owner already has one.
	Create(ctx context.Context, list *entity.PlaceList) error

	// AddRestaurant adds the restaurant to the owner's membership set.
	// Duplicate adds are no-ops. Returns ErrPlaceListNotFound when the
	// owner has no list; this operation never creates one.
	AddRestaurant(ctx context.Context, ownerID, restaurantID string) error

	// RemoveRestaurant removes all occurrences of the restaurant from the
	// owner's membership set.
	RemoveRestaurant(ctx context.Context, ownerID, restaurantID string) error
}
