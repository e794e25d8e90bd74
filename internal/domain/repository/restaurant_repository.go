package repository

import (
	"context"
	"errors"

	"kuliner/internal/domain/entity"
)

// ErrRestaurantNotFound is returned when a restaurant document does not exist.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository provides read access to the restaurant catalog.
// The catalog is maintained externally; this service never writes to it.
type RestaurantRepository interface {
	// List retrieves all restaurants.
	List(ctx context.Context) ([]*entity.Restaurant, error)

	// FindByID retrieves a single restaurant by its document ID.
	FindByID(ctx context.Context, id string) (*entity.Restaurant, error)

	// FindByIDs retrieves the restaurants for the given IDs. IDs that do not
	// resolve to a document are skipped, not errors.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Restaurant, error)
}
