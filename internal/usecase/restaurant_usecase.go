package usecase

import (
	"context"

	"kuliner/internal/domain/entity"
)

// NearbyInput defines an optional geo filter for the restaurant listing.
type NearbyInput struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// RestaurantWithDistance pairs a restaurant with its distance from the
// query point.
type RestaurantWithDistance struct {
	Restaurant     *entity.Restaurant
	DistanceMeters float64
}

// RestaurantUsecase defines the interface for catalog reads.
type RestaurantUsecase interface {
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*entity.Restaurant, error)

	// NearbyRestaurants returns restaurants within the given radius of the
	// query point, closest first.
	NearbyRestaurants(ctx context.Context, input *NearbyInput) ([]*RestaurantWithDistance, error)
}
