package impl

import (
	"context"
	"log/slog"
	"sort"

	"kuliner/internal/domain/entity"
	domainerrors "kuliner/internal/domain/errors"
	"kuliner/internal/domain/repository"
	"kuliner/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// defaultNearbyRadiusMeters is used when the caller supplies no radius.
const defaultNearbyRadiusMeters = 5000.0

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(restaurantRepo repository.RestaurantRepository, logger *slog.Logger) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// ListRestaurants returns the whole catalog.
func (srv *restaurantService) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	restaurants, err := srv.restaurantRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return restaurants, nil
}

// GetRestaurant returns a single restaurant by ID.
func (srv *restaurantService) GetRestaurant(ctx context.Context, id string) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound.WrapMessage("restaurant lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return restaurant, nil
}

// NearbyRestaurants filters the catalog by haversine distance from the
// query point and returns matches sorted closest first. The catalog is
// small enough that an in-memory scan beats maintaining a geo index.
func (srv *restaurantService) NearbyRestaurants(ctx context.Context, input *usecase.NearbyInput) ([]*usecase.RestaurantWithDistance, error) {
	radius := input.RadiusMeters
	if radius <= 0 {
		radius = defaultNearbyRadiusMeters
	}

	restaurants, err := srv.restaurantRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants for nearby search")
	}

	origin := orb.Point{input.Longitude, input.Latitude}

	nearby := make([]*usecase.RestaurantWithDistance, 0, len(restaurants))
	for _, restaurant := range restaurants {
		distance := geo.Distance(origin, restaurant.Location)
		if distance > radius {
			continue
		}

		nearby = append(nearby, &usecase.RestaurantWithDistance{
			Restaurant:     restaurant,
			DistanceMeters: distance,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	return nearby, nil
}
