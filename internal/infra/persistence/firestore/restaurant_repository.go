package firestore

import (
	"context"

	"kuliner/internal/domain/constants"
	"kuliner/internal/domain/entity"
	"kuliner/internal/domain/repository"
	"kuliner/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// restaurantRepository implements the domain.RestaurantRepository interface
// using Firestore. The catalog is read-only from this service's point of
// view, so only lookup operations exist.
type restaurantRepository struct {
	client *fs.Client
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(client *fs.Client) repository.RestaurantRepository {
	return &restaurantRepository{client: client}
}

func (repo *restaurantRepository) restaurants() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionRestaurants)
}

// List retrieves all restaurants in the catalog.
func (repo *restaurantRepository) List(ctx context.Context) ([]*entity.Restaurant, error) {
	iter := repo.restaurants().Documents(ctx)
	defer iter.Stop()

	var restaurants []*entity.Restaurant

	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list restaurants")
		}

		restaurant, err := decodeRestaurant(snap)
		if err != nil {
			return nil, err
		}

		restaurants = append(restaurants, restaurant)
	}

	return restaurants, nil
}

// FindByID retrieves a single restaurant by its document ID.
func (repo *restaurantRepository) FindByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	snap, err := repo.restaurants().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	return decodeRestaurant(snap)
}

// FindByIDs retrieves the restaurants for the given IDs. IDs that no longer
// resolve to a document are skipped, so a place list can survive catalog
// removals.
func (repo *restaurantRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Restaurant, error) {
	if len(ids) == 0 {
		return []*entity.Restaurant{}, nil
	}

	refs := make([]*fs.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, repo.restaurants().Doc(id))
	}

	snaps, err := repo.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants by ids")
	}

	restaurants := make([]*entity.Restaurant, 0, len(snaps))

	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}

		restaurant, err := decodeRestaurant(snap)
		if err != nil {
			return nil, err
		}

		restaurants = append(restaurants, restaurant)
	}

	return restaurants, nil
}

func decodeRestaurant(snap *fs.DocumentSnapshot) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	if err := snap.DataTo(&restaurantM); err != nil {
		return nil, errors.Wrap(err, "failed to decode restaurant document")
	}
	restaurantM.ID = snap.Ref.ID

	return toRestaurantDomain(&restaurantM), nil
}
