package firestore

import (
	"context"

	"kuliner/internal/domain/constants"
	"kuliner/internal/domain/entity"
	domainerrors "kuliner/internal/domain/errors"
	"kuliner/internal/domain/repository"
	"kuliner/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// placeListRepository implements the domain.PlaceListRepository interface
// using Firestore. The document ID is the owner's user ID: a Create for an
// owner who already has a list fails at the store level, which is what
// makes the one-list-per-user invariant hold under concurrent creates.
type placeListRepository struct {
	client *fs.Client
	tx     *fs.Transaction
}

// NewPlaceListRepository is the constructor for placeListRepository.
func NewPlaceListRepository(client *fs.Client) repository.PlaceListRepository {
	return &placeListRepository{client: client}
}

func (repo *placeListRepository) placeLists() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionPlaceLists)
}

// FindByOwner retrieves the owner's place list.
func (repo *placeListRepository) FindByOwner(ctx context.Context, ownerID string) (*entity.PlaceList, error) {
	snap, err := getDoc(ctx, repo.tx, repo.placeLists().Doc(ownerID))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPlaceListNotFound
		}

		return nil, errors.Wrap(err, "failed to find place list by owner")
	}

	var listM model.PlaceListModel
	if err := snap.DataTo(&listM); err != nil {
		return nil, errors.Wrap(err, "failed to decode place list document")
	}
	listM.ID = snap.Ref.ID

	return toPlaceListDomain(&listM), nil
}

// Create persists a new place list keyed by the creator's user ID.
func (repo *placeListRepository) Create(ctx context.Context, list *entity.PlaceList) error {
	listM := fromPlaceListDomain(list)
	if listM.RestaurantIDs == nil {
		listM.RestaurantIDs = []string{}
	}

	ref := repo.placeLists().Doc(list.CreatorID)

	if err := createDoc(ctx, repo.tx, ref, listM); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrPlaceListExists
		}

		return domainerrors.NewStoreExecuteError(err, "failed to create place list")
	}

	list.ID = ref.ID

	return nil
}

// AddRestaurant adds the restaurant to the owner's membership set.
// ArrayUnion makes repeated adds idempotent.
func (repo *placeListRepository) AddRestaurant(ctx context.Context, ownerID, restaurantID string) error {
	updates := []fs.Update{
		{Path: "restaurantId", Value: fs.ArrayUnion(restaurantID)},
	}

	if err := updateDoc(ctx, repo.tx, repo.placeLists().Doc(ownerID), updates); err != nil {
		if isNotFound(err) {
			return repository.ErrPlaceListNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to add restaurant to place list")
	}

	return nil
}

// RemoveRestaurant removes all occurrences of the restaurant from the
// owner's membership set.
func (repo *placeListRepository) RemoveRestaurant(ctx context.Context, ownerID, restaurantID string) error {
	updates := []fs.Update{
		{Path: "restaurantId", Value: fs.ArrayRemove(restaurantID)},
	}

	if err := updateDoc(ctx, repo.tx, repo.placeLists().Doc(ownerID), updates); err != nil {
		if isNotFound(err) {
			return repository.ErrPlaceListNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to remove restaurant from place list")
	}

	return nil
}
