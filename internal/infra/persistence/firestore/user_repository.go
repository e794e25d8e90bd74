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

// userRepository implements the domain.UserRepository interface using
// Firestore. A nil tx means operations run outside any transaction.
type userRepository struct {
	client *fs.Client
	tx     *fs.Transaction
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(client *fs.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (repo *userRepository) users() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionUsers)
}

// FindByID retrieves a single user by their document ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := getDoc(ctx, repo.tx, repo.users().Doc(id))
	if err != nil {
		// If the document does not exist, return a domain-specific error.
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	var userM model.UserModel
	if err := snap.DataTo(&userM); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}
	userM.ID = snap.Ref.ID

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// Create persists a new user entity and fills in its assigned document ID.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	ref := repo.users().NewDoc()

	if err := createDoc(ctx, repo.tx, ref, fromUserDomain(user)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create user")
	}

	user.ID = ref.ID

	return nil
}

// UpdateProfile partially updates the user's mutable profile fields.
// Nil pointers leave the corresponding field untouched.
func (repo *userRepository) UpdateProfile(ctx context.Context, id string, name, handle *string) error {
	updates := make([]fs.Update, 0, 3)
	if name != nil {
		updates = append(updates, fs.Update{Path: "name", Value: *name})
	}
	if handle != nil {
		updates = append(updates, fs.Update{Path: "username", Value: *handle})
	}

	if len(updates) == 0 {
		return nil
	}
	updates = append(updates, fs.Update{Path: "updatedAt", Value: fs.ServerTimestamp})

	if err := updateDoc(ctx, repo.tx, repo.users().Doc(id), updates); err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update user profile")
	}

	return nil
}

// IncrementReviewCount atomically adds delta to the user's review counter.
func (repo *userRepository) IncrementReviewCount(ctx context.Context, id string, delta int) error {
	updates := []fs.Update{
		{Path: "jumlah_review", Value: fs.Increment(delta)},
		{Path: "updatedAt", Value: fs.ServerTimestamp},
	}

	if err := updateDoc(ctx, repo.tx, repo.users().Doc(id), updates); err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to increment review count")
	}

	return nil
}
