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
	"google.golang.org/api/iterator"
)

// sessionRepository implements the domain.SessionRepository interface using
// Firestore. Sessions never join compound transactions, so this repository
// always talks to the client directly.
type sessionRepository struct {
	client *fs.Client
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(client *fs.Client) repository.SessionRepository {
	return &sessionRepository{client: client}
}

func (repo *sessionRepository) sessions() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionSessions)
}

// Create persists a new session record.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	ref := repo.sessions().NewDoc()

	if _, err := ref.Create(ctx, fromSessionDomain(session)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create session")
	}

	session.ID = ref.ID

	return nil
}

// FindByTokenHash retrieves a session by its refresh-token hash.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	iter := repo.sessions().
		Where("tokenHash", "==", tokenHash).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token hash")
	}

	var sessionM model.SessionModel
	if err := snap.DataTo(&sessionM); err != nil {
		return nil, errors.Wrap(err, "failed to decode session document")
	}
	sessionM.ID = snap.Ref.ID

	return toSessionDomain(&sessionM), nil
}

// DeleteByTokenHash removes the session with the given token hash.
// Deleting a hash that does not exist is not an error.
func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	iter := repo.sessions().
		Where("tokenHash", "==", tokenHash).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil
		}

		return errors.Wrap(err, "failed to find session for deletion")
	}

	if _, err := snap.Ref.Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete session")
	}

	return nil
}
