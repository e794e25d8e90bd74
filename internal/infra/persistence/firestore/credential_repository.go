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

// credentialRepository implements the domain.CredentialRepository interface
// using Firestore.
type credentialRepository struct {
	client *fs.Client
	tx     *fs.Transaction
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(client *fs.Client) repository.CredentialRepository {
	return &credentialRepository{client: client}
}

func (repo *credentialRepository) credentials() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionCredentials)
}

// FindByProvider retrieves the credential for a provider/provider-user pair.
func (repo *credentialRepository) FindByProvider(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Credential, error) {
	query := repo.credentials().
		Where("provider", "==", string(provider)).
		Where("providerUserId", "==", providerUserID).
		Limit(1)

	iter := queryDocs(ctx, repo.tx, query)
	defer iter.Stop()

	snap, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by provider")
	}

	var credentialM model.CredentialModel
	if err := snap.DataTo(&credentialM); err != nil {
		return nil, errors.Wrap(err, "failed to decode credential document")
	}
	credentialM.ID = snap.Ref.ID

	return toCredentialDomain(&credentialM), nil
}

// Create persists a new credential and fills in its assigned document ID.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	ref := repo.credentials().NewDoc()

	if err := createDoc(ctx, repo.tx, ref, fromCredentialDomain(credential)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create credential")
	}

	credential.ID = ref.ID

	return nil
}
