package firestore

import (
	"context"

	"kuliner/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// firestoreTransactionManager implements the domain's TransactionManager
// interface using Firestore transactions.
type firestoreTransactionManager struct {
	client *fs.Client
}

// firestoreRepositoryFactory implements the domain's RepositoryFactory
// interface. It holds a specific Firestore transaction and hands out
// repository instances bound to it, so every read and write inside
// Execute shares the same transaction.
type firestoreRepositoryFactory struct {
	client *fs.Client
	tx     *fs.Transaction
}

// UserRepo returns a user repository bound to the transaction.
func (f *firestoreRepositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{client: f.client, tx: f.tx}
}

// CredentialRepo returns a credential repository bound to the transaction.
func (f *firestoreRepositoryFactory) CredentialRepo() repository.CredentialRepository {
	return &credentialRepository{client: f.client, tx: f.tx}
}

// ReviewRepo returns a review repository bound to the transaction.
func (f *firestoreRepositoryFactory) ReviewRepo() repository.ReviewRepository {
	return &reviewRepository{client: f.client, tx: f.tx}
}

// PlaceListRepo returns a place list repository bound to the transaction.
func (f *firestoreRepositoryFactory) PlaceListRepo() repository.PlaceListRepository {
	return &placeListRepository{client: f.client, tx: f.tx}
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
// This function is used as an Fx provider.
func NewTransactionManager(client *fs.Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs the given function within a single Firestore transaction.
// Firestore requires all reads to happen before any write inside a
// transaction; callers group their operations accordingly.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		factory := &firestoreRepositoryFactory{client: tm.client, tx: tx}

		return fn(factory)
	})
	if err != nil {
		return errors.Wrap(err, "firestore transaction failed")
	}

	return nil
}
