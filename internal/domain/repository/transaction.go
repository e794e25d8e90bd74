package repository

import "context"

// TransactionManager defines the interface for running compound state
// changes atomically. This allows the use case layer to group reads and
// writes without depending on a specific store driver.
type TransactionManager interface {
	// Execute runs a function within a single store transaction.
	// If the function returns an error, nothing is committed. All repository
	// operations obtained from the factory share the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside Execute shares it.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// CredentialRepo returns a CredentialRepository bound to the current transaction.
	CredentialRepo() CredentialRepository

	// ReviewRepo returns a ReviewRepository bound to the current transaction.
	ReviewRepo() ReviewRepository

	// PlaceListRepo returns a PlaceListRepository bound to the current transaction.
	PlaceListRepo() PlaceListRepository
}
