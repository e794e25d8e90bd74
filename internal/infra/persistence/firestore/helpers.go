package firestore

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// The helpers below make every repository usable both standalone and inside
// a transaction: when tx is nil they hit the client directly, otherwise the
// operation is staged on the transaction.

func getDoc(ctx context.Context, tx *fs.Transaction, ref *fs.DocumentRef) (*fs.DocumentSnapshot, error) {
	if tx != nil {
		return tx.Get(ref)
	}

	return ref.Get(ctx)
}

func createDoc(ctx context.Context, tx *fs.Transaction, ref *fs.DocumentRef, data any) error {
	if tx != nil {
		return tx.Create(ref, data)
	}

	_, err := ref.Create(ctx, data)

	return err
}

func updateDoc(ctx context.Context, tx *fs.Transaction, ref *fs.DocumentRef, updates []fs.Update) error {
	if tx != nil {
		return tx.Update(ref, updates)
	}

	_, err := ref.Update(ctx, updates)

	return err
}

func deleteDoc(ctx context.Context, tx *fs.Transaction, ref *fs.DocumentRef) error {
	if tx != nil {
		return tx.Delete(ref)
	}

	_, err := ref.Delete(ctx)

	return err
}

func queryDocs(ctx context.Context, tx *fs.Transaction, q fs.Query) *fs.DocumentIterator {
	if tx != nil {
		return tx.Documents(q)
	}

	return q.Documents(ctx)
}

// isNotFound reports whether the store error means "document does not exist".
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// isAlreadyExists reports whether a create hit an existing document key.
func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
