package service

import (
	"context"
	"io"
)

// MediaStorage uploads review media to the file storage collaborator and
// returns publicly resolvable URLs for the stored objects.
type MediaStorage interface {
	// Upload stores the content under a generated key inside the given
	// folder (e.g. "reviews/<restaurantID>") and returns its public URL.
	Upload(ctx context.Context, folder, filename, contentType string, content io.Reader) (string, error)

	// Close releases the underlying bucket handle.
	Close() error
}
