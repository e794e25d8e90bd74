package storage

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"gocloud.dev/blob/fileblob"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, maxBytes int64) *blobMediaStorage {
	t.Helper()

	bucket, err := fileblob.OpenBucket(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	return &blobMediaStorage{
		bucket:        bucket,
		publicBaseURL: "https://media.kuliner.example.com",
		maxBytes:      maxBytes,
		logger:        slog.Default(),
	}
}

func TestMediaStorage_Upload(t *testing.T) {
	storage := newTestStorage(t, 0)

	url, err := storage.Upload(context.Background(), "reviews/resto-1", "photo.JPG", "image/jpeg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://media.kuliner.example.com/reviews/resto-1/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}

func TestMediaStorage_UploadKeysNeverCollide(t *testing.T) {
	storage := newTestStorage(t, 0)

	first, err := storage.Upload(context.Background(), "reviews/resto-1", "photo.jpg", "image/jpeg", strings.NewReader("a"))
	require.NoError(t, err)

	second, err := storage.Upload(context.Background(), "reviews/resto-1", "photo.jpg", "image/jpeg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestMediaStorage_UploadTooLarge(t *testing.T) {
	storage := newTestStorage(t, 8)

	url, err := storage.Upload(context.Background(), "reviews/resto-1", "big.mp4", "video/mp4", strings.NewReader("this is more than eight bytes"))
	assert.Error(t, err)
	assert.Empty(t, url)
	assert.Contains(t, err.Error(), "upload size limit")
}

func TestMediaStorage_UploadWithinLimit(t *testing.T) {
	storage := newTestStorage(t, 1024)

	url, err := storage.Upload(context.Background(), "reviews/resto-1", "small.png", "image/png", strings.NewReader("tiny"))
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}
