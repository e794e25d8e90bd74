// Package storage implements review media uploads on top of a blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"kuliner/config"
	domainerrors "kuliner/internal/domain/errors"
	"kuliner/internal/domain/service"
	"kuliner/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers. The file driver serves local development, the GCS
	// driver production.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// blobMediaStorage implements the MediaStorage interface using a gocloud
// blob bucket, so the bucket backend is chosen purely by URL.
type blobMediaStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxBytes      int64
	logger        *slog.Logger
}

// StorageParams holds dependencies for MediaStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaStorage opens the configured bucket and returns it as a
// service.MediaStorage.
func NewMediaStorage(params StorageParams) (service.MediaStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Media storage bucket opened",
		slog.String("bucket_url", cfg.BucketURL),
	)

	storage := &blobMediaStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxBytes:      cfg.MaxUploadBytes,
		logger:        params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing media storage bucket")

			return storage.Close()
		},
	})

	return storage, nil
}

// Upload stores the content under a generated key inside the given folder
// and returns the public URL of the stored object. The original filename
// only contributes its extension; the key itself is a fresh UUID so
// uploads never collide.
func (s *blobMediaStorage) Upload(ctx context.Context, folder, filename, contentType string, content io.Reader) (string, error) {
	key := buildObjectKey(folder, filename)

	reader := content
	if s.maxBytes > 0 {
		reader = io.LimitReader(content, s.maxBytes+1)
	}

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
	}

	written, err := io.Copy(writer, reader)
	if err != nil {
		writer.Close()

		return "", domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
	}

	if s.maxBytes > 0 && written > s.maxBytes {
		writer.Close()
		// Best effort cleanup of the oversized object.
		_ = s.bucket.Delete(ctx, key)

		return "", domainerrors.ErrMediaUploadFailed.WrapMessage(
			"media file exceeds the upload size limit of " + util.FormatBytes(s.maxBytes))
	}

	if err := writer.Close(); err != nil {
		return "", domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
	}

	s.logger.Info("Media uploaded",
		slog.String("key", key),
		slog.Int64("bytes", written),
	)

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the underlying bucket handle.
func (s *blobMediaStorage) Close() error {
	return s.bucket.Close()
}

// buildObjectKey generates a collision-free object key that keeps the
// original file extension, e.g. "reviews/abc123/9f6c....jpg".
func buildObjectKey(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	key := uuid.NewString() + ext
	if folder != "" {
		key = strings.Trim(folder, "/") + "/" + key
	}

	// Object keys end up in URLs; escape anything unexpected per segment.
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return strings.Join(segments, "/")
}
