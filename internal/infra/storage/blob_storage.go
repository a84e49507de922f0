// Package storage implements media storage on top of gocloud.dev blob
// buckets, so the same code serves S3, GCS and local disk.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"sharefit/config"
	"sharefit/internal/domain/lifecycle"
	"sharefit/internal/domain/service"
	"sharefit/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // Register file:// bucket scheme.
	_ "gocloud.dev/blob/gcsblob"  // Register gs:// bucket scheme.
	_ "gocloud.dev/blob/s3blob"   // Register s3:// bucket scheme.
	"gocloud.dev/gcerrors"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for MediaStorage, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns it as a MediaStorage.
func New(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be configured")
	}

	ctx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Media storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload writes the content under the given key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, content io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()

		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize object %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object stored under the key. Missing keys are not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}
