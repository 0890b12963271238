// Package storage persists generated artifacts (posters, invoices) to a
// blob bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"bizvistar/config"
	"bizvistar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected via the configured bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type bucketStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for the artifact store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewArtifactStore opens the configured blob bucket. Returns nil when no
// bucket is configured; callers treat a nil store as persistence disabled.
func NewArtifactStore(params Params) (service.ArtifactStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Artifact storage not configured, generated files are returned inline only")

		return nil, nil
	}

	store, err := OpenBucket(params.Ctx, cfg.BucketURL, cfg.PublicBaseURL)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Artifact store initialized", slog.String("bucket_url", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// OpenBucket opens a bucket URL understood by gocloud.dev/blob.
func OpenBucket(ctx context.Context, bucketURL, publicBaseURL string) (service.ArtifactStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &bucketStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

// Save writes the artifact and returns the URL it is reachable under.
func (s *bucketStore) Save(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	if key == "" {
		return "", errors.New("artifact key must not be empty")
	}

	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write artifact %s", key)
	}

	if s.publicBaseURL == "" {
		return key, nil
	}

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the underlying bucket.
func (s *bucketStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
