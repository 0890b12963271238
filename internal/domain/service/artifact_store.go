package service

import "context"

// ArtifactStore defines the interface for persisting generated artifacts
// (posters, invoices) to blob storage.
type ArtifactStore interface {
	// Save writes the artifact under the given key and returns its public URL.
	Save(ctx context.Context, key string, contentType string, data []byte) (string, error)

	// Close releases the underlying bucket.
	Close() error
}
