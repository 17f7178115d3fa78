package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage is the blob-store bridge. Objects are addressed by
// (bucket, path); buckets namespace resource groups (media library,
// portfolio images) and paths are `{ownerId}/{timestamp}.{ext}`.
type Storage interface {
	// Save stores a blob at the given bucket/path.
	Save(ctx context.Context, bucket, path string, reader io.Reader, contentType string) error

	// Get retrieves a blob.
	Get(ctx context.Context, bucket, path string) (io.ReadCloser, error)

	// Delete removes a blob. Deleting an absent blob is not an error.
	Delete(ctx context.Context, bucket, path string) error

	// Exists checks whether a blob is present.
	Exists(ctx context.Context, bucket, path string) (bool, error)

	// GetURL returns the durable public URL for the blob.
	GetURL(ctx context.Context, bucket, path string) (string, error)

	// GetSignedURL returns a temporary signed URL for private blobs.
	GetSignedURL(ctx context.Context, bucket, path string, expiry time.Duration) (string, error)

	// GetSize returns the blob size in bytes.
	GetSize(ctx context.Context, bucket, path string) (int64, error)
}

// Config holds storage configuration.
type Config struct {
	Type       string // local, s3
	BasePath   string // for local storage
	BaseURL    string // public URL base
	Region     string // for S3
	Endpoint   string // for R2 or custom S3
	PublicRead bool
}

// NewStorage creates a storage backend from configuration.
func NewStorage(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
