package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// LocalStorage implements Storage on the local filesystem. Buckets map to
// top-level directories under the base path.
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	if cfg.BasePath == "" {
		cfg.BasePath = "./uploads"
	}

	if err := os.MkdirAll(cfg.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: cfg.BasePath,
		baseURL:  cfg.BaseURL,
	}, nil
}

func (s *LocalStorage) fullPath(bucket, path string) string {
	return filepath.Join(s.basePath, bucket, filepath.FromSlash(path))
}

func (s *LocalStorage) Save(ctx context.Context, bucket, path string, reader io.Reader, contentType string) error {
	fullPath := s.fullPath(bucket, path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func (s *LocalStorage) Get(ctx context.Context, bucket, path string) (io.ReadCloser, error) {
	file, err := os.Open(s.fullPath(bucket, path))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func (s *LocalStorage) Delete(ctx context.Context, bucket, path string) error {
	if err := os.Remove(s.fullPath(bucket, path)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Exists(ctx context.Context, bucket, path string) (bool, error) {
	_, err := os.Stat(s.fullPath(bucket, path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *LocalStorage) GetURL(ctx context.Context, bucket, path string) (string, error) {
	if s.baseURL == "" {
		return fmt.Sprintf("/files/%s/%s", bucket, path), nil
	}
	return fmt.Sprintf("%s/%s/%s", s.baseURL, bucket, path), nil
}

// GetSignedURL returns the plain URL; local storage has no signing.
func (s *LocalStorage) GetSignedURL(ctx context.Context, bucket, path string, expiry time.Duration) (string, error) {
	return s.GetURL(ctx, bucket, path)
}

func (s *LocalStorage) GetSize(ctx context.Context, bucket, path string) (int64, error) {
	info, err := os.Stat(s.fullPath(bucket, path))
	if err != nil {
		return 0, fmt.Errorf("failed to get file info: %w", err)
	}
	return info.Size(), nil
}
