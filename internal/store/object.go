package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ObjectStore keeps generated audio blobs addressed by key
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte) error
	Download(ctx context.Context, key string) ([]byte, error)
}

// DirStore is an ObjectStore backed by flat files in a local directory
type DirStore struct {
	dir string
}

// NewDirStore creates the directory if needed
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio dir: %w", err)
	}
	return &DirStore{dir: dir}, nil
}

// Upload writes one blob, replacing any previous content under the same key
func (d *DirStore) Upload(_ context.Context, key string, data []byte) error {
	if err := os.WriteFile(d.keyPath(key), data, 0o600); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}

// Download reads one blob back
func (d *DirStore) Download(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(d.keyPath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}
	return data, nil
}

// keyPath confines keys to the store directory
func (d *DirStore) keyPath(key string) string {
	return filepath.Join(d.dir, filepath.Base(key))
}
