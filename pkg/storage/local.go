package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// ObjectStore persists raw uploaded files. The row store keeps only the
// storage path.
type ObjectStore interface {
	Put(path string, data []byte) error
}

// LocalStore writes objects under a base directory that the server also
// serves statically.
type LocalStore struct {
	baseDir string
}

var _ ObjectStore = &LocalStore{}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

func (s *LocalStore) Put(path string, data []byte) error {
	full := filepath.Join(s.baseDir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}
	return os.WriteFile(full, data, 0o644)
}

func (s *LocalStore) BaseDir() string {
	return s.baseDir
}
