package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"files-manager/internal/domain"

	"github.com/google/uuid"
)

// DiskStorage implements domain.BlobStorage on a local directory. Blob names
// are random, so concurrent writers never contend on the same path; the only
// deliberate overwrite is a re-derived thumbnail at its deterministic path.
type DiskStorage struct {
	root string
}

// NewDiskStorage creates the storage root if absent and returns the store.
func NewDiskStorage(root string) (*DiskStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", root, err)
	}
	return &DiskStorage{root: root}, nil
}

// Save writes data under a newly allocated path and returns that path.
func (s *DiskStorage) Save(data []byte) (string, error) {
	path := filepath.Join(s.root, uuid.NewString())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	return path, nil
}

// Open returns a read handle on the blob at path.
func (s *DiskStorage) Open(path string) (io.ReadSeekCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to open blob %s: %w", path, err)
	}
	return f, nil
}

// ThumbnailPath derives the location of a resized copy from the original
// blob path and the target width.
func (s *DiskStorage) ThumbnailPath(path string, width int) string {
	return fmt.Sprintf("%s_%d", path, width)
}

// SaveThumbnail writes a derived copy next to the original. Writing the same
// width twice overwrites the same path, which keeps redelivered jobs idempotent.
func (s *DiskStorage) SaveThumbnail(path string, width int, data []byte) error {
	if err := os.WriteFile(s.ThumbnailPath(path, width), data, 0o644); err != nil {
		return fmt.Errorf("failed to write thumbnail: %w", err)
	}
	return nil
}
