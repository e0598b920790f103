// Package imagestore abstracts product image hosting behind a small interface
// so the upload endpoints do not depend on any particular provider.
package imagestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Image describes a stored image.
type Image struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// Store saves and deletes images by public ID.
type Store interface {
	Save(filename string, r io.Reader) (*Image, error)
	Delete(publicID string) error
}

// LocalStore keeps images on the local filesystem and serves them from a
// static route. Stands in for a hosted provider in development and tests.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates a LocalStore writing into dir; baseURL is the public
// prefix under which the directory is served.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image dir %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Save stores the image under a generated public ID, keeping the original
// file extension.
func (s *LocalStore) Save(filename string, r io.Reader) (*Image, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return nil, fmt.Errorf("unsupported image type %q", ext)
	}

	publicID := uuid.New().String() + ext
	f, err := os.Create(filepath.Join(s.dir, publicID))
	if err != nil {
		return nil, fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write image: %w", err)
	}

	return &Image{
		PublicID: publicID,
		URL:      s.baseURL + "/" + publicID,
	}, nil
}

// Delete removes a stored image by public ID.
func (s *LocalStore) Delete(publicID string) error {
	// Reject path traversal in the public ID.
	if publicID != filepath.Base(publicID) {
		return fmt.Errorf("invalid public ID %q", publicID)
	}
	if err := os.Remove(filepath.Join(s.dir, publicID)); err != nil {
		return fmt.Errorf("failed to delete image %s: %w", publicID, err)
	}
	return nil
}
