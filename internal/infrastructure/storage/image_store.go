// Package storage provides a local-disk file store for vacation images.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ImageStore saves uploaded images under a single directory. Stored names are
// prefixed with a unix timestamp so repeated uploads of the same file never
// collide.
type ImageStore struct {
	dir string

	now func() time.Time
}

// NewImageStore creates the directory if needed and returns a store rooted
// there.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("image dir: %w", err)
	}
	return &ImageStore{dir: dir, now: time.Now}, nil
}

// Save writes r to disk and returns the stored filename.
func (s *ImageStore) Save(filename string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d_%s", s.now().Unix(), sanitize(filename))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("image create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("image write: %w", err)
	}
	return name, nil
}

// Remove deletes a stored image. A missing file is not an error.
func (s *ImageStore) Remove(name string) error {
	err := os.Remove(filepath.Join(s.dir, sanitize(name)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("image remove: %w", err)
	}
	return nil
}

// Path returns the on-disk path for a stored filename.
func (s *ImageStore) Path(name string) string {
	return filepath.Join(s.dir, sanitize(name))
}

// sanitize strips any directory components from a client-supplied filename
// and replaces characters that are awkward on disk.
func sanitize(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == ".." || name == "/" || name == "" {
		return "upload"
	}
	return name
}
