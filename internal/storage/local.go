// Package storage persists uploaded attachment bytes on local disk. Object
// references combine a random token with the original file name, so two
// concurrent uploads sharing a name never collide.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type LocalStore struct {
	root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Save writes the upload under <root>/projects/<projectID>/<uuid>_<name> and
// returns the storage reference (the relative path).
func (s *LocalStore) Save(projectID uuid.UUID, fileName string, r io.Reader) (string, error) {
	dir := filepath.Join(s.root, "projects", projectID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	// filepath.Base strips any client-supplied directory components.
	objectName := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(fileName))
	path := filepath.Join(dir, objectName)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return path, nil
}

// Remove deletes a stored object. Missing files are not an error.
func (s *LocalStore) Remove(ref string) error {
	err := os.Remove(ref)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
