package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// LocalStore implements domain.FileStore on the local filesystem. Files keep
// their original extension under a random name; the returned reference is
// the servable URL path, not the filesystem location.
type LocalStore struct {
	dir      string
	basePath string
}

// NewLocalStore creates a local upload store rooted at dir and served
// under basePath (e.g. "/uploads").
func NewLocalStore(dir, basePath string) *LocalStore {
	return &LocalStore{dir: dir, basePath: basePath}
}

// Dir returns the filesystem directory backing the store.
func (s *LocalStore) Dir() string { return s.dir }

// Save implements domain.FileStore
func (s *LocalStore) Save(file *multipart.FileHeader) (string, error) {
	if file == nil || file.Size == 0 {
		return "", fmt.Errorf("uploaded file is empty")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write stored file: %w", err)
	}

	return path.Join(s.basePath, name), nil
}

// Remove implements domain.FileStore. The reference is the servable path
// returned by Save; only its final element is trusted.
func (s *LocalStore) Remove(ref string) error {
	if ref == "" {
		return nil
	}
	name := path.Base(ref)
	if name == "." || name == "/" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stored file: %w", err)
	}
	return nil
}

var _ domain.FileStore = (*LocalStore)(nil)
