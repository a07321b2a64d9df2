package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/petrijr/passo/pkg/api"
)

// FileStorage is an api.Storage keeping one document per key under a
// directory. It suits desktop-style deployments where progress should
// survive restarts without a database.
//
// Writes replace the whole file; there is no locking between processes.
type FileStorage struct {
	dir string
}

// Ensure FileStorage implements the interface.
var _ api.Storage = (*FileStorage)(nil)

// NewFileStorage creates the directory if needed and returns a FileStorage
// over it.
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		return nil, errors.New("storage directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

// path maps a key to a file below the storage directory. Keys may contain
// characters that are not valid in file names (session managers derive
// keys like "wizard_progress:<id>"), so separators are flattened.
func (s *FileStorage) path(key string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(key)
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStorage) Get(key string) (string, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", api.ErrKeyNotFound
		}
		return "", err
	}
	return string(data), nil
}

func (s *FileStorage) Set(key, value string) error {
	return os.WriteFile(s.path(key), []byte(value), 0o644)
}

func (s *FileStorage) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
