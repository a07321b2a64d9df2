package persistence

import (
	"sync"

	"github.com/petrijr/passo/pkg/api"
)

// MemoryStorage is a goroutine-safe api.Storage backed by a map. It is the
// default storage of controllers constructed without one; progress lives
// only as long as the process.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		values: make(map[string]string),
	}
}

// Ensure MemoryStorage implements the interface.
var _ api.Storage = (*MemoryStorage)(nil)

func (s *MemoryStorage) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", api.ErrKeyNotFound
	}
	return value, nil
}

func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Len reports the number of stored keys. It is primarily useful in tests.
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}
