// Package storagetest provides an in-memory storage.Store for tests.
package storagetest

import (
	"sync"

	"github.com/ytget/lynch-universe/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps values in memory and can be told to reject writes.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
	err    error
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

// Get returns the stored value for key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// Set stores value under key, or returns the configured failure.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.values[key] = value
	return nil
}

// FailWrites makes subsequent Set calls return err; nil restores writes.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}
