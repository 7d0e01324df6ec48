// Package favorites keeps the user's watch list ("My List") and liked items.
// Both collections are independent ordered sets of content ids, hydrated from
// persistent storage on construction and written through on every change.
package favorites

import (
	"sync"

	"github.com/ytget/lynch-universe/internal/storage"
)

// Storage keys
const (
	KeyMyList = "lynchUniverse_myList"
	KeyLiked  = "lynchUniverse_liked"
)

// Store holds the watch list and liked collections
type Store struct {
	WatchList *Collection
	Liked     *Collection

	mu       sync.RWMutex
	onUpdate func()
}

// NewStore hydrates both collections from s
func NewStore(s storage.Store) *Store {
	return &Store{
		WatchList: NewCollection(s, KeyMyList),
		Liked:     NewCollection(s, KeyLiked),
	}
}

// SetUpdateCallback sets a callback invoked after any membership change
func (s *Store) SetUpdateCallback(callback func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

func (s *Store) notifyUpdate(changed bool) {
	if !changed {
		return
	}
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()
	if callback != nil {
		callback()
	}
}

// AddToMyList adds id to the watch list
func (s *Store) AddToMyList(id string) {
	s.notifyUpdate(s.WatchList.Add(id))
}

// RemoveFromMyList removes id from the watch list
func (s *Store) RemoveFromMyList(id string) {
	s.notifyUpdate(s.WatchList.Remove(id))
}

// ToggleMyList flips watch list membership and returns the new state
func (s *Store) ToggleMyList(id string) bool {
	in := s.WatchList.Toggle(id)
	s.notifyUpdate(true)
	return in
}

// IsInMyList reports watch list membership
func (s *Store) IsInMyList(id string) bool {
	return s.WatchList.Contains(id)
}

// ToggleLike flips liked membership and returns the new state
func (s *Store) ToggleLike(id string) bool {
	liked := s.Liked.Toggle(id)
	s.notifyUpdate(true)
	return liked
}

// IsLiked reports liked membership
func (s *Store) IsLiked(id string) bool {
	return s.Liked.Contains(id)
}

// MyList returns watch list ids in insertion order
func (s *Store) MyList() []string {
	return s.WatchList.IDs()
}

// LikedIDs returns liked ids in insertion order
func (s *Store) LikedIDs() []string {
	return s.Liked.IDs()
}
