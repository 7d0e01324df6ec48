package favorites

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/ytget/lynch-universe/internal/storage"
)

// Collection is an ordered set of content ids persisted under a single key.
// Every mutation writes the whole set back to the store.
type Collection struct {
	mu    sync.RWMutex
	key   string
	store storage.Store
	ids   []string
}

// NewCollection hydrates a collection from key. Missing or malformed data
// yields an empty collection.
func NewCollection(store storage.Store, key string) *Collection {
	c := &Collection{key: key, store: store}
	c.ids = hydrate(store, key)
	return c
}

func hydrate(store storage.Store, key string) []string {
	raw, ok := store.Get(key)
	if !ok {
		return nil
	}
	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		slog.Warn("Ignoring malformed collection", "key", key, "error", err)
		return nil
	}
	ids := make([]string, 0, len(stored))
	for _, id := range stored {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Key returns the storage key of the collection
func (c *Collection) Key() string {
	return c.key
}

// Add inserts id at the end. No-op if already present.
func (c *Collection) Add(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if slices.Contains(c.ids, id) {
		return false
	}
	c.ids = append(c.ids, id)
	c.persistLocked()
	return true
}

// Remove deletes id. No-op if absent.
func (c *Collection) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := slices.Index(c.ids, id)
	if idx < 0 {
		return false
	}
	c.ids = slices.Delete(c.ids, idx, idx+1)
	c.persistLocked()
	return true
}

// Toggle removes id if present, otherwise adds it. Returns the new membership.
func (c *Collection) Toggle(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := slices.Index(c.ids, id); idx >= 0 {
		c.ids = slices.Delete(c.ids, idx, idx+1)
		c.persistLocked()
		return false
	}
	c.ids = append(c.ids, id)
	c.persistLocked()
	return true
}

// Contains reports membership of id
func (c *Collection) Contains(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Contains(c.ids, id)
}

// IDs returns a copy of the ids in insertion order
func (c *Collection) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.ids)
}

// Len returns the number of ids
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ids)
}

// Serialize returns the persisted JSON form of the collection
func (c *Collection) Serialize() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return encode(c.ids)
}

func encode(ids []string) string {
	if ids == nil {
		ids = []string{}
	}
	data, _ := json.Marshal(ids)
	return string(data)
}

func (c *Collection) persistLocked() {
	if err := c.store.Set(c.key, encode(c.ids)); err != nil {
		slog.Warn("Failed to persist collection", "key", c.key, "error", fmt.Errorf("set %s: %w", c.key, err))
	}
}
