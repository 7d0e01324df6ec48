// Package catalog loads the static content dataset and derives the rows shown
// on the browse screen for a given filter and favorites membership.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ytget/lynch-universe/internal/model"
)

// Filter names besides the category names
const (
	FilterAll       = "All"
	FilterMyList    = "My List"
	FilterFavorites = "Favorites"
)

var (
	// ErrDuplicateID is returned when two items share an id
	ErrDuplicateID = errors.New("duplicate content id")

	// ErrEmpty is returned for a dataset without categories
	ErrEmpty = errors.New("catalog has no categories")
)

//go:embed catalog.yaml
var defaultData []byte

// Category is a named, ordered row of items. Playlist optionally names a
// YouTube playlist whose videos are appended by Expand.
type Category struct {
	Name     string              `yaml:"name"`
	Playlist string              `yaml:"playlist,omitempty"`
	Items    []model.ContentItem `yaml:"items"`
}

type document struct {
	Categories []Category `yaml:"categories"`
}

// Catalog is the loaded dataset
type Catalog struct {
	mu         sync.RWMutex
	categories []Category
	index      map[string]model.ContentItem
}

// Parse decodes and validates a YAML dataset
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, ErrEmpty
	}
	c := &Catalog{categories: doc.Categories}
	if err := c.reindex(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads a dataset from path
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// LoadDefault returns the built-in dataset
func LoadDefault() (*Catalog, error) {
	return Parse(defaultData)
}

// Marshal encodes the dataset, including expanded playlist items, as YAML
func (c *Catalog) Marshal() ([]byte, error) {
	c.mu.RLock()
	doc := document{Categories: slices.Clone(c.categories)}
	c.mu.RUnlock()

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return data, nil
}

// reindex rebuilds the id index; ids must be unique across categories
func (c *Catalog) reindex() error {
	index := make(map[string]model.ContentItem)
	for _, cat := range c.categories {
		if cat.Name == "" {
			return fmt.Errorf("category without name: %w", ErrEmpty)
		}
		for _, item := range cat.Items {
			if item.ID == "" {
				return fmt.Errorf("item %q in %s has no id", item.Title, cat.Name)
			}
			if _, exists := index[item.ID]; exists {
				return fmt.Errorf("%s in %s: %w", item.ID, cat.Name, ErrDuplicateID)
			}
			index[item.ID] = item
		}
	}
	c.index = index
	return nil
}

// Categories returns category names in dataset order
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.categories))
	for _, cat := range c.categories {
		names = append(names, cat.Name)
	}
	return names
}

// Filters returns every selectable filter: All, My List, Favorites, then categories
func (c *Catalog) Filters() []string {
	return append([]string{FilterAll, FilterMyList, FilterFavorites}, c.Categories()...)
}

// All returns every item in catalog order
func (c *Catalog) All() []model.ContentItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var items []model.ContentItem
	for _, cat := range c.categories {
		items = append(items, cat.Items...)
	}
	return items
}

// Find returns the item with id
func (c *Catalog) Find(id string) (model.ContentItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.index[id]
	return item, ok
}

// Items returns the items of a category
func (c *Catalog) Items(category string) []model.ContentItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cat := range c.categories {
		if cat.Name == category {
			return slices.Clone(cat.Items)
		}
	}
	return nil
}

// PlaylistResolver turns a playlist reference into content items
type PlaylistResolver interface {
	ResolvePlaylist(ctx context.Context, ref string) ([]model.ContentItem, error)
}

// Expand appends the videos of every category that names a playlist. Items
// whose id is already present are skipped. Failures are logged and leave the
// category as it was. Returns the number of items added.
func (c *Catalog) Expand(ctx context.Context, resolver PlaylistResolver) int {
	c.mu.RLock()
	var pending []Category
	for _, cat := range c.categories {
		if cat.Playlist != "" {
			pending = append(pending, cat)
		}
	}
	c.mu.RUnlock()

	added := 0
	for _, cat := range pending {
		items, err := resolver.ResolvePlaylist(ctx, cat.Playlist)
		if err != nil {
			slog.Warn("Playlist section unavailable", "category", cat.Name, "playlist", cat.Playlist, "error", err)
			continue
		}
		added += c.appendItems(cat.Name, items)
	}
	if added > 0 {
		slog.Info("Catalog expanded from playlists", "items", added)
	}
	return added
}

func (c *Catalog) appendItems(category string, items []model.ContentItem) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.categories {
		if c.categories[i].Name != category {
			continue
		}
		added := 0
		for _, item := range items {
			if item.ID == "" {
				continue
			}
			if _, exists := c.index[item.ID]; exists {
				continue
			}
			c.categories[i].Items = append(c.categories[i].Items, item)
			c.index[item.ID] = item
			added++
		}
		return added
	}
	return 0
}
