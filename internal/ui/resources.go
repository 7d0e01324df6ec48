package ui

import (
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
)

// ResourceLoader fetches a remote image resource
type ResourceLoader func(url string) (fyne.Resource, error)

// ThumbnailCache loads remote thumbnails once and shares them between cards
type ThumbnailCache struct {
	mu       sync.Mutex
	load     ResourceLoader
	cache    map[string]fyne.Resource
	pending  map[string][]func(fyne.Resource)
	failures map[string]bool
}

// NewThumbnailCache creates a cache that fetches over HTTP
func NewThumbnailCache() *ThumbnailCache {
	return NewThumbnailCacheWithLoader(fyne.LoadResourceFromURLString)
}

// NewThumbnailCacheWithLoader creates a cache with a custom fetch function
func NewThumbnailCacheWithLoader(load ResourceLoader) *ThumbnailCache {
	return &ThumbnailCache{
		load:     load,
		cache:    make(map[string]fyne.Resource),
		pending:  make(map[string][]func(fyne.Resource)),
		failures: make(map[string]bool),
	}
}

// Get returns a cached resource without fetching
func (c *ThumbnailCache) Get(url string) (fyne.Resource, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, ok := c.cache[url]
	return res, ok
}

// Load fetches url in the background and hands the resource to apply on the
// UI thread. Failed urls are not retried.
func (c *ThumbnailCache) Load(url string, apply func(fyne.Resource)) {
	if url == "" || apply == nil {
		return
	}

	c.mu.Lock()
	if res, ok := c.cache[url]; ok {
		c.mu.Unlock()
		fyne.Do(func() { apply(res) })
		return
	}
	if c.failures[url] {
		c.mu.Unlock()
		return
	}
	waiters, inflight := c.pending[url]
	c.pending[url] = append(waiters, apply)
	c.mu.Unlock()
	if inflight {
		return
	}

	go c.fetch(url)
}

func (c *ThumbnailCache) fetch(url string) {
	res, err := c.load(url)

	c.mu.Lock()
	waiters := c.pending[url]
	delete(c.pending, url)
	if err != nil {
		c.failures[url] = true
	} else {
		c.cache[url] = res
	}
	c.mu.Unlock()

	if err != nil {
		slog.Debug("Thumbnail load failed", "url", url, "error", err)
		return
	}
	fyne.Do(func() {
		for _, apply := range waiters {
			apply(res)
		}
	})
}
