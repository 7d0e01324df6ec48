// Package audio owns the single looping background music track that plays
// behind the catalog. The controller never surfaces resource failures to its
// callers: they are logged and leave the track in the Stopped state.
package audio

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ytget/lynch-universe/internal/model"
)

const (
	// DefaultVolume is the level applied when the track starts or is unmuted
	DefaultVolume = 0.4

	// DefaultAcquireTimeout bounds how long Start waits for the resource
	DefaultAcquireTimeout = 10 * time.Second
)

// Resource is a playable, loopable audio track
type Resource interface {
	Play() error
	Pause() error
	Rewind() error
	SetVolume(volume float64) error
	SetLoop(loop bool) error
	Close() error
}

// Loader acquires a Resource for src
type Loader func(ctx context.Context, src string) (Resource, error)

// State is a snapshot of the controller
type State struct {
	Status      model.AudioStatus
	IsPlaying   bool
	IsMuted     bool
	Volume      float64
	HasResource bool
}

// Controller manages the background track lifecycle
type Controller struct {
	mu       sync.Mutex
	loader   Loader
	source   string
	volume   float64
	resource Resource
	status   model.AudioStatus
	muted    bool
	closed   bool

	acquireTimeout time.Duration
	onUpdate       func(State)
}

// NewController creates a controller for the track at source. A non-positive
// volume selects DefaultVolume.
func NewController(loader Loader, source string, volume float64) *Controller {
	if volume <= 0 || volume > 1 {
		volume = DefaultVolume
	}
	return &Controller{
		loader:         loader,
		source:         source,
		volume:         volume,
		status:         model.AudioStatusUninitialized,
		acquireTimeout: DefaultAcquireTimeout,
	}
}

// SetUpdateCallback sets a callback invoked after every state change
func (c *Controller) SetUpdateCallback(callback func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = callback
}

// Start acquires the track and begins looping playback. It has no effect once
// a resource exists.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.closed || c.resource != nil {
		c.mu.Unlock()
		return
	}
	c.startLocked()
	c.unlockAndNotify()
}

// TogglePlay flips between playing and paused. Without a resource it behaves
// like Start.
func (c *Controller) TogglePlay() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	switch {
	case c.resource == nil:
		c.startLocked()
	case c.status == model.AudioStatusPlaying:
		if err := c.resource.Pause(); err != nil {
			slog.Warn("Failed to pause background music", "error", err)
		}
		c.status = model.AudioStatusPaused
	default:
		if err := c.resource.Play(); err != nil {
			slog.Warn("Failed to resume background music", "error", err)
		} else {
			c.status = model.AudioStatusPlaying
		}
	}
	c.unlockAndNotify()
}

// Stop pauses the track and rewinds it to the beginning
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.resource == nil {
		c.mu.Unlock()
		return
	}
	if err := c.resource.Pause(); err != nil {
		slog.Warn("Failed to pause background music", "error", err)
	}
	if err := c.resource.Rewind(); err != nil {
		slog.Warn("Failed to rewind background music", "error", err)
	}
	c.status = model.AudioStatusStopped
	c.unlockAndNotify()
}

// ToggleMute flips the muted flag. Unmuting restores the default level.
func (c *Controller) ToggleMute() {
	c.mu.Lock()
	c.muted = !c.muted
	if c.resource != nil {
		if err := c.resource.SetVolume(c.effectiveVolumeLocked()); err != nil {
			slog.Warn("Failed to change background music volume", "error", err)
		}
	}
	c.unlockAndNotify()
}

// Close releases the track. No playback happens afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.resource != nil {
		if err := c.resource.Pause(); err != nil {
			slog.Debug("Pause on close failed", "error", err)
		}
		if err := c.resource.Close(); err != nil {
			slog.Warn("Failed to release background music", "error", err)
		}
		c.resource = nil
	}
	if c.status != model.AudioStatusUninitialized {
		c.status = model.AudioStatusStopped
	}
	c.unlockAndNotify()
}

// IsPlaying reports whether the track is currently playing
func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resource != nil && c.status == model.AudioStatusPlaying
}

// State returns a snapshot of the controller
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	return State{
		Status:      c.status,
		IsPlaying:   c.resource != nil && c.status == model.AudioStatusPlaying,
		IsMuted:     c.muted,
		Volume:      c.effectiveVolumeLocked(),
		HasResource: c.resource != nil,
	}
}

func (c *Controller) effectiveVolumeLocked() float64 {
	if c.muted {
		return 0
	}
	return c.volume
}

func (c *Controller) startLocked() {
	ctx, cancel := context.WithTimeout(context.Background(), c.acquireTimeout)
	defer cancel()

	res, err := c.loader(ctx, c.source)
	if err != nil {
		slog.Warn("Background music unavailable", "source", c.source, "error", err)
		c.status = model.AudioStatusStopped
		return
	}
	c.resource = res

	if err := res.SetVolume(c.effectiveVolumeLocked()); err != nil {
		slog.Warn("Failed to set background music volume", "error", err)
	}
	if err := res.SetLoop(true); err != nil {
		slog.Warn("Failed to enable looping", "error", err)
	}
	if err := res.Play(); err != nil {
		slog.Warn("Background music playback rejected", "error", err)
		c.status = model.AudioStatusStopped
		return
	}
	c.status = model.AudioStatusPlaying
	slog.Info("Background music started", "source", c.source)
}

func (c *Controller) unlockAndNotify() {
	state := c.stateLocked()
	callback := c.onUpdate
	c.mu.Unlock()
	if callback != nil {
		callback(state)
	}
}
