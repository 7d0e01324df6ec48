package player

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/ytget/lynch-universe/internal/model"
)

// Timing and level constants of the playback surface
const (
	PollInterval        = time.Second
	SkipIndicatorTTL    = 2 * time.Second
	ControlsIdleTimeout = 3 * time.Second
	DefaultSkipSeconds  = 10.0
	MaxVolume           = 100.0
	SessionIDPrefix     = "session_"
)

// Channel delivers commands to the embedded player. Delivery is best effort.
type Channel interface {
	Load(ref string) error
	Send(cmd Command) error
	Unload() error
}

// Surface is the viewing area that can enter fullscreen
type Surface interface {
	RequestFullscreen() error
	ExitFullscreen() error
}

// BackgroundAudio is the music track suspended while a session is open
type BackgroundAudio interface {
	IsPlaying() bool
	TogglePlay()
}

// Snapshot is a copy of the current session state
type Snapshot struct {
	Active          bool
	ID              string
	Item            model.ContentItem
	IsPlaying       bool
	CurrentTime     float64
	Duration        float64
	Volume          float64
	IsMuted         bool
	IsFullscreen    bool
	Embedded        bool
	ControlsVisible bool
	SkipIndicator   model.SkipDirection
}

type session struct {
	id              string
	item            model.ContentItem
	playing         bool
	currentTime     float64
	duration        float64
	volume          float64
	muted           bool
	fullscreen      bool
	embedded        bool
	controlsVisible bool
	skip            model.SkipDirection
	musicWasPlaying bool

	pollStop  chan struct{}
	skipTimer clockwork.Timer
	skipGen   int
	hideTimer clockwork.Timer
	hideGen   int
}

// Controller manages the playback session of the detail modal
type Controller struct {
	mu      sync.Mutex
	channel Channel
	surface Surface
	music   BackgroundAudio
	clock   clockwork.Clock
	session *session

	onUpdate func(Snapshot)
}

// NewController creates a playback controller. surface and music may be nil.
func NewController(channel Channel, surface Surface, music BackgroundAudio, clock clockwork.Clock) *Controller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Controller{
		channel: channel,
		surface: surface,
		music:   music,
		clock:   clock,
	}
}

// SetUpdateCallback sets the callback invoked after every session change
func (c *Controller) SetUpdateCallback(callback func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = callback
}

func generateSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(SessionIDPrefix+"%d", time.Now().UnixNano())
	}
	return SessionIDPrefix + id.String()
}

// Open starts a new session for item, replacing any existing one. Background
// music is suspended while a session is open.
func (c *Controller) Open(item model.ContentItem) {
	c.mu.Lock()
	musicWasPlaying := false
	if prev := c.session; prev != nil {
		musicWasPlaying = prev.musicWasPlaying
		c.teardownLocked(prev)
	}
	if c.music != nil && c.music.IsPlaying() {
		c.music.TogglePlay()
		musicWasPlaying = true
	}

	c.session = &session{
		id:              generateSessionID(),
		item:            item,
		volume:          MaxVolume,
		controlsVisible: true,
		musicWasPlaying: musicWasPlaying,
	}
	slog.Info("Playback session opened", "session_id", c.session.id, "item", item.ID)
	c.unlockAndNotify()
}

// Close tears down the session and resumes music that was playing at open time
func (c *Controller) Close() {
	c.mu.Lock()
	s := c.session
	if s == nil {
		c.mu.Unlock()
		return
	}
	c.teardownLocked(s)
	c.session = nil

	if s.musicWasPlaying && c.music != nil && !c.music.IsPlaying() {
		c.music.TogglePlay()
	}
	slog.Info("Playback session closed", "session_id", s.id)
	c.unlockAndNotify()
}

func (c *Controller) teardownLocked(s *session) {
	c.stopPollLocked(s)
	if s.skipTimer != nil {
		s.skipTimer.Stop()
		s.skipTimer = nil
	}
	if s.hideTimer != nil {
		s.hideTimer.Stop()
		s.hideTimer = nil
	}
	if s.fullscreen && c.surface != nil {
		if err := c.surface.ExitFullscreen(); err != nil {
			slog.Debug("Exit fullscreen on close failed", "error", err)
		}
	}
	if s.embedded {
		if err := c.channel.Unload(); err != nil {
			slog.Debug("Unload player failed", "session_id", s.id, "error", err)
		}
	}
}

// Play starts playback, embedding the external player on first play
func (c *Controller) Play() {
	c.mu.Lock()
	s := c.session
	if s == nil || s.playing {
		c.mu.Unlock()
		return
	}
	if !s.item.HasVideo() {
		s.playing = true
		c.unlockAndNotify()
		return
	}
	if !s.embedded {
		if err := c.channel.Load(s.item.ExternalVideoRef); err != nil {
			slog.Warn("Failed to load player", "session_id", s.id, "ref", s.item.ExternalVideoRef, "error", err)
			c.mu.Unlock()
			return
		}
		s.embedded = true
	}
	c.sendLocked(s, NewCommand(FuncPlayVideo))
	s.playing = true
	c.startPollLocked(s)
	c.unlockAndNotify()
}

// Pause pauses playback and stops polling
func (c *Controller) Pause() {
	c.mu.Lock()
	s := c.session
	if s == nil || !s.playing {
		c.mu.Unlock()
		return
	}
	c.sendLocked(s, NewCommand(FuncPauseVideo))
	c.stopPollLocked(s)
	s.playing = false
	c.showControlsLocked(s)
	c.unlockAndNotify()
}

// TogglePlayback plays when paused and pauses when playing
func (c *Controller) TogglePlayback() {
	c.mu.Lock()
	playing := c.session != nil && c.session.playing
	c.mu.Unlock()
	if playing {
		c.Pause()
	} else {
		c.Play()
	}
}

// Replay seeks to the start and plays
func (c *Controller) Replay() {
	c.mu.Lock()
	s := c.session
	if s == nil {
		c.mu.Unlock()
		return
	}
	if !s.embedded && s.item.HasVideo() {
		c.mu.Unlock()
		c.Play()
		return
	}
	c.sendLocked(s, NewCommand(FuncSeekTo, 0.0, true))
	c.sendLocked(s, NewCommand(FuncPlayVideo))
	s.currentTime = 0
	if !s.playing && s.embedded {
		c.startPollLocked(s)
	}
	s.playing = true
	c.unlockAndNotify()
}

// Skip seeks delta seconds in direction, clamped to [0, duration]. A
// non-positive delta skips DefaultSkipSeconds.
func (c *Controller) Skip(direction model.SkipDirection, delta float64) {
	if delta <= 0 {
		delta = DefaultSkipSeconds
	}
	c.mu.Lock()
	s := c.session
	if s == nil || direction == model.SkipNone {
		c.mu.Unlock()
		return
	}
	target := clamp(s.currentTime+direction.Sign()*delta, 0, s.duration)
	c.sendLocked(s, NewCommand(FuncSeekTo, target, true))
	s.currentTime = target
	s.skip = direction

	if s.skipTimer != nil {
		s.skipTimer.Stop()
	}
	s.skipGen++
	gen := s.skipGen
	s.skipTimer = c.clock.AfterFunc(SkipIndicatorTTL, func() {
		c.mu.Lock()
		if c.session != s || s.skipGen != gen {
			c.mu.Unlock()
			return
		}
		s.skip = model.SkipNone
		s.skipTimer = nil
		c.unlockAndNotify()
	})
	c.unlockAndNotify()
}

// SeekTo seeks to fraction (0..1) of the duration
func (c *Controller) SeekTo(fraction float64) {
	c.mu.Lock()
	s := c.session
	if s == nil {
		c.mu.Unlock()
		return
	}
	target := clamp(fraction, 0, 1) * s.duration
	c.sendLocked(s, NewCommand(FuncSeekTo, target, true))
	s.currentTime = target
	c.unlockAndNotify()
}

// SetVolume sets the player volume (0..100). Zero counts as muted.
func (c *Controller) SetVolume(level float64) {
	c.mu.Lock()
	s := c.session
	if s == nil {
		c.mu.Unlock()
		return
	}
	level = clamp(level, 0, MaxVolume)
	c.sendLocked(s, NewCommand(FuncSetVolume, level))
	s.volume = level
	s.muted = level == 0
	c.unlockAndNotify()
}

// ToggleMute mutes, or unmutes restoring full volume
func (c *Controller) ToggleMute() {
	c.mu.Lock()
	s := c.session
	if s == nil {
		c.mu.Unlock()
		return
	}
	if s.muted {
		c.sendLocked(s, NewCommand(FuncUnMute))
		s.muted = false
		s.volume = MaxVolume
	} else {
		c.sendLocked(s, NewCommand(FuncMute))
		s.muted = true
	}
	c.unlockAndNotify()
}

// ToggleFullscreen asks the surface to enter or leave fullscreen. The state
// only changes once the surface confirms through HandleFullscreenChange, so a
// request the page refuses leaves the session windowed.
func (c *Controller) ToggleFullscreen() {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session
	if s == nil {
		return
	}
	if c.surface == nil {
		slog.Warn("Fullscreen unavailable", "session_id", s.id)
		return
	}
	var err error
	if s.fullscreen {
		err = c.surface.ExitFullscreen()
	} else {
		err = c.surface.RequestFullscreen()
	}
	if err != nil {
		slog.Warn("Fullscreen request rejected", "session_id", s.id, "error", err)
	}
}

// HandleEscape exits fullscreen, or closes the session when not fullscreen
func (c *Controller) HandleEscape() {
	c.mu.Lock()
	s := c.session
	fullscreen := s != nil && s.fullscreen
	c.mu.Unlock()
	if s == nil {
		return
	}
	if fullscreen {
		c.ToggleFullscreen()
		return
	}
	c.Close()
}

// HandleFullscreenChange records a fullscreen change reported by the surface
func (c *Controller) HandleFullscreenChange(fullscreen bool) {
	c.mu.Lock()
	s := c.session
	if s == nil || s.fullscreen == fullscreen {
		c.mu.Unlock()
		return
	}
	s.fullscreen = fullscreen
	c.unlockAndNotify()
}

// PointerMoved shows the controls; while playing they hide after idling
func (c *Controller) PointerMoved() {
	c.mu.Lock()
	s := c.session
	if s == nil {
		c.mu.Unlock()
		return
	}
	c.showControlsLocked(s)
	if s.playing {
		s.hideGen++
		gen := s.hideGen
		s.hideTimer = c.clock.AfterFunc(ControlsIdleTimeout, func() {
			c.mu.Lock()
			if c.session != s || s.hideGen != gen || !s.playing {
				c.mu.Unlock()
				return
			}
			s.controlsVisible = false
			s.hideTimer = nil
			c.unlockAndNotify()
		})
	}
	c.unlockAndNotify()
}

// PointerLeft hides the controls while playing
func (c *Controller) PointerLeft() {
	c.mu.Lock()
	s := c.session
	if s == nil || !s.playing {
		c.mu.Unlock()
		return
	}
	if s.hideTimer != nil {
		s.hideTimer.Stop()
		s.hideTimer = nil
	}
	s.controlsVisible = false
	c.unlockAndNotify()
}

// HandleInfo applies player telemetry to the live session
func (c *Controller) HandleInfo(info Info) {
	c.mu.Lock()
	s := c.session
	if s == nil || !s.embedded {
		c.mu.Unlock()
		return
	}
	if info.Duration != nil && *info.Duration >= 0 {
		s.duration = *info.Duration
	}
	if info.CurrentTime != nil {
		t := *info.CurrentTime
		if s.duration > 0 {
			t = clamp(t, 0, s.duration)
		} else if t < 0 {
			t = 0
		}
		s.currentTime = t
	}
	if info.Volume != nil {
		s.volume = clamp(*info.Volume, 0, MaxVolume)
	}
	if info.Muted != nil {
		s.muted = *info.Muted
	}
	if info.Fullscreen != nil {
		s.fullscreen = *info.Fullscreen
	}
	c.unlockAndNotify()
}

// Snapshot returns a copy of the current session state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	s := c.session
	if s == nil {
		return Snapshot{}
	}
	return Snapshot{
		Active:          true,
		ID:              s.id,
		Item:            s.item,
		IsPlaying:       s.playing,
		CurrentTime:     s.currentTime,
		Duration:        s.duration,
		Volume:          s.volume,
		IsMuted:         s.muted,
		IsFullscreen:    s.fullscreen,
		Embedded:        s.embedded,
		ControlsVisible: s.controlsVisible,
		SkipIndicator:   s.skip,
	}
}

func (c *Controller) showControlsLocked(s *session) {
	s.controlsVisible = true
	if s.hideTimer != nil {
		s.hideTimer.Stop()
		s.hideTimer = nil
	}
	s.hideGen++
}

// sendLocked delivers cmd only once the external player is embedded
func (c *Controller) sendLocked(s *session, cmd Command) {
	if !s.embedded {
		return
	}
	if err := c.channel.Send(cmd); err != nil {
		slog.Debug("Player command dropped", "session_id", s.id, "func", cmd.Func, "error", err)
	}
}

func (c *Controller) startPollLocked(s *session) {
	if s.pollStop != nil {
		return
	}
	stop := make(chan struct{})
	s.pollStop = stop
	ticker := c.clock.NewTicker(PollInterval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.Chan():
				c.mu.Lock()
				if c.session != s || s.pollStop != stop {
					c.mu.Unlock()
					return
				}
				c.sendLocked(s, NewCommand(FuncGetCurrentTime))
				c.sendLocked(s, NewCommand(FuncGetDuration))
				c.mu.Unlock()
			}
		}
	}()
}

func (c *Controller) stopPollLocked(s *session) {
	if s.pollStop == nil {
		return
	}
	close(s.pollStop)
	s.pollStop = nil
}

func (c *Controller) unlockAndNotify() {
	snap := c.snapshotLocked()
	callback := c.onUpdate
	c.mu.Unlock()
	if callback != nil {
		callback(snap)
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
