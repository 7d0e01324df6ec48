// Package view implements the top-level navigation of the app: a profile
// gate, a timed intro and the browsing experience. The machine coordinates
// the background music on each transition.
package view

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ytget/lynch-universe/internal/model"
)

const (
	// ResumeDelay separates stopping and restarting the music on profile pick
	ResumeDelay = 100 * time.Millisecond

	// IntroLogoDuration is how long the splash logo stays on screen
	IntroLogoDuration = 3500 * time.Millisecond

	// IntroFadeDuration is the fade-out that follows the logo
	IntroFadeDuration = 1200 * time.Millisecond

	// IntroDuration is the total time spent in Intro before browsing
	IntroDuration = IntroLogoDuration + IntroFadeDuration
)

// AudioControl is the background music as seen by the machine
type AudioControl interface {
	Start()
	Stop()
	TogglePlay()
	IsPlaying() bool
}

// Profile is an entry of the "who's watching" gate
type Profile struct {
	ID     string
	Name   string
	Active bool
}

// Profiles returns the profiles shown on the gate. Only "lynch" leads anywhere.
func Profiles() []Profile {
	return []Profile{
		{ID: "lynch", Name: "Lynch Universe", Active: true},
		{ID: "kids", Name: "Kids"},
		{ID: "guest", Name: "Guest"},
	}
}

func findProfile(id string) (Profile, bool) {
	for _, p := range Profiles() {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// IsActiveProfile reports whether id names a profile that can be entered
func IsActiveProfile(id string) bool {
	p, ok := findProfile(id)
	return ok && p.Active
}

// Machine holds the current ViewState
type Machine struct {
	mu     sync.Mutex
	clock  clockwork.Clock
	audio  AudioControl
	state  model.ViewState
	gen    int
	timers []clockwork.Timer
	closed bool

	onUpdate func(model.ViewState)
}

// NewMachine creates a machine in ProfileSelection
func NewMachine(audio AudioControl, clock clockwork.Clock) *Machine {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Machine{
		clock: clock,
		audio: audio,
		state: model.ViewStateProfileSelection,
	}
}

// SetUpdateCallback sets a callback invoked after every transition
func (m *Machine) SetUpdateCallback(callback func(model.ViewState)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onUpdate = callback
}

// State returns the current view state
func (m *Machine) State() model.ViewState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SelectProfile handles a click on a profile tile. Only the active profile in
// ProfileSelection leads to Intro; anything else is ignored.
func (m *Machine) SelectProfile(id string) bool {
	if !IsActiveProfile(id) {
		slog.Debug("Ignoring inactive profile", "profile", id)
		return false
	}

	m.mu.Lock()
	if m.closed || m.state != model.ViewStateProfileSelection {
		m.mu.Unlock()
		return false
	}
	m.audio.Stop()

	gen := m.gen
	m.after(ResumeDelay, func() {
		if !m.current(gen) {
			return
		}
		if !m.audio.IsPlaying() {
			m.audio.TogglePlay()
		}
	})

	m.enterIntroLocked()
	slog.Info("Profile selected", "profile", id)
	m.unlockAndNotify()
	return true
}

// ReturnToProfiles goes back to the profile gate from Browsing, bypassing Intro
func (m *Machine) ReturnToProfiles() bool {
	m.mu.Lock()
	if m.closed || m.state != model.ViewStateBrowsing {
		m.mu.Unlock()
		return false
	}
	m.audio.Stop()
	m.cancelTimersLocked()
	m.state = model.ViewStateProfileSelection
	m.unlockAndNotify()
	return true
}

// Close cancels pending transitions
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.cancelTimersLocked()
}

func (m *Machine) enterIntroLocked() {
	m.state = model.ViewStateIntro
	m.audio.Start()

	gen := m.gen
	m.after(IntroDuration, func() {
		m.mu.Lock()
		if m.closed || m.gen != gen || m.state != model.ViewStateIntro {
			m.mu.Unlock()
			return
		}
		m.state = model.ViewStateBrowsing
		m.unlockAndNotify()
	})
}

// after schedules f; callers hold m.mu
func (m *Machine) after(d time.Duration, f func()) {
	m.timers = append(m.timers, m.clock.AfterFunc(d, f))
}

func (m *Machine) current(gen int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.closed && m.gen == gen
}

func (m *Machine) cancelTimersLocked() {
	for _, t := range m.timers {
		t.Stop()
	}
	m.timers = nil
	m.gen++
}

func (m *Machine) unlockAndNotify() {
	state := m.state
	callback := m.onUpdate
	m.mu.Unlock()
	if callback != nil {
		callback(state)
	}
}
