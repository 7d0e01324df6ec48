// Package storage provides the persistent key-value string store used for
// user collections. Values survive app restarts when backed by Fyne
// preferences.
package storage

import (
	"errors"

	"fyne.io/fyne/v2"
)

// ErrUnavailable is returned when the backing store cannot be written.
var ErrUnavailable = errors.New("storage unavailable")

// Store is an opaque key-value string store. Last write wins.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// PreferencesStore persists values in the app's Fyne preferences.
type PreferencesStore struct {
	prefs fyne.Preferences
}

// NewPreferencesStore wraps the preferences of a Fyne app.
func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

// Get returns the stored value; an empty string reads as absent.
func (s *PreferencesStore) Get(key string) (string, bool) {
	if s.prefs == nil {
		return "", false
	}
	value := s.prefs.String(key)
	return value, value != ""
}

// Set stores value under key.
func (s *PreferencesStore) Set(key, value string) error {
	if s.prefs == nil {
		return ErrUnavailable
	}
	s.prefs.SetString(key, value)
	return nil
}
