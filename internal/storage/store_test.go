package storage

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesStore_RoundTrip(t *testing.T) {
	app := test.NewApp()
	store := NewPreferencesStore(app.Preferences())

	_, ok := store.Get("lynchUniverse_myList")
	assert.False(t, ok, "unset key should read as absent")

	require.NoError(t, store.Set("lynchUniverse_myList", `["df1"]`))
	value, ok := store.Get("lynchUniverse_myList")
	assert.True(t, ok)
	assert.Equal(t, `["df1"]`, value)
}

func TestPreferencesStore_NilPreferences(t *testing.T) {
	store := NewPreferencesStore(nil)

	_, ok := store.Get("k")
	assert.False(t, ok)
	assert.ErrorIs(t, store.Set("k", "v"), ErrUnavailable)
}
