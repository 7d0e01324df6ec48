// Package ui contains the Fyne-based desktop user interface for the app. It
// renders the profile gate, the splash intro, the browse screen and the video
// modal, and forwards user input to the view machine, the favorites store,
// the background music and the playback controller. All UI strings are
// localized via Localization.
package ui
