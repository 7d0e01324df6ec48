package model

// ViewState represents the top-level navigation state of the app
type ViewState string

const (
	// ViewStateProfileSelection is the initial "who's watching" gate
	ViewStateProfileSelection ViewState = "ProfileSelection"

	// ViewStateIntro is the animated splash shown before browsing
	ViewStateIntro ViewState = "Intro"

	// ViewStateBrowsing is the main catalog experience
	ViewStateBrowsing ViewState = "Browsing"
)

// String returns the string representation of ViewState
func (vs ViewState) String() string {
	return string(vs)
}

// AudioStatus represents the status of the background music track
type AudioStatus string

const (
	// AudioStatusUninitialized means no audio resource has been acquired yet
	AudioStatusUninitialized AudioStatus = "Uninitialized"

	// AudioStatusPlaying means the track is audible (or muted but advancing)
	AudioStatusPlaying AudioStatus = "Playing"

	// AudioStatusPaused means the track is paused at its current position
	AudioStatusPaused AudioStatus = "Paused"

	// AudioStatusStopped means the track is paused and rewound, or failed to start
	AudioStatusStopped AudioStatus = "Stopped"
)

// String returns the string representation of AudioStatus
func (as AudioStatus) String() string {
	return string(as)
}

// IsPlaying returns true if the track is currently playing
func (as AudioStatus) IsPlaying() bool {
	return as == AudioStatusPlaying
}

// SkipDirection is the direction of the last relative seek
type SkipDirection string

const (
	SkipNone     SkipDirection = ""
	SkipForward  SkipDirection = "forward"
	SkipBackward SkipDirection = "backward"
)

// String returns the string representation of SkipDirection
func (sd SkipDirection) String() string {
	if sd == SkipNone {
		return "none"
	}
	return string(sd)
}

// Sign returns +1 for forward, -1 for backward and 0 otherwise
func (sd SkipDirection) Sign() float64 {
	switch sd {
	case SkipForward:
		return 1
	case SkipBackward:
		return -1
	default:
		return 0
	}
}
