package model

import "testing"

func TestAudioStatus_IsPlaying(t *testing.T) {
	tests := []struct {
		status   AudioStatus
		expected bool
	}{
		{AudioStatusUninitialized, false},
		{AudioStatusPlaying, true},
		{AudioStatusPaused, false},
		{AudioStatusStopped, false},
	}

	for _, test := range tests {
		result := test.status.IsPlaying()
		if result != test.expected {
			t.Errorf("AudioStatus(%s).IsPlaying() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestViewState_String(t *testing.T) {
	if got := ViewStateBrowsing.String(); got != "Browsing" {
		t.Errorf("ViewState.String() = %s, expected Browsing", got)
	}
}

func TestSkipDirection(t *testing.T) {
	tests := []struct {
		dir  SkipDirection
		name string
		sign float64
	}{
		{SkipNone, "none", 0},
		{SkipForward, "forward", 1},
		{SkipBackward, "backward", -1},
	}

	for _, test := range tests {
		if got := test.dir.String(); got != test.name {
			t.Errorf("SkipDirection.String() = %s, expected %s", got, test.name)
		}
		if got := test.dir.Sign(); got != test.sign {
			t.Errorf("SkipDirection(%s).Sign() = %v, expected %v", test.name, got, test.sign)
		}
	}
}
