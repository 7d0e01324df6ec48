package model

import (
	"fmt"
	"math"
	"strings"
)

// ContentItem is a single catalog entry. Identity is ID.
type ContentItem struct {
	ID               string   `yaml:"id"`
	Title            string   `yaml:"title"`
	ThumbnailURL     string   `yaml:"thumbnail"`
	DurationLabel    string   `yaml:"duration"`
	Description      string   `yaml:"description,omitempty"`
	Tags             []string `yaml:"tags,omitempty"`
	ExternalVideoRef string   `yaml:"youtube_id,omitempty"`
}

// HasVideo reports whether the item can be played in the embedded player
func (ci ContentItem) HasVideo() bool {
	return strings.TrimSpace(ci.ExternalVideoRef) != ""
}

// TagLine joins tags for display, e.g. "Drama • Mystery"
func (ci ContentItem) TagLine() string {
	return strings.Join(ci.Tags, " • ")
}

// FormatTime renders seconds as m:ss. Negative and NaN values render as 0:00.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
