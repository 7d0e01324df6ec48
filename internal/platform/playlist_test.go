package platform

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		expected string
	}{
		{"bare id", "PL1234567890", "PL1234567890"},
		{"playlist url", "https://www.youtube.com/playlist?list=PLabc", "PLabc"},
		{"watch url with list", "https://www.youtube.com/watch?v=xyz&list=PLabc&index=2", "PLabc"},
		{"video url without list", "https://www.youtube.com/watch?v=xyz", ""},
		{"empty", "  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPlaylistID(tt.ref); got != tt.expected {
				t.Errorf("ExtractPlaylistID(%q) = %q, expected %q", tt.ref, got, tt.expected)
			}
		})
	}
}

func TestNewPlaylistResolver(t *testing.T) {
	resolver := NewPlaylistResolver()
	if resolver.timeout != DefaultParseTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultParseTimeout, resolver.timeout)
	}

	resolver.SetTimeout(5 * time.Second)
	if resolver.timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", resolver.timeout)
	}
}

func TestResolvePlaylist(t *testing.T) {
	var requested string
	resolver := &PlaylistResolver{
		timeout: time.Second,
		fetch: func(ctx context.Context, id string) ([]PlaylistEntry, error) {
			requested = id
			if _, ok := ctx.Deadline(); !ok {
				t.Error("fetch should run with a deadline")
			}
			return []PlaylistEntry{
				{VideoID: "aaa", Title: "In Heaven"},
				{VideoID: "", Title: "skipped"},
				{VideoID: "bbb", Title: "  "},
			}, nil
		},
	}

	items, err := resolver.ResolvePlaylist(context.Background(), "https://www.youtube.com/playlist?list=PLsound")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requested != "PLsound" {
		t.Errorf("expected playlist PLsound, got %s", requested)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "yt:aaa" || items[0].ExternalVideoRef != "aaa" || items[0].Title != "In Heaven" {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[0].ThumbnailURL != "https://i.ytimg.com/vi/aaa/hqdefault.jpg" {
		t.Errorf("unexpected thumbnail: %s", items[0].ThumbnailURL)
	}
	if items[1].Title != "bbb" {
		t.Errorf("blank title should fall back to the video id, got %q", items[1].Title)
	}
}

func TestResolvePlaylist_Errors(t *testing.T) {
	resolver := &PlaylistResolver{
		fetch: func(ctx context.Context, id string) ([]PlaylistEntry, error) {
			return nil, errors.New("network down")
		},
	}

	if _, err := resolver.ResolvePlaylist(context.Background(), "https://example.com/watch?v=1"); err == nil {
		t.Error("expected error for reference without playlist id")
	}
	if _, err := resolver.ResolvePlaylist(context.Background(), "PLok"); err == nil {
		t.Error("expected fetch error to propagate")
	}
}
