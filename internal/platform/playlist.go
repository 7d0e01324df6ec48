package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/lynch-universe/internal/model"
)

// Timeout constants
const (
	DefaultParseTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// Item templates
const (
	ItemIDPrefix             = "yt:"
	ThumbnailURLTemplate     = "https://i.ytimg.com/vi/%s/hqdefault.jpg"
	DefaultPlaylistItemLabel = "YouTube"
)

// PlaylistEntry is a single video of a playlist
type PlaylistEntry struct {
	VideoID string
	Title   string
}

type playlistFetcher func(ctx context.Context, playlistID string) ([]PlaylistEntry, error)

// PlaylistResolver expands YouTube playlists into catalog items
type PlaylistResolver struct {
	timeout time.Duration
	fetch   playlistFetcher
}

// NewPlaylistResolver creates a resolver backed by the ytdlp client
func NewPlaylistResolver() *PlaylistResolver {
	return &PlaylistResolver{
		timeout: DefaultParseTimeout,
		fetch:   fetchWithYTDLP,
	}
}

// SetTimeout sets the timeout for a single resolution
func (p *PlaylistResolver) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

func fetchWithYTDLP(ctx context.Context, playlistID string) ([]PlaylistEntry, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}
	entries := make([]PlaylistEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, PlaylistEntry{VideoID: it.VideoID, Title: it.Title})
	}
	return entries, nil
}

// ResolvePlaylist returns the videos of ref (a playlist id or URL) as items
func (p *PlaylistResolver) ResolvePlaylist(ctx context.Context, ref string) ([]model.ContentItem, error) {
	playlistID := ExtractPlaylistID(ref)
	if playlistID == "" {
		return nil, fmt.Errorf("invalid playlist reference: %q", ref)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	entries, err := p.fetch(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	items := make([]model.ContentItem, 0, len(entries))
	for _, e := range entries {
		if e.VideoID == "" {
			continue
		}
		title := strings.TrimSpace(e.Title)
		if title == "" {
			title = e.VideoID
		}
		items = append(items, model.ContentItem{
			ID:               ItemIDPrefix + e.VideoID,
			Title:            title,
			ThumbnailURL:     fmt.Sprintf(ThumbnailURLTemplate, e.VideoID),
			DurationLabel:    DefaultPlaylistItemLabel,
			ExternalVideoRef: e.VideoID,
		})
	}
	return items, nil
}

// ExtractPlaylistID accepts a bare playlist id or a URL carrying list=
func ExtractPlaylistID(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if !strings.Contains(ref, PlaylistParam) {
		if strings.ContainsAny(ref, "/?=& ") {
			return ""
		}
		return ref
	}
	parts := strings.SplitN(ref, PlaylistParam, 2)
	id := parts[1]
	if idx := strings.Index(id, ParamSeparator); idx >= 0 {
		id = id[:idx]
	}
	return id
}
