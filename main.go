package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"

	"github.com/ytget/lynch-universe/internal/audio"
	"github.com/ytget/lynch-universe/internal/catalog"
	"github.com/ytget/lynch-universe/internal/config"
	"github.com/ytget/lynch-universe/internal/favorites"
	"github.com/ytget/lynch-universe/internal/logging"
	"github.com/ytget/lynch-universe/internal/platform"
	"github.com/ytget/lynch-universe/internal/player"
	"github.com/ytget/lynch-universe/internal/storage"
	"github.com/ytget/lynch-universe/internal/ui"
	"github.com/ytget/lynch-universe/internal/view"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.lynch-universe"
	AppName = "Lynch Universe"

	WindowWidth  = 1280
	WindowHeight = 800

	ShutdownTimeout = 3 * time.Second
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	logging.InitLogger(settings.GetLogLevel(), settings.GetLogFormat())
	slog.Info("Starting", "app", AppName, "version", version)

	// Apply app theme
	myApp.Settings().SetTheme(ui.NewNoirTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	cat, err := loadCatalog(settings)
	if err != nil {
		slog.Error("Failed to load catalog", "error", err)
		return
	}

	// Initialize services
	clock := clockwork.NewRealClock()
	favs := favorites.NewStore(storage.NewPreferencesStore(myApp.Preferences()))
	music := audio.NewController(platform.MPVLoader(settings.GetMPVPath()), settings.GetThemeMusicURL(), settings.GetMusicVolume())
	machine := view.NewMachine(music, clock)

	bridge := player.NewBridge(platform.OpenURL)
	if err := bridge.Start(settings.GetBridgeAddress()); err != nil {
		slog.Error("Failed to start player bridge", "error", err)
		return
	}
	playback := player.NewController(bridge, bridge, music, clock)
	bridge.SetInfoCallback(playback.HandleInfo)
	bridge.SetFullscreenCallback(playback.HandleFullscreenChange)

	// Create and setup UI
	root := ui.NewRootUI(myWindow, ui.Services{
		Settings:  settings,
		Catalog:   cat,
		Favorites: favs,
		Music:     music,
		View:      machine,
		Player:    playback,
	})

	// Fill playlist sections in the background
	expandCtx, cancelExpand := context.WithCancel(context.Background())
	go func() {
		root.OnCatalogExpanded(cat.Expand(expandCtx, platform.NewPlaylistResolver()))
	}()

	myWindow.SetOnClosed(func() {
		cancelExpand()
		playback.Close()
		machine.Close()
		music.Close()

		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := bridge.Shutdown(ctx); err != nil {
			slog.Warn("Player bridge shutdown failed", "error", err)
		}
	})

	// Show and run
	myWindow.ShowAndRun()
}

// loadCatalog prefers the configured file and falls back to the built-in one
func loadCatalog(settings *config.Settings) (*catalog.Catalog, error) {
	path := settings.GetCatalogPath()
	if path == "" {
		return catalog.LoadDefault()
	}
	cat, err := catalog.Load(path)
	if err != nil {
		slog.Warn("Custom catalog unavailable, using built-in", "path", path, "error", err)
		return catalog.LoadDefault()
	}
	return cat, nil
}
