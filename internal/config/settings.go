package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage      = "app_language"
	KeyLogLevel      = "log_level"
	KeyLogFormat     = "log_format"
	KeyThemeMusicURL = "theme_music_url"
	KeyMusicVolume   = "music_volume"
	KeyMPVPath       = "mpv_path"
	KeyBridgeAddress = "bridge_address"
	KeyCatalogPath   = "catalog_path"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultThemeMusicURL = "https://archive.org/download/tvtunes_657/Twin%20Peaks.mp3"
	DefaultMusicVolume   = 0.4
	DefaultMPVPath       = "mpv"
	DefaultBridgeAddress = "127.0.0.1:0"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

func (s *Settings) stringWithDefault(key, def string) string {
	value := s.app.Preferences().String(key)
	if value == "" {
		s.app.Preferences().SetString(key, def)
		return def
	}
	return value
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.stringWithDefault(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"es":     "Español",
	}
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	return s.stringWithDefault(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the log level; unknown values fall back to the default
func (s *Settings) SetLogLevel(level string) {
	switch level {
	case "debug", "info", "warn", "error":
	default:
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLogLevelOptions returns available log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}

// GetLogFormat returns "text" or "json"
func (s *Settings) GetLogFormat() string {
	return s.stringWithDefault(KeyLogFormat, DefaultLogFormat)
}

// SetLogFormat sets the log format
func (s *Settings) SetLogFormat(format string) {
	if format != "json" {
		format = DefaultLogFormat
	}
	s.app.Preferences().SetString(KeyLogFormat, format)
}

// GetThemeMusicURL returns the background theme track location
func (s *Settings) GetThemeMusicURL() string {
	return s.stringWithDefault(KeyThemeMusicURL, DefaultThemeMusicURL)
}

// SetThemeMusicURL sets the background theme track location
func (s *Settings) SetThemeMusicURL(url string) {
	if url == "" {
		url = DefaultThemeMusicURL
	}
	s.app.Preferences().SetString(KeyThemeMusicURL, url)
}

// GetMusicVolume returns the background music level in 0..1
func (s *Settings) GetMusicVolume() float64 {
	value := s.app.Preferences().FloatWithFallback(KeyMusicVolume, -1)
	if value <= 0 || value > 1 {
		s.SetMusicVolume(DefaultMusicVolume)
		return DefaultMusicVolume
	}
	return value
}

// SetMusicVolume sets the background music level. Zero is reserved for mute,
// so values are clamped to (0, 1].
func (s *Settings) SetMusicVolume(volume float64) {
	if volume <= 0 {
		volume = 0.05
	}
	if volume > 1 {
		volume = 1
	}
	s.app.Preferences().SetFloat(KeyMusicVolume, volume)
}

// GetMPVPath returns the mpv binary used for background audio
func (s *Settings) GetMPVPath() string {
	return s.stringWithDefault(KeyMPVPath, DefaultMPVPath)
}

// SetMPVPath sets the mpv binary path
func (s *Settings) SetMPVPath(path string) {
	if path == "" {
		path = DefaultMPVPath
	}
	s.app.Preferences().SetString(KeyMPVPath, path)
}

// GetBridgeAddress returns the loopback listen address of the player bridge
func (s *Settings) GetBridgeAddress() string {
	return s.stringWithDefault(KeyBridgeAddress, DefaultBridgeAddress)
}

// SetBridgeAddress sets the player bridge listen address
func (s *Settings) SetBridgeAddress(addr string) {
	if addr == "" {
		addr = DefaultBridgeAddress
	}
	s.app.Preferences().SetString(KeyBridgeAddress, addr)
}

// GetCatalogPath returns a catalog file overriding the built-in one, or ""
func (s *Settings) GetCatalogPath() string {
	return s.app.Preferences().String(KeyCatalogPath)
}

// SetCatalogPath sets the catalog override; "" restores the built-in catalog
func (s *Settings) SetCatalogPath(path string) {
	s.app.Preferences().SetString(KeyCatalogPath, path)
}
