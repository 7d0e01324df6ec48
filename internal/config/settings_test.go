package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("es")
	if lang := settings.GetLanguage(); lang != "es" {
		t.Errorf("Expected language es, got %s", lang)
	}

	options := settings.GetLanguageOptions()
	for _, key := range []string{"system", "en", "es"} {
		if _, ok := options[key]; !ok {
			t.Errorf("Language option %s missing", key)
		}
	}
}

func TestLogSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLogLevel() != DefaultLogLevel {
		t.Errorf("Expected default log level %s", DefaultLogLevel)
	}
	settings.SetLogLevel("debug")
	if settings.GetLogLevel() != "debug" {
		t.Error("Log level should be debug")
	}
	settings.SetLogLevel("chatty")
	if settings.GetLogLevel() != DefaultLogLevel {
		t.Error("Unknown log level should fall back to default")
	}

	if settings.GetLogFormat() != DefaultLogFormat {
		t.Errorf("Expected default log format %s", DefaultLogFormat)
	}
	settings.SetLogFormat("json")
	if settings.GetLogFormat() != "json" {
		t.Error("Log format should be json")
	}
	settings.SetLogFormat("xml")
	if settings.GetLogFormat() != DefaultLogFormat {
		t.Error("Unknown log format should fall back to text")
	}
}

func TestMusicVolume(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if v := settings.GetMusicVolume(); v != DefaultMusicVolume {
		t.Errorf("Expected default music volume %v, got %v", DefaultMusicVolume, v)
	}

	settings.SetMusicVolume(0.7)
	if v := settings.GetMusicVolume(); v != 0.7 {
		t.Errorf("Expected music volume 0.7, got %v", v)
	}

	settings.SetMusicVolume(3)
	if v := settings.GetMusicVolume(); v != 1 {
		t.Errorf("Music volume should be clamped to 1, got %v", v)
	}

	settings.SetMusicVolume(0)
	if v := settings.GetMusicVolume(); v <= 0 {
		t.Errorf("Music volume should stay above zero, got %v", v)
	}
}

func TestStringSettingsRestoreDefaults(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetThemeMusicURL() != DefaultThemeMusicURL {
		t.Error("Theme music URL should default")
	}
	settings.SetThemeMusicURL("/tmp/theme.mp3")
	if settings.GetThemeMusicURL() != "/tmp/theme.mp3" {
		t.Error("Theme music URL should be stored")
	}
	settings.SetThemeMusicURL("")
	if settings.GetThemeMusicURL() != DefaultThemeMusicURL {
		t.Error("Empty theme music URL should restore default")
	}

	settings.SetMPVPath("")
	if settings.GetMPVPath() != DefaultMPVPath {
		t.Error("Empty mpv path should restore default")
	}

	settings.SetBridgeAddress("127.0.0.1:8765")
	if settings.GetBridgeAddress() != "127.0.0.1:8765" {
		t.Error("Bridge address should be stored")
	}
}

func TestCatalogPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetCatalogPath() != "" {
		t.Error("Catalog path should be empty by default")
	}
	settings.SetCatalogPath("/data/catalog.yaml")
	if settings.GetCatalogPath() != "/data/catalog.yaml" {
		t.Error("Catalog path should be stored")
	}
}
