package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyWhoIsWatching    = "who_is_watching"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyProfiles         = "profiles"
	KeyLanguage         = "language"
	KeyLogLevel         = "log_level"
	KeyThemeMusic       = "theme_music"
	KeyMusicVolume      = "music_volume"
	KeyMPVPath          = "mpv_path"
	KeyCatalogPath      = "catalog_path"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyRestartRequired  = "restart_required"
	KeyPlay             = "play"
	KeyPause            = "pause"
	KeyReplay           = "replay"
	KeyMoreInfo         = "more_info"
	KeyMyList           = "my_list"
	KeyInMyList         = "in_my_list"
	KeyLike             = "like"
	KeyLiked            = "liked"
	KeyFilterAll        = "filter_all"
	KeyFilterMyList     = "filter_my_list"
	KeyFilterFavorites  = "filter_favorites"
	KeyMusicOn          = "music_on"
	KeyMusicOff         = "music_off"
	KeyMute             = "mute"
	KeyUnmute           = "unmute"
	KeyFullscreen       = "fullscreen"
	KeyVolume           = "volume"
	KeyNoVideo          = "no_video"
	KeyNothingHere      = "nothing_here"
	KeyCatalogExpanded  = "catalog_expanded"
	KeyErrorPlayback    = "error_playback"
	KeyErrorMusic       = "error_music"
	KeyProfileLocked    = "profile_locked"
	KeyContinueWatching = "continue_watching"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"es": "Español",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Lynch Universe",
		KeyWhoIsWatching:    "Who's watching?",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyProfiles:         "Switch Profile",
		KeyLanguage:         "Language",
		KeyLogLevel:         "Log Level",
		KeyThemeMusic:       "Theme Music URL",
		KeyMusicVolume:      "Music Volume",
		KeyMPVPath:          "mpv Executable",
		KeyCatalogPath:      "Catalog File",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyRestartRequired:  "Some changes apply after restart",
		KeyPlay:             "Play",
		KeyPause:            "Pause",
		KeyReplay:           "Replay",
		KeyMoreInfo:         "More Info",
		KeyMyList:           "My List",
		KeyInMyList:         "In My List",
		KeyLike:             "Like",
		KeyLiked:            "Liked",
		KeyFilterAll:        "All",
		KeyFilterMyList:     "My List",
		KeyFilterFavorites:  "Favorites",
		KeyMusicOn:          "Music On",
		KeyMusicOff:         "Music Off",
		KeyMute:             "Mute",
		KeyUnmute:           "Unmute",
		KeyFullscreen:       "Fullscreen",
		KeyVolume:           "Volume",
		KeyNoVideo:          "Video not available",
		KeyNothingHere:      "Nothing here yet",
		KeyCatalogExpanded:  "New titles added to the catalog",
		KeyErrorPlayback:    "Could not start playback",
		KeyErrorMusic:       "Theme music unavailable",
		KeyProfileLocked:    "This profile is not available",
		KeyContinueWatching: "Continue Watching",
	}

	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle:         "Lynch Universe",
		KeyWhoIsWatching:    "¿Quién está viendo?",
		KeySettings:         "Configuración",
		KeyFile:             "Archivo",
		KeyProfiles:         "Cambiar perfil",
		KeyLanguage:         "Idioma",
		KeyLogLevel:         "Nivel de registro",
		KeyThemeMusic:       "URL de la música",
		KeyMusicVolume:      "Volumen de la música",
		KeyMPVPath:          "Ejecutable de mpv",
		KeyCatalogPath:      "Archivo del catálogo",
		KeySave:             "Guardar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "¡Configuración guardada!",
		KeyRestartRequired:  "Algunos cambios se aplican al reiniciar",
		KeyPlay:             "Reproducir",
		KeyPause:            "Pausa",
		KeyReplay:           "Repetir",
		KeyMoreInfo:         "Más información",
		KeyMyList:           "Mi lista",
		KeyInMyList:         "En mi lista",
		KeyLike:             "Me gusta",
		KeyLiked:            "Te gusta",
		KeyFilterAll:        "Todo",
		KeyFilterMyList:     "Mi lista",
		KeyFilterFavorites:  "Favoritos",
		KeyMusicOn:          "Música activada",
		KeyMusicOff:         "Música desactivada",
		KeyMute:             "Silenciar",
		KeyUnmute:           "Activar sonido",
		KeyFullscreen:       "Pantalla completa",
		KeyVolume:           "Volumen",
		KeyNoVideo:          "Video no disponible",
		KeyNothingHere:      "Todavía no hay nada aquí",
		KeyCatalogExpanded:  "Nuevos títulos en el catálogo",
		KeyErrorPlayback:    "No se pudo iniciar la reproducción",
		KeyErrorMusic:       "Música no disponible",
		KeyProfileLocked:    "Este perfil no está disponible",
		KeyContinueWatching: "Seguir viendo",
	}
}
