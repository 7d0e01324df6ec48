package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lynch-universe/internal/config"
)

// Settings dialog size
const (
	SettingsDialogWidth  = 520
	SettingsDialogHeight = 460
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// language display names to codes
	languageCodes map[string]string

	// UI components
	languageSelect *widget.Select
	logLevelSelect *widget.Select
	musicURLEntry  *widget.Entry
	volumeSlider   *widget.Slider
	mpvPathEntry   *widget.Entry
	catalogEntry   *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows a settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Language selection, sorted by display name
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	sd.musicURLEntry = widget.NewEntry()
	sd.musicURLEntry.SetPlaceHolder(config.DefaultThemeMusicURL)

	sd.volumeSlider = widget.NewSlider(0.05, 1)
	sd.volumeSlider.Step = 0.05

	sd.mpvPathEntry = widget.NewEntry()
	sd.mpvPathEntry.SetPlaceHolder(config.DefaultMPVPath)
	browseMPVBtn := widget.NewButton("...", func() {
		sd.browseFile(sd.mpvPathEntry)
	})

	sd.catalogEntry = widget.NewEntry()
	sd.catalogEntry.SetPlaceHolder("catalog.yaml")
	browseCatalogBtn := widget.NewButton("...", func() {
		sd.browseFile(sd.catalogEntry)
	})

	// Create form
	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(l.GetText(KeyLogLevel)+":"),
		sd.logLevelSelect,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyThemeMusic)+":"),
		sd.musicURLEntry,

		widget.NewLabel(l.GetText(KeyMusicVolume)+":"),
		sd.volumeSlider,

		widget.NewLabel(l.GetText(KeyMPVPath)+":"),
		container.NewBorder(nil, nil, nil, browseMPVBtn, sd.mpvPathEntry),

		widget.NewLabel(l.GetText(KeyCatalogPath)+":"),
		container.NewBorder(nil, nil, nil, browseCatalogBtn, sd.catalogEntry),

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyRestartRequired)),
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
	sd.musicURLEntry.SetText(sd.settings.GetThemeMusicURL())
	sd.volumeSlider.SetValue(sd.settings.GetMusicVolume())
	sd.mpvPathEntry.SetText(sd.settings.GetMPVPath())
	sd.catalogEntry.SetText(sd.settings.GetCatalogPath())
}

// browseFile fills entry with a picked file path
func (sd *SettingsDialog) browseFile(entry *widget.Entry) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		entry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the form values to settings
func (sd *SettingsDialog) apply() {
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}
	sd.settings.SetThemeMusicURL(sd.musicURLEntry.Text)
	sd.settings.SetMusicVolume(sd.volumeSlider.Value)
	sd.settings.SetMPVPath(sd.mpvPathEntry.Text)
	sd.settings.SetCatalogPath(sd.catalogEntry.Text)
}
