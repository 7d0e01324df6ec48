package ui

import (
	"log/slog"
	"slices"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lynch-universe/internal/audio"
	"github.com/ytget/lynch-universe/internal/catalog"
	"github.com/ytget/lynch-universe/internal/config"
	"github.com/ytget/lynch-universe/internal/favorites"
	"github.com/ytget/lynch-universe/internal/model"
	"github.com/ytget/lynch-universe/internal/player"
	"github.com/ytget/lynch-universe/internal/view"
)

// Notification constants
const (
	RootNotificationAutoHide = 5 * time.Second
)

// Services are the application components the UI drives
type Services struct {
	Settings  *config.Settings
	Catalog   *catalog.Catalog
	Favorites *favorites.Store
	Music     *audio.Controller
	View      *view.Machine
	Player    *player.Controller

	// Thumbnails is optional; nil fetches over HTTP
	Thumbnails *ThumbnailCache
}

// RootUI owns the main window and switches screens with the view state
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	thumbs       *ThumbnailCache

	catalog   *catalog.Catalog
	favorites *favorites.Store
	music     *audio.Controller
	machine   *view.Machine
	playback  *player.Controller

	profiles *ProfileScreen
	splash   *SplashScreen
	browse   *BrowseScreen
	modal    *VideoModal

	screen      *fyne.Container
	activeState model.ViewState
	rendered    catalog.View

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationTimer     *time.Timer
}

// NewRootUI creates the main UI
func NewRootUI(window fyne.Window, svc Services) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(svc.Settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     svc.Settings,
		localization: localization,
		thumbs:       svc.Thumbnails,
		catalog:      svc.Catalog,
		favorites:    svc.Favorites,
		music:        svc.Music,
		machine:      svc.View,
		playback:     svc.Player,
	}

	if ui.thumbs == nil {
		ui.thumbs = NewThumbnailCache()
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Set up callbacks for service updates
	ui.machine.SetUpdateCallback(func(model.ViewState) {
		fyne.Do(ui.onViewStateChange)
	})
	ui.favorites.SetUpdateCallback(func() {
		fyne.Do(ui.onFavoritesChange)
	})
	ui.music.SetUpdateCallback(func(audio.State) {
		fyne.Do(ui.onMusicChange)
	})
	ui.playback.SetUpdateCallback(func(player.Snapshot) {
		fyne.Do(ui.onPlaybackChange)
	})

	ui.onViewStateChange()
	ui.onMusicChange()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	ui.profiles = NewProfileScreen(ui.localization, ui.onSelectProfile)
	ui.splash = NewSplashScreen()

	cards := CardActions{
		Open:     ui.onOpenItem,
		MyList:   func(id string) { ui.favorites.ToggleMyList(id) },
		Like:     func(id string) { ui.favorites.ToggleLike(id) },
		InMyList: ui.favorites.IsInMyList,
		IsLiked:  ui.favorites.IsLiked,
	}
	ui.browse = NewBrowseScreen(ui.localization, ui.thumbs, BrowseActions{
		Cards:         cards,
		Play:          ui.onPlayItem,
		FilterChanged: func(string) { ui.renderBrowse() },
		Logo:          ui.onReturnToProfiles,
		ToggleMusic:   func() { go ui.music.TogglePlay() },
		ToggleMute:    func() { go ui.music.ToggleMute() },
		ShowSettings:  ui.onShowSettings,
	})
	ui.browse.SetFilters(ui.catalog.Filters())

	ui.modal = NewVideoModal(ui.window.Canvas(), ui.localization, ui.thumbs, ui.playback, ui.favorites)

	// Create notification panel (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignCenter
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.screen = container.NewStack()
	content := container.NewBorder(
		ui.notificationContainer, // top
		nil,                      // bottom
		nil,                      // left
		nil,                      // right
		ui.screen,                // center - current screen
	)
	ui.window.SetContent(content)
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)

	slog.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	profilesItem := fyne.NewMenuItem(ui.localization.GetText(KeyProfiles), ui.onReturnToProfiles)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), profilesItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.profiles.RefreshTexts()
	ui.browse.RefreshTexts()
	ui.browse.SetFilters(ui.catalog.Filters())
	ui.modal.RefreshTexts()
	if ui.activeState == model.ViewStateBrowsing {
		ui.renderBrowse()
	}
}

// onViewStateChange swaps the visible screen
func (ui *RootUI) onViewStateChange() {
	state := ui.machine.State()
	if state == ui.activeState {
		return
	}
	ui.activeState = state

	var content fyne.CanvasObject
	switch state {
	case model.ViewStateIntro:
		content = ui.splash.Content()
		ui.splash.Start()
	case model.ViewStateBrowsing:
		ui.splash.Stop()
		ui.renderBrowse()
		content = ui.browse.Content()
	default:
		ui.splash.Stop()
		content = ui.profiles.Content()
	}

	ui.screen.Objects = []fyne.CanvasObject{content}
	ui.screen.Refresh()
	slog.Debug("Screen changed", "state", state.String())
}

// renderBrowse derives the browse view for the active filter
func (ui *RootUI) renderBrowse() {
	v := ui.catalog.Browse(ui.browse.Filter(), ui.favorites)
	ui.rendered = v
	ui.browse.Render(v)
}

// onFavoritesChange re-renders rows when their membership changed and
// otherwise only refreshes the toggles
func (ui *RootUI) onFavoritesChange() {
	ui.modal.RefreshMembership()
	if ui.activeState != model.ViewStateBrowsing {
		return
	}
	v := ui.catalog.Browse(ui.browse.Filter(), ui.favorites)
	if sameLayout(ui.rendered, v) {
		ui.browse.RefreshMembership()
		return
	}
	ui.rendered = v
	ui.browse.Render(v)
}

// sameLayout reports whether two views show the same hero and row items
func sameLayout(a, b catalog.View) bool {
	if a.Filter != b.Filter || a.Hero.ID != b.Hero.ID || len(a.Rows) != len(b.Rows) {
		return false
	}
	for i := range a.Rows {
		if a.Rows[i].Title != b.Rows[i].Title || len(a.Rows[i].Items) != len(b.Rows[i].Items) {
			return false
		}
		for j := range a.Rows[i].Items {
			if a.Rows[i].Items[j].ID != b.Rows[i].Items[j].ID {
				return false
			}
		}
	}
	return true
}

func (ui *RootUI) onMusicChange() {
	ui.browse.SetMusicState(ui.music.State())
}

func (ui *RootUI) onPlaybackChange() {
	ui.modal.Update(ui.playback.Snapshot())
}

// onSelectProfile hands the click to the machine off the UI thread, since
// starting the music may spawn a process. Repeated clicks on the active
// profile are dropped by the machine without a message.
func (ui *RootUI) onSelectProfile(id string) {
	if !view.IsActiveProfile(id) {
		ui.showNotification(ui.localization.GetText(KeyProfileLocked))
		return
	}
	go ui.machine.SelectProfile(id)
}

func (ui *RootUI) onReturnToProfiles() {
	go ui.machine.ReturnToProfiles()
}

// onOpenItem opens the detail modal and a new playback session
func (ui *RootUI) onOpenItem(item model.ContentItem) {
	ui.playback.Open(item)
	ui.modal.Open(item)
}

// onPlayItem opens item and starts playback right away
func (ui *RootUI) onPlayItem(item model.ContentItem) {
	ui.onOpenItem(item)
	if item.HasVideo() {
		ui.playback.Play()
	}
}

// onTypedKey handles window-level keys
func (ui *RootUI) onTypedKey(ev *fyne.KeyEvent) {
	if ev.Name != fyne.KeyEscape {
		return
	}
	if ui.playback.Snapshot().Active {
		ui.playback.HandleEscape()
	}
}

// OnCatalogExpanded refreshes the browse screen after playlist sections
// added items
func (ui *RootUI) OnCatalogExpanded(added int) {
	if added <= 0 {
		return
	}
	fyne.Do(func() {
		ui.browse.SetFilters(ui.catalog.Filters())
		if ui.activeState == model.ViewStateBrowsing {
			ui.renderBrowse()
		}
	})
	ui.showNotification(ui.localization.GetText(KeyCatalogExpanded))
}

// showNotification displays a message in the notification panel and hides it
// after a while
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()

		if ui.notificationTimer != nil {
			ui.notificationTimer.Stop()
		}
		ui.notificationTimer = time.AfterFunc(RootNotificationAutoHide, ui.hideNotification)
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}
