package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lynch-universe/internal/audio"
	"github.com/ytget/lynch-universe/internal/catalog"
	"github.com/ytget/lynch-universe/internal/model"
)

// BrowseActions are the callbacks the browse screen forwards
type BrowseActions struct {
	Cards         CardActions
	Play          func(item model.ContentItem)
	FilterChanged func(filter string)
	Logo          func()
	ToggleMusic   func()
	ToggleMute    func()
	ShowSettings  func()
}

// BrowseScreen renders the navbar, the hero and the content rows
type BrowseScreen struct {
	localization *Localization
	thumbs       *ThumbnailCache
	actions      BrowseActions

	// filter display names to filter keys
	filterKeys map[string]string
	filter     string

	// Navbar
	logoBtn     *widget.Button
	filterSel   *widget.Select
	musicBtn    *widget.Button
	muteBtn     *widget.Button
	settingsBtn *widget.Button

	// Hero
	hero        model.ContentItem
	heroImage   *canvas.Image
	heroTitle   *canvas.Text
	heroDesc    *widget.Label
	heroTags    *widget.Label
	heroPlayBtn *widget.Button
	heroInfoBtn *widget.Button
	heroListBtn *widget.Button

	rowsBox *fyne.Container
	rows    []*ContentRow
	empty   *widget.Label
	content fyne.CanvasObject
}

// NewBrowseScreen creates the browse screen
func NewBrowseScreen(localization *Localization, thumbs *ThumbnailCache, actions BrowseActions) *BrowseScreen {
	bs := &BrowseScreen{
		localization: localization,
		thumbs:       thumbs,
		actions:      actions,
		filterKeys:   make(map[string]string),
		filter:       catalog.FilterAll,
	}
	bs.createUI()
	return bs
}

// Content returns the screen's root object
func (bs *BrowseScreen) Content() fyne.CanvasObject {
	return bs.content
}

func (bs *BrowseScreen) createUI() {
	bs.logoBtn = widget.NewButton(BrandName, func() {
		if bs.actions.Logo != nil {
			bs.actions.Logo()
		}
	})
	bs.logoBtn.Importance = widget.DangerImportance

	bs.filterSel = widget.NewSelect(nil, func(selected string) {
		key, ok := bs.filterKeys[selected]
		if !ok || key == bs.filter {
			return
		}
		bs.filter = key
		if bs.actions.FilterChanged != nil {
			bs.actions.FilterChanged(key)
		}
	})

	bs.musicBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		if bs.actions.ToggleMusic != nil {
			bs.actions.ToggleMusic()
		}
	})
	bs.muteBtn = widget.NewButtonWithIcon("", theme.VolumeUpIcon(), func() {
		if bs.actions.ToggleMute != nil {
			bs.actions.ToggleMute()
		}
	})
	bs.settingsBtn = widget.NewButton(IconSettings, func() {
		if bs.actions.ShowSettings != nil {
			bs.actions.ShowSettings()
		}
	})
	bs.settingsBtn.Importance = widget.LowImportance

	navbar := container.NewBorder(nil, nil,
		container.NewHBox(bs.logoBtn, bs.filterSel),
		container.NewHBox(bs.musicBtn, bs.muteBtn, bs.settingsBtn),
	)

	bs.rowsBox = container.NewVBox()
	bs.empty = widget.NewLabel(bs.localization.GetText(KeyNothingHere))
	bs.empty.Alignment = fyne.TextAlignCenter
	bs.empty.Hide()

	body := container.NewVScroll(container.NewVBox(bs.createHero(), bs.empty, bs.rowsBox))
	bs.content = container.NewBorder(
		container.NewVBox(navbar, widget.NewSeparator()),
		nil, nil, nil,
		body,
	)
}

func (bs *BrowseScreen) createHero() fyne.CanvasObject {
	bs.heroImage = canvas.NewImageFromResource(nil)
	bs.heroImage.FillMode = canvas.ImageFillContain
	bs.heroImage.SetMinSize(fyne.NewSize(0, HeroHeight))

	scrim := canvas.NewLinearGradient(color.Transparent, ColorBackground, 0)

	bs.heroTitle = canvas.NewText("", color.White)
	bs.heroTitle.TextSize = HeroTitleSize
	bs.heroTitle.TextStyle = fyne.TextStyle{Bold: true}

	bs.heroDesc = widget.NewLabel("")
	bs.heroDesc.Wrapping = fyne.TextWrapWord

	bs.heroTags = widget.NewLabel("")
	bs.heroTags.Importance = widget.LowImportance

	bs.heroPlayBtn = widget.NewButtonWithIcon(bs.localization.GetText(KeyPlay), theme.MediaPlayIcon(), func() {
		if bs.actions.Play != nil && bs.hero.ID != "" {
			bs.actions.Play(bs.hero)
		}
	})
	bs.heroPlayBtn.Importance = widget.HighImportance

	bs.heroInfoBtn = widget.NewButtonWithIcon(bs.localization.GetText(KeyMoreInfo), theme.InfoIcon(), func() {
		if bs.actions.Cards.Open != nil && bs.hero.ID != "" {
			bs.actions.Cards.Open(bs.hero)
		}
	})

	bs.heroListBtn = widget.NewButton("", func() {
		if bs.actions.Cards.MyList != nil && bs.hero.ID != "" {
			bs.actions.Cards.MyList(bs.hero.ID)
		}
	})

	info := container.NewVBox(
		bs.heroTitle,
		bs.heroTags,
		bs.heroDesc,
		container.NewHBox(bs.heroPlayBtn, bs.heroInfoBtn, bs.heroListBtn),
	)
	return container.NewStack(bs.heroImage, scrim, container.NewBorder(nil, info, nil, nil))
}

// SetFilters fills the category selector; names are filter keys
func (bs *BrowseScreen) SetFilters(filters []string) {
	bs.filterKeys = make(map[string]string, len(filters))
	options := make([]string, 0, len(filters))
	for _, f := range filters {
		label := bs.filterLabel(f)
		bs.filterKeys[label] = f
		options = append(options, label)
	}
	bs.filterSel.Options = options
	bs.filterSel.SetSelected(bs.filterLabel(bs.filter))
	bs.filterSel.Refresh()
}

func (bs *BrowseScreen) filterLabel(filter string) string {
	switch filter {
	case catalog.FilterAll:
		return bs.localization.GetText(KeyFilterAll)
	case catalog.FilterMyList:
		return bs.localization.GetText(KeyFilterMyList)
	case catalog.FilterFavorites:
		return bs.localization.GetText(KeyFilterFavorites)
	}
	return filter
}

// Filter returns the active filter key
func (bs *BrowseScreen) Filter() string {
	return bs.filter
}

// Render replaces the hero and the rows with v
func (bs *BrowseScreen) Render(v catalog.View) {
	bs.filter = v.Filter
	bs.filterSel.SetSelected(bs.filterLabel(v.Filter))

	bs.hero = v.Hero
	bs.heroTitle.Text = v.Hero.Title
	bs.heroTitle.Refresh()
	bs.heroDesc.SetText(v.Hero.Description)
	bs.heroTags.SetText(v.Hero.TagLine())
	if v.Hero.HasVideo() {
		bs.heroPlayBtn.Enable()
	} else {
		bs.heroPlayBtn.Disable()
	}
	bs.heroImage.Resource = nil
	bs.heroImage.Refresh()
	if bs.thumbs != nil && v.Hero.ThumbnailURL != "" {
		heroID := v.Hero.ID
		bs.thumbs.Load(v.Hero.ThumbnailURL, func(res fyne.Resource) {
			if bs.hero.ID != heroID {
				return
			}
			bs.heroImage.Resource = res
			bs.heroImage.Refresh()
		})
	}

	bs.rows = bs.rows[:0]
	bs.rowsBox.RemoveAll()
	for _, row := range v.Rows {
		row.Title = bs.filterLabel(row.Title)
		cr := NewContentRow(row, bs.localization, bs.thumbs, bs.actions.Cards)
		bs.rows = append(bs.rows, cr)
		bs.rowsBox.Add(cr.Container())
	}
	if len(v.Rows) == 0 {
		bs.empty.Show()
	} else {
		bs.empty.Hide()
	}
	bs.RefreshMembership()
}

// RefreshMembership re-reads favorites for the hero and every card
func (bs *BrowseScreen) RefreshMembership() {
	if call(bs.actions.Cards.InMyList, bs.hero.ID) {
		bs.heroListBtn.SetText(IconCheck + " " + bs.localization.GetText(KeyInMyList))
	} else {
		bs.heroListBtn.SetText(IconAdd + " " + bs.localization.GetText(KeyMyList))
	}
	for _, row := range bs.rows {
		row.RefreshMembership(bs.actions.Cards.InMyList, bs.actions.Cards.IsLiked)
	}
}

// SetMusicState mirrors the background music in the navbar controls
func (bs *BrowseScreen) SetMusicState(state audio.State) {
	if state.IsPlaying {
		bs.musicBtn.SetIcon(theme.MediaPauseIcon())
	} else {
		bs.musicBtn.SetIcon(theme.MediaPlayIcon())
	}
	if state.IsMuted {
		bs.muteBtn.SetIcon(theme.VolumeMuteIcon())
	} else {
		bs.muteBtn.SetIcon(theme.VolumeUpIcon())
	}
}

// RefreshTexts re-reads localized captions
func (bs *BrowseScreen) RefreshTexts() {
	bs.heroPlayBtn.SetText(bs.localization.GetText(KeyPlay))
	bs.heroInfoBtn.SetText(bs.localization.GetText(KeyMoreInfo))
	bs.empty.SetText(bs.localization.GetText(KeyNothingHere))
	bs.RefreshMembership()
}

// Rows returns the rendered rows
func (bs *BrowseScreen) Rows() []*ContentRow {
	return bs.rows
}
