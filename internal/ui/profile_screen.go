package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lynch-universe/internal/view"
)

// Profile tile colors, one per gate entry
var profileColors = []color.Color{
	ColorBrandRed,
	color.NRGBA{R: 30, G: 90, B: 200, A: 255},
	color.NRGBA{R: 60, G: 60, B: 60, A: 255},
}

// ProfileScreen is the "who's watching" gate
type ProfileScreen struct {
	localization *Localization
	onSelect     func(id string)

	titleText *canvas.Text
	content   fyne.CanvasObject
}

// NewProfileScreen creates the gate; onSelect receives the picked profile id
func NewProfileScreen(localization *Localization, onSelect func(id string)) *ProfileScreen {
	ps := &ProfileScreen{
		localization: localization,
		onSelect:     onSelect,
	}
	ps.createUI()
	return ps
}

// Content returns the screen's root object
func (ps *ProfileScreen) Content() fyne.CanvasObject {
	return ps.content
}

// RefreshTexts re-reads localized captions
func (ps *ProfileScreen) RefreshTexts() {
	ps.titleText.Text = ps.localization.GetText(KeyWhoIsWatching)
	ps.titleText.Refresh()
}

func (ps *ProfileScreen) createUI() {
	ps.titleText = canvas.NewText(ps.localization.GetText(KeyWhoIsWatching), color.White)
	ps.titleText.TextSize = ProfileTitleSize
	ps.titleText.Alignment = fyne.TextAlignCenter

	tiles := container.NewHBox()
	for i, p := range view.Profiles() {
		tiles.Add(ps.createTile(p, profileColors[i%len(profileColors)]))
	}

	background := canvas.NewRectangle(ColorBackground)
	ps.content = container.NewStack(
		background,
		container.NewCenter(container.NewVBox(ps.titleText, tiles)),
	)
}

func (ps *ProfileScreen) createTile(p view.Profile, fill color.Color) fyne.CanvasObject {
	square := canvas.NewRectangle(fill)
	square.CornerRadius = 6
	square.SetMinSize(fyne.NewSize(ProfileTileSize, ProfileTileSize))

	initial := canvas.NewText(string([]rune(p.Name)[:1]), color.White)
	initial.TextSize = ProfileTileSize / 2
	initial.TextStyle = fyne.TextStyle{Bold: true}
	initial.Alignment = fyne.TextAlignCenter

	id := p.ID
	tap := widget.NewButton("", func() {
		if ps.onSelect != nil {
			ps.onSelect(id)
		}
	})
	tap.Importance = widget.LowImportance

	name := widget.NewLabel(p.Name)
	name.Alignment = fyne.TextAlignCenter
	if !p.Active {
		name.Importance = widget.LowImportance
	}

	return container.NewPadded(container.NewVBox(
		container.NewStack(square, container.NewCenter(initial), tap),
		name,
	))
}
