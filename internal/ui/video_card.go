package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lynch-universe/internal/model"
)

// VideoCard is a catalog tile: thumbnail, title and the favorites toggles
type VideoCard struct {
	widget.BaseWidget

	item         model.ContentItem
	localization *Localization
	inMyList     bool
	liked        bool

	// UI components
	thumbnail     *canvas.Image
	placeholder   *canvas.Rectangle
	titleLabel    *widget.Label
	durationLabel *widget.Label
	openBtn       *widget.Button
	myListBtn     *widget.Button
	likeBtn       *widget.Button

	// Callbacks
	onOpen   func(item model.ContentItem)
	onMyList func(id string)
	onLike   func(id string)
}

// NewVideoCard creates a new card for item
func NewVideoCard(item model.ContentItem, localization *Localization, thumbs *ThumbnailCache) *VideoCard {
	vc := &VideoCard{
		item:         item,
		localization: localization,
	}
	vc.ExtendBaseWidget(vc)
	vc.createUI()
	vc.updateButtons()

	if thumbs != nil {
		if res, ok := thumbs.Get(item.ThumbnailURL); ok {
			vc.setThumbnail(res)
		} else {
			thumbs.Load(item.ThumbnailURL, vc.setThumbnail)
		}
	}
	return vc
}

// SetCallbacks sets the action callbacks
func (vc *VideoCard) SetCallbacks(onOpen func(item model.ContentItem), onMyList, onLike func(id string)) {
	vc.onOpen = onOpen
	vc.onMyList = onMyList
	vc.onLike = onLike
}

// SetMembership updates the toggle states
func (vc *VideoCard) SetMembership(inMyList, liked bool) {
	if vc.inMyList == inMyList && vc.liked == liked {
		return
	}
	vc.inMyList = inMyList
	vc.liked = liked
	vc.updateButtons()
}

// Item returns the card's catalog item
func (vc *VideoCard) Item() model.ContentItem {
	return vc.item
}

func (vc *VideoCard) createUI() {
	vc.placeholder = canvas.NewRectangle(ColorSurface)
	vc.placeholder.CornerRadius = theme.InputRadiusSize()
	vc.placeholder.SetMinSize(fyne.NewSize(CardWidth, CardHeight))

	vc.thumbnail = canvas.NewImageFromResource(nil)
	vc.thumbnail.FillMode = canvas.ImageFillContain
	vc.thumbnail.SetMinSize(fyne.NewSize(CardWidth, CardHeight))
	vc.thumbnail.Hide()

	vc.titleLabel = widget.NewLabel(vc.item.Title)
	vc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	vc.titleLabel.Truncation = fyne.TextTruncateEllipsis

	vc.durationLabel = widget.NewLabel(vc.item.DurationLabel)
	vc.durationLabel.Alignment = fyne.TextAlignTrailing
	vc.durationLabel.Importance = widget.LowImportance

	// Transparent button over the thumbnail opens the item
	vc.openBtn = widget.NewButton("", func() {
		if vc.onOpen != nil {
			vc.onOpen(vc.item)
		}
	})
	vc.openBtn.Importance = widget.LowImportance

	vc.myListBtn = widget.NewButton("", func() {
		if vc.onMyList != nil {
			vc.onMyList(vc.item.ID)
		}
	})
	vc.likeBtn = widget.NewButton("", func() {
		if vc.onLike != nil {
			vc.onLike(vc.item.ID)
		}
	})
}

func (vc *VideoCard) setThumbnail(res fyne.Resource) {
	vc.thumbnail.Resource = res
	vc.thumbnail.Show()
	vc.thumbnail.Refresh()
}

// updateButtons updates toggle captions based on membership
func (vc *VideoCard) updateButtons() {
	if vc.inMyList {
		vc.myListBtn.SetText(IconCheck)
		vc.myListBtn.Importance = widget.HighImportance
	} else {
		vc.myListBtn.SetText(IconAdd)
		vc.myListBtn.Importance = widget.MediumImportance
	}
	vc.myListBtn.Refresh()

	if vc.liked {
		vc.likeBtn.SetText(IconHeart)
		vc.likeBtn.Importance = widget.HighImportance
	} else {
		vc.likeBtn.SetText(IconHeartOff)
		vc.likeBtn.Importance = widget.MediumImportance
	}
	vc.likeBtn.Refresh()
}

// CreateRenderer creates the widget renderer
func (vc *VideoCard) CreateRenderer() fyne.WidgetRenderer {
	return &videoCardRenderer{card: vc}
}

// videoCardRenderer renders the card widget
type videoCardRenderer struct {
	card   *VideoCard
	layout *fyne.Container
}

// Layout arranges the components
func (r *videoCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *videoCardRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	return r.layout.MinSize()
}

// Refresh refreshes the renderer
func (r *videoCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *videoCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *videoCardRenderer) Destroy() {}

// createLayout creates the main layout
func (r *videoCardRenderer) createLayout() {
	vc := r.card

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	poster := container.NewStack(vc.placeholder, vc.thumbnail, vc.openBtn)
	toggles := container.NewHBox(vc.myListBtn, vc.likeBtn)
	footer := container.NewBorder(nil, nil, nil, toggles, vc.durationLabel)

	r.layout = container.NewVBox(
		poster,
		fixedWidth(CardWidth, vc.titleLabel),
		fixedWidth(CardWidth, footer),
	)
}
