package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lynch-universe/internal/catalog"
	"github.com/ytget/lynch-universe/internal/model"
)

// ContentRow is a titled, horizontally scrolling list of cards
type ContentRow struct {
	row   catalog.Row
	cards []*VideoCard

	container *fyne.Container
}

// CardActions bundles the callbacks every card of a row shares
type CardActions struct {
	Open     func(item model.ContentItem)
	MyList   func(id string)
	Like     func(id string)
	InMyList func(id string) bool
	IsLiked  func(id string) bool
}

// NewContentRow builds the row widgets for row
func NewContentRow(row catalog.Row, localization *Localization, thumbs *ThumbnailCache, actions CardActions) *ContentRow {
	cr := &ContentRow{row: row}

	title := widget.NewLabel(row.Title)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.SizeName = theme.SizeNameSubHeadingText

	if len(row.Items) == 0 {
		empty := widget.NewLabel(localization.GetText(KeyNothingHere))
		empty.Importance = widget.LowImportance
		cr.container = container.NewVBox(title, empty)
		return cr
	}

	cards := container.NewHBox()
	for _, item := range row.Items {
		card := NewVideoCard(item, localization, thumbs)
		card.SetCallbacks(actions.Open, actions.MyList, actions.Like)
		cr.cards = append(cr.cards, card)
		cards.Add(card)
	}
	cr.RefreshMembership(actions.InMyList, actions.IsLiked)

	scroll := container.NewHScroll(cards)
	scroll.SetMinSize(fyne.NewSize(CardWidth, cards.MinSize().Height))
	cr.container = container.NewVBox(title, scroll)
	return cr
}

// Container returns the row's root object
func (cr *ContentRow) Container() fyne.CanvasObject {
	return cr.container
}

// Cards returns the row's cards in order
func (cr *ContentRow) Cards() []*VideoCard {
	return cr.cards
}

// RefreshMembership re-reads the favorites state of every card
func (cr *ContentRow) RefreshMembership(inMyList, isLiked func(id string) bool) {
	for _, card := range cr.cards {
		id := card.Item().ID
		card.SetMembership(call(inMyList, id), call(isLiked, id))
	}
}

func call(f func(string) bool, id string) bool {
	return f != nil && f(id)
}
