package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/lynch-universe/internal/model"
)

func TestVideoCardCallbacks(t *testing.T) {
	test.NewApp()

	item := model.ContentItem{ID: "tp1", Title: "Pilot", DurationLabel: "1:33:00"}
	card := NewVideoCard(item, NewLocalization(), nil)

	var opened model.ContentItem
	var listed, liked string
	card.SetCallbacks(
		func(i model.ContentItem) { opened = i },
		func(id string) { listed = id },
		func(id string) { liked = id },
	)

	test.Tap(card.openBtn)
	test.Tap(card.myListBtn)
	test.Tap(card.likeBtn)

	assert.Equal(t, item, opened)
	assert.Equal(t, "tp1", listed)
	assert.Equal(t, "tp1", liked)
}

func TestVideoCardMembership(t *testing.T) {
	test.NewApp()

	card := NewVideoCard(model.ContentItem{ID: "tp1", Title: "Pilot"}, NewLocalization(), nil)
	assert.Equal(t, IconAdd, card.myListBtn.Text)
	assert.Equal(t, IconHeartOff, card.likeBtn.Text)

	card.SetMembership(true, true)
	assert.Equal(t, IconCheck, card.myListBtn.Text)
	assert.Equal(t, IconHeart, card.likeBtn.Text)

	card.SetMembership(false, true)
	assert.Equal(t, IconAdd, card.myListBtn.Text)
	assert.Equal(t, IconHeart, card.likeBtn.Text)
}
