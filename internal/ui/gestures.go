package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// ActivityArea wraps content and reports pointer activity over it. Mouse
// movement and touches count as activity; the pointer leaving the area is
// reported separately. Horizontal swipes are reported as gestures.
type ActivityArea struct {
	widget.BaseWidget

	content   fyne.CanvasObject
	onMoved   func()
	onLeave   func()
	onGesture func(GestureType)

	touchStartTime time.Time
	touchStartPos  fyne.Position
	swipeThreshold float32
}

var (
	_ desktop.Hoverable = (*ActivityArea)(nil)
	_ mobile.Touchable  = (*ActivityArea)(nil)
)

// NewActivityArea creates a new activity area around content
func NewActivityArea(content fyne.CanvasObject, onMoved, onLeave func(), onGesture func(GestureType)) *ActivityArea {
	a := &ActivityArea{
		content:        content,
		onMoved:        onMoved,
		onLeave:        onLeave,
		onGesture:      onGesture,
		swipeThreshold: DefaultSwipeThreshold,
	}
	a.ExtendBaseWidget(a)
	return a
}

// CreateRenderer implements fyne.Widget
func (a *ActivityArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(a.content)
}

// MouseIn handles the pointer entering the area
func (a *ActivityArea) MouseIn(*desktop.MouseEvent) {
	a.moved()
}

// MouseMoved handles pointer movement inside the area
func (a *ActivityArea) MouseMoved(*desktop.MouseEvent) {
	a.moved()
}

// MouseOut handles the pointer leaving the area
func (a *ActivityArea) MouseOut() {
	if a.onLeave != nil {
		a.onLeave()
	}
}

// TouchDown handles touch down events for gesture detection
func (a *ActivityArea) TouchDown(event *mobile.TouchEvent) {
	a.touchStartTime = time.Now()
	a.touchStartPos = event.Position
	a.moved()
}

// TouchUp handles touch up events for gesture detection
func (a *ActivityArea) TouchUp(event *mobile.TouchEvent) {
	dx := event.Position.X - a.touchStartPos.X
	dy := event.Position.Y - a.touchStartPos.Y
	a.trigger(a.detectGesture(dx, dy, time.Since(a.touchStartTime)))
}

// TouchCancel handles touch cancel events
func (a *ActivityArea) TouchCancel(*mobile.TouchEvent) {
	// Reset tracking
	a.touchStartTime = time.Time{}
}

func (a *ActivityArea) moved() {
	if a.onMoved != nil {
		a.onMoved()
	}
}

// detectGesture classifies a finished touch; -1 means no gesture
func (a *ActivityArea) detectGesture(dx, dy float32, held time.Duration) GestureType {
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx >= a.swipeThreshold && absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if absDx < a.swipeThreshold && absDy < a.swipeThreshold && held < DefaultLongPressDuration {
		return GestureTap
	}
	return -1
}

func (a *ActivityArea) trigger(gesture GestureType) {
	if gesture < 0 || a.onGesture == nil {
		return
	}
	a.onGesture(gesture)
}
