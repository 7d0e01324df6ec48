package ui

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/lynch-universe/internal/view"
)

// SplashScreen is the intro: the brand over a radial glow, then a fade out
type SplashScreen struct {
	title    *canvas.Text
	tagline  *canvas.Text
	backdrop *canvas.RadialGradient
	content  fyne.CanvasObject

	mu    sync.Mutex
	timer *time.Timer
	fade  *fyne.Animation
}

// NewSplashScreen creates the intro screen
func NewSplashScreen() *SplashScreen {
	ss := &SplashScreen{}

	ss.backdrop = canvas.NewRadialGradient(ColorSplashGlow, ColorBackground)

	ss.title = canvas.NewText(BrandName, ColorBrandRed)
	ss.title.TextSize = SplashTitleSize
	ss.title.TextStyle = fyne.TextStyle{Bold: true}
	ss.title.Alignment = fyne.TextAlignCenter

	ss.tagline = canvas.NewText(BrandTagline, ColorMuted)
	ss.tagline.TextStyle = fyne.TextStyle{Italic: true}
	ss.tagline.Alignment = fyne.TextAlignCenter

	ss.fade = fyne.NewAnimation(view.IntroFadeDuration, ss.applyFade)

	ss.content = container.NewStack(
		canvas.NewRectangle(ColorBackground),
		ss.backdrop,
		container.NewCenter(container.NewVBox(ss.title, ss.tagline)),
	)
	return ss
}

// Content returns the screen's root object
func (ss *SplashScreen) Content() fyne.CanvasObject {
	return ss.content
}

// Start resets the logo and schedules the fade to begin after the logo phase
func (ss *SplashScreen) Start() {
	ss.Stop()
	ss.applyFade(0)

	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.timer = time.AfterFunc(view.IntroLogoDuration, func() {
		fyne.Do(ss.fade.Start)
	})
}

// Stop cancels a pending or running fade
func (ss *SplashScreen) Stop() {
	ss.mu.Lock()
	if ss.timer != nil {
		ss.timer.Stop()
		ss.timer = nil
	}
	ss.mu.Unlock()
	ss.fade.Stop()
}

// applyFade dims the brand; progress runs from 0 (visible) to 1 (gone)
func (ss *SplashScreen) applyFade(progress float32) {
	alpha := uint8(255 * (1 - progress))
	ss.title.Color = withAlpha(ColorBrandRed, alpha)
	ss.tagline.Color = withAlpha(ColorMuted, alpha)
	ss.backdrop.StartColor = withAlpha(ColorSplashGlow, alpha)
	ss.title.Refresh()
	ss.tagline.Refresh()
	ss.backdrop.Refresh()
}

func withAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = alpha
	return c
}
