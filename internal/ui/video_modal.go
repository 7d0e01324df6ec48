package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lynch-universe/internal/model"
	"github.com/ytget/lynch-universe/internal/player"
)

// Playback is the playback session as driven by the modal
type Playback interface {
	Close()
	Play()
	TogglePlayback()
	Replay()
	Skip(direction model.SkipDirection, delta float64)
	SeekTo(fraction float64)
	SetVolume(level float64)
	ToggleMute()
	ToggleFullscreen()
	PointerMoved()
	PointerLeft()
}

// Favorites is the favorites store as used by the modal
type Favorites interface {
	ToggleMyList(id string) bool
	ToggleLike(id string) bool
	IsInMyList(id string) bool
	IsLiked(id string) bool
}

// VideoModal is the detail and playback popup for one item
type VideoModal struct {
	canvas       fyne.Canvas
	localization *Localization
	thumbs       *ThumbnailCache
	playback     Playback
	favorites    Favorites

	item  model.ContentItem
	popup *widget.PopUp

	// Header and info
	titleLabel    *widget.Label
	tagsLabel     *widget.Label
	descLabel     *widget.Label
	durationLabel *widget.Label
	closeBtn      *widget.Button
	myListBtn     *widget.Button
	likeBtn       *widget.Button

	// Surface
	poster      *canvas.Image
	startBtn    *widget.Button
	noVideo     *widget.Label
	skipLabel   *canvas.Text
	overlay     *fyne.Container
	surfaceArea *ActivityArea

	// Transport
	controls      *fyne.Container
	playBtn       *widget.Button
	replayBtn     *widget.Button
	backBtn       *widget.Button
	forwardBtn    *widget.Button
	muteBtn       *widget.Button
	fullscreenBtn *widget.Button
	progress      *widget.Slider
	timeLabel     *widget.Label
	volume        *widget.Slider
}

// NewVideoModal creates the modal; it stays hidden until Open
func NewVideoModal(c fyne.Canvas, localization *Localization, thumbs *ThumbnailCache, playback Playback, favorites Favorites) *VideoModal {
	vm := &VideoModal{
		canvas:       c,
		localization: localization,
		thumbs:       thumbs,
		playback:     playback,
		favorites:    favorites,
	}
	vm.createUI()
	return vm
}

func (vm *VideoModal) createUI() {
	vm.titleLabel = widget.NewLabel("")
	vm.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	vm.titleLabel.SizeName = theme.SizeNameHeadingText
	vm.titleLabel.Truncation = fyne.TextTruncateEllipsis

	vm.tagsLabel = widget.NewLabel("")
	vm.tagsLabel.Importance = widget.LowImportance
	vm.durationLabel = widget.NewLabel("")
	vm.durationLabel.Importance = widget.LowImportance
	vm.descLabel = widget.NewLabel("")
	vm.descLabel.Wrapping = fyne.TextWrapWord

	vm.closeBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), vm.Close)
	vm.closeBtn.Importance = widget.LowImportance

	vm.myListBtn = widget.NewButton("", func() {
		if vm.favorites != nil && vm.item.ID != "" {
			vm.favorites.ToggleMyList(vm.item.ID)
			vm.RefreshMembership()
		}
	})
	vm.likeBtn = widget.NewButton("", func() {
		if vm.favorites != nil && vm.item.ID != "" {
			vm.favorites.ToggleLike(vm.item.ID)
			vm.RefreshMembership()
		}
	})

	vm.createSurface()
	vm.createControls()

	header := container.NewBorder(nil, nil, nil, vm.closeBtn, vm.titleLabel)
	info := container.NewVBox(
		container.NewHBox(vm.myListBtn, vm.likeBtn, vm.durationLabel),
		vm.tagsLabel,
		vm.descLabel,
	)
	body := container.NewBorder(
		header,
		nil, nil, nil,
		container.NewVScroll(container.NewVBox(vm.surfaceArea, vm.controls, info)),
	)

	vm.popup = widget.NewModalPopUp(body, vm.canvas)
	vm.popup.Resize(fyne.NewSize(ModalWidth, ModalHeight))
}

func (vm *VideoModal) createSurface() {
	backdrop := canvas.NewRectangle(ColorSurface)
	backdrop.SetMinSize(fyne.NewSize(0, ModalPosterHeight))

	vm.poster = canvas.NewImageFromResource(nil)
	vm.poster.FillMode = canvas.ImageFillContain

	vm.startBtn = widget.NewButtonWithIcon(vm.localization.GetText(KeyPlay), theme.MediaPlayIcon(), func() {
		vm.playback.Play()
	})
	vm.startBtn.Importance = widget.HighImportance

	vm.noVideo = widget.NewLabel(vm.localization.GetText(KeyNoVideo))
	vm.noVideo.Hide()

	vm.skipLabel = canvas.NewText("", ColorBrandRed)
	vm.skipLabel.TextSize = HeroTitleSize
	vm.skipLabel.TextStyle = fyne.TextStyle{Bold: true}
	vm.skipLabel.Hide()

	vm.overlay = container.NewCenter(container.NewVBox(vm.startBtn, vm.noVideo))
	surface := container.NewStack(
		backdrop,
		vm.poster,
		vm.overlay,
		container.NewCenter(vm.skipLabel),
	)
	vm.surfaceArea = NewActivityArea(surface, vm.playback.PointerMoved, vm.playback.PointerLeft, vm.onGesture)
}

func (vm *VideoModal) createControls() {
	vm.playBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), vm.playback.TogglePlayback)
	vm.replayBtn = widget.NewButtonWithIcon("", theme.MediaReplayIcon(), vm.playback.Replay)
	vm.backBtn = widget.NewButton(IconBackward, func() {
		vm.playback.Skip(model.SkipBackward, player.DefaultSkipSeconds)
	})
	vm.forwardBtn = widget.NewButton(IconForward, func() {
		vm.playback.Skip(model.SkipForward, player.DefaultSkipSeconds)
	})
	vm.muteBtn = widget.NewButtonWithIcon("", theme.VolumeUpIcon(), vm.playback.ToggleMute)
	vm.fullscreenBtn = widget.NewButtonWithIcon("", theme.ViewFullScreenIcon(), vm.playback.ToggleFullscreen)

	vm.progress = widget.NewSlider(0, 1)
	vm.progress.Step = 0.001
	vm.progress.OnChangeEnded = vm.playback.SeekTo

	vm.timeLabel = widget.NewLabel(model.FormatTime(0) + TimeSeparator + model.FormatTime(0))
	vm.timeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	vm.volume = widget.NewSlider(0, player.MaxVolume)
	vm.volume.OnChangeEnded = vm.playback.SetVolume
	volumeBox := container.NewGridWrap(fyne.NewSize(VolumeSliderWidth, vm.volume.MinSize().Height), vm.volume)

	transport := container.NewBorder(nil, nil,
		container.NewHBox(vm.playBtn, vm.backBtn, vm.forwardBtn, vm.replayBtn, vm.muteBtn, volumeBox),
		container.NewHBox(vm.timeLabel, vm.fullscreenBtn),
	)
	vm.controls = container.NewVBox(vm.progress, transport)
	vm.controls.Hide()
}

func (vm *VideoModal) onGesture(g GestureType) {
	switch g {
	case GestureSwipeLeft:
		vm.playback.Skip(model.SkipBackward, player.DefaultSkipSeconds)
	case GestureSwipeRight:
		vm.playback.Skip(model.SkipForward, player.DefaultSkipSeconds)
	}
}

// Open shows the modal for item
func (vm *VideoModal) Open(item model.ContentItem) {
	vm.item = item
	vm.titleLabel.SetText(item.Title)
	vm.tagsLabel.SetText(item.TagLine())
	vm.durationLabel.SetText(item.DurationLabel)
	vm.descLabel.SetText(item.Description)

	vm.poster.Resource = nil
	vm.poster.Refresh()
	if vm.thumbs != nil {
		id := item.ID
		vm.thumbs.Load(item.ThumbnailURL, func(res fyne.Resource) {
			if vm.item.ID != id {
				return
			}
			vm.poster.Resource = res
			vm.poster.Refresh()
		})
	}

	if item.HasVideo() {
		vm.startBtn.Show()
		vm.noVideo.Hide()
	} else {
		vm.startBtn.Hide()
		vm.noVideo.Show()
	}
	vm.controls.Hide()
	vm.skipLabel.Hide()
	vm.RefreshMembership()
	vm.popup.Show()
}

// Close ends the playback session and hides the modal
func (vm *VideoModal) Close() {
	vm.playback.Close()
	vm.Hide()
}

// Hide hides the modal without touching the session
func (vm *VideoModal) Hide() {
	vm.item = model.ContentItem{}
	vm.popup.Hide()
}

// Visible reports whether the modal is on screen
func (vm *VideoModal) Visible() bool {
	return vm.popup.Visible()
}

// Update mirrors a session snapshot in the controls
func (vm *VideoModal) Update(s player.Snapshot) {
	if !s.Active {
		if vm.Visible() {
			vm.Hide()
		}
		return
	}
	if s.Item.ID != vm.item.ID {
		return
	}

	if s.Embedded {
		vm.overlay.Hide()
	} else {
		vm.overlay.Show()
	}
	if s.Embedded && s.ControlsVisible {
		vm.controls.Show()
	} else {
		vm.controls.Hide()
	}

	if s.IsPlaying {
		vm.playBtn.SetIcon(theme.MediaPauseIcon())
	} else {
		vm.playBtn.SetIcon(theme.MediaPlayIcon())
	}
	if s.IsMuted {
		vm.muteBtn.SetIcon(theme.VolumeMuteIcon())
	} else {
		vm.muteBtn.SetIcon(theme.VolumeUpIcon())
	}
	if s.IsFullscreen {
		vm.fullscreenBtn.SetIcon(theme.ViewRestoreIcon())
	} else {
		vm.fullscreenBtn.SetIcon(theme.ViewFullScreenIcon())
	}

	fraction := 0.0
	if s.Duration > 0 {
		fraction = s.CurrentTime / s.Duration
	}
	vm.progress.SetValue(fraction)
	vm.timeLabel.SetText(model.FormatTime(s.CurrentTime) + TimeSeparator + model.FormatTime(s.Duration))
	vm.volume.SetValue(s.Volume)

	switch s.SkipIndicator {
	case model.SkipForward:
		vm.skipLabel.Text = IconForward
		vm.skipLabel.Show()
	case model.SkipBackward:
		vm.skipLabel.Text = IconBackward
		vm.skipLabel.Show()
	default:
		vm.skipLabel.Hide()
	}
	vm.skipLabel.Refresh()
}

// RefreshMembership re-reads the favorites toggles
func (vm *VideoModal) RefreshMembership() {
	if vm.favorites == nil {
		return
	}
	if vm.favorites.IsInMyList(vm.item.ID) {
		vm.myListBtn.SetText(IconCheck + " " + vm.localization.GetText(KeyInMyList))
	} else {
		vm.myListBtn.SetText(IconAdd + " " + vm.localization.GetText(KeyMyList))
	}
	if vm.favorites.IsLiked(vm.item.ID) {
		vm.likeBtn.SetText(IconHeart + " " + vm.localization.GetText(KeyLiked))
	} else {
		vm.likeBtn.SetText(IconHeartOff + " " + vm.localization.GetText(KeyLike))
	}
}

// RefreshTexts re-reads localized captions
func (vm *VideoModal) RefreshTexts() {
	vm.startBtn.SetText(vm.localization.GetText(KeyPlay))
	vm.noVideo.SetText(vm.localization.GetText(KeyNoVideo))
	vm.RefreshMembership()
}
