package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconPlay      = "▶"
	IconPause     = "⏸"
	IconClose     = "×"
	IconMusic     = "♫"
	IconMuted     = "🔇"
	IconSound     = "🔊"
	IconHeart     = "♥"
	IconHeartOff  = "♡"
	IconAdd       = "+"
	IconCheck     = "✓"
	IconForward   = "+10s"
	IconBackward  = "-10s"
	IconFullOn    = "⛶"
	BrandName     = "LYNCH UNIVERSE"
	BrandTagline  = "Through the darkness of future past"
	TagSeparator  = " • "
	TimeSeparator = " / "
)

// Layout sizing
const (
	CardWidth       float32 = 220
	CardHeight      float32 = 124
	CardTitleHeight float32 = 40

	HeroHeight        float32 = 320
	HeroTitleSize     float32 = 40
	SplashTitleSize   float32 = 64
	ProfileTileSize   float32 = 140
	ProfileTitleSize  float32 = 32
	NavbarLogoSize    float32 = 22
	ModalWidth        float32 = 900
	ModalHeight       float32 = 640
	ModalPosterHeight float32 = 380
	VolumeSliderWidth float32 = 120
)
