package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette colors
var (
	ColorBrandRed   = color.NRGBA{R: 229, G: 9, B: 20, A: 255}
	ColorBackground = color.NRGBA{R: 10, G: 10, B: 10, A: 255}
	ColorSurface    = color.NRGBA{R: 24, G: 24, B: 24, A: 255}
	ColorScrim      = color.NRGBA{R: 0, G: 0, B: 0, A: 170}
	ColorMuted      = color.NRGBA{R: 170, G: 170, B: 170, A: 255}
	ColorSplashGlow = color.NRGBA{R: 90, G: 0, B: 8, A: 255}
)

// NoirTheme is a dark theme with the brand red as primary color
type NoirTheme struct{}

// NewNoirTheme creates the app theme
func NewNoirTheme() fyne.Theme {
	return &NoirTheme{}
}

// Color returns theme colors; the app is always dark
func (t *NoirTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorBrandRed
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameButton, theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return ColorSurface
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return ColorMuted
	case theme.ColorNameShadow:
		return ColorScrim
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *NoirTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *NoirTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with slightly tighter padding
func (t *NoirTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameScrollBar:
		return 8
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 17
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 4
	}
	return theme.DefaultTheme().Size(name)
}
