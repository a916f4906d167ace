package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// BrowserTheme maps a named palette onto the Fyne theme: the palette drives
// background and foreground, everything else stays at the defaults.
type BrowserTheme struct {
	palette Palette
}

// NewBrowserTheme creates a theme for the named palette. Unknown names fall
// back to the default palette.
func NewBrowserTheme(name string) fyne.Theme {
	p, _ := Lookup(name)
	return &BrowserTheme{palette: p}
}

// Palette returns the palette backing this theme.
func (t *BrowserTheme) Palette() Palette {
	return t.palette
}

// Color returns theme colors
func (t *BrowserTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return t.palette.BackgroundColor()
	case theme.ColorNameForeground:
		return t.palette.ForegroundColor()
	case theme.ColorNameHeaderBackground:
		return t.palette.BackgroundColor()
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *BrowserTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *BrowserTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *BrowserTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
