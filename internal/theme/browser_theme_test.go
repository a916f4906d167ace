package theme

import (
	"image/color"
	"os"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
)

func TestMain(m *testing.M) {
	test.NewApp()
	os.Exit(m.Run())
}

func TestBrowserTheme_Color(t *testing.T) {
	bt := NewBrowserTheme("Dark")

	bg := bt.Color(theme.ColorNameBackground, theme.VariantDark)
	if bg != (color.RGBA{R: 44, G: 44, B: 44, A: 255}) {
		t.Errorf("Expected Dark background rgba(44,44,44), got %v", bg)
	}

	fg := bt.Color(theme.ColorNameForeground, theme.VariantDark)
	if fg != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Expected Dark foreground white, got %v", fg)
	}

	// Colors outside the palette pass through to the default theme.
	primary := bt.Color(theme.ColorNamePrimary, theme.VariantDark)
	if primary != theme.DefaultTheme().Color(theme.ColorNamePrimary, theme.VariantDark) {
		t.Error("Expected primary color to come from the default theme")
	}
}

func TestNewBrowserTheme_UnknownFallsBack(t *testing.T) {
	bt := NewBrowserTheme("No Such Theme").(*BrowserTheme)

	if bt.Palette().Name != DefaultThemeName {
		t.Errorf("Expected fallback to '%s', got '%s'", DefaultThemeName, bt.Palette().Name)
	}
}

func TestBrowserTheme_DelegatesSizes(t *testing.T) {
	bt := NewBrowserTheme("Default")

	if bt.Size(theme.SizeNameText) != theme.DefaultTheme().Size(theme.SizeNameText) {
		t.Error("Expected text size to come from the default theme")
	}
}
