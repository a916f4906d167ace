package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/cactusbrowse/cactus-browser/internal/theme"
)

// ThemePicker is the theme selection dialog: a scrollable grid of palette
// buttons, one per catalog entry, each drawn over its background color.
type ThemePicker struct {
	window       fyne.Window
	localization *Localization
	onSelect     func(name string)
	dialog       dialog.Dialog
}

// NewThemePicker creates the picker. onSelect receives the chosen palette
// name; the dialog closes itself after selection.
func NewThemePicker(window fyne.Window, localization *Localization, onSelect func(name string)) *ThemePicker {
	tp := &ThemePicker{
		window:       window,
		localization: localization,
		onSelect:     onSelect,
	}

	tp.createUI()
	return tp
}

// Show displays the picker dialog.
func (tp *ThemePicker) Show() {
	tp.dialog.Show()
}

// createUI builds the palette grid.
func (tp *ThemePicker) createUI() {
	cells := []fyne.CanvasObject{}
	for _, p := range theme.Catalog() {
		name := p.Name // capture for closure

		swatch := canvas.NewRectangle(p.BackgroundColor())
		btn := widget.NewButton(name, func() {
			tp.onSelect(name)
			tp.dialog.Hide()
		})
		btn.Importance = widget.LowImportance

		cells = append(cells, container.NewStack(swatch, btn))
	}

	grid := container.NewGridWithColumns(ThemePickerColumns, cells...)

	tp.dialog = dialog.NewCustom(
		tp.localization.GetText(KeySelectTheme),
		tp.localization.GetText(KeyClose),
		container.NewVScroll(grid),
		tp.window,
	)
	tp.dialog.Resize(fyne.NewSize(ThemePickerWidth, ThemePickerHeight))
}
