package theme

import (
	"fmt"
	"image/color"
	"strconv"
)

// Palette is a named color theme: a background and a matching foreground.
type Palette struct {
	Name       string
	Background string // hex, e.g. "#2c2c2c"
	Foreground string // hex, e.g. "#ffffff"
}

// DefaultThemeName is the palette applied when nothing is configured or the
// configured name is unknown.
const DefaultThemeName = "Default"

// palettes is the ordered theme catalog shown in the picker grid.
var palettes = []Palette{
	{"Default", "#ffffff", "#000000"},
	{"Dark", "#2c2c2c", "#ffffff"},
	{"Blue", "#3498db", "#ffffff"},
	{"Green", "#2ecc71", "#ffffff"},
	{"Red", "#e74c3c", "#ffffff"},
	{"Purple", "#9b59b6", "#ffffff"},
	{"Orange", "#e67e22", "#ffffff"},

	{"Midnight Blue", "#2c3e50", "#ecf0f1"},
	{"Wet Asphalt", "#34495e", "#ecf0f1"},
	{"Sun Flower", "#f1c40f", "#2c3e50"},
	{"Carrot", "#e67e22", "#2c3e50"},
	{"Alizarin", "#e74c3c", "#2c3e50"},
	{"Clouds", "#ecf0f1", "#2c3e50"},
	{"Concrete", "#95a5a6", "#2c3e50"},
	{"Pink", "#ff6b81", "#2c3e50"},
	{"Teal", "#008080", "#ffffff"},
	{"Navy", "#000080", "#ffffff"},
	{"Maroon", "#800000", "#ffffff"},
	{"Olive", "#808000", "#ffffff"},
	{"Lime", "#00ff00", "#000000"},
	{"Aqua", "#00ffff", "#000000"},
	{"Fuchsia", "#ff00ff", "#000000"},
	{"Silver", "#c0c0c0", "#000000"},
	{"Gray", "#808080", "#ffffff"},
	{"Black", "#000000", "#ffffff"},
	{"White", "#ffffff", "#000000"},

	{"Electric Blue", "#7efff5", "#000000"},
	{"Neon Green", "#39ff14", "#000000"},
	{"Hot Pink", "#ff69b4", "#000000"},
	{"Bright Orange", "#ff6700", "#000000"},
	{"Lemon Yellow", "#fff44f", "#000000"},
	{"Lavender", "#e6e6fa", "#000000"},
	{"Mint", "#98ff98", "#000000"},
	{"Coral", "#ff7f50", "#000000"},
	{"Gold", "#ffd700", "#000000"},
	{"Sky Blue", "#87ceeb", "#000000"},
	{"Salmon", "#fa8072", "#000000"},
	{"Khaki", "#f0e68c", "#000000"},
	{"Plum", "#dda0dd", "#000000"},
	{"Cyan", "#00ffff", "#000000"},
	{"Magenta", "#ff00ff", "#000000"},
	{"Spring Green", "#00ff7f", "#000000"},
	{"Tomato", "#ff6347", "#000000"},
	{"Slate Blue", "#6a5acd", "#ffffff"},
	{"Forest Green", "#228b22", "#ffffff"},
	{"Royal Blue", "#4169e1", "#ffffff"},
	{"Crimson", "#dc143c", "#ffffff"},
	{"Dark Orchid", "#9932cc", "#ffffff"},
	{"Sienna", "#a0522d", "#ffffff"},
	{"Steel Blue", "#4682b4", "#ffffff"},
	{"Peru", "#cd853f", "#ffffff"},
	{"Dark Cyan", "#008b8b", "#ffffff"},
	{"Indigo", "#4b0082", "#ffffff"},
	{"Dark Magenta", "#8b008b", "#ffffff"},
	{"Dark Red", "#8b0000", "#ffffff"},
	{"Dark Green", "#006400", "#ffffff"},
	{"Dark Blue", "#00008b", "#ffffff"},
	{"Dark Violet", "#9400d3", "#ffffff"},
}

// Catalog returns the ordered list of available palettes.
func Catalog() []Palette {
	return append([]Palette(nil), palettes...)
}

// Lookup returns the palette with the given name. Unknown names fall back to
// the default palette, with ok=false.
func Lookup(name string) (Palette, bool) {
	for _, p := range palettes {
		if p.Name == name {
			return p, true
		}
	}
	return palettes[0], false
}

// BackgroundColor returns the palette background as a color.Color.
func (p Palette) BackgroundColor() color.Color {
	c, err := ParseHexColor(p.Background)
	if err != nil {
		return color.White
	}
	return c
}

// ForegroundColor returns the palette foreground as a color.Color.
func (p Palette) ForegroundColor() color.Color {
	c, err := ParseHexColor(p.Foreground)
	if err != nil {
		return color.Black
	}
	return c
}

// ParseHexColor parses a "#rrggbb" string into an opaque RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex color: %q", s)
	}

	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
