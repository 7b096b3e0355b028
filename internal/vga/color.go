package vga

import (
	"fmt"
	"strings"
)

// Color is one entry of the fixed 16-colour text-mode palette.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

var colorNames = [...]string{
	Black:      "black",
	Blue:       "blue",
	Green:      "green",
	Cyan:       "cyan",
	Red:        "red",
	Magenta:    "magenta",
	Brown:      "brown",
	LightGray:  "light_gray",
	DarkGray:   "dark_gray",
	LightBlue:  "light_blue",
	LightGreen: "light_green",
	LightCyan:  "light_cyan",
	LightRed:   "light_red",
	Pink:       "pink",
	Yellow:     "yellow",
	White:      "white",
}

// String returns the config name of the colour.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor resolves a palette name such as "yellow" or "light-gray".
func ParseColor(name string) (Color, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, cn := range colorNames {
		if cn == n {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("vga: unknown color %q", name)
}

// ColorCode is a packed cell attribute: background in the high nibble,
// foreground in the low nibble.
type ColorCode uint8

// NewColorCode packs a foreground and background colour.
func NewColorCode(fg, bg Color) ColorCode {
	return ColorCode((bg&0x0f)<<4 | fg&0x0f)
}

// Foreground returns the low nibble.
func (c ColorCode) Foreground() Color {
	return Color(c & 0x0f)
}

// Background returns the high nibble.
func (c ColorCode) Background() Color {
	return Color(c >> 4)
}
