package cprint

import (
	"fmt"

	"github.com/gookit/color"
)

// Color is one of the supported and actually useful color combinations.
// The zero value is Default, which carries no color of its own and renders
// as a full style reset.
type Color int

const (
	// Default is no style; printing with it resets to the terminal default.
	Default Color = iota

	// White is light white on the default background.
	White
	// LightGray is the standard white, which most terminals render as light gray.
	LightGray
	// Gray is light black.
	Gray
	// Black is black on the default background.
	Black

	// DarkRed is the standard red.
	DarkRed
	// Red is light red.
	Red
	// DarkYellow is the standard yellow.
	DarkYellow
	// Yellow is light yellow.
	Yellow
	// DarkGreen is the standard green.
	DarkGreen
	// Green is light green.
	Green
	// DarkCyan is the standard cyan.
	DarkCyan
	// Cyan is light cyan.
	Cyan
	// DarkBlue is the standard blue.
	DarkBlue
	// Blue is light blue.
	Blue
	// Purple is the standard magenta.
	Purple
	// Magenta is light magenta.
	Magenta
)

var colorNames = map[Color]string{
	Default:    "default",
	White:      "white",
	LightGray:  "light gray",
	Gray:       "gray",
	Black:      "black",
	DarkRed:    "dark red",
	Red:        "red",
	DarkYellow: "dark yellow",
	Yellow:     "yellow",
	DarkGreen:  "dark green",
	Green:      "green",
	DarkCyan:   "dark cyan",
	Cyan:       "cyan",
	DarkBlue:   "dark blue",
	Blue:       "blue",
	Purple:     "purple",
	Magenta:    "magenta",
}

// foregrounds maps the palette onto ANSI foreground codes. Light variants are
// used wherever the palette name has no "dark" prefix.
var foregrounds = map[Color]color.Color{
	White:      color.FgLightWhite,
	LightGray:  color.FgWhite,
	Gray:       color.FgGray,
	Black:      color.FgBlack,
	DarkRed:    color.FgRed,
	Red:        color.FgLightRed,
	DarkYellow: color.FgYellow,
	Yellow:     color.FgLightYellow,
	DarkGreen:  color.FgGreen,
	Green:      color.FgLightGreen,
	DarkCyan:   color.FgCyan,
	Cyan:       color.FgLightCyan,
	DarkBlue:   color.FgBlue,
	Blue:       color.FgLightBlue,
	Purple:     color.FgMagenta,
	Magenta:    color.FgLightMagenta,
}

// rgbValues holds the RGB representation of each foreground color, as
// rendered by stock terminals and verified against the ANSI escape code
// color tables. Terminal color schemes may remap them.
var rgbValues = map[Color][3]uint8{
	White:      {255, 255, 255},
	LightGray:  {192, 192, 192},
	Gray:       {128, 128, 128},
	Black:      {0, 0, 0},
	DarkRed:    {128, 0, 0},
	Red:        {255, 0, 0},
	DarkYellow: {128, 128, 0},
	Yellow:     {255, 255, 0},
	DarkGreen:  {0, 128, 0},
	Green:      {0, 255, 0},
	DarkCyan:   {0, 128, 128},
	Cyan:       {0, 255, 255},
	DarkBlue:   {0, 0, 128},
	Blue:       {0, 0, 255},
	Purple:     {128, 0, 128},
	Magenta:    {255, 0, 255},
}

// Validate checks that the color is one of the palette values.
func (c Color) Validate() error {
	if _, ok := colorNames[c]; !ok {
		return fmt.Errorf("invalid color: %d", int(c))
	}
	return nil
}

// String returns the human-readable palette name, or "invalid" for values
// outside the palette.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "invalid"
}

// RGB returns the red, green and blue components of the foreground color,
// each in [0, 255]. ok is false for Default (no color of its own) and for
// values outside the palette.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	rgb, ok := rgbValues[c]
	if !ok {
		return 0, 0, 0, false
	}
	return rgb[0], rgb[1], rgb[2], true
}

// Hex returns the color in "#rrggbb" form, or the empty string when the
// color has no RGB representation.
func (c Color) Hex() string {
	r, g, b, ok := c.RGB()
	if !ok {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// sequence returns the ANSI escape sequence selecting the color, or the
// empty string when there is nothing to emit. Default maps to a full reset
// so that the terminal returns to its default style.
func (c Color) sequence() string {
	if c == Default {
		return color.ResetSet
	}
	fg, ok := foregrounds[c]
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[%sm", fg.Code())
}

// Palette returns every palette color excluding Default, in a stable order.
// Useful for demos and for building color cycles.
func Palette() []Color {
	return []Color{
		White, LightGray, Gray, Black,
		DarkRed, Red, DarkYellow, Yellow,
		DarkGreen, Green, DarkCyan, Cyan,
		DarkBlue, Blue, Purple, Magenta,
	}
}
