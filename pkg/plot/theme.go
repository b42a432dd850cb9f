package plot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/bpotocnik/common/pkg/cprint"
)

// Theme controls the canvas size, the background and the series color cycle
// of rendered figures.
type Theme struct {
	// Width is the subplot width in pixels.
	Width int `yaml:"width"`

	// Height is the subplot height in pixels.
	Height int `yaml:"height"`

	// Background is the canvas background in "#rrggbb" form.
	Background string `yaml:"background"`

	// Palette is the series color cycle in "#rrggbb" form. A subplot with
	// more series than palette entries wraps around.
	Palette []string `yaml:"palette"`
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DefaultTheme returns the built-in theme. The palette reuses the cprint
// palette so that chart series match console colors.
func DefaultTheme() *Theme {
	return &Theme{
		Width:      1024,
		Height:     512,
		Background: "#ffffff",
		Palette: []string{
			cprint.Blue.Hex(),
			cprint.Red.Hex(),
			cprint.DarkGreen.Hex(),
			cprint.DarkYellow.Hex(),
			cprint.Magenta.Hex(),
			cprint.DarkCyan.Hex(),
			cprint.Gray.Hex(),
			cprint.Purple.Hex(),
		},
	}
}

// Validate checks the theme for values the renderer cannot work with.
func (t *Theme) Validate() error {
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("theme size %dx%d is not positive", t.Width, t.Height)
	}
	if !hexColorRe.MatchString(t.Background) {
		return fmt.Errorf("theme background %q is not a #rrggbb color", t.Background)
	}
	for i, c := range t.Palette {
		if !hexColorRe.MatchString(c) {
			return fmt.Errorf("theme palette entry %d (%q) is not a #rrggbb color", i, c)
		}
	}
	return nil
}

// LoadTheme parses a YAML theme. Omitted fields fall back to the defaults.
func LoadTheme(r io.Reader) (*Theme, error) {
	theme := DefaultTheme()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(theme); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	return theme, nil
}

// LoadThemeFile parses a YAML theme from a file.
func LoadThemeFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening theme file: %w", err)
	}
	defer f.Close()

	theme, err := LoadTheme(f)
	if err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}
	return theme, nil
}

// paletteColor returns the palette entry for the given series index,
// wrapping around when the palette is exhausted.
func (t *Theme) paletteColor(index int) string {
	if len(t.Palette) == 0 {
		return cprint.Blue.Hex()
	}
	return t.Palette[index%len(t.Palette)]
}
