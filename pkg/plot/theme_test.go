package plot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultThemeIsValid(t *testing.T) {
	theme := DefaultTheme()
	require.NoError(t, theme.Validate())
	assert.NotEmpty(t, theme.Palette)
}

func TestLoadTheme(t *testing.T) {
	in := strings.NewReader(`
width: 640
height: 480
palette: ["#112233", "#445566"]
`)
	theme, err := LoadTheme(in)
	require.NoError(t, err)

	assert.Equal(t, 640, theme.Width)
	assert.Equal(t, 480, theme.Height)
	// Omitted fields keep their defaults.
	assert.Equal(t, DefaultTheme().Background, theme.Background)
	assert.Equal(t, []string{"#112233", "#445566"}, theme.Palette)
}

func TestLoadThemeEmptyInputKeepsDefaults(t *testing.T) {
	theme, err := LoadTheme(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme(), theme)
}

func TestLoadThemeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"Negative width", "width: -1"},
		{"Bad background", `background: "red"`},
		{"Bad palette entry", `palette: ["#12345"]`},
		{"Unknown field", "dpi: 300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTheme(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestPaletteColorWraps(t *testing.T) {
	theme := &Theme{Palette: []string{"#000001", "#000002"}}

	assert.Equal(t, "#000001", theme.paletteColor(0))
	assert.Equal(t, "#000002", theme.paletteColor(1))
	assert.Equal(t, "#000001", theme.paletteColor(2))
}

func TestPaletteColorEmptyPalette(t *testing.T) {
	theme := &Theme{}
	assert.NotEmpty(t, theme.paletteColor(0))
}
