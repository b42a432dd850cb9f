package plot

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleFigure builds a figure with the given number of populated subplots.
func sampleFigure(t *testing.T, subplots int) *Figure {
	t.Helper()
	fig := NewFigure(WithTitle("sample"), WithSize(320, 200))
	for i := 0; i < subplots; i++ {
		sub := fig.AddSubplot()
		x := make([]float64, 32)
		y := make([]float64, 32)
		for j := range x {
			x[j] = float64(j)
			y[j] = math.Sin(float64(j)/4 + float64(i))
		}
		require.NoError(t, sub.AddSeries("wave", x, y))
	}
	return fig
}

func TestRenderSinglePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleFigure(t, 1).Render(&buf, PNG))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestRenderGridStacksVertically(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleFigure(t, 3).Render(&buf, PNG))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}

func TestRenderSingleSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleFigure(t, 1).Render(&buf, SVG))
	assert.Contains(t, buf.String(), "<svg")
}

func TestRenderSVGGridRejected(t *testing.T) {
	var buf bytes.Buffer
	err := sampleFigure(t, 2).Render(&buf, SVG)
	assert.ErrorIs(t, err, ErrSVGGrid)
}

func TestRenderEmptyFigure(t *testing.T) {
	var buf bytes.Buffer
	err := NewFigure().Render(&buf, PNG)
	assert.ErrorIs(t, err, ErrNoSubplots)
}

func TestRenderEmptySubplot(t *testing.T) {
	fig := NewFigure()
	fig.AddSubplot()

	var buf bytes.Buffer
	err := fig.Render(&buf, PNG)
	assert.ErrorIs(t, err, ErrNoSeries)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, 0, renderErr.Subplot)
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := sampleFigure(t, 1).Render(&buf, Format(42))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSavePNGIntoDirectory(t *testing.T) {
	dir := t.TempDir()

	path, err := sampleFigure(t, 1).SavePNG(dir + string(os.PathSeparator))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sample.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = png.DecodeConfig(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestSavePNGAppendsExtension(t *testing.T) {
	dir := t.TempDir()

	path, err := sampleFigure(t, 1).SavePNG(filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "out.png"))
}

func TestSavePNGCreatesDirectories(t *testing.T) {
	dir := t.TempDir()

	path, err := sampleFigure(t, 1).SavePNG(filepath.Join(dir, "a", "b", "chart.png"))
	require.NoError(t, err)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}
