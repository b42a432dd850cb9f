package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/sync/errgroup"
)

// Format selects the rendering output format.
type Format int

const (
	// PNG renders a raster image; multi-subplot figures compose a grid.
	PNG Format = iota

	// SVG renders a vector image; only single-subplot figures.
	SVG
)

// Render writes the figure to w in the given format. Multiple subplots are
// stacked into a vertical grid, with every subplot rasterized concurrently.
func (f *Figure) Render(w io.Writer, format Format) error {
	if format != PNG && format != SVG {
		return renderError(f.Title, -1, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format)))
	}
	if len(f.subplots) == 0 {
		return renderError(f.Title, -1, ErrNoSubplots)
	}
	for i, sub := range f.subplots {
		if len(sub.series) == 0 {
			return renderError(f.Title, i, ErrNoSeries)
		}
	}

	if len(f.subplots) == 1 {
		provider := chart.PNG
		if format == SVG {
			provider = chart.SVG
		}
		if err := f.buildChart(0).Render(provider, w); err != nil {
			return renderError(f.Title, 0, err)
		}
		return nil
	}

	if format == SVG {
		return renderError(f.Title, -1, ErrSVGGrid)
	}
	return f.renderGrid(w)
}

// SavePNG renders the figure as PNG. A path naming a directory (existing, or
// ending in a path separator) uses the figure title as the file name, and a
// missing ".png" extension is appended. Missing directories are created.
// The full path of the written file is returned.
func (f *Figure) SavePNG(path string) (string, error) {
	return f.save(path, ".png", PNG)
}

// SaveSVG renders the figure as SVG, with the same path handling as SavePNG.
func (f *Figure) SaveSVG(path string) (string, error) {
	return f.save(path, ".svg", SVG)
}

func (f *Figure) save(path, ext string, format Format) (string, error) {
	if path == "" {
		return "", fmt.Errorf("saving figure %q: empty path", f.Title)
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator)) || isDir(path) {
		path = filepath.Join(path, f.Title)
	}
	if filepath.Ext(path) != ext {
		path += ext
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("saving figure %q: %w", f.Title, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("saving figure %q: %w", f.Title, err)
	}
	defer file.Close()

	if err := f.Render(file, format); err != nil {
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("saving figure %q: %w", f.Title, err)
	}
	return path, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// renderGrid rasterizes every subplot concurrently and stitches the results
// into one vertical grid image.
func (f *Figure) renderGrid(w io.Writer) error {
	tiles := make([]image.Image, len(f.subplots))

	var g errgroup.Group
	for i := range f.subplots {
		i := i
		g.Go(func() error {
			var buf bytes.Buffer
			if err := f.buildChart(i).Render(chart.PNG, &buf); err != nil {
				return renderError(f.Title, i, err)
			}
			img, err := png.Decode(&buf)
			if err != nil {
				return renderError(f.Title, i, err)
			}
			tiles[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	width, height := 0, 0
	for _, tile := range tiles {
		b := tile.Bounds()
		if b.Dx() > width {
			width = b.Dx()
		}
		height += b.Dy()
	}

	grid := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(grid, grid.Bounds(), image.White, image.Point{}, draw.Src)
	y := 0
	for _, tile := range tiles {
		b := tile.Bounds()
		draw.Draw(grid, image.Rect(0, y, b.Dx(), y+b.Dy()), tile, b.Min, draw.Src)
		y += b.Dy()
	}

	if err := png.Encode(w, grid); err != nil {
		return renderError(f.Title, -1, err)
	}
	return nil
}

// buildChart maps one subplot onto a go-chart chart.
func (f *Figure) buildChart(index int) *chart.Chart {
	sub := f.subplots[index]

	title := sub.Title
	if title == "" && len(f.subplots) == 1 {
		title = f.Title
	}

	background := hexColor(f.theme.Background)
	graph := &chart.Chart{
		Title:      title,
		Width:      f.theme.Width,
		Height:     f.theme.Height,
		Background: chart.Style{FillColor: background},
		Canvas:     chart.Style{FillColor: background},
		XAxis:      chart.XAxis{Name: sub.XLabel},
		YAxis:      chart.YAxis{Name: sub.YLabel},
	}

	for i, s := range sub.series {
		hex := s.colorHex
		if hex == "" {
			hex = f.theme.paletteColor(i)
		}
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name: s.Name,
			Style: chart.Style{
				StrokeColor: hexColor(hex),
				StrokeWidth: s.strokeWidth,
			},
			XValues: s.X,
			YValues: s.Y,
		})
	}

	graph.Elements = []chart.Renderable{chart.Legend(graph)}
	return graph
}

// hexColor converts "#rrggbb" to a drawing color.
func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
