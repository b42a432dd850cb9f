package plot

import (
	"fmt"
	"sync"

	"github.com/bpotocnik/common/pkg/cprint"
)

// figureCount numbers untitled figures process-wide, like plotting toolkits
// number their windows.
var (
	figureCountMu sync.Mutex
	figureCount   int
)

func nextFigureNumber() int {
	figureCountMu.Lock()
	defer figureCountMu.Unlock()
	n := figureCount
	figureCount++
	return n
}

// Figure is a titled collection of subplots rendered together.
type Figure struct {
	// Title is the figure title. Untitled figures are auto-numbered.
	Title string

	theme    *Theme
	subplots []*Subplot
}

// FigureOption configures NewFigure.
type FigureOption func(*Figure)

// WithTitle sets the figure title.
func WithTitle(title string) FigureOption {
	return func(f *Figure) {
		f.Title = title
	}
}

// WithTheme renders the figure with the given theme instead of the default.
func WithTheme(theme *Theme) FigureOption {
	return func(f *Figure) {
		f.theme = theme
	}
}

// WithSize overrides the subplot canvas size of the figure's theme.
func WithSize(width, height int) FigureOption {
	return func(f *Figure) {
		theme := *f.theme
		theme.Width = width
		theme.Height = height
		f.theme = &theme
	}
}

// NewFigure creates a figure. Without WithTitle it is named "Figure N" with a
// process-wide running number.
func NewFigure(opts ...FigureOption) *Figure {
	f := &Figure{theme: DefaultTheme()}
	for _, opt := range opts {
		opt(f)
	}
	if f.Title == "" {
		f.Title = fmt.Sprintf("Figure %d", nextFigureNumber())
	}
	return f
}

// Theme returns the theme the figure renders with.
func (f *Figure) Theme() *Theme {
	return f.theme
}

// Subplots returns the subplots in the order they were added.
func (f *Figure) Subplots() []*Subplot {
	return f.subplots
}

// AddSubplot appends an empty subplot and returns it for population.
func (f *Figure) AddSubplot() *Subplot {
	sub := &Subplot{}
	f.subplots = append(f.subplots, sub)
	return sub
}

// Subplot is one chart within a figure: a title, axis labels and line series.
type Subplot struct {
	// Title is drawn above the subplot.
	Title string

	// XLabel and YLabel name the axes.
	XLabel string
	YLabel string

	series []Series
}

// Series is a named line within a subplot.
type Series struct {
	// Name appears in the legend.
	Name string

	// X and Y are the data values; both have the same non-zero length.
	X []float64
	Y []float64

	// colorHex is the explicit color, empty when the theme palette decides.
	colorHex string

	// strokeWidth is the line width in pixels; 0 means the renderer default.
	strokeWidth float64
}

// SeriesOption configures AddSeries.
type SeriesOption func(*Series)

// WithColor draws the series in a cprint palette color instead of the next
// theme palette entry. Colors without an RGB value (Default) are ignored.
func WithColor(c cprint.Color) SeriesOption {
	return func(s *Series) {
		if hex := c.Hex(); hex != "" {
			s.colorHex = hex
		}
	}
}

// WithHexColor draws the series in an explicit "#rrggbb" color.
func WithHexColor(hex string) SeriesOption {
	return func(s *Series) {
		s.colorHex = hex
	}
}

// WithStrokeWidth sets the line width in pixels.
func WithStrokeWidth(width float64) SeriesOption {
	return func(s *Series) {
		s.strokeWidth = width
	}
}

// AddSeries appends a line series. The x and y slices must be non-empty and
// of equal length; the values are referenced, not copied.
func (s *Subplot) AddSeries(name string, x, y []float64, opts ...SeriesOption) error {
	if len(x) == 0 || len(x) != len(y) {
		return fmt.Errorf("%w: series %q has %d x and %d y values", ErrSeriesLength, name, len(x), len(y))
	}
	series := Series{Name: name, X: x, Y: y}
	for _, opt := range opts {
		opt(&series)
	}
	s.series = append(s.series, series)
	return nil
}

// Series returns the subplot's series in the order they were added.
func (s *Subplot) Series() []Series {
	return s.series
}
