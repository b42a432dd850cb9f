package plot

import (
	"errors"
	"fmt"
)

// Common error variables for figure building and rendering.
var (
	// ErrNoSubplots indicates an attempt to render a figure without subplots
	ErrNoSubplots = errors.New("figure has no subplots")

	// ErrNoSeries indicates a subplot with nothing to draw
	ErrNoSeries = errors.New("subplot has no series")

	// ErrSeriesLength indicates empty or mismatched series value slices
	ErrSeriesLength = errors.New("series x and y values must be non-empty and of equal length")

	// ErrSVGGrid indicates SVG output requested for a multi-subplot figure
	ErrSVGGrid = errors.New("svg output supports only single-subplot figures")

	// ErrUnknownFormat indicates an unsupported output format
	ErrUnknownFormat = errors.New("unknown output format")
)

// RenderError wraps a failure while rendering a figure, identifying the
// figure and the subplot that caused it.
type RenderError struct {
	// Figure is the figure title
	Figure string

	// Subplot is the zero-based subplot index, or -1 when the failure is
	// not tied to one subplot
	Subplot int

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Subplot >= 0 {
		return fmt.Sprintf("rendering %q subplot %d: %v", e.Figure, e.Subplot, e.Cause)
	}
	return fmt.Sprintf("rendering %q: %v", e.Figure, e.Cause)
}

// Unwrap returns the underlying error.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// renderError builds a RenderError for the given subplot index.
func renderError(figure string, subplot int, cause error) *RenderError {
	return &RenderError{Figure: figure, Subplot: subplot, Cause: cause}
}
