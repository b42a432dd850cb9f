package cprint

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/gookit/color"
)

// enabled gates escape-code emission for the whole package.
var enabled atomic.Bool

func init() {
	enabled.Store(detectColor())
}

// detectColor decides the initial color setting from the environment and the
// terminal. NO_COLOR wins over everything (https://no-color.org); FORCE_COLOR
// set to anything but "0" turns colors on even without a terminal, which is
// what IDE-hosted consoles need.
func detectColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if v, ok := os.LookupEnv("FORCE_COLOR"); ok && v != "0" {
		color.ForceOpenColor()
		return true
	}
	return color.IsSupportColor()
}

// Enable turns colored output on or off for the whole package, overriding
// the decision made at initialization.
func Enable(on bool) {
	enabled.Store(on)
}

// Enabled reports whether print functions currently emit escape codes.
func Enabled() bool {
	return enabled.Load()
}

// Fprint prints the operands to w in the given color.
// Operands are formatted as by fmt.Fprint.
func Fprint(w io.Writer, c Color, a ...any) (int, error) {
	return emit(w, c, fmt.Sprint(a...))
}

// Fprintf formats according to the format specifier and prints to w in the
// given color.
func Fprintf(w io.Writer, c Color, format string, a ...any) (int, error) {
	return emit(w, c, fmt.Sprintf(format, a...))
}

// Fprintln prints the operands to w in the given color, appending a newline.
func Fprintln(w io.Writer, c Color, a ...any) (int, error) {
	return emit(w, c, fmt.Sprintln(a...))
}

// Print prints the operands to standard output in the given color.
func Print(c Color, a ...any) (int, error) {
	return Fprint(os.Stdout, c, a...)
}

// Printf formats according to the format specifier and prints to standard
// output in the given color.
func Printf(c Color, format string, a ...any) (int, error) {
	return Fprintf(os.Stdout, c, format, a...)
}

// Println prints the operands to standard output in the given color,
// appending a newline.
func Println(c Color, a ...any) (int, error) {
	return Fprintln(os.Stdout, c, a...)
}

// Freset writes a full style reset to w. It is a no-op while colors are
// disabled.
func Freset(w io.Writer) (int, error) {
	if !enabled.Load() {
		return 0, nil
	}
	return io.WriteString(w, color.ResetSet)
}

// Reset restores the terminal default style on standard output.
func Reset() (int, error) {
	return Freset(os.Stdout)
}

// emit writes the color sequence followed by the already-formatted text.
// The style is deliberately not reset afterwards; see the package
// documentation for the sequencing rules.
func emit(w io.Writer, c Color, text string) (int, error) {
	if !enabled.Load() {
		return io.WriteString(w, text)
	}
	seq := c.sequence()
	if seq == "" {
		return io.WriteString(w, text)
	}
	n, err := io.WriteString(w, seq)
	if err != nil {
		return n, err
	}
	m, err := io.WriteString(w, text)
	return n + m, err
}
