package timing

import (
	"fmt"
	"strings"
	"time"
)

// progressConfig collects the optional parts of a progress string.
type progressConfig struct {
	iteration    int
	total        int
	hasIteration bool
	separator    string
	postfix      string
	milliseconds bool
}

// ProgressOption configures ProgressString.
type ProgressOption func(*progressConfig)

// WithIteration adds a "PP.P % (iteration / total)" part. The iteration is
// treated as a zero-based index, so one is added before the percentage is
// calculated.
func WithIteration(iteration, total int) ProgressOption {
	return func(c *progressConfig) {
		c.iteration = iteration
		c.total = total
		c.hasIteration = true
	}
}

// WithSeparator overrides the separator between the clock part and the
// percentage part. The default is " - ".
func WithSeparator(sep string) ProgressOption {
	return func(c *progressConfig) {
		c.separator = sep
	}
}

// WithPostfix appends a string after the generated parts, e.g. ": ". It is
// only attached when at least one part was generated.
func WithPostfix(postfix string) ProgressOption {
	return func(c *progressConfig) {
		c.postfix = postfix
	}
}

// WithoutMilliseconds renders the clock part as "HH:MM:SS" instead of
// "HH:MM:SS.mmm".
func WithoutMilliseconds() ProgressOption {
	return func(c *progressConfig) {
		c.milliseconds = false
	}
}

// ProgressString renders the elapsed time since start as "HH:MM:SS.mmm",
// joined with the iteration percentage as "PP.P % (i / n)" when one was
// supplied via WithIteration. A zero start time omits the clock part. Parts
// that cannot be calculated are left out, and the separator and postfix only
// attach to something already present.
func ProgressString(start time.Time, opts ...ProgressOption) string {
	cfg := progressConfig{
		separator:    " - ",
		milliseconds: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder

	if !start.IsZero() {
		b.WriteString(clock(time.Since(start), cfg.milliseconds))
	}

	if cfg.hasIteration && cfg.total > 0 {
		if b.Len() > 0 && cfg.separator != "" {
			b.WriteString(cfg.separator)
		}
		percent := 100 * float64(cfg.iteration+1) / float64(cfg.total)
		fmt.Fprintf(&b, "%.1f %% (%d / %d)", percent, cfg.iteration, cfg.total)
	}

	if b.Len() > 0 && cfg.postfix != "" {
		b.WriteString(cfg.postfix)
	}

	return b.String()
}

// clock formats a duration as "HH:MM:SS" with optional ".mmm" milliseconds.
func clock(d time.Duration, milliseconds bool) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if !milliseconds {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	ms := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}
