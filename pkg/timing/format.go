package timing

import (
	"fmt"
	"time"
)

// FormatDuration returns the duration in the form "x.xxx U" where U is the
// unit picked by magnitude. Operations timed with this package usually take a
// fraction of a second, so units are checked from the smallest up:
// nanoseconds (with 6 decimals), microseconds, milliseconds, seconds, minutes
// and hours (all with 3 decimals).
func FormatDuration(d time.Duration) string {
	seconds := d.Seconds()

	var (
		value    float64
		unit     string
		decimals int
	)
	switch {
	case seconds < 1e-6:
		value, unit, decimals = seconds*1e9, "ns", 6
	case seconds < 1e-3:
		value, unit, decimals = seconds*1e6, "µs", 3
	case seconds < 1:
		value, unit, decimals = seconds*1e3, "ms", 3
	case seconds < 60:
		value, unit, decimals = seconds, "s", 3
	case seconds < 3600:
		value, unit, decimals = seconds/60, "m", 3
	default:
		value, unit, decimals = seconds/3600, "h", 3
	}

	return fmt.Sprintf("%.*f %s", decimals, value, unit)
}

// Elapsed returns "Took <duration> for <message>" for the time passed since
// the given start point.
func Elapsed(message string, since time.Time) string {
	return ElapsedBetween(message, since, time.Now())
}

// ElapsedBetween returns "Took <duration> for <message>" for the time passed
// between two points.
func ElapsedBetween(message string, start, end time.Time) string {
	return fmt.Sprintf("Took %s for %s", FormatDuration(end.Sub(start)), message)
}
