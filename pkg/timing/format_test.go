package timing

import (
	"strings"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"Nanoseconds", 500 * time.Nanosecond, "500.000000 ns"},
		{"Single nanosecond", time.Nanosecond, "1.000000 ns"},
		{"Microseconds", 55 * time.Microsecond, "55.000 µs"},
		{"Milliseconds", 5500 * time.Microsecond, "5.500 ms"},
		{"Just below a second", 999200 * time.Microsecond, "999.200 ms"},
		{"Seconds", 1234 * time.Millisecond, "1.234 s"},
		{"Just below a minute", 59*time.Second + 900*time.Millisecond, "59.900 s"},
		{"Minutes", 90 * time.Second, "1.500 m"},
		{"Hours", 2*time.Hour + 45*time.Minute, "2.750 h"},
		{"Zero", 0, "0.000000 ns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestElapsedBetween(t *testing.T) {
	start := time.Now()
	end := start.Add(250 * time.Millisecond)

	got := ElapsedBetween("loading channels", start, end)
	want := "Took 250.000 ms for loading channels"
	if got != want {
		t.Errorf("ElapsedBetween() = %q, want %q", got, want)
	}
}

func TestElapsed(t *testing.T) {
	got := Elapsed("a quick operation", time.Now())
	if !strings.HasPrefix(got, "Took ") || !strings.HasSuffix(got, " for a quick operation") {
		t.Errorf("Elapsed() = %q, want \"Took ... for a quick operation\"", got)
	}
}
