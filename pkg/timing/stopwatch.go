package timing

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Stopwatch measures elapsed time and laps. It is safe for concurrent use.
type Stopwatch struct {
	mu    sync.Mutex
	start time.Time
	lap   time.Time
}

// NewStopwatch returns a stopwatch started at the current time.
func NewStopwatch() *Stopwatch {
	now := time.Now()
	return &Stopwatch{start: now, lap: now}
}

// Reset restarts the stopwatch, clearing both the start and the lap point.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.start = now
	s.lap = now
}

// Elapsed returns the time passed since the stopwatch was started or last
// reset.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.start)
}

// Lap returns "Took <duration> for <message>" for the time passed since the
// previous lap (or the start) and advances the lap point.
func (s *Stopwatch) Lap(message string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	line := ElapsedBetween(message, s.lap, now)
	s.lap = now
	return line
}

// LogElapsed logs "Took <duration> for <message>" at info level and returns
// the current time, so the caller can use the return value as the start point
// of the next measurement without counting the logging overhead.
func LogElapsed(log logrus.FieldLogger, message string, since time.Time) time.Time {
	log.Info(Elapsed(message, since))
	return time.Now()
}

// Process-wide reference point, marked at package initialization.
var (
	refMu sync.Mutex
	ref   = time.Now()
)

// ResetReference re-marks the package reference point at the current time.
func ResetReference() {
	refMu.Lock()
	defer refMu.Unlock()
	ref = time.Now()
}

// SinceReference returns the time passed since the package reference point,
// that is since package initialization or the last ResetReference call.
func SinceReference() time.Duration {
	refMu.Lock()
	defer refMu.Unlock()
	return time.Since(ref)
}
