package timing

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopwatchElapsed(t *testing.T) {
	sw := NewStopwatch()
	time.Sleep(10 * time.Millisecond)

	elapsed := sw.Elapsed()
	assert.GreaterOrEqual(t, elapsed, 10*time.Millisecond)

	sw.Reset()
	assert.Less(t, sw.Elapsed(), elapsed)
}

func TestStopwatchLapAdvances(t *testing.T) {
	sw := NewStopwatch()
	time.Sleep(5 * time.Millisecond)

	first := sw.Lap("first step")
	require.True(t, strings.HasPrefix(first, "Took "))
	require.True(t, strings.HasSuffix(first, " for first step"))

	// The lap point moved, so an immediate second lap is close to zero.
	second := sw.Lap("second step")
	assert.Contains(t, second, " for second step")
	assert.NotContains(t, second, " s for second step")
}

func TestLogElapsed(t *testing.T) {
	logger, hook := test.NewNullLogger()

	start := time.Now().Add(-100 * time.Millisecond)
	next := LogElapsed(logger, "fetching data", start)

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.True(t, strings.HasPrefix(entry.Message, "Took "))
	assert.True(t, strings.HasSuffix(entry.Message, " for fetching data"))

	// The returned time excludes the logging overhead.
	assert.True(t, next.After(start))
}

func TestReference(t *testing.T) {
	ResetReference()
	time.Sleep(2 * time.Millisecond)
	assert.GreaterOrEqual(t, SinceReference(), 2*time.Millisecond)

	before := SinceReference()
	ResetReference()
	assert.Less(t, SinceReference(), before)
}
