/*
Package timing provides elapsed-time measurement, formatting and progress
reporting helpers.

# Duration Formatting

FormatDuration scales a duration into the most readable unit, from
nanoseconds up to hours:

	timing.FormatDuration(1500 * time.Microsecond) // "1.500 ms"
	timing.FormatDuration(90 * time.Second)        // "1.500 m"

Elapsed and ElapsedBetween wrap it into "Took <duration> for <message>"
lines, and LogElapsed emits the same line through a logrus logger while
returning a fresh reference point for chained measurements:

	t := time.Now()
	t = timing.LogElapsed(log, "loading the index", t)
	t = timing.LogElapsed(log, "building the cache", t)

# Stopwatches

Stopwatch measures laps without the caller threading time points around:

	sw := timing.NewStopwatch()
	doWork()
	fmt.Println(sw.Lap("work")) // "Took 12.345 ms for work"

The package also keeps a process-wide reference point, marked at package
initialization and re-markable with ResetReference, mirroring the common
"time since program start" use.

# Progress Strings

ProgressString renders "HH:MM:SS.mmm - PP.P % (i / n)" style lines for
loop progress reporting, with each part optional:

	timing.ProgressString(start, timing.WithIteration(i, total), timing.WithPostfix(": "))
*/
package timing
