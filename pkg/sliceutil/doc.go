/*
Package sliceutil provides slice helpers for fixed-size slide buffers,
co-sorting of parallel slices and run detection.

# Slide Buffers

PushFront and PushBack treat a slice as a fixed-size buffer: new values are
inserted at one end, existing values slide over, and the oldest values fall
off the other end. Both operate in place without allocating:

	buf := make([]float64, 8)
	sliceutil.PushBack(buf, sample)

# Co-Sorting

Measurement data often lives in parallel slices (timestamps, values, labels)
that must be reordered together. SortOrder returns the permutation that sorts
a key slice, Apply reorders any slice by a permutation, and SortTogether
combines the two for the common two-slice case:

	times, values := sliceutil.SortTogether(times, values, false)

SortRowsBy reorders the rows of a two-dimensional slice by one column while
keeping every row intact.

# Runs

Runs finds the half-open index ranges of consecutive occurrences of a value,
which is the usual first step for locating gaps or bursts in sampled data.
*/
package sliceutil
