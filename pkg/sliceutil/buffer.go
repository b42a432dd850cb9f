package sliceutil

import "golang.org/x/exp/constraints"

// Integer is the constraint for IsSequential elements.
type Integer = constraints.Integer

// PushFront inserts values at the front of the buffer (index 0), sliding the
// existing values towards the back and discarding those that fall off the
// end. The buffer is modified in place and returned; no allocation happens.
// When more values are given than the buffer holds, the buffer ends up with
// the first len(buf) values.
func PushFront[S ~[]E, E any](buf S, values ...E) S {
	n := len(values)
	if n == 0 || len(buf) == 0 {
		return buf
	}
	if n >= len(buf) {
		copy(buf, values[:len(buf)])
		return buf
	}
	copy(buf[n:], buf[:len(buf)-n])
	copy(buf[:n], values)
	return buf
}

// PushBack inserts values at the back of the buffer (index len-1), sliding
// the existing values towards the front and discarding those that fall off
// the start. The buffer is modified in place and returned; no allocation
// happens. When more values are given than the buffer holds, the buffer ends
// up with the last len(buf) values.
func PushBack[S ~[]E, E any](buf S, values ...E) S {
	n := len(values)
	if n == 0 || len(buf) == 0 {
		return buf
	}
	if n >= len(buf) {
		copy(buf, values[n-len(buf):])
		return buf
	}
	copy(buf[:len(buf)-n], buf[n:])
	copy(buf[len(buf)-n:], values)
	return buf
}

// IsSequential reports whether every element is exactly one greater than its
// predecessor. Empty and single-element slices are sequential.
func IsSequential[E Integer](s []E) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1]+1 {
			return false
		}
	}
	return true
}
