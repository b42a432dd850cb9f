package sliceutil

// Runs returns the half-open index ranges [start, end) of every run of
// consecutive elements equal to v. Ranges are returned in order of
// appearance; a slice without v yields nil.
func Runs[E comparable](s []E, v E) [][2]int {
	var runs [][2]int
	start := -1
	for i, e := range s {
		switch {
		case e == v && start < 0:
			start = i
		case e != v && start >= 0:
			runs = append(runs, [2]int{start, i})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, len(s)})
	}
	return runs
}
