package sliceutil

import (
	"cmp"
	"fmt"
	"sort"
)

// SortOrder returns the permutation that sorts keys in ascending (or, with
// reverse, descending) order. Equal keys keep their original relative order.
// The keys themselves are not touched.
func SortOrder[E cmp.Ordered](keys []E, reverse bool) []int {
	perm := make([]int, len(keys))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		if reverse {
			return keys[perm[j]] < keys[perm[i]]
		}
		return keys[perm[i]] < keys[perm[j]]
	})
	return perm
}

// Apply returns a copy of s reordered by the permutation: element i of the
// result is s[perm[i]]. The permutation and the slice must have the same
// length.
func Apply[E any](perm []int, s []E) ([]E, error) {
	if len(perm) != len(s) {
		return nil, fmt.Errorf("permutation length %d does not match slice length %d", len(perm), len(s))
	}
	out := make([]E, len(s))
	for i, p := range perm {
		if p < 0 || p >= len(s) {
			return nil, fmt.Errorf("permutation index %d out of range [0, %d)", p, len(s))
		}
		out[i] = s[p]
	}
	return out, nil
}

// SortTogether returns sorted copies of keys and with, both reordered by the
// sort order of keys. The inputs are left untouched. The slices must have the
// same length.
func SortTogether[K cmp.Ordered, V any](keys []K, with []V, reverse bool) ([]K, []V, error) {
	if len(keys) != len(with) {
		return nil, nil, fmt.Errorf("slice lengths differ: %d keys, %d values", len(keys), len(with))
	}
	perm := SortOrder(keys, reverse)
	sortedKeys, err := Apply(perm, keys)
	if err != nil {
		return nil, nil, err
	}
	sortedWith, err := Apply(perm, with)
	if err != nil {
		return nil, nil, err
	}
	return sortedKeys, sortedWith, nil
}

// SortRowsBy returns a copy of rows reordered so that the given column is
// sorted; each row is moved as a whole. Every row must be long enough to
// contain the column.
func SortRowsBy[E cmp.Ordered](rows [][]E, column int, reverse bool) ([][]E, error) {
	if column < 0 {
		return nil, fmt.Errorf("negative column index %d", column)
	}
	keys := make([]E, len(rows))
	for i, row := range rows {
		if column >= len(row) {
			return nil, fmt.Errorf("row %d has %d columns, need column %d", i, len(row), column)
		}
		keys[i] = row[column]
	}
	return Apply(SortOrder(keys, reverse), rows)
}
