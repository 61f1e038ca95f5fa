package permute

import (
	"cmp"
	"slices"
)

// Lexicographic enumerates permutations in ascending lexicographic order.
//
// The input is copied and sorted, then repeatedly advanced to the next
// lexicographic arrangement (find the longest non-increasing suffix, swap
// its pivot with the rightmost larger element, reverse the suffix) until
// the fully descending arrangement has been emitted.
//
// With distinct elements this yields exactly n! permutations. With
// duplicate-valued elements it merges repeats: each distinct
// value-arrangement is emitted exactly once, n! / ∏(mᵢ!) in total for
// duplicate groups of multiplicity mᵢ. This is the only algorithm in the
// package with value-level rather than position-level semantics, which
// makes it the natural oracle for the others.
func Lexicographic[E cmp.Ordered, C any](elems []E, visit Visitor[E, C], ctx C) error {
	a := slices.Clone(elems)
	slices.Sort(a)
	for {
		visit(a, ctx)
		if !nextPerm(a) {
			return nil
		}
	}
}

// nextPerm rearranges a into its lexicographic successor, reporting false
// when a is already the final (fully descending) arrangement.
func nextPerm[E cmp.Ordered](a []E) bool {
	k := len(a) - 2
	for k >= 0 && a[k] >= a[k+1] {
		k--
	}
	if k < 0 {
		return false
	}
	l := len(a) - 1
	for a[l] <= a[k] {
		l--
	}
	a[k], a[l] = a[l], a[k]
	slices.Reverse(a[k+1:])
	return true
}
