package permute

import (
	"cmp"
	"slices"
)

// Insertion enumerates permutations by recursion on the sequence length:
// for every permutation of the first n-1 elements, the n-th element is
// inserted at each of the n possible positions, left to right.
//
// Unlike the in-place algorithms, each recursion level assembles its
// output in a fresh buffer, trading allocations for a structure that is
// immediate to prove correct by induction on n.
func Insertion[E cmp.Ordered, C any](elems []E, visit Visitor[E, C], ctx C) error {
	a := slices.Clone(elems)
	insertEach(a, visit, ctx)
	return nil
}

func insertEach[E cmp.Ordered, C any](a []E, visit Visitor[E, C], ctx C) {
	n := len(a)
	if n <= 1 {
		visit(a, ctx)
		return
	}

	newElem := a[n-1]
	insertEach(a[:n-1], func(p []E, c C) {
		// p is a permutation of the first n-1 elements; splice newElem
		// into every gap. The buffer is reused across positions, which is
		// fine: the view contract only spans a single visit call.
		buf := make([]E, 0, n)
		for i := 0; i <= len(p); i++ {
			buf = buf[:0]
			buf = append(buf, p[:i]...)
			buf = append(buf, newElem)
			buf = append(buf, p[i:]...)
			visit(buf, c)
		}
	}, ctx)
}
