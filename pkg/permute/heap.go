package permute

import (
	"cmp"
	"slices"
)

// HeapRecursive enumerates permutations with Heap's algorithm
// (Heap, B. R. (1963), "Permutations by Interchanges").
//
// The algorithm works in place on a copy of the input: after emitting all
// permutations of the first k-1 positions it swaps position k-1 with a
// fixed partner and recurses again, so every permutation after the first
// is reached by a single transposition — n! arrangements via n!-1 swaps.
// The partner index depends on the parity of k: position 0 when k is odd,
// position i (the loop index) when k is even. Getting that alternation
// wrong still produces n! emissions but with repeats, which is why the
// tests pin this algorithm against [Lexicographic].
//
// Positions are treated as distinguishable, so duplicate-valued inputs
// still produce n! emissions. Recursion depth is proportional to n; use
// [HeapIterative] where that matters.
func HeapRecursive[E cmp.Ordered, C any](elems []E, visit Visitor[E, C], ctx C) error {
	a := slices.Clone(elems)
	if len(a) == 0 {
		visit(a, ctx)
		return nil
	}
	heapPerm(len(a), a, visit, ctx)
	return nil
}

func heapPerm[E cmp.Ordered, C any](k int, a []E, visit Visitor[E, C], ctx C) {
	if k == 1 {
		visit(a, ctx)
		return
	}

	heapPerm(k-1, a, visit, ctx)
	for i := 0; i < k-1; i++ {
		if k&1 == 0 {
			a[i], a[k-1] = a[k-1], a[i]
		} else {
			a[0], a[k-1] = a[k-1], a[0]
		}
		heapPerm(k-1, a, visit, ctx)
	}
}

// HeapIterative is Heap's algorithm without recursion: a counter array of
// length n replaces the call stack, with c[i] tracking how many swaps have
// been performed at level i. The swap parity rule and the emission order
// are identical to [HeapRecursive].
func HeapIterative[E cmp.Ordered, C any](elems []E, visit Visitor[E, C], ctx C) error {
	a := slices.Clone(elems)
	n := len(a)

	visit(a, ctx)

	c := make([]int, n)
	for i := 1; i < n; {
		if c[i] < i {
			if i&1 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			visit(a, ctx)
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}
	return nil
}
