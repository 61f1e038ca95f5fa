package permute

import (
	"cmp"
	"math"
	"slices"

	"github.com/matzehuels/permgen/pkg/errors"
)

// plainMax is the largest input length the plain-changes counters accept.
const plainMax = math.MaxInt32

// PlainChanges enumerates permutations in minimal-change order (Knuth's
// Algorithm P, "plain changes"): every successive pair of emitted
// permutations differs by exactly one transposition of two adjacent-value
// elements. That property makes per-permutation consumer updates O(1).
//
// Alongside the working copy it keeps a per-position offset counter and a
// per-position direction, both discarded when the call returns.
//
// Inputs longer than the counter capacity return an error with code
// SIZE_EXCEEDED before any visit is made.
func PlainChanges[E cmp.Ordered, C any](elems []E, visit Visitor[E, C], ctx C) error {
	if err := checkPlainSize(len(elems)); err != nil {
		return err
	}

	a := slices.Clone(elems)
	n := len(a)
	if n == 0 {
		visit(a, ctx)
		return nil
	}

	c := make([]int, n)
	o := make([]int, n)
	for i := range o {
		o[i] = 1
	}

	for {
		visit(a, ctx)
		for s, j := 0, n-1; ; j-- {
			q := c[j] + o[j]
			if q >= 0 {
				if q != j+1 {
					a[j-c[j]+s], a[j-q+s] = a[j-q+s], a[j-c[j]+s]
					c[j] = q
					break
				}
				if j == 0 {
					return nil
				}
				s++
			}
			o[j] = -o[j]
		}
	}
}

// checkPlainSize rejects inputs whose length would overflow the
// plain-changes offset counters.
func checkPlainSize(n int) error {
	if n > plainMax {
		return errors.New(errors.ErrCodeSizeExceeded, "too many elements: %d exceeds plain-changes counter capacity %d", n, plainMax)
	}
	return nil
}
