package permute

import (
	"cmp"
	"slices"
)

// Collect runs g over elems and returns every emitted permutation as an
// owned slice of slices, in emission order.
//
// Each entry is a fresh copy, safe to retain and modify independently of
// the generator's working buffer and of the other entries. Errors from g
// (e.g. SIZE_EXCEEDED from [PlainChanges]) are returned unchanged; Collect
// itself cannot fail.
//
// The result holds n! slices, so Collect is only suitable for small
// inputs; stream through a [Visitor] for anything larger.
func Collect[E cmp.Ordered](g Generator[E, any], elems []E) ([][]E, error) {
	out := make([][]E, 0, Factorial(min(len(elems), 12)))
	err := g(elems, func(p []E, _ any) {
		out = append(out, slices.Clone(p))
	}, nil)
	if err != nil {
		return nil, err
	}
	return out, nil
}
