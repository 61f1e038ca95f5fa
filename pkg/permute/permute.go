package permute

import (
	"cmp"

	"github.com/matzehuels/permgen/pkg/errors"
)

// Visitor is invoked once per generated permutation.
//
// The perm slice is a view into the generator's working buffer and is only
// valid for the duration of the call: the generator may rearrange the
// buffer immediately after the visitor returns. Copy the slice (e.g. with
// slices.Clone) before retaining it.
//
// The ctx value is the caller-supplied context passed to the generator,
// threaded through unchanged on every invocation. Generators never inspect
// it; a typical use is a counter or other accumulator.
type Visitor[E cmp.Ordered, C any] func(perm []E, ctx C)

// Generator is the signature shared by all five enumeration algorithms.
//
// A Generator invokes visit exactly n! times for n input elements (0! is 1,
// so the empty input yields exactly one visit with an empty permutation),
// synchronously on the calling goroutine, and returns only after the
// enumeration has run to completion. The input slice is never modified.
type Generator[E cmp.Ordered, C any] func(elems []E, visit Visitor[E, C], ctx C) error

// Algorithm names a permutation generation strategy.
type Algorithm string

// The available algorithms.
const (
	// AlgorithmLex is lexicographic next-permutation stepping. Unlike the
	// other algorithms it sorts its working copy first and merges
	// duplicate-valued arrangements, so with repeated input elements it
	// emits each distinct value-arrangement exactly once.
	AlgorithmLex Algorithm = "lex"

	// AlgorithmInsertion builds permutations of n elements by inserting
	// the n-th element into every position of the permutations of n-1.
	AlgorithmInsertion Algorithm = "insertion"

	// AlgorithmPlain is plain-changes (Algorithm P): successive
	// permutations differ by exactly one adjacent-value transposition.
	AlgorithmPlain Algorithm = "plain"

	// AlgorithmHeap is Heap's algorithm, recursive form.
	AlgorithmHeap Algorithm = "heap"

	// AlgorithmHeapIter is Heap's algorithm restated with a counter array
	// instead of recursion. Emission order is identical to AlgorithmHeap.
	AlgorithmHeapIter Algorithm = "heap-iter"
)

// Algorithms returns all algorithm names in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmLex,
		AlgorithmInsertion,
		AlgorithmPlain,
		AlgorithmHeap,
		AlgorithmHeapIter,
	}
}

// ByName resolves an algorithm selector to its Generator.
// Unrecognized names return an error with code UNKNOWN_ALGORITHM.
func ByName[E cmp.Ordered, C any](name string) (Generator[E, C], error) {
	switch Algorithm(name) {
	case AlgorithmLex:
		return Lexicographic[E, C], nil
	case AlgorithmInsertion:
		return Insertion[E, C], nil
	case AlgorithmPlain:
		return PlainChanges[E, C], nil
	case AlgorithmHeap:
		return HeapRecursive[E, C], nil
	case AlgorithmHeapIter:
		return HeapIterative[E, C], nil
	}
	return nil, errors.New(errors.ErrCodeUnknownAlgorithm, "unknown algorithm %q (valid: %v)", name, Algorithms())
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// Note that factorials grow extremely fast: 13! = 6,227,020,800 exceeds
// 32-bit int.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}
