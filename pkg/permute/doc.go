// Package permute enumerates all permutations of a finite ordered sequence
// of elements.
//
// Five interchangeable generation algorithms share one callback-based
// output contract:
//
//   - [Lexicographic]: in-place next-permutation stepping over a sorted
//     copy. The reference implementation the others are tested against.
//   - [Insertion]: recursive insertion of the n-th element into every
//     position of each permutation of the first n-1 elements.
//   - [PlainChanges]: iterative minimal-change generation where every
//     step is exactly one adjacent-value transposition (Knuth's
//     Algorithm P).
//   - [HeapRecursive] and [HeapIterative]: Heap's algorithm, by
//     recursion and by counter array respectively, producing identical
//     emission orders.
//
// Every generator copies its input, so the caller's slice is never
// mutated, and each call owns its working state: two enumerations on
// separate goroutines are safe as long as they do not share a visitor
// accumulator.
//
// The number of permutations grows factorially. 13! already exceeds six
// billion; use [Collect] only for small inputs and prefer streaming
// through a [Visitor] otherwise.
package permute
