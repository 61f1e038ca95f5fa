// Package pkg provides the core libraries for permgen permutation
// enumeration.
//
// # Overview
//
// Permgen enumerates every permutation of a sequence of elements using a
// choice of generation algorithms, all streaming through one callback
// contract. The pkg directory is organized into four areas:
//
//  1. [permute] - The algorithms: five generators and the shared output
//     contract ([permute.Visitor], [permute.Generator]), plus the
//     materializing [permute.Collect] adapter.
//  2. [stepgraph] - Graphviz rendering of an enumeration's walk through
//     arrangement space.
//  3. [errors] - Structured error codes shared by the library and CLI.
//  4. [buildinfo] - ldflags-injected version information.
//
// # Quick Start
//
// Stream permutations through a callback:
//
//	import "github.com/matzehuels/permgen/pkg/permute"
//
//	count := 0
//	err := permute.PlainChanges([]string{"a", "b", "c"}, func(p []string, n *int) {
//	    fmt.Println(strings.Join(p, " "))
//	    *n++
//	}, &count)
//
// Or materialize them:
//
//	perms, err := permute.Collect(permute.HeapIterative[string, any], elems)
//
// Select an algorithm by name (the CLI selector path):
//
//	g, err := permute.ByName[string, *int64]("heap-iter")
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...       # All tests
//	go test -run Example    # Examples only
//
// [permute]: https://pkg.go.dev/github.com/matzehuels/permgen/pkg/permute
// [stepgraph]: https://pkg.go.dev/github.com/matzehuels/permgen/pkg/stepgraph
// [errors]: https://pkg.go.dev/github.com/matzehuels/permgen/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/permgen/pkg/buildinfo
package pkg
