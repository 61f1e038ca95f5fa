package permute

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/matzehuels/permgen/pkg/errors"
)

// distinctElems returns n distinct string elements.
func distinctElems(n int) []string {
	elems := make([]string, n)
	for i := range elems {
		elems[i] = strconv.Itoa(i)
	}
	return elems
}

// collect materializes all permutations of elems under the named algorithm.
func collect(t *testing.T, algo Algorithm, elems []string) [][]string {
	t.Helper()
	g, err := ByName[string, any](string(algo))
	if err != nil {
		t.Fatalf("ByName(%q) error: %v", algo, err)
	}
	perms, err := Collect(g, elems)
	if err != nil {
		t.Fatalf("Collect(%q) error: %v", algo, err)
	}
	return perms
}

func joined(perms [][]string) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = strings.Join(p, "")
	}
	return out
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 6},
		{5, 120},
		{10, 3628800},
		{12, 479001600},
	}

	for _, tt := range tests {
		if got := Factorial(tt.n); got != tt.expected {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.expected)
		}
	}
}

func TestVisitCountIsFactorial(t *testing.T) {
	for _, algo := range Algorithms() {
		for n := 0; n <= 6; n++ {
			g, err := ByName[string, *int](string(algo))
			if err != nil {
				t.Fatalf("ByName(%q) error: %v", algo, err)
			}

			// Count through the user context, the way a caller would.
			count := 0
			err = g(distinctElems(n), func(p []string, c *int) {
				if len(p) != n {
					t.Errorf("%s n=%d: view length %d", algo, n, len(p))
				}
				*c++
			}, &count)
			if err != nil {
				t.Fatalf("%s n=%d: error: %v", algo, n, err)
			}

			if count != Factorial(n) {
				t.Errorf("%s n=%d: %d visits, want %d", algo, n, count, Factorial(n))
			}
		}
	}
}

func TestEmptyAndSingleElementConvention(t *testing.T) {
	// All five variants agree: n=0 emits one empty permutation,
	// n=1 emits the element once.
	for _, algo := range Algorithms() {
		if got := collect(t, algo, nil); len(got) != 1 || len(got[0]) != 0 {
			t.Errorf("%s n=0: got %v, want one empty permutation", algo, got)
		}
		got := collect(t, algo, []string{"x"})
		if len(got) != 1 || !slices.Equal(got[0], []string{"x"}) {
			t.Errorf("%s n=1: got %v, want [[x]]", algo, got)
		}
	}
}

func TestAgainstLexicographicOracle(t *testing.T) {
	// The concrete scenario from the package's acceptance checklist:
	// five distinct elements, deliberately unsorted.
	elems := []string{"5", "1", "2", "3", "4"}

	expected := joined(collect(t, AlgorithmLex, elems))
	if len(expected) != 120 {
		t.Fatalf("oracle emitted %d permutations, want 120", len(expected))
	}
	if !slices.IsSorted(expected) {
		t.Fatal("oracle output not in lexicographic order")
	}

	for _, algo := range Algorithms()[1:] {
		got := joined(collect(t, algo, elems))
		if len(got) != 120 {
			t.Errorf("%s: emitted %d permutations, want 120", algo, len(got))
			continue
		}

		sorted := slices.Clone(got)
		slices.Sort(sorted)
		if uniq := slices.Compact(slices.Clone(sorted)); len(uniq) != len(got) {
			t.Errorf("%s: emitted %d duplicates", algo, len(got)-len(uniq))
		}
		if !slices.Equal(sorted, expected) {
			t.Errorf("%s: sorted output differs from oracle", algo)
		}
	}
}

func TestDuplicateElements(t *testing.T) {
	elems := []string{"a", "a", "b"}

	// Lexicographic has value-level semantics: each distinct
	// value-arrangement exactly once.
	lex := joined(collect(t, AlgorithmLex, elems))
	if want := []string{"aab", "aba", "baa"}; !slices.Equal(lex, want) {
		t.Errorf("lex: got %v, want %v", lex, want)
	}

	// The other four treat positions as distinguishable: 3! emissions,
	// each distinct value-arrangement appearing exactly twice.
	for _, algo := range Algorithms()[1:] {
		got := joined(collect(t, algo, elems))
		if len(got) != 6 {
			t.Errorf("%s: emitted %d permutations, want 6", algo, len(got))
			continue
		}
		counts := map[string]int{}
		for _, p := range got {
			counts[p]++
		}
		for _, v := range lex {
			if counts[v] != 2 {
				t.Errorf("%s: arrangement %q emitted %d times, want 2", algo, v, counts[v])
			}
		}
	}
}

func TestPlainChangesSingleTransposition(t *testing.T) {
	perms := collect(t, AlgorithmPlain, distinctElems(5))

	for i := 1; i < len(perms); i++ {
		prev, cur := perms[i-1], perms[i]
		var diff []int
		for j := range cur {
			if prev[j] != cur[j] {
				diff = append(diff, j)
			}
		}
		if len(diff) != 2 || prev[diff[0]] != cur[diff[1]] || prev[diff[1]] != cur[diff[0]] {
			t.Fatalf("step %d: %v -> %v is not a single transposition", i, prev, cur)
		}
	}
}

func TestHeapVariantsEmitIdenticalOrder(t *testing.T) {
	elems := distinctElems(5)
	rec := joined(collect(t, AlgorithmHeap, elems))
	iter := joined(collect(t, AlgorithmHeapIter, elems))
	if !slices.Equal(rec, iter) {
		t.Error("heap and heap-iter emission orders differ")
	}
}

func TestInputNeverMutated(t *testing.T) {
	elems := []string{"c", "a", "b", "d"}
	orig := slices.Clone(elems)
	for _, algo := range Algorithms() {
		collect(t, algo, elems)
		if !slices.Equal(elems, orig) {
			t.Fatalf("%s mutated its input: %v", algo, elems)
		}
	}
}

func TestCollectReturnsOwnedCopies(t *testing.T) {
	perms := collect(t, AlgorithmHeapIter, []string{"a", "b", "c"})
	perms[0][0] = "mutated"
	for _, p := range perms[1:] {
		if slices.Contains(p, "mutated") {
			t.Fatal("Collect entries alias each other")
		}
	}
}

func TestByNameUnknownAlgorithm(t *testing.T) {
	g, err := ByName[string, any]("quantum")
	if g != nil {
		t.Error("expected nil generator for unknown name")
	}
	if !errors.Is(err, errors.ErrCodeUnknownAlgorithm) {
		t.Errorf("expected UNKNOWN_ALGORITHM, got %v", err)
	}
}

func TestCheckPlainSize(t *testing.T) {
	if err := checkPlainSize(12); err != nil {
		t.Errorf("checkPlainSize(12) = %v, want nil", err)
	}

	if strconv.IntSize < 64 {
		t.Skip("cannot represent an over-limit length on this platform")
	}
	n := plainMax
	n++
	if err := checkPlainSize(n); !errors.Is(err, errors.ErrCodeSizeExceeded) {
		t.Errorf("checkPlainSize(%d) = %v, want SIZE_EXCEEDED", n, err)
	}
}
