package stepgraph

import (
	"strings"
	"testing"

	"github.com/matzehuels/permgen/pkg/errors"
	"github.com/matzehuels/permgen/pkg/permute"
)

func TestToDOT(t *testing.T) {
	steps, err := permute.Collect(permute.PlainChanges[string, any], []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	dot, err := ToDOT(steps)
	if err != nil {
		t.Fatalf("ToDOT error: %v", err)
	}

	if !strings.HasPrefix(dot, "digraph Walk {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}

	// 6 permutations, 5 steps between them.
	if got := strings.Count(dot, "->"); got != 5 {
		t.Errorf("edge count = %d, want 5", got)
	}
	for _, node := range []string{`"a b c"`, `"c b a"`} {
		if !strings.Contains(dot, node) {
			t.Errorf("missing node %s", node)
		}
	}
	if !strings.Contains(dot, `label="1"`) {
		t.Error("missing step label on first edge")
	}
}

func TestToDOT_DeduplicatesNodes(t *testing.T) {
	// Duplicate-valued elements make distinct position-arrangements share
	// a label; nodes collapse, edges remain per step.
	steps, err := permute.Collect(permute.HeapIterative[string, any], []string{"a", "a"})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	dot, err := ToDOT(steps)
	if err != nil {
		t.Fatalf("ToDOT error: %v", err)
	}
	if got := strings.Count(dot, `"a a"`); got != 3 { // 1 node + 1 edge (two endpoints)
		t.Errorf(`"a a" appears %d times, want 3`, got)
	}
}

func TestToDOT_RefusesLongWalks(t *testing.T) {
	steps := make([][]string, MaxSteps+1)
	for i := range steps {
		steps[i] = []string{"x"}
	}

	_, err := ToDOT(steps)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestToDOT_EmptyWalk(t *testing.T) {
	dot, err := ToDOT(nil)
	if err != nil {
		t.Fatalf("ToDOT(nil) error: %v", err)
	}
	if strings.Count(dot, "->") != 0 {
		t.Errorf("empty walk should have no edges:\n%s", dot)
	}
}
