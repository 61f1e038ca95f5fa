// Package stepgraph renders the walk a permutation generator takes through
// arrangement space as a Graphviz diagram.
//
// Given the ordered permutations one enumeration emitted, it produces a
// DOT digraph with one node per distinct arrangement and one edge per
// step, numbered in emission order. For the plain-changes algorithm the
// result visualizes the minimal-change property: every edge is a single
// transposition.
//
// The node count is the number of permutations, so rendering is only
// sensible for very small inputs; [ToDOT] refuses walks longer than
// [MaxSteps].
package stepgraph

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/permgen/pkg/errors"
)

// MaxSteps is the longest walk ToDOT accepts. 6! keeps the rendered
// graph within what Graphviz lays out in reasonable time.
const MaxSteps = 720

// ToDOT converts an ordered sequence of emitted permutations into a
// Graphviz DOT digraph. Each distinct arrangement becomes one node
// (space-joined label); each enumeration step becomes one edge labeled
// with its step number.
//
// Walks longer than MaxSteps return an error with code INVALID_INPUT.
func ToDOT(steps [][]string) (string, error) {
	if len(steps) > MaxSteps {
		return "", errors.New(errors.ErrCodeInvalidInput, "walk of %d steps exceeds render limit %d", len(steps), MaxSteps)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph Walk {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"SF Mono, Menlo, monospace\", fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10];\n\n")

	seen := make(map[string]bool, len(steps))
	for _, p := range steps {
		label := strings.Join(p, " ")
		if !seen[label] {
			seen[label] = true
			fmt.Fprintf(&buf, "  %q;\n", label)
		}
	}

	buf.WriteString("\n")
	for i := 1; i < len(steps); i++ {
		from := strings.Join(steps[i-1], " ")
		to := strings.Join(steps[i], " ")
		fmt.Fprintf(&buf, "  %q -> %q [label=\"%d\"];\n", from, to, i)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
//
// It requires the Graphviz library (github.com/goccy/go-graphviz) and its
// WASM runtime. Errors are returned if Graphviz cannot initialize, the
// DOT is malformed, or rendering fails.
func RenderSVG(dot string) ([]byte, error) {
	gv, err := graphviz.New(context.Background())
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(context.Background(), g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
