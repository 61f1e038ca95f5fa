package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permgen/pkg/permute"
	"github.com/matzehuels/permgen/pkg/stepgraph"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	algorithm string // algorithm whose walk to render
	output    string // SVG output path
	dotOnly   bool   // print DOT to stdout instead of rendering SVG
}

// newGraphCmd creates the graph command, a debug tool that renders the
// walk one algorithm takes through arrangement space.
func newGraphCmd() *cobra.Command {
	opts := graphOpts{algorithm: "plain", output: "walk.svg"}

	cmd := &cobra.Command{
		Use:   "graph [elements...]",
		Short: "Render an enumeration walk as DOT or SVG (debug tool)",
		Long: `Render the ordered walk one algorithm takes through arrangement space:
one node per arrangement, one numbered edge per step.

For the plain algorithm every edge is a single adjacent-value
transposition, which makes the minimal-change property visible. Node
count equals the number of permutations, so keep inputs small.`,
		Example: `  # The plain-changes walk over three elements
  permgen graph a b c -o walk.svg

  # Heap's walk as DOT on stdout
  permgen graph --dot -a heap a b c d`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm, "algorithm whose walk to render")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "SVG output file")
	cmd.Flags().BoolVar(&opts.dotOnly, "dot", false, "print DOT to stdout instead of rendering SVG")

	return cmd
}

func runGraph(opts graphOpts, elems []string) error {
	g, err := permute.ByName[string, any](opts.algorithm)
	if err != nil {
		return err
	}

	steps, err := permute.Collect(g, elems)
	if err != nil {
		return err
	}

	dot, err := stepgraph.ToDOT(steps)
	if err != nil {
		return err
	}

	if opts.dotOnly {
		fmt.Print(dot)
		return nil
	}

	svg, err := stepgraph.RenderSVG(dot)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := os.WriteFile(opts.output, svg, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	printSuccess("Walk rendered: %d arrangements, %d steps", len(steps), len(steps)-1)
	printFile(opts.output)
	return nil
}
