package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permgen/pkg/permute"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	algorithm string // algorithm selector ("" means config default)
	countOnly bool   // print only the number of permutations
	sep       string // separator between elements on each output line
	sepSet    bool   // whether --sep was given explicitly
}

// newRunCmd creates the run command, the primary enumeration entry point.
// Elements are positional arguments; zero elements is valid and yields the
// single empty permutation.
func newRunCmd() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run [elements...]",
		Short: "Enumerate permutations of the given elements",
		Long: `Enumerate every permutation of the given elements, printing each one
space-joined on its own line, or only the final count with --count.

The lex algorithm sorts first and merges duplicate-valued arrangements;
the other algorithms treat positions as distinguishable and always emit
n! permutations.`,
		Example: `  # All 6 orderings of three elements
  permgen run a b c

  # Just count them, using Heap's algorithm
  permgen run -a heap-iter -c 1 2 3 4 5 6 7 8

  # Minimal-change order, comma-joined
  permgen run -a plain --sep , x y z`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.sepSet = cmd.Flags().Changed("sep")
			return runEnumerate(cmd.Context(), cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", fmt.Sprintf("permutation algorithm %v (default from config)", permute.Algorithms()))
	cmd.Flags().BoolVarP(&opts.countOnly, "count", "c", false, "print only the number of permutations")
	cmd.Flags().StringVar(&opts.sep, "sep", " ", "separator between elements on each line")

	return cmd
}

// runEnumerate resolves options against the config file, runs the selected
// generator, and streams each permutation to w.
//
// The permutation count is accumulated through the generator's user
// context rather than a captured variable, exercising the same pass-through
// path library callers use.
func runEnumerate(ctx context.Context, w io.Writer, opts runOpts, elems []string) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	algo := opts.algorithm
	if algo == "" {
		algo = cfg.Algorithm
	}
	sep := cfg.Separator
	if opts.sepSet {
		sep = opts.sep
	}

	g, err := permute.ByName[string, *int64](algo)
	if err != nil {
		return err
	}
	logger.Debugf("algorithm=%s elements=%d", algo, len(elems))

	out := bufio.NewWriter(w)
	var count int64
	visit := func(p []string, n *int64) {
		*n++
		if !opts.countOnly {
			out.WriteString(strings.Join(p, sep))
			out.WriteByte('\n')
		}
	}

	prog := newProgress(logger)
	if err := g(elems, visit, &count); err != nil {
		return err
	}
	if opts.countOnly {
		fmt.Fprintln(out, count)
	}
	if err := out.Flush(); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Enumerated %d permutations", count))
	return nil
}
