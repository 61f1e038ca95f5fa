package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/permgen/pkg/errors"
	"github.com/matzehuels/permgen/pkg/permute"
)

// benchMaxSize caps the synthetic input length: 12! ≈ 479M callbacks is
// already minutes of work, and 13! overflows what a bench run should do.
const benchMaxSize = 12

// newBenchCmd creates the bench command, which times every algorithm over
// the same synthetic input and renders a comparison table.
func newBenchCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every algorithm over a synthetic input",
		Long: `Run all permutation algorithms over the same n synthetic elements and
print a timing comparison. Counting happens through the callback contract,
so the numbers include callback dispatch, not just swaps.`,
		Example: `  # Compare algorithms over 9 elements (362,880 permutations each)
  permgen bench -n 9`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.Context(), size)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 8, "number of synthetic elements to permute")

	return cmd
}

// benchResult is one algorithm's timing over the bench input.
type benchResult struct {
	algo  permute.Algorithm
	count int64
	total time.Duration
}

func runBench(ctx context.Context, size int) error {
	logger := loggerFromContext(ctx)

	if size < 0 || size > benchMaxSize {
		return errors.New(errors.ErrCodeInvalidInput, "bench size must be between 0 and %d, got %d", benchMaxSize, size)
	}

	elems := make([]string, size)
	for i := range elems {
		elems[i] = strconv.Itoa(i)
	}

	spin := newSpinner(fmt.Sprintf("Benchmarking %d algorithms over %d! permutations...", len(permute.Algorithms()), size))
	spin.Start()

	results := make([]benchResult, 0, len(permute.Algorithms()))
	for _, algo := range permute.Algorithms() {
		g, err := permute.ByName[string, *int64](string(algo))
		if err != nil {
			spin.Stop()
			return err
		}

		var count int64
		start := time.Now()
		if err := g(elems, func(p []string, n *int64) { *n++ }, &count); err != nil {
			spin.Stop()
			return err
		}
		elapsed := time.Since(start)

		logger.Debugf("%s: %d permutations in %s", algo, count, elapsed)
		results = append(results, benchResult{algo: algo, count: count, total: elapsed})
	}
	spin.Stop()

	fmt.Println(benchTable(size, results))
	return nil
}

// benchTable renders the timing results as a lipgloss table.
func benchTable(size int, results []benchResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		perVisit := "—"
		if r.count > 0 {
			perVisit = fmt.Sprintf("%d ns", r.total.Nanoseconds()/r.count)
		}
		rows = append(rows, []string{
			string(r.algo),
			strconv.FormatInt(r.count, 10),
			r.total.Round(time.Microsecond).String(),
			perVisit,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Algorithm", "Permutations", "Total", "Per visit").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return StyleTitle.Render(fmt.Sprintf("n = %d", size)) + "\n" + t.Render()
}
