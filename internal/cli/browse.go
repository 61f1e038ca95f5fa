package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/permgen/pkg/errors"
	"github.com/matzehuels/permgen/pkg/permute"
)

// browseMaxElems caps the interactive view: 7! = 5040 rows is the most a
// terminal pager is useful for.
const browseMaxElems = 7

// newBrowseCmd creates the browse command, an interactive pager over the
// materialized permutations of the given elements.
func newBrowseCmd() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "browse [elements...]",
		Short: "Page through permutations in a terminal UI",
		Long: `Materialize every permutation of the given elements and page through
them interactively. Use arrow keys or j/k to move, q to quit.`,
		Example: `  # Browse the 24 orderings of four elements in minimal-change order
  permgen browse -a plain a b c d`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(algorithm, args)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "lex", "algorithm whose emission order to browse")

	return cmd
}

func runBrowse(algorithm string, elems []string) error {
	if len(elems) > browseMaxElems {
		return errors.New(errors.ErrCodeInvalidInput, "browse supports at most %d elements, got %d", browseMaxElems, len(elems))
	}

	g, err := permute.ByName[string, any](algorithm)
	if err != nil {
		return err
	}
	perms, err := permute.Collect(g, elems)
	if err != nil {
		return err
	}

	m := newBrowseModel(algorithm, perms)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("browse UI: %w", err)
	}
	return nil
}

// List styles
var (
	browseSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browseNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	browseDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseModel is the bubbletea model paging through emitted permutations.
type browseModel struct {
	algorithm string
	perms     [][]string
	cursor    int
	offset    int
	height    int
}

func newBrowseModel(algorithm string, perms [][]string) browseModel {
	return browseModel{
		algorithm: algorithm,
		perms:     perms,
		height:    15,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Height > 4 {
			m.height = msg.Height - 4 // header and footer rows
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.perms)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "home", "g":
			m.cursor, m.offset = 0, 0
		case "end", "G":
			m.cursor = len(m.perms) - 1
			if m.cursor >= m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%d permutations (%s)", len(m.perms), m.algorithm)))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.perms))
	for i := m.offset; i < end; i++ {
		line := strings.Join(m.perms[i], " ")
		num := browseDimStyle.Render(fmt.Sprintf("%*d", len(fmt.Sprint(len(m.perms))), i+1))
		if i == m.cursor {
			b.WriteString(num + " " + browseSelectedStyle.Render("▸ "+line))
		} else {
			b.WriteString(num + "   " + browseNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render(fmt.Sprintf("%d/%d · j/k move · g/G jump · q quit", m.cursor+1, len(m.perms))))
	return b.String()
}
