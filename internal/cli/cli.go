// Package cli implements the permgen command-line interface.
//
// This package provides commands for enumerating permutations with a
// choice of generation algorithms, benchmarking the algorithms against
// each other, rendering an enumeration's walk as a Graphviz diagram, and
// browsing permutations interactively. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - run: Enumerate permutations of the given elements (or count them)
//   - bench: Time every algorithm over a synthetic input
//   - graph: Render an enumeration walk as DOT or SVG
//   - browse: Page through permutations in a terminal UI
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
//
// # Example
//
//	import "github.com/matzehuels/permgen/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"os"
	"path/filepath"
)

// appName is the application name used for directories and display.
const appName = "permgen"

// configDir returns the configuration directory using the XDG standard
// (~/.config/permgen/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
