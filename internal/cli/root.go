// Package cli implements the orbitals command-line interface.
//
// The CLI replays scripted branch-and-bound scenarios through the orbital
// propagator: a TOML file describes variables, symmetry components and a
// sequence of search-tree nodes with their branching decisions and
// propagation results; the run command walks the nodes in order, invokes
// propagation at each, and reports the bound reductions found.
//
// # Commands
//
//   - run: replay a scenario file and report per-node reductions
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the orbitals CLI and returns an error if any command fails.
//
// Logging goes to stderr at info level by default, debug with --verbose;
// scenario results go to stdout.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "orbitals",
		Short:        "orbitals replays symmetry propagation over scripted search trees",
		Long:         `orbitals drives orbital reduction over a scripted branch-and-bound scenario: a TOML file lists variables, permutation symmetries and search-tree nodes, and the tool reports the bound reductions symmetry alone can deduce at each node.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRunCmd())

	return root.ExecuteContext(context.Background())
}
