package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mfranke/bridgecross/pkg/buildinfo"
)

// appName is the application name used for display and completions.
const appName = "bridgecross"

// Execute runs the bridgecross CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (solve, viz,
// scenarios, completion), configures logging based on the --verbose flag,
// and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Bridgecross solves the night bridge crossing puzzle",
		Long:         `Bridgecross finds minimum-time crossing plans for the classic night bridge puzzle: a group shares one umbrella, at most two people cross at once, and every trip takes as long as its slowest member. Two independent solvers (Dijkstra-style priority queue and depth-first branch-and-bound) verify each other's optimum.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newVizCmd())
	root.AddCommand(newScenariosCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
