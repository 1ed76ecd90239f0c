package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd is the entry point when gresta is called without a
// subcommand.
var rootCmd = &cobra.Command{
	Use:   "gresta",
	Short: "Explore directed graphs: routes, traversals, orderings, shapes",
	Long: `gresta demonstrates the graph library on small worked scenarios:

  route      cheapest commute on a weighted road map (Dijkstra)
  traverse   level-order or depth-first walk of a dependency tree
  topo       topological schedule of a build pipeline (Kahn)
  generate   deterministic graph shapes from the builder package`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
}

// configureLogging installs the process-wide text handler. Quiet by
// default so tables stay clean; --verbose opens the debug level.
func configureLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// Execute runs the root command and exits nonzero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
