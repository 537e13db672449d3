// Package cmd provides the CLI commands for drill.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/drillhq/drill/internal/applog"
	"github.com/drillhq/drill/internal/i18n"
	"github.com/drillhq/drill/internal/version"
)

// global flags
var (
	logPath   string
	manualRun bool
)

// rootCmd is the root command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "drill",
	Short: "Small exercises to get you used to reading and writing Go code",
	Long: `drill walks you through a set of broken Go exercises. Fix an
exercise, save the file, and drill verifies it and moves you along.

Running without a subcommand starts watch mode in the current exercise
directory.

Commands:
  init    Set up the exercise directory
  watch   Watch exercise files and rerun on change (default)
  run     Run a single exercise without watching
  reset   Reset an exercise to its original state
  hint    Show the hint of an exercise
  list    Show the interactive exercise list

Examples:
  drill init                      # Create the drill/ directory
  drill                           # Start watch mode
  drill run variables1            # Run one exercise
  drill hint                      # Hint for the current exercise`,
	Version:       version.Get(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		i18n.Init(i18n.ResolveLocale())
		if logPath != "" {
			return applog.Init(logPath)
		}
		return nil
	},
	RunE: runWatch,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write debug log to file")

	watchCmd.Flags().BoolVar(&manualRun, "manual-run", false, "run exercises only on r instead of on every file change")
	// Also on root since it starts watch mode directly.
	rootCmd.Flags().BoolVar(&manualRun, "manual-run", false, "run exercises only on r instead of on every file change")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}
