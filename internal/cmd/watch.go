package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drillhq/drill/internal/app"
	"github.com/drillhq/drill/internal/exercise"
	"github.com/drillhq/drill/internal/list"
	"github.com/drillhq/drill/internal/term"
	"github.com/drillhq/drill/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch exercise files and rerun them on change",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	state, err := loadState()
	if err != nil {
		return err
	}

	out := os.Stdout
	if !term.IsTerminal(out) {
		return errors.New("watch mode requires a terminal")
	}

	restore, err := term.EnableCbreak(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("prepare the terminal: %w", err)
	}
	defer func() {
		if restore != nil {
			restore()
		}
	}()

	for {
		exit, err := watch.Run(cmd.Context(), watch.Options{
			Tracker:   state,
			Root:      ".",
			Exercises: state.Exercises(),
			ManualRun: manualRun,
			Out:       out,
			In:        os.Stdin,
		})
		if err != nil {
			return err
		}
		if exit == watch.ExitShutdown {
			return nil
		}

		// The list runs its own terminal handling, so hand the terminal
		// back before and take it again after.
		if err := restore(); err != nil {
			restore = nil
			return fmt.Errorf("restore the terminal: %w", err)
		}
		restore = nil

		if err := list.Show(state); err != nil {
			return err
		}

		restore, err = term.EnableCbreak(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("prepare the terminal: %w", err)
		}
	}
}

// loadState loads progress for the exercise directory the user is in.
func loadState() (*app.State, error) {
	if _, err := os.Stat(exercise.InfoFile); err != nil {
		return nil, fmt.Errorf("%s not found; run `drill init` and `cd drill` first", exercise.InfoFile)
	}
	return app.Load(".", &exercise.ExecRunner{Dir: "."})
}
