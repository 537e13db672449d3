package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/drillhq/drill/internal/term"
)

var hintCmd = &cobra.Command{
	Use:   "hint [name]",
	Short: "Show the hint of an exercise",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHint,
}

func runHint(cmd *cobra.Command, args []string) error {
	state, err := loadState()
	if err != nil {
		return err
	}

	ind := state.CurrentExerciseInd()
	if len(args) == 1 {
		ind, err = state.ExerciseInd(args[0])
		if err != nil {
			return err
		}
	}
	hint := state.Exercises()[ind].Hint

	// Hints are written in markdown. Fall back to the raw text when the
	// renderer cannot be built, e.g. outside a terminal.
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(term.Width(os.Stdout)),
	)
	if err != nil {
		fmt.Println(hint)
		return nil
	}

	rendered, err := r.Render(hint)
	if err != nil {
		fmt.Println(hint)
		return nil
	}
	fmt.Print(rendered)
	return nil
}
