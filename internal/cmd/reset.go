package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <name>",
	Short: "Reset an exercise to its original state",
	Args:  cobra.ExactArgs(1),
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	state, err := loadState()
	if err != nil {
		return err
	}

	ind, err := state.ExerciseInd(args[0])
	if err != nil {
		return err
	}
	if err := state.ResetExercise(ind); err != nil {
		return err
	}

	fmt.Printf("The exercise %s has been reset\n", args[0])
	return nil
}
