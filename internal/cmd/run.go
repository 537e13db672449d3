package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drillhq/drill/internal/i18n"
)

var runCmd = &cobra.Command{
	Use:   "run [name]",
	Short: "Run a single exercise without watching",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
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
	ex := &state.Exercises()[ind]

	var out bytes.Buffer
	success, err := state.RunExercise(cmd.Context(), ind, &out)
	if err != nil {
		return err
	}
	os.Stdout.Write(out.Bytes())

	if !success {
		if err := state.SetPending(ind); err != nil {
			return err
		}
		return errors.New(i18n.Tf("run.failure", "Exercise `%s` failed. Try again!", ex.Name))
	}

	if err := state.MarkDone(ind); err != nil {
		return err
	}
	fmt.Println(i18n.Tf("run.success", "Exercise `%s` passed ✓", ex.Name))
	return nil
}
