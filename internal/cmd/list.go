package cmd

import (
	"github.com/spf13/cobra"

	"github.com/drillhq/drill/internal/list"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the interactive exercise list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := loadState()
		if err != nil {
			return err
		}
		return list.Show(state)
	},
}
