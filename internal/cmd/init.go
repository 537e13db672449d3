package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drillhq/drill/internal/embedded"
	"github.com/drillhq/drill/internal/exercise"
	"github.com/drillhq/drill/internal/i18n"
)

const workspaceDir = "drill"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up the exercise directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(workspaceDir); err == nil {
			return fmt.Errorf("the directory %s already exists", workspaceDir)
		}
		if err := embedded.WriteWorkspace(workspaceDir); err != nil {
			return fmt.Errorf("set up the exercise directory: %w", err)
		}

		if info, err := exercise.ParseInfo(embedded.InfoTOML()); err == nil && info.WelcomeMessage != "" {
			fmt.Println(info.WelcomeMessage)
			fmt.Println()
		}
		fmt.Println(i18n.T("init.done", "Initialized the `drill` directory. Run `cd drill` and then `drill` to get started."))
		return nil
	},
}
