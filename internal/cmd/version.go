package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drillhq/drill/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the drill version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String("drill"))
	},
}
