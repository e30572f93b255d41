package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/monolog/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the current version of monolog`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
