package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/livp123/monolog/pkg/monolog"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List severity levels",
	// Short: 列出严重级别
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-8s %-12s %-8s\n", "Ordinal", "Severity", "Zap")
		fmt.Fprintln(out, strings.Repeat("-", 30))
		for _, l := range monolog.AllLevels() {
			marker := ""
			if l == monolog.DefaultSeverity {
				marker = " (default)"
			}
			fmt.Fprintf(out, "%-8d %-12s %-8s%s\n", int(l), l, monolog.ZapLevelName(monolog.ToZapLevel(l)), marker)
		}
	},
}

func init() {
	RootCmd.AddCommand(levelsCmd)
}
