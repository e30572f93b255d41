package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/livp123/monolog/internal/app"
	"github.com/livp123/monolog/internal/tailer"
	"github.com/livp123/monolog/internal/utils/logger"
)

// tailCmd implements the 'tail' command
// tailCmd 实现 'tail' 命令
var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print the sink file, optionally following it",
	// Short: 打印 Sink 文件，可选持续跟随
	Long: `Print the configured sink file. With --follow, keep printing new records
across rotation until interrupted.
打印配置的 Sink 文件。使用 --follow 时持续输出新记录（支持轮转），直到被中断。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		path := app.SinkConfig(cfg).Path
		if path == "" {
			return fmt.Errorf("no sink path configured")
		}

		follow, _ := cmd.Flags().GetBool("follow")
		fromEnd, _ := cmd.Flags().GetBool("new")

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		return tailer.Tail(ctx, path, tailer.Options{Follow: follow, FromEnd: fromEnd}, logger.Get(ctx), func(line string) {
			fmt.Fprintln(out, line)
		})
	},
}

func init() {
	tailCmd.Flags().BoolP("follow", "f", false, "Keep reading as the sink grows")
	tailCmd.Flags().BoolP("new", "n", false, "Start at the end of the file")
	RootCmd.AddCommand(tailCmd)
}
