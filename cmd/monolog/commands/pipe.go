package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/livp123/monolog/internal/app"
	"github.com/livp123/monolog/internal/metrics"
	"github.com/livp123/monolog/internal/utils/logger"
	"github.com/livp123/monolog/pkg/monolog"
)

// pipeCmd implements the 'pipe' command
// pipeCmd 实现 'pipe' 命令
var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Commit each line of stdin as an event",
	// Short: 将标准输入的每一行作为事件提交
	Long: `Read lines from stdin and commit each one as an event linked to a session
event, so all lines of one run share a parent ID. When metrics are enabled the
commit counters are served on /metrics until stdin closes.
从标准输入读取行，每行作为一个事件提交，并链接到同一个会话事件。
启用指标时，在标准输入关闭前通过 /metrics 暴露提交计数。`,
	Args: cobra.NoArgs,
	RunE: runPipe,
}

func runPipe(cmd *cobra.Command, args []string) error {
	cfg, err := loadedConfig()
	if err != nil {
		return err
	}
	severityName, _ := cmd.Flags().GetString("severity")
	severity, err := monolog.ParseLevel(severityName)
	if err != nil {
		return err
	}
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
	if metricsAddr == "" && cfg.Metrics.Enabled {
		metricsAddr = cfg.Metrics.Addr
	}

	log := logger.Get(cmd.Context())
	ctx, err := app.BuildContext(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(ctx) }()

	detach := metrics.Observe(ctx)
	defer detach()

	if metricsAddr != "" {
		server := metrics.Start(metricsAddr, log)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Stop(shutdownCtx); err != nil {
				log.Warn("metrics server shutdown failed", zap.Error(err))
			}
		}()
	}

	session := ctx.NewEvent().SetSeverity(severity).SetMessage("pipe session started")
	ctx.CommitCaller(session)

	// Lines have no length limit; a bufio.Scanner would stop at 64 KiB.
	count := 0
	reader := bufio.NewReader(cmd.InOrStdin())
	for {
		raw, readErr := reader.ReadString('\n')
		if line := strings.TrimRight(raw, "\r\n"); line != "" {
			e := ctx.NewEvent().SetSeverity(severity).SetMessage(line).LinkTo(session)
			ctx.CommitCaller(e)
			count++
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return readErr
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", session.ID(), count)
	return nil
}

func init() {
	pipeCmd.Flags().StringP("severity", "s", monolog.DefaultSeverity.String(), "Severity for every line")
	pipeCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address while running")
	RootCmd.AddCommand(pipeCmd)
}
