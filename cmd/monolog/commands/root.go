package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/livp123/monolog/internal/config"
	"github.com/livp123/monolog/internal/runtime"
	"github.com/livp123/monolog/internal/utils/logger"
	mlerrors "github.com/livp123/monolog/pkg/errors"
)

var (
	// activeConfig is loaded by PersistentPreRunE for every command.
	activeConfig *config.Config
	// configErr holds a load failure other than a missing file.
	configErr error
)

var RootCmd = &cobra.Command{
	Use:   "monolog",
	Short: "Structured event logging front end",
	// Short: 结构化事件日志前端
	Long: `monolog builds structured log events and commits them to a configured sink.
Events carry a unique ID, an optional parent link, caller information and a severity.
monolog 构建结构化日志事件并提交到配置的 Sink。
事件包含唯一 ID、可选的父事件链接、调用者信息和严重级别。`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration to get diagnostics settings
		// 加载配置以获取诊断日志设置
		cfg, err := config.NewConfigManager(config.GetConfigPath()).LoadOrDefault()
		configErr = nil
		if err != nil && !errors.Is(err, mlerrors.ErrConfigNotFound) {
			configErr = err
		}
		activeConfig = cfg

		log := logger.Init(cfg.Diagnostics)
		if configErr != nil {
			log.Warn("falling back to default configuration")
		}

		// Inject logger into context
		// 将 Logger 注入 Context
		cmd.SetContext(logger.WithContext(cmd.Context(), log))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// loadedConfig returns the configuration for commands that must not run on
// a configuration file that failed validation.
// loadedConfig 返回配置；若配置文件校验失败则返回错误。
func loadedConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}
	return activeConfig, nil
}

func init() {
	// Config file path
	// 配置文件路径
	RootCmd.PersistentFlags().StringVarP(&runtime.ConfigPath, "config", "c", "", fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))

	// Sink path override
	// Sink 路径覆盖
	RootCmd.PersistentFlags().StringVar(&runtime.SinkPath, "sink", "", "Override the sink file path from the configuration")

	RootCmd.CompletionOptions.DisableDescriptions = true
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
