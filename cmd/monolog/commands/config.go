package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/livp123/monolog/internal/config"
	"github.com/livp123/monolog/internal/utils/fmtutil"
)

// initCmd implements the 'init' command
// initCmd 实现 'init' 命令
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	// Short: 写入默认配置文件
	Long: `Write the default configuration to the config path.
The format is TOML when the path ends in .toml, YAML otherwise.
将默认配置写入配置路径。路径以 .toml 结尾时使用 TOML，否则使用 YAML。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetConfigPath()
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		cm := config.NewConfigManager(path)
		cm.UpdateConfig(config.DefaultConfig())
		if err := cm.SaveConfig(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
		return nil
	},
}

// checkCmd implements the 'check' command
// checkCmd 实现 'check' 命令
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration file",
	// Short: 校验配置文件
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetConfigPath()
		cfg, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Configuration OK: %s\n", path)
		fmt.Fprintf(out, "  min_level: %s\n", cfg.MinLevel)
		fmt.Fprintf(out, "  formatter: %s\n", cfg.Formatter)
		fmt.Fprintf(out, "  sink:      %s\n", cfg.Sink.Path)
		fmt.Fprintf(out, "  rotation:  %s, %d backups, kept %s\n",
			fmtutil.FormatMegabytes(cfg.Sink.MaxSize), cfg.Sink.MaxBackups, fmtutil.FormatAge(cfg.Sink.MaxAge))
		if cfg.Filter != "" {
			fmt.Fprintf(out, "  filter:    %s\n", cfg.Filter)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(checkCmd)
}
