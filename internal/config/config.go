package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/livp123/monolog/internal/runtime"
	"github.com/livp123/monolog/internal/utils/fileutil"
	"github.com/livp123/monolog/internal/utils/logger"
	mlerrors "github.com/livp123/monolog/pkg/errors"
	"github.com/livp123/monolog/pkg/monolog"
)

// Config is the on-disk configuration of the monolog CLI.
// Config 是 monolog CLI 的磁盘配置。
type Config struct {
	Diagnostics logger.DiagnosticsConfig `yaml:"diagnostics" toml:"diagnostics"`
	Sink        monolog.SinkConfig       `yaml:"sink" toml:"sink"`
	// MinLevel: 最低可记录级别
	MinLevel monolog.Level `yaml:"min_level" toml:"min_level"`
	// Formatter: "default" 或 "raw"
	Formatter string `yaml:"formatter" toml:"formatter"`
	// Filter: 可选的 expr 过滤表达式
	Filter  string        `yaml:"filter,omitempty" toml:"filter,omitempty"`
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`
}

// MetricsConfig controls the Prometheus endpoint.
// MetricsConfig 控制 Prometheus 端点。
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Addr    string `yaml:"addr" toml:"addr"`
}

// DefaultConfig returns the configuration used when no file is present.
// DefaultConfig 返回没有配置文件时使用的默认配置。
func DefaultConfig() *Config {
	return &Config{
		Diagnostics: logger.DiagnosticsConfig{
			Enabled: true,
			Level:   "warn",
		},
		Sink: monolog.SinkConfig{
			Path:       DefaultSinkPath,
			MaxSize:    monolog.DefaultMaxSize,
			MaxBackups: monolog.DefaultMaxBackups,
			MaxAge:     monolog.DefaultMaxAge,
			Encoding:   "console",
		},
		MinLevel:  monolog.InformationLevel,
		Formatter: FormatterDefault,
		Metrics: MetricsConfig{
			Addr: DefaultMetricsAddr,
		},
	}
}

// GetConfigPath resolves the configuration file path.
// It prioritizes the CLI flag (runtime.ConfigPath) over the default.
// GetConfigPath 解析配置文件路径，优先使用 CLI 标志。
func GetConfigPath() string {
	if runtime.ConfigPath != "" {
		return runtime.ConfigPath
	}
	return DefaultConfigPath
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// LoadConfig reads path as YAML, or TOML when the extension is .toml.
// Missing keys keep their defaults.
// LoadConfig 读取 YAML 配置（扩展名为 .toml 时读取 TOML），缺失的键保留默认值。
func LoadConfig(path string) (*Config, error) {
	safePath := filepath.Clean(path)
	data, err := os.ReadFile(safePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", mlerrors.ErrConfigNotFound, safePath)
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if isTOML(safePath) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", mlerrors.ErrConfigInvalid, safePath, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", mlerrors.ErrConfigInvalid, safePath, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes cfg to path in the format implied by its extension.
// SaveConfig 按扩展名对应的格式将配置写入 path。
func SaveConfig(path string, cfg *Config) error {
	var buf bytes.Buffer
	if isTOML(path) {
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return err
		}
	} else {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	}

	safePath := filepath.Clean(path)
	if err := fileutil.AtomicWriteFile(safePath, buf.Bytes(), 0644); err != nil {
		return mlerrors.NewFileError(safePath, err)
	}
	return nil
}

// Validate checks value ranges and names.
// Validate 检查取值范围和名称。
func (c *Config) Validate() error {
	if !c.MinLevel.Valid() {
		return mlerrors.NewConfigError("min_level", int(c.MinLevel))
	}
	switch c.Formatter {
	case FormatterDefault, FormatterRaw:
	default:
		return mlerrors.NewConfigError("formatter", c.Formatter)
	}
	switch c.Sink.Encoding {
	case "", "console", "json":
	default:
		return mlerrors.NewConfigError("sink.encoding", c.Sink.Encoding)
	}
	if c.Sink.MaxSize < 0 {
		return mlerrors.NewConfigError("sink.max_size", c.Sink.MaxSize)
	}
	if c.Sink.MaxBackups < 0 {
		return mlerrors.NewConfigError("sink.max_backups", c.Sink.MaxBackups)
	}
	if c.Sink.MaxAge < 0 {
		return mlerrors.NewConfigError("sink.max_age", c.Sink.MaxAge)
	}
	if c.Filter != "" {
		if err := monolog.ValidateFilter(c.Filter); err != nil {
			return err
		}
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return mlerrors.NewConfigError("metrics.addr", c.Metrics.Addr)
	}
	return nil
}
