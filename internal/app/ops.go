package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/livp123/monolog/internal/config"
	"github.com/livp123/monolog/internal/runtime"
	"github.com/livp123/monolog/pkg/monolog"
)

// NewFormatter maps a configured formatter name to its implementation.
// NewFormatter 将配置中的格式化器名称映射到实现。
func NewFormatter(name string) (monolog.Formatter, error) {
	switch name {
	case config.FormatterDefault, "":
		return monolog.DefaultFormatter{}, nil
	case config.FormatterRaw:
		return monolog.RawFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown formatter %q", name)
	}
}

// SinkConfig returns the sink settings with the CLI path override applied.
func SinkConfig(cfg *config.Config) monolog.SinkConfig {
	sinkCfg := cfg.Sink
	if runtime.SinkPath != "" {
		sinkCfg.Path = runtime.SinkPath
	}
	return sinkCfg
}

// BuildContext creates a logging context from cfg: formatter, threshold and,
// when a sink path is configured, a rotating file sink optionally wrapped in
// the configured filter.
// BuildContext 根据配置创建日志上下文。
func BuildContext(cfg *config.Config, diag *zap.Logger) (*monolog.Context, error) {
	formatter, err := NewFormatter(cfg.Formatter)
	if err != nil {
		return nil, err
	}

	ctx := monolog.NewContext(
		monolog.WithFormatter(formatter),
		monolog.WithMinLevel(cfg.MinLevel),
		monolog.WithDiagnostics(diag),
	)

	sinkCfg := SinkConfig(cfg)
	if sinkCfg.Path == "" {
		diag.Warn("no sink path configured; commits will only raise no-sink notifications")
		return ctx, nil
	}

	if cfg.Filter == "" {
		if err := ctx.CreateFileSink(sinkCfg); err != nil {
			return nil, err
		}
		return ctx, nil
	}

	fileSink, err := monolog.NewFileSink(sinkCfg, cfg.MinLevel)
	if err != nil {
		return nil, err
	}
	filtered, err := monolog.NewFilterSink(fileSink, cfg.Filter)
	if err != nil {
		_ = fileSink.Close()
		return nil, err
	}
	ctx.SetSink(filtered)
	return ctx, nil
}

// Close flushes and closes the context's sink, if it can be closed.
// Close 刷新并关闭上下文的 Sink。
func Close(ctx *monolog.Context) error {
	if c, ok := ctx.Sink().(interface{ Close() error }); ok {
		return c.Close()
	}
	return ctx.Sync()
}
