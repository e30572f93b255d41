package logger

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type contextKey string

const LoggerKey = contextKey("logger")

var (
	mu           sync.RWMutex
	globalLogger *zap.Logger
)

// Init builds the global diagnostics logger. A disabled config yields a
// no-op logger; an empty path writes to stderr.
// Init 根据配置初始化全局诊断日志记录器。
func Init(cfg DiagnosticsConfig) *zap.Logger {
	l := build(cfg)

	mu.Lock()
	globalLogger = l
	mu.Unlock()
	return l
}

func build(cfg DiagnosticsConfig) *zap.Logger {
	if !cfg.Enabled {
		return zap.NewNop()
	}

	writeSyncer := zapcore.Lock(os.Stderr)
	var fallbackErr error
	if cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			// Keep logging to stderr if the directory can't be created
			// 如果无法创建目录，则输出到 stderr
			fallbackErr = err
		} else {
			writeSyncer = zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.Path,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			})
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zapcore.InfoLevel
	}

	l := zap.New(zapcore.NewCore(encoder, writeSyncer, level), zap.AddCaller()).Named("monolog")
	if fallbackErr != nil {
		l.Warn("failed to create diagnostics log directory", zap.String("path", cfg.Path), zap.Error(fallbackErr))
	}
	return l
}

// Sync flushes any buffered diagnostics.
// Sync 刷新所有缓存的日志条目。
func Sync() error {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l.Sync()
	}
	return nil
}

// Get returns the logger stored in ctx, the global logger, or a no-op logger
// before Init has run.
// Get 从 Context 或全局日志记录器返回 Logger。
func Get(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(LoggerKey).(*zap.Logger); ok {
			return l
		}
	}
	mu.RLock()
	defer mu.RUnlock()
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// WithContext adds logger to context
// WithContext 将 Logger 添加到 Context。
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, l)
}
