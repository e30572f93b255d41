package monolog

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	mlerrors "github.com/livp123/monolog/pkg/errors"
)

// Sink performs the physical write of committed text and enforces the
// minimum-severity threshold. The context never filters on its own.
// Sink 负责实际写入并执行最低级别过滤，Context 本身不做过滤。
type Sink interface {
	Write(level Level, text string) error
	SetThreshold(level Level)
}

// ZapVerboseLevel is the zap level Verbose events are written at. zap has no
// level below Debug, so one is carved out of the signed range.
const ZapVerboseLevel = zapcore.DebugLevel - 1

// ToZapLevel translates a level to zap. The mapping is total over the six
// levels; anything else is a programming error and panics.
// ToZapLevel 将级别转换为 zap 级别，未知级别会触发 panic。
func ToZapLevel(l Level) zapcore.Level {
	switch l {
	case VerboseLevel:
		return ZapVerboseLevel
	case DebugLevel:
		return zapcore.DebugLevel
	case InformationLevel:
		return zapcore.InfoLevel
	case WarningLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		panic(mlerrors.NewUnsupportedSeverityError(int(l)))
	}
}

// FromZapLevel is the inverse of ToZapLevel. zap levels without a counterpart
// (DPanic, Panic) panic.
func FromZapLevel(l zapcore.Level) Level {
	switch l {
	case ZapVerboseLevel:
		return VerboseLevel
	case zapcore.DebugLevel:
		return DebugLevel
	case zapcore.InfoLevel:
		return InformationLevel
	case zapcore.WarnLevel:
		return WarningLevel
	case zapcore.ErrorLevel:
		return ErrorLevel
	case zapcore.FatalLevel:
		return FatalLevel
	default:
		panic(mlerrors.NewUnsupportedSeverityError(int(l)))
	}
}

// ZapLevelName is the capitalised name of a zap level, with ZapVerboseLevel
// named VERBOSE.
func ZapLevelName(l zapcore.Level) string {
	if l == ZapVerboseLevel {
		return "VERBOSE"
	}
	return l.CapitalString()
}

// LevelEncoder renders zap levels with ZapLevelName.
func LevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(ZapLevelName(l))
}

// SinkConfig describes a file-backed sink. Rotation is handled by lumberjack.
// SinkConfig 描述基于文件的 Sink，轮转由 lumberjack 负责。
type SinkConfig struct {
	Path string `yaml:"path" toml:"path"`
	// MaxSize is the size in megabytes before rotation.
	MaxSize    int  `yaml:"max_size" toml:"max_size"`
	MaxBackups int  `yaml:"max_backups" toml:"max_backups"`
	MaxAge     int  `yaml:"max_age" toml:"max_age"`
	Compress   bool `yaml:"compress" toml:"compress"`
	// Console also copies every record to stdout.
	Console bool `yaml:"console" toml:"console"`
	// Encoding is "console" or "json".
	Encoding string `yaml:"encoding" toml:"encoding"`
}

// Default rotation settings, applied when a SinkConfig leaves them at zero.
const (
	DefaultMaxSize    = 100
	DefaultMaxBackups = 3
	DefaultMaxAge     = 28
)

// ZapSink is a Sink backed by a zap core whose level is controlled by an
// atomic level switch.
type ZapSink struct {
	core   zapcore.Core
	level  zap.AtomicLevel
	writer *lumberjack.Logger
}

// NewCoreSink wraps an existing core. The core must be gated by level for
// SetThreshold to take effect.
func NewCoreSink(core zapcore.Core, level zap.AtomicLevel) *ZapSink {
	return &ZapSink{core: core, level: level}
}

// NewFileSink creates a rotating file sink wired to threshold.
// NewFileSink 创建一个按 threshold 过滤的轮转文件 Sink。
func NewFileSink(cfg SinkConfig, threshold Level) (*ZapSink, error) {
	if cfg.Path == "" {
		return nil, mlerrors.NewFileError(cfg.Path, os.ErrInvalid)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, mlerrors.NewFileError(cfg.Path, err)
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    orDefault(cfg.MaxSize, DefaultMaxSize),
		MaxBackups: orDefault(cfg.MaxBackups, DefaultMaxBackups),
		MaxAge:     orDefault(cfg.MaxAge, DefaultMaxAge),
		Compress:   cfg.Compress,
	}
	writeSyncer := zapcore.AddSync(rotator)
	if cfg.Console {
		writeSyncer = zapcore.NewMultiWriteSyncer(writeSyncer, zapcore.Lock(os.Stdout))
	}

	level := zap.NewAtomicLevelAt(ToZapLevel(threshold))
	core := zapcore.NewCore(newEncoder(cfg.Encoding), writeSyncer, level)
	return &ZapSink{core: core, level: level, writer: rotator}, nil
}

func newEncoder(encoding string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = LevelEncoder
	if encoding == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Write emits text at level if the threshold allows it. Entries go to the core
// directly, so a Fatal entry is recorded without terminating the process.
func (s *ZapSink) Write(level Level, text string) error {
	zl := ToZapLevel(level)
	if !s.core.Enabled(zl) {
		return nil
	}
	return s.core.Write(zapcore.Entry{
		Level:   zl,
		Time:    time.Now(),
		Message: text,
	}, nil)
}

func (s *ZapSink) SetThreshold(level Level) {
	s.level.SetLevel(ToZapLevel(level))
}

// Threshold returns the level currently enforced by the sink.
func (s *ZapSink) Threshold() Level {
	return FromZapLevel(s.level.Level())
}

func (s *ZapSink) Sync() error {
	return s.core.Sync()
}

// Close flushes the core and closes the rotating file, if any.
func (s *ZapSink) Close() error {
	_ = s.core.Sync()
	if s.writer != nil {
		return s.writer.Close()
	}
	return nil
}
