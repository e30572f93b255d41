package monolog

import (
	"strconv"
	"strings"

	mlerrors "github.com/livp123/monolog/pkg/errors"
)

// Level is the severity of an event. Levels are ordered; a higher value is more severe.
// Level 表示事件的严重级别，数值越大越严重。
type Level int8

const (
	VerboseLevel Level = iota
	DebugLevel
	InformationLevel
	WarningLevel
	ErrorLevel
	FatalLevel
)

const (
	// DefaultSeverity seeds every new event.
	// DefaultSeverity 是新事件的默认严重级别。
	DefaultSeverity = InformationLevel

	// MinValidLevel is the lowest level a threshold may be set to.
	// MinValidLevel 是阈值可设置的最低级别。
	MinValidLevel = VerboseLevel
)

// AllLevels returns the six levels in ascending order.
func AllLevels() []Level {
	return []Level{VerboseLevel, DebugLevel, InformationLevel, WarningLevel, ErrorLevel, FatalLevel}
}

// Valid reports whether l is one of the six known levels.
func (l Level) Valid() bool {
	return l >= MinValidLevel && l <= FatalLevel
}

func (l Level) String() string {
	switch l {
	case VerboseLevel:
		return "Verbose"
	case DebugLevel:
		return "Debug"
	case InformationLevel:
		return "Information"
	case WarningLevel:
		return "Warning"
	case ErrorLevel:
		return "Error"
	case FatalLevel:
		return "Fatal"
	default:
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
}

// ParseLevel parses a level name. Matching is case-insensitive and accepts the
// common short forms (trace, info, warn).
// ParseLevel 解析级别名称，不区分大小写，并接受常见缩写。
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "trace":
		return VerboseLevel, nil
	case "debug":
		return DebugLevel, nil
	case "information", "info":
		return InformationLevel, nil
	case "warning", "warn":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InformationLevel, mlerrors.NewLevelError(s)
	}
}

// MarshalText encodes the level by name so configuration files stay readable.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, mlerrors.NewUnsupportedSeverityError(int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText decodes a level name.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
