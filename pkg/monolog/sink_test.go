package monolog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	mlerrors "github.com/livp123/monolog/pkg/errors"
)

func newObservedSink(threshold Level) (*ZapSink, *observer.ObservedLogs) {
	level := zap.NewAtomicLevelAt(ToZapLevel(threshold))
	core, logs := observer.New(level)
	return NewCoreSink(core, level), logs
}

func TestZapLevelTranslation_RoundTrip(t *testing.T) {
	natives := []zapcore.Level{
		ZapVerboseLevel,
		zapcore.DebugLevel,
		zapcore.InfoLevel,
		zapcore.WarnLevel,
		zapcore.ErrorLevel,
		zapcore.FatalLevel,
	}
	for i, level := range AllLevels() {
		assert.Equal(t, natives[i], ToZapLevel(level), level.String())
		assert.Equal(t, level, FromZapLevel(natives[i]))
		assert.Equal(t, natives[i], ToZapLevel(FromZapLevel(natives[i])))
	}
}

func TestZapLevelName(t *testing.T) {
	names := []string{"VERBOSE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}
	for i, level := range AllLevels() {
		assert.Equal(t, names[i], ZapLevelName(ToZapLevel(level)))
	}
}

func TestZapLevelTranslation_Unsupported(t *testing.T) {
	assertPanicsWithSeverity(t, func() { ToZapLevel(Level(6)) })
	assertPanicsWithSeverity(t, func() { ToZapLevel(Level(-1)) })
	assertPanicsWithSeverity(t, func() { FromZapLevel(zapcore.DPanicLevel) })
	assertPanicsWithSeverity(t, func() { FromZapLevel(zapcore.PanicLevel) })
}

func assertPanicsWithSeverity(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error")
		assert.ErrorIs(t, err, mlerrors.ErrUnsupportedSeverity)
	}()
	fn()
}

func TestZapSink_WritesAtTranslatedLevel(t *testing.T) {
	sink, logs := newObservedSink(VerboseLevel)

	for _, level := range AllLevels() {
		require.NoError(t, sink.Write(level, "msg-"+level.String()))
	}

	entries := logs.AllUntimed()
	require.Len(t, entries, 6)
	for i, level := range AllLevels() {
		assert.Equal(t, ToZapLevel(level), entries[i].Level)
		assert.Equal(t, "msg-"+level.String(), entries[i].Message)
	}
}

func TestZapSink_Threshold(t *testing.T) {
	sink, logs := newObservedSink(InformationLevel)
	assert.Equal(t, InformationLevel, sink.Threshold())

	require.NoError(t, sink.Write(DebugLevel, "hidden"))
	require.NoError(t, sink.Write(InformationLevel, "shown"))
	assert.Equal(t, 1, logs.Len())

	sink.SetThreshold(ErrorLevel)
	assert.Equal(t, ErrorLevel, sink.Threshold())
	require.NoError(t, sink.Write(WarningLevel, "hidden"))
	require.NoError(t, sink.Write(FatalLevel, "still running"))

	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, 1, logs.FilterMessage("still running").Len())
}

func TestNewFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")

	sink, err := NewFileSink(SinkConfig{Path: path}, VerboseLevel)
	require.NoError(t, err)

	require.NoError(t, sink.Write(VerboseLevel, "chatty"))
	require.NoError(t, sink.Write(WarningLevel, "careful"))
	sink.SetThreshold(ErrorLevel)
	require.NoError(t, sink.Write(InformationLevel, "dropped"))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "VERBOSE")
	assert.Contains(t, content, "chatty")
	assert.Contains(t, content, "WARN")
	assert.Contains(t, content, "careful")
	assert.NotContains(t, content, "dropped")
}

func TestNewFileSink_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.json")

	sink, err := NewFileSink(SinkConfig{Path: path, Encoding: "json"}, InformationLevel)
	require.NoError(t, err)
	require.NoError(t, sink.Write(ErrorLevel, "broken"))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"level":"ERROR"`)
	assert.Contains(t, string(data), `"msg":"broken"`)
}

func TestNewFileSink_EmptyPath(t *testing.T) {
	_, err := NewFileSink(SinkConfig{}, InformationLevel)
	assert.ErrorIs(t, err, mlerrors.ErrInvalidFilePath)
}
