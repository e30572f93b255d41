package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/livp123/monolog/internal/config"
	"github.com/livp123/monolog/internal/runtime"
	mlerrors "github.com/livp123/monolog/pkg/errors"
	"github.com/livp123/monolog/pkg/monolog"
)

func TestNewFormatter(t *testing.T) {
	f, err := NewFormatter("default")
	require.NoError(t, err)
	assert.IsType(t, monolog.DefaultFormatter{}, f)

	f, err = NewFormatter("raw")
	require.NoError(t, err)
	assert.IsType(t, monolog.RawFormatter{}, f)

	_, err = NewFormatter("fancy")
	assert.Error(t, err)
}

func TestBuildContext_FileSink(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Sink.Path = filepath.Join(t.TempDir(), "app.log")
	cfg.MinLevel = monolog.WarningLevel

	ctx, err := BuildContext(cfg, zap.NewNop())
	require.NoError(t, err)

	sink, ok := ctx.Sink().(*monolog.ZapSink)
	require.True(t, ok)
	assert.Equal(t, monolog.WarningLevel, sink.Threshold())
	assert.IsType(t, monolog.DefaultFormatter{}, ctx.Formatter())

	e := ctx.NewEvent().SetSeverity(monolog.ErrorLevel).SetMessage("written")
	ctx.Commit(e, "ops_test.go", "TestBuildContext_FileSink", 1)
	ctx.Commit(ctx.NewEvent().SetMessage("below threshold"), "ops_test.go", "TestBuildContext_FileSink", 2)
	require.NoError(t, Close(ctx))

	data, err := os.ReadFile(cfg.Sink.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ID: "+e.ID().String())
	assert.Contains(t, string(data), "written")
	assert.NotContains(t, string(data), "below threshold")
}

func TestBuildContext_Filter(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Sink.Path = filepath.Join(t.TempDir(), "app.log")
	cfg.Formatter = config.FormatterRaw
	cfg.Filter = `!(Text contains "noise")`

	ctx, err := BuildContext(cfg, zap.NewNop())
	require.NoError(t, err)
	require.IsType(t, &monolog.FilterSink{}, ctx.Sink())

	ctx.Commit(ctx.NewEvent().SetMessage("signal"), "f.go", "fn", 1)
	ctx.Commit(ctx.NewEvent().SetMessage("noise"), "f.go", "fn", 2)
	require.NoError(t, Close(ctx))

	data, err := os.ReadFile(cfg.Sink.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "signal")
	assert.NotContains(t, string(data), "noise")
}

func TestBuildContext_NoSinkPath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Sink.Path = ""

	ctx, err := BuildContext(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, ctx.Sink())
	assert.NoError(t, Close(ctx))
}

func TestBuildContext_Errors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Formatter = "fancy"
	_, err := BuildContext(cfg, zap.NewNop())
	assert.Error(t, err)

	cfg = config.DefaultConfig()
	cfg.Sink.Path = filepath.Join(t.TempDir(), "app.log")
	cfg.Filter = "Level >"
	_, err = BuildContext(cfg, zap.NewNop())
	assert.ErrorIs(t, err, mlerrors.ErrFilterInvalid)
}

func TestSinkConfig_Override(t *testing.T) {
	original := runtime.SinkPath
	defer func() { runtime.SinkPath = original }()

	cfg := config.DefaultConfig()
	runtime.SinkPath = ""
	assert.Equal(t, config.DefaultSinkPath, SinkConfig(cfg).Path)

	runtime.SinkPath = "/tmp/override.log"
	assert.Equal(t, "/tmp/override.log", SinkConfig(cfg).Path)
	assert.Equal(t, config.DefaultSinkPath, cfg.Sink.Path, "config is not mutated")
}
