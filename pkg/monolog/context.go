package monolog

import (
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"

	mlerrors "github.com/livp123/monolog/pkg/errors"
)

// SettingFromToTemplate is used to report configuration changes.
const SettingFromToTemplate = "Setting '{0}' from '{1}' to '{2}'."

// Context holds the active sink, formatter and threshold, and runs the commit
// pipeline. Configuration may change while other goroutines commit.
// Context 保存当前的 Sink、格式化器和阈值，并执行提交流程。
type Context struct {
	mu        sync.RWMutex
	sink      Sink
	formatter Formatter
	minLevel  Level

	diag   *zap.Logger
	notify notifier
}

// Option configures a Context.
type Option func(*Context)

// WithFormatter installs a formatter at construction.
func WithFormatter(f Formatter) Option {
	return func(c *Context) { c.formatter = f }
}

// WithMinLevel sets the initial threshold.
func WithMinLevel(level Level) Option {
	return func(c *Context) { c.minLevel = level }
}

// WithSink installs a sink at construction. It is wired to the threshold.
func WithSink(s Sink) Option {
	return func(c *Context) { c.sink = s }
}

// WithDiagnostics routes the context's own diagnostics to l.
func WithDiagnostics(l *zap.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.diag = l
		}
	}
}

// NewContext returns a context with no sink and no formatter unless options
// say otherwise. The threshold starts at Information.
// NewContext 创建一个默认没有 Sink 和格式化器的 Context。
func NewContext(opts ...Option) *Context {
	c := &Context{
		minLevel: InformationLevel,
		diag:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if !c.minLevel.Valid() {
		panic(mlerrors.NewUnsupportedSeverityError(int(c.minLevel)))
	}
	if c.sink != nil {
		c.sink.SetThreshold(c.minLevel)
	}
	return c
}

// NewEvent creates an event seeded with the context's default severity.
func (c *Context) NewEvent() *Event {
	return newEvent(c.DefaultSeverity())
}

// DefaultSeverity is always InformationLevel.
func (c *Context) DefaultSeverity() Level { return DefaultSeverity }

// OnNoSink subscribes fn to commits that found no sink. The returned function
// removes the subscription.
func (c *Context) OnNoSink(fn func()) (unsubscribe func()) {
	return c.notify.subscribeNoSink(fn)
}

// OnCommitted subscribes fn to every event dispatched to a sink.
func (c *Context) OnCommitted(fn func(*Event)) (unsubscribe func()) {
	return c.notify.subscribeCommitted(fn)
}

// Commit stamps the call site on e and dispatches it.
//
// Without a sink the NoSink notification fires and e is returned untouched
// otherwise. With a sink, the text (formatter output, or the raw message when
// no formatter is installed) is written at e's severity, then the Committed
// notification fires with e. Sink write errors are logged to diagnostics only.
//
// Commit 记录调用位置并分发事件。
func (c *Context) Commit(e *Event, callerFile, callerFunction string, callerLine int) *Event {
	e.SetCaller(callerFile, callerFunction, callerLine)

	c.mu.RLock()
	sink, formatter := c.sink, c.formatter
	c.mu.RUnlock()

	if sink == nil {
		c.notify.publishNoSink(c.diag)
		return e
	}

	level := e.Severity()
	if !level.Valid() {
		panic(mlerrors.NewUnsupportedSeverityError(int(level)))
	}

	text := e.Message()
	if formatter != nil {
		text = formatter.Format(e)
	}

	if err := sink.Write(level, text); err != nil {
		c.diag.Warn("sink write failed",
			zap.Stringer("event", e.ID()),
			zap.Stringer("level", level),
			zap.Error(err))
	}

	c.notify.publishCommitted(c.diag, e)
	return e
}

// CommitCaller commits e with the file, function and line of its own caller.
func (c *Context) CommitCaller(e *Event) *Event {
	file, function, line := callerInfo(2)
	return c.Commit(e, file, function, line)
}

// callerInfo resolves the frame skip levels above itself.
func callerInfo(skip int) (string, string, int) {
	var pcs [1]uintptr
	// +1 for runtime.Callers itself.
	if runtime.Callers(skip+1, pcs[:]) == 0 {
		return "", "", 0
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	return frame.File, shortFunctionName(frame.Function), frame.Line
}

// shortFunctionName trims "example.com/pkg.(*T).Method" to "Method". Type
// parameter lists ("[...]") are removed and closures ("Outer.func1",
// "Outer.gowrap2", "Outer.func1.3") resolve to the enclosing function.
func shortFunctionName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ReplaceAll(name, "[...]", "")

	parts := strings.Split(name, ".")
	for len(parts) > 2 && isClosureSegment(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}
	return parts[len(parts)-1]
}

// isClosureSegment matches the compiler-generated suffixes funcN, gowrapN and
// the bare N of nested closures.
func isClosureSegment(s string) bool {
	for _, prefix := range []string{"func", "gowrap"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			return isDigits(rest)
		}
	}
	return isDigits(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SetFormatter replaces the formatter for subsequent commits. nil restores raw messages.
func (c *Context) SetFormatter(f Formatter) {
	c.mu.Lock()
	previous := c.formatter
	c.formatter = f
	c.mu.Unlock()
	c.logSetting("Formatter", formatterName(previous), formatterName(f))
}

func (c *Context) Formatter() Formatter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.formatter
}

// SetMinLevel updates the threshold and pushes it to the active sink.
// SetMinLevel 更新阈值并立即应用到当前 Sink。
func (c *Context) SetMinLevel(level Level) {
	if !level.Valid() {
		panic(mlerrors.NewUnsupportedSeverityError(int(level)))
	}
	c.mu.Lock()
	previous := c.minLevel
	c.minLevel = level
	if c.sink != nil {
		c.sink.SetThreshold(level)
	}
	c.mu.Unlock()
	c.logSetting("MinLevel", previous, level)
}

// MinLoggableLevel returns the current threshold.
func (c *Context) MinLoggableLevel() Level {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.minLevel
}

// CreateSink installs a rotating file sink at path with default rotation settings.
func (c *Context) CreateSink(path string) error {
	return c.CreateFileSink(SinkConfig{Path: path})
}

// CreateFileSink builds a ZapSink from cfg wired to the current threshold and
// installs it. A previous sink is replaced but not closed.
func (c *Context) CreateFileSink(cfg SinkConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := NewFileSink(cfg, c.minLevel)
	if err != nil {
		return err
	}
	c.installLocked(s)
	return nil
}

// SetSink installs s, wiring it to the current threshold, and returns the
// sink it replaced. The previous sink is not closed; that is left to the caller.
// A nil s removes the sink.
func (c *Context) SetSink(s Sink) (previous Sink) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s != nil {
		s.SetThreshold(c.minLevel)
	}
	return c.installLocked(s)
}

func (c *Context) installLocked(s Sink) Sink {
	previous := c.sink
	c.sink = s
	if previous != nil {
		c.diag.Warn("sink replaced; previous sink left open")
	}
	return previous
}

func (c *Context) Sink() Sink {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sink
}

// Sync flushes the active sink if it buffers.
func (c *Context) Sync() error {
	if s, ok := c.Sink().(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

func (c *Context) logSetting(name string, from, to any) {
	if msg, err := Format(SettingFromToTemplate, name, from, to); err == nil {
		c.diag.Debug(msg)
	}
}

func formatterName(f Formatter) string {
	switch f.(type) {
	case nil:
		return "none"
	case DefaultFormatter, *DefaultFormatter:
		return "default"
	case RawFormatter, *RawFormatter:
		return "raw"
	default:
		return "custom"
	}
}
