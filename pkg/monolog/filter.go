package monolog

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	mlerrors "github.com/livp123/monolog/pkg/errors"
)

// FilterEnv is the environment a filter expression is evaluated against.
type FilterEnv struct {
	Level     int
	LevelName string
	Text      string
}

// FilterSink drops writes for which a boolean expression evaluates to false,
// e.g. `Level >= 3 || Text contains "audit"`.
// FilterSink 丢弃表达式结果为 false 的写入。
type FilterSink struct {
	inner      Sink
	expression string
	program    *vm.Program
}

// NewFilterSink compiles expression and wraps inner.
func NewFilterSink(inner Sink, expression string) (*FilterSink, error) {
	program, err := compileFilter(expression)
	if err != nil {
		return nil, err
	}
	return &FilterSink{inner: inner, expression: expression, program: program}, nil
}

// ValidateFilter reports whether expression compiles to a boolean filter.
func ValidateFilter(expression string) error {
	_, err := compileFilter(expression)
	return err
}

func compileFilter(expression string) (*vm.Program, error) {
	program, err := expr.Compile(expression, expr.Env(FilterEnv{}), expr.AsBool())
	if err != nil {
		return nil, mlerrors.NewFilterError(expression, err)
	}
	return program, nil
}

func (f *FilterSink) Write(level Level, text string) error {
	out, err := expr.Run(f.program, FilterEnv{
		Level:     int(level),
		LevelName: level.String(),
		Text:      text,
	})
	if err != nil {
		return mlerrors.NewFilterError(f.expression, err)
	}
	if keep, _ := out.(bool); !keep {
		return nil
	}
	return f.inner.Write(level, text)
}

func (f *FilterSink) SetThreshold(level Level) {
	f.inner.SetThreshold(level)
}

// Expression returns the source of the compiled filter.
func (f *FilterSink) Expression() string { return f.expression }

func (f *FilterSink) Sync() error {
	if s, ok := f.inner.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

func (f *FilterSink) Close() error {
	if c, ok := f.inner.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
