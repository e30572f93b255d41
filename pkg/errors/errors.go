// Package errors defines the error taxonomy shared by monolog packages.
// Package errors 定义 monolog 各包共享的错误分类。
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrFormat              = errors.New("message format error")
	ErrUnsupportedSeverity = errors.New("unsupported severity")
	ErrInvalidLevel        = errors.New("invalid log level")
	ErrInvalidFilePath     = errors.New("invalid file path")
	ErrConfigNotFound      = errors.New("config not found")
	ErrConfigInvalid       = errors.New("invalid configuration")
	ErrFilterInvalid       = errors.New("invalid filter expression")
)

// FormatError reports a template/argument mismatch while interpolating a message.
// FormatError 表示消息模板与参数不匹配。
type FormatError struct {
	Template string
	// Index is the placeholder index involved, or -1 for syntax errors.
	Index  int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%v: %s (placeholder {%d} in %q)", ErrFormat, e.Reason, e.Index, e.Template)
	}
	return fmt.Sprintf("%v: %s (in %q)", ErrFormat, e.Reason, e.Template)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// UnsupportedSeverityError is raised when a severity outside the six known
// levels reaches a translation table. It indicates a programming error.
// UnsupportedSeverityError 表示未知严重级别到达转换表，属于编程错误。
type UnsupportedSeverityError struct {
	Value int
}

func (e *UnsupportedSeverityError) Error() string {
	return fmt.Sprintf("%v: %d", ErrUnsupportedSeverity, e.Value)
}

func (e *UnsupportedSeverityError) Unwrap() error { return ErrUnsupportedSeverity }

func NewFormatError(template string, index int, reason string) error {
	return &FormatError{Template: template, Index: index, Reason: reason}
}

func NewUnsupportedSeverityError(value int) error {
	return &UnsupportedSeverityError{Value: value}
}

func NewLevelError(level string) error {
	return fmt.Errorf("%w: %q", ErrInvalidLevel, level)
}

func NewFileError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidFilePath, path, reason)
}

func NewConfigError(field string, value interface{}) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}

func NewFilterError(expression string, reason error) error {
	return fmt.Errorf("%w: %q: %v", ErrFilterInvalid, expression, reason)
}
