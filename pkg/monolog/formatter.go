package monolog

import (
	"strconv"
)

// Formatter turns an event into the text handed to a sink.
// Formatter 将事件转换为交给 Sink 的文本。
type Formatter interface {
	Format(e *Event) string
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(e *Event) string

func (f FormatterFunc) Format(e *Event) string { return f(e) }

// DefaultFormatter renders identity, optional parent link and call site ahead
// of the message:
//
//	ID: <id> LinkedTo: <parent> ['<file> - <function>' at <line>] <message>
//
// The LinkedTo segment is omitted when the event has no parent.
type DefaultFormatter struct{}

func (DefaultFormatter) Format(e *Event) string {
	var b []byte
	b = append(b, "ID: "...)
	b = append(b, e.ID().String()...)
	if parent, ok := e.ParentID(); ok {
		b = append(b, " LinkedTo: "...)
		b = append(b, parent.String()...)
	}
	b = append(b, " ['"...)
	b = append(b, e.CallerFile()...)
	b = append(b, " - "...)
	b = append(b, e.CallerFunction()...)
	b = append(b, "' at "...)
	b = strconv.AppendInt(b, int64(e.CallerLine()), 10)
	b = append(b, "] "...)
	b = append(b, e.Message()...)
	return string(b)
}

// RawFormatter returns the message unchanged.
type RawFormatter struct{}

func (RawFormatter) Format(e *Event) string { return e.Message() }
