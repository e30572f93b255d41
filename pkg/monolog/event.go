package monolog

import (
	"github.com/google/uuid"
)

// Event is a single log message and its metadata, configured by chained calls
// and handed to Context.Commit.
//
// The identifier is assigned once at construction. A parent link, once set, is
// never cleared. Severity and message may be overwritten freely until commit.
// An Event has a single owner; it is not safe for concurrent mutation.
//
// Event 是一条日志消息及其元数据，通过链式调用配置后交给 Context.Commit。
type Event struct {
	id       uuid.UUID
	parentID uuid.UUID
	linked   bool

	callerFile     string
	callerFunction string
	callerLine     int

	message  string
	severity Level
}

// NewEvent creates an event with a fresh identifier and DefaultSeverity.
// NewEvent 创建一个带有新标识符和默认严重级别的事件。
func NewEvent() *Event {
	return newEvent(DefaultSeverity)
}

func newEvent(severity Level) *Event {
	return &Event{
		id:       uuid.New(),
		severity: severity,
	}
}

func (e *Event) ID() uuid.UUID { return e.id }

// ParentID returns the linked event's identifier and whether a link exists.
func (e *Event) ParentID() (uuid.UUID, bool) { return e.parentID, e.linked }

func (e *Event) CallerFile() string     { return e.callerFile }
func (e *Event) CallerFunction() string { return e.callerFunction }
func (e *Event) CallerLine() int        { return e.callerLine }
func (e *Event) Message() string        { return e.message }
func (e *Event) Severity() Level        { return e.severity }

// LinkTo records other as the causal parent of e. Only the identifier is kept;
// other need not outlive e. A nil other leaves e unchanged.
// LinkTo 将 other 记录为 e 的父事件，仅保存其标识符。
func (e *Event) LinkTo(other *Event) *Event {
	if other == nil {
		return e
	}
	e.parentID = other.id
	e.linked = true
	return e
}

// SetCaller overwrites the call-site metadata. Commit calls it; callers may too.
func (e *Event) SetCaller(file, function string, line int) *Event {
	e.callerFile = file
	e.callerFunction = function
	e.callerLine = line
	return e
}

// SetMessage sets the message verbatim.
func (e *Event) SetMessage(text string) *Event {
	e.message = text
	return e
}

// SetMessageFormat interpolates args into template using positional
// placeholders such as "{0}" or "{1,8:F2}". On failure the previous message
// is kept and a *errors.FormatError is returned.
// SetMessageFormat 使用位置占位符插值消息，失败时保留原消息并返回 FormatError。
func (e *Event) SetMessageFormat(template string, args ...any) (*Event, error) {
	text, err := Format(template, args...)
	if err != nil {
		return e, err
	}
	e.message = text
	return e, nil
}

func (e *Event) SetSeverity(level Level) *Event {
	e.severity = level
	return e
}
