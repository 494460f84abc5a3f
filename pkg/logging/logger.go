package logging

import (
	"fmt"
)

// Logger filters messages against a State and hands the survivors to a
// Formatter and a Sink. A Logger is safe for concurrent use.
type Logger struct {
	state     *State
	formatter Formatter
	sink      Sink
}

// NewLogger assembles a Logger from its collaborators. A nil state gets a
// fresh NewState, a nil formatter an uncolored ColorFormatter and a nil sink
// discards output.
func NewLogger(state *State, formatter Formatter, sink Sink) *Logger {
	if state == nil {
		state = NewState()
	}
	if formatter == nil {
		formatter = NewColorFormatter(false)
	}
	if sink == nil {
		sink = NewWriterSink(nil)
	}
	return &Logger{
		state:     state,
		formatter: formatter,
		sink:      sink,
	}
}

// State returns the filtering state the logger consults.
func (l *Logger) State() *State {
	return l.state
}

// Formatter returns the formatter used for emitted messages.
func (l *Logger) Formatter() Formatter {
	return l.formatter
}

// Sink returns the sink emitted lines are written to.
func (l *Logger) Sink() Sink {
	return l.sink
}

// Emit writes msg at level unless logging is disabled or level falls below
// the effective threshold. Sink failures are not reported.
func (l *Logger) Emit(level Level, msg string) {
	if !l.state.Allows(level) {
		return
	}
	l.dispatch(level, msg)
}

// Enabled reports whether a message at level would currently be emitted.
func (l *Logger) Enabled(level Level) bool {
	return l.state.Allows(level)
}

func (l *Logger) dispatch(level Level, msg string) {
	_ = l.sink.WriteLine(l.formatter.Format(level, msg))
}

// Debug logs msg at LevelDebug.
func (l *Logger) Debug(msg string) { l.Emit(LevelDebug, msg) }

// Info logs msg at LevelInfo.
func (l *Logger) Info(msg string) { l.Emit(LevelInfo, msg) }

// Success logs msg at LevelSuccess.
func (l *Logger) Success(msg string) { l.Emit(LevelSuccess, msg) }

// Warning logs msg at LevelWarning.
func (l *Logger) Warning(msg string) { l.Emit(LevelWarning, msg) }

// Error logs msg at LevelError.
func (l *Logger) Error(msg string) { l.Emit(LevelError, msg) }

// Debugf formats and logs at LevelDebug. Arguments are not formatted when
// the message would be dropped.
func (l *Logger) Debugf(format string, args ...any) { l.emitf(LevelDebug, format, args) }

// Infof formats and logs at LevelInfo.
func (l *Logger) Infof(format string, args ...any) { l.emitf(LevelInfo, format, args) }

// Successf formats and logs at LevelSuccess.
func (l *Logger) Successf(format string, args ...any) { l.emitf(LevelSuccess, format, args) }

// Warningf formats and logs at LevelWarning.
func (l *Logger) Warningf(format string, args ...any) { l.emitf(LevelWarning, format, args) }

// Errorf formats and logs at LevelError.
func (l *Logger) Errorf(format string, args ...any) { l.emitf(LevelError, format, args) }

func (l *Logger) emitf(level Level, format string, args []any) {
	if !l.state.Allows(level) {
		return
	}
	l.dispatch(level, fmt.Sprintf(format, args...))
}

// Exception logs err at LevelError. When the effective threshold is DEBUG
// the detailed rendering is used instead, which for errors built with
// cockroachdb/errors includes the stack trace.
func (l *Logger) Exception(err error) {
	if err == nil {
		return
	}

	snap := l.state.Snapshot()
	if !snap.Admits(LevelError) {
		return
	}

	msg := err.Error()
	if snap.Threshold.Weight() <= LevelDebug.Weight() {
		msg = fmt.Sprintf("%+v", err)
	}
	l.dispatch(LevelError, msg)
}
