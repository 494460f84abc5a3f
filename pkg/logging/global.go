package logging

import "sync/atomic"

// The process-wide logger. It is created at package init with base level
// INFO, color auto-detected on stdout, no scopes open and logging enabled.
var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New(Config{}))
}

// Default returns the process-wide Logger.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide Logger. It is meant to be called once
// at startup, before other goroutines log; scopes opened on the previous
// logger's State keep referring to that State.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultLogger.Store(l)
}

// SetLevel sets the base threshold of the default logger.
func SetLevel(level Level) { Default().State().SetLevel(level) }

// Override opens a threshold override on the default logger.
func Override(level Level) *Scope { return Default().State().Override(level) }

// WithLevel runs fn under a threshold override on the default logger.
func WithLevel(level Level, fn func() error) error { return Default().State().WithLevel(level, fn) }

// Disable turns the default logger off until Enable.
func Disable() { Default().State().Disable() }

// Enable clears the global disable flag of the default logger.
func Enable() { Default().State().Enable() }

// DisabledScope suppresses the default logger until the scope closes.
func DisabledScope() *Scope { return Default().State().DisabledScope() }

// WithDisabled runs fn with the default logger suppressed.
func WithDisabled(fn func() error) error { return Default().State().WithDisabled(fn) }

// Debug logs at LevelDebug on the default logger.
func Debug(msg string) { Default().Debug(msg) }

// Info logs at LevelInfo on the default logger.
func Info(msg string) { Default().Info(msg) }

// Success logs at LevelSuccess on the default logger.
func Success(msg string) { Default().Success(msg) }

// Warning logs at LevelWarning on the default logger.
func Warning(msg string) { Default().Warning(msg) }

// Error logs at LevelError on the default logger.
func Error(msg string) { Default().Error(msg) }

// Debugf logs a formatted message at LevelDebug on the default logger.
func Debugf(format string, args ...any) { Default().emitf(LevelDebug, format, args) }

// Infof logs a formatted message at LevelInfo on the default logger.
func Infof(format string, args ...any) { Default().emitf(LevelInfo, format, args) }

// Successf logs a formatted message at LevelSuccess on the default logger.
func Successf(format string, args ...any) { Default().emitf(LevelSuccess, format, args) }

// Warningf logs a formatted message at LevelWarning on the default logger.
func Warningf(format string, args ...any) { Default().emitf(LevelWarning, format, args) }

// Errorf logs a formatted message at LevelError on the default logger.
func Errorf(format string, args ...any) { Default().emitf(LevelError, format, args) }

// Exception logs err on the default logger.
func Exception(err error) { Default().Exception(err) }
