package logging

import (
	"context"
	"io"
	"os"
	"testing"
)

// Config holds the configuration for creating a new Logger.
type Config struct {
	// Level sets the base threshold. Zero means DefaultLevel.
	Level Level
	// Output is where rendered lines are written. Defaults to os.Stdout if nil.
	Output io.Writer
	// Color selects label colorization. Empty means ColorAuto.
	Color ColorMode
	// State lets several loggers share one filtering configuration.
	// A fresh State is created if nil.
	State *State
}

// New creates a Logger with the given configuration.
func New(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	state := cfg.State
	if state == nil {
		state = NewState()
	}
	if cfg.Level != 0 {
		state.SetLevel(cfg.Level)
	}

	mode := cfg.Color
	if mode == "" {
		mode = ColorAuto
	}

	return NewLogger(state, NewColorFormatter(mode.Enabled(output)), NewWriterSink(output))
}

// NewDiscard creates a Logger that is globally disabled and writes nowhere.
// Use this for quiet mode or when logging should be suppressed.
func NewDiscard() *Logger {
	l := New(Config{Output: io.Discard, Color: ColorNever})
	l.State().Disable()
	return l
}

// testWriter adapts testing.T to io.Writer.
type testWriter struct {
	t testing.TB
}

// Write implements io.Writer by logging to the test.
func (w *testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	// t.Log adds its own newline
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	w.t.Log(msg)
	return len(p), nil
}

// ForTest creates a Logger that writes to the test's log output.
// Log messages appear only when the test fails or when running with -v.
// The logger filters at Debug level to capture all messages.
func ForTest(t testing.TB) *Logger {
	t.Helper()
	return New(Config{
		Level:  LevelDebug,
		Output: &testWriter{t: t},
		Color:  ColorNever,
	})
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying l.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the Logger stored in ctx, or Default() if there is none.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*Logger); ok && l != nil {
			return l
		}
	}
	return Default()
}
