package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	// This test verifies the code path, not actual stdout output
	logger := New(Config{})
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if got := logger.State().EffectiveThreshold(); got != LevelInfo {
		t.Errorf("default threshold = %v, want INFO", got)
	}
	if !logger.State().EffectiveEnabled() {
		t.Error("new logger should start enabled")
	}
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelWarning, Output: &buf, Color: ColorNever})

	logger.Success("dropped")
	logger.Warning("kept")

	if got := buf.String(); got != "WARNING: kept\n" {
		t.Errorf("output = %q", got)
	}
}

func TestNew_SharedState(t *testing.T) {
	state := NewState()
	var a, b bytes.Buffer
	la := New(Config{Output: &a, Color: ColorNever, State: state})
	lb := New(Config{Output: &b, Color: ColorNever, State: state})

	scope := state.Override(LevelError)
	la.Info("hidden")
	lb.Info("hidden")
	scope.Close()

	if a.Len() != 0 || b.Len() != 0 {
		t.Errorf("override on the shared state should silence both loggers: %q %q", a.String(), b.String())
	}
}

func TestNew_NeverColor(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf, Color: ColorNever})
	logger.Error("plain")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected no ANSI sequences, got %q", buf.String())
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	if logger.State().EffectiveEnabled() {
		t.Error("discard logger should be disabled")
	}

	// These should all succeed silently
	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warning("warn message")
	logger.Error("error message")
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if got := logger.State().EffectiveThreshold(); got != LevelDebug {
		t.Errorf("ForTest threshold = %v, want DEBUG", got)
	}

	logger.Debug("debug from test logger")
	logger.Success("success from test logger")
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	tw := &testWriter{t: t}

	n, err := tw.Write([]byte("test message\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len("test message\n") {
		t.Errorf("Write returned %d, want %d", n, len("test message\n"))
	}

	n, err = tw.Write([]byte(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("Write returned %d, want 0", n)
	}
}

func TestContext(t *testing.T) {
	logger := NewDiscard()
	ctx := NewContext(t.Context(), logger)

	if got := FromContext(ctx); got != logger {
		t.Error("FromContext did not return the stored logger")
	}
	if got := FromContext(context.Background()); got != Default() {
		t.Error("FromContext without a logger should return Default()")
	}
	//nolint:staticcheck // nil context is part of the contract
	if got := FromContext(nil); got != Default() {
		t.Error("FromContext(nil) should return Default()")
	}
}
