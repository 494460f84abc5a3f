package logging

import (
	"strings"
	"testing"
)

func TestColorFormatter_Plain(t *testing.T) {
	f := NewColorFormatter(false)
	if f.Colorized() {
		t.Fatal("formatter should not be colorized")
	}
	for _, l := range Levels() {
		want := l.String() + ": msg"
		if got := f.Format(l, "msg"); got != want {
			t.Errorf("Format(%v) = %q, want %q", l, got, want)
		}
	}
}

func TestColorFormatter_Colorized(t *testing.T) {
	f := NewColorFormatter(true)
	if !f.Colorized() {
		t.Fatal("formatter should be colorized")
	}

	tests := []struct {
		level Level
		code  string
	}{
		{LevelDebug, "\x1b[34m"},
		{LevelInfo, "\x1b[34m"},
		{LevelSuccess, "\x1b[92m"},
		{LevelWarning, "\x1b[91;1m"},
		{LevelError, "\x1b[91;1m"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			got := f.Format(tt.level, "msg")
			if !strings.HasPrefix(got, tt.code+tt.level.String()) {
				t.Errorf("Format(%v) = %q, want prefix %q", tt.level, got, tt.code)
			}
			if !strings.HasSuffix(got, "m: msg") || !strings.Contains(got, "\x1b[0") {
				t.Errorf("Format(%v) = %q, want reset before message", tt.level, got)
			}
		})
	}
}
