package logging

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode controls whether level labels are colorized.
type ColorMode string

const (
	// ColorAuto colorizes only when the output supports it.
	ColorAuto ColorMode = "auto"
	// ColorAlways colorizes unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables colorization.
	ColorNever ColorMode = "never"
)

// ParseColorMode parses "auto", "always" or "never" (case-insensitive).
// The empty string means ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", errInvalidColorMode(s)
	}
}

// Enabled resolves the mode against the writer that will receive output.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return SupportsColor(w)
	}
}

// IsTTY returns true if the given writer is a terminal.
// It supports os.File and any wrapper that provides an Fd() method.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor returns true if the given writer supports ANSI color codes.
// It returns false if:
//   - The writer is not a TTY
//   - The NO_COLOR environment variable is set
//   - The TERM environment variable is set to "dumb"
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}
