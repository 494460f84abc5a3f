package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Handler implements slog.Handler on top of a Logger, so code written
// against log/slog is filtered by the same State and rendered by the same
// Formatter and Sink. Attributes are appended as key=value pairs; values
// of secret-looking keys or token-like strings are masked.
type Handler struct {
	logger *Logger
	attrs  []slog.Attr
	groups []string
}

// NewSlogHandler creates a Handler backed by l. A nil l uses Default().
func NewSlogHandler(l *Logger) *Handler {
	if l == nil {
		l = Default()
	}
	return &Handler{logger: l}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(FromSlogLevel(level))
}

// Handle renders the record and writes it through the Logger's sink.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	level := FromSlogLevel(r.Level)
	if !h.logger.Enabled(level) {
		return nil
	}

	var b strings.Builder
	b.WriteString(r.Message)

	prefix := h.groupPrefix()
	for _, a := range h.attrs {
		h.appendAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&b, prefix, a)
		return true
	})

	h.logger.dispatch(level, b.String())
	return nil
}

func (h *Handler) appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(b, prefix, ga)
		}
		return
	}

	key := prefix + a.Key
	fmt.Fprintf(b, " %s=%v", key, redactAttr(a.Key, a.Value.Any()))
}

func (h *Handler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

// WithAttrs returns a new Handler with the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	newH := *h
	prefix := h.groupPrefix()
	newH.attrs = make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newH.attrs, h.attrs)
	for _, a := range attrs {
		// Bake the current group into the key so later groups don't apply.
		a.Key = prefix + a.Key
		newH.attrs = append(newH.attrs, a)
	}
	return &newH
}

// WithGroup returns a new Handler with the given group name.
// Groups are rendered by prefixing keys.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newH := *h
	newH.groups = make([]string, len(h.groups)+1)
	copy(newH.groups, h.groups)
	newH.groups[len(h.groups)] = name
	return &newH
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
