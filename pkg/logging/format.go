package logging

import "github.com/fatih/color"

// Formatter renders a message into the line handed to a Sink.
type Formatter interface {
	Format(level Level, msg string) string
}

// ColorFormatter renders "LEVEL: message", coloring the label with the
// level's display color when enabled.
type ColorFormatter struct {
	colors map[Level]*color.Color
}

// NewColorFormatter creates a ColorFormatter. With enabled set, labels are
// colorized even if fatih/color's own terminal detection would say no; the
// caller has already made that decision.
func NewColorFormatter(enabled bool) *ColorFormatter {
	f := &ColorFormatter{}
	if !enabled {
		return f
	}

	f.colors = make(map[Level]*color.Color, len(levels))
	for _, l := range levels {
		c := color.New(l.Color())
		if l >= LevelWarning {
			c.Add(color.Bold)
		}
		c.EnableColor()
		f.colors[l] = c
	}
	return f
}

// Colorized reports whether the formatter emits ANSI sequences.
func (f *ColorFormatter) Colorized() bool {
	return f.colors != nil
}

// Label returns the possibly colorized level label.
func (f *ColorFormatter) Label(level Level) string {
	label := level.String()
	if c, ok := f.colors[level]; ok {
		return c.Sprint(label)
	}
	return label
}

// Format implements Formatter.
func (f *ColorFormatter) Format(level Level, msg string) string {
	return f.Label(level) + ": " + msg
}
