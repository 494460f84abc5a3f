package logging

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Level is the severity of a message. The numeric value of a Level is its
// weight, and every threshold comparison is made on that weight.
type Level int

// Supported levels, in ascending order of severity.
const (
	// LevelDebug is for detailed diagnostic output.
	LevelDebug Level = 10
	// LevelInfo is for general information.
	LevelInfo Level = 20
	// LevelSuccess marks a completed operation. It sits just above LevelInfo
	// so an INFO threshold admits it and a WARNING threshold drops it.
	LevelSuccess Level = 21
	// LevelWarning signals a potential issue.
	LevelWarning Level = 30
	// LevelError signals that an error occurred.
	LevelError Level = 40
)

// DefaultLevel is the base threshold a fresh State starts with.
const DefaultLevel = LevelInfo

// SlogLevelSuccess is the slog level that maps onto LevelSuccess.
const SlogLevelSuccess = slog.LevelInfo + 1

type levelInfo struct {
	name  string
	color color.Attribute
}

// levels is ordered by weight.
var levels = []Level{LevelDebug, LevelInfo, LevelSuccess, LevelWarning, LevelError}

var levelTable = map[Level]levelInfo{
	LevelDebug:   {name: "DEBUG", color: color.FgBlue},
	LevelInfo:    {name: "INFO", color: color.FgBlue},
	LevelSuccess: {name: "SUCCESS", color: color.FgHiGreen},
	LevelWarning: {name: "WARNING", color: color.FgHiRed},
	LevelError:   {name: "ERROR", color: color.FgHiRed},
}

var levelsByName = func() map[string]Level {
	m := make(map[string]Level, len(levelTable))
	for l, info := range levelTable {
		m[info.name] = l
	}
	return m
}()

// Levels returns all supported levels ordered from least to most severe.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// Weight returns the numeric weight used for threshold comparisons.
func (l Level) Weight() int {
	return int(l)
}

// Valid reports whether l is one of the supported levels.
func (l Level) Valid() bool {
	_, ok := levelTable[l]
	return ok
}

// String returns the upper-case level name, or "LEVEL(n)" for values
// outside the supported set.
func (l Level) String() string {
	if info, ok := levelTable[l]; ok {
		return info.name
	}
	return "LEVEL(" + strconv.Itoa(int(l)) + ")"
}

// Color returns the display color of the level label.
func (l Level) Color() color.Attribute {
	if info, ok := levelTable[l]; ok {
		return info.color
	}
	return color.Reset
}

// Admits reports whether a message at level msg passes a threshold of l.
func (l Level) Admits(msg Level) bool {
	return msg.Weight() >= l.Weight()
}

// SlogLevel converts l to the closest slog level.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l >= LevelError:
		return slog.LevelError
	case l >= LevelWarning:
		return slog.LevelWarn
	case l >= LevelSuccess:
		return SlogLevelSuccess
	case l >= LevelInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// FromSlogLevel maps a slog level onto the level model.
func FromSlogLevel(l slog.Level) Level {
	switch {
	case l >= slog.LevelError:
		return LevelError
	case l >= slog.LevelWarn:
		return LevelWarning
	case l >= SlogLevelSuccess:
		return LevelSuccess
	case l >= slog.LevelInfo:
		return LevelInfo
	default:
		return LevelDebug
	}
}

// ParseLevel looks up a level by name. Matching ignores case and surrounding
// whitespace. The disable sentinels are rejected with an error matching
// ErrDisableToken; any other unknown name yields an *UnknownLevelError.
func ParseLevel(name string) (Level, error) {
	token := normalizeToken(name)
	if l, ok := levelsByName[token]; ok {
		return l, nil
	}
	if isDisableToken(token) {
		return 0, &disableTokenError{token: name}
	}
	return 0, &UnknownLevelError{Token: name}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, &UnknownLevelError{Token: l.String()}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func normalizeToken(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
