package logging

// Disable sentinels accepted wherever a verbosity token is.
const (
	TokenDisable = "DISABLE"
	TokenNone    = "NONE"
)

// Verbosity is a resolved verbosity token: either a level to filter at or
// an instruction to suppress output entirely.
type Verbosity struct {
	Level    Level
	Disabled bool
}

// VerbosityLevel returns a Verbosity selecting level.
func VerbosityLevel(level Level) Verbosity {
	return Verbosity{Level: level}
}

// VerbosityDisabled returns a Verbosity that turns logging off.
func VerbosityDisabled() Verbosity {
	return Verbosity{Disabled: true}
}

// Resolve maps a human-typed token onto a Verbosity. Level names and the
// sentinels DISABLE and NONE are matched case-insensitively. Anything else
// fails with *UnknownLevelError.
func Resolve(token string) (Verbosity, error) {
	norm := normalizeToken(token)
	if isDisableToken(norm) {
		return VerbosityDisabled(), nil
	}
	if l, ok := levelsByName[norm]; ok {
		return VerbosityLevel(l), nil
	}
	return Verbosity{}, &UnknownLevelError{Token: token}
}

// IsDisableToken reports whether token is one of the disable sentinels.
func IsDisableToken(token string) bool {
	return isDisableToken(normalizeToken(token))
}

func isDisableToken(norm string) bool {
	return norm == TokenDisable || norm == TokenNone
}

// Tokens lists every accepted verbosity token: level names in severity
// order followed by the disable sentinels.
func Tokens() []string {
	out := make([]string, 0, len(levels)+2)
	for _, l := range levels {
		out = append(out, l.String())
	}
	return append(out, TokenDisable, TokenNone)
}

// Apply pushes the verbosity into s: a level becomes the base threshold, a
// disable instruction trips the global kill switch.
func (v Verbosity) Apply(s *State) {
	if v.Disabled {
		s.Disable()
		return
	}
	s.SetLevel(v.Level)
}

// String returns the canonical token for v.
func (v Verbosity) String() string {
	if v.Disabled {
		return TokenDisable
	}
	return v.Level.String()
}

// MarshalText implements encoding.TextMarshaler.
func (v Verbosity) MarshalText() ([]byte, error) {
	if v.Disabled {
		return []byte(TokenDisable), nil
	}
	return v.Level.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Verbosity) UnmarshalText(data []byte) error {
	parsed, err := Resolve(string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
