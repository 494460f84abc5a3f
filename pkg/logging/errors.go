package logging

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for level lookup.
var (
	// ErrUnknownLevel indicates a token that is neither a level name nor a
	// disable sentinel.
	ErrUnknownLevel = errors.New("unknown log level")

	// ErrDisableToken indicates a disable sentinel was passed where a level
	// name was required.
	ErrDisableToken = errors.New("token disables logging and does not name a level")
)

// UnknownLevelError reports a verbosity token that matched nothing.
// It matches ErrUnknownLevel under errors.Is.
type UnknownLevelError struct {
	Token string
}

func (e *UnknownLevelError) Error() string {
	return fmt.Sprintf("%s %q (valid: %s)", ErrUnknownLevel, e.Token, strings.Join(Tokens(), ", "))
}

func (e *UnknownLevelError) Unwrap() error {
	return ErrUnknownLevel
}

type disableTokenError struct {
	token string
}

func (e *disableTokenError) Error() string {
	return fmt.Sprintf("%q: %s", e.token, ErrDisableToken)
}

func (e *disableTokenError) Unwrap() error {
	return ErrDisableToken
}

// ErrInvalidColorMode indicates a color mode other than auto, always or never.
var ErrInvalidColorMode = errors.New("invalid color mode")

func errInvalidColorMode(s string) error {
	return errors.Wrapf(ErrInvalidColorMode, "%q (valid: auto, always, never)", s)
}
