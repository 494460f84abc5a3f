// Package logging provides a level-filtered, colorized message logger for
// CLI tools.
//
// Messages carry one of five levels, ordered by weight: DEBUG (10),
// INFO (20), SUCCESS (21), WARNING (30) and ERROR (40). A message is
// emitted when its weight is at least the effective threshold and logging
// is enabled; it is then rendered as "LEVEL: message" and written to the
// logger's sink (stdout by default).
//
// # Basic Usage
//
// The package-level functions use a process-wide logger:
//
//	logging.SetLevel(logging.LevelDebug)
//	logging.Info("compiling contracts")
//	logging.Success("deployed")
//
// # Scoped Overrides
//
// Thresholds can be changed for a bounded scope. Closing the scope restores
// the previous threshold, and scopes nest:
//
//	scope := logging.Override(logging.LevelError)
//	defer scope.Close()
//
// The With* forms run a function and restore on every exit path, panics
// included:
//
//	err := logging.WithDisabled(func() error {
//		return noisyStep()
//	})
//
// Overrides are global to the State they are opened on. Goroutines sharing
// a logger see each other's overrides.
//
// # Verbosity Tokens
//
// [Resolve] maps a user-typed token (a level name or DISABLE/NONE, any
// case) to a [Verbosity] that can be applied to a State.
//
// # log/slog
//
// [NewSlogHandler] adapts a Logger to slog.Handler.
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
