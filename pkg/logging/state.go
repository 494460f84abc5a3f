package logging

import "sync"

// State is the filtering configuration shared by every call site of a
// Logger: the base threshold, the stack of scoped overrides, the stack of
// scoped disables and the global kill switch.
//
// All fields sit behind one mutex so the effective threshold and the
// enabled flag are always read together. Overrides are global: a scope
// opened by one goroutine applies to log calls made concurrently by any
// other goroutine sharing the State.
//
// The zero value is ready to use and behaves like NewState.
type State struct {
	mu             sync.Mutex
	base           Level
	overrides      Stack[Level]
	disables       Stack[struct{}]
	globalDisabled bool
}

// NewState returns a State with base level DefaultLevel, no open scopes
// and logging enabled.
func NewState() *State {
	return &State{base: DefaultLevel}
}

// Snapshot is a consistent view of a State at one instant.
type Snapshot struct {
	Base           Level
	Threshold      Level
	Enabled        bool
	GlobalDisabled bool
	OverrideDepth  int
	DisableDepth   int
}

// Admits reports whether a message at level would be emitted under the
// snapshot.
func (s Snapshot) Admits(level Level) bool {
	return s.Enabled && s.Threshold.Admits(level)
}

// SetLevel sets the base threshold. Open overrides keep precedence; the new
// base takes effect once all of them are closed.
func (s *State) SetLevel(level Level) {
	s.mu.Lock()
	s.base = level
	s.mu.Unlock()
}

// BaseLevel returns the threshold in force when no override is open.
func (s *State) BaseLevel() Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baseLocked()
}

// Override opens a scope in which the effective threshold is level. The
// most recently opened override that is still open wins. Closing a scope
// removes only its own override, so closing scopes in LIFO order restores
// whatever threshold was in force when each was opened.
func (s *State) Override(level Level) *Scope {
	s.mu.Lock()
	h := s.overrides.Push(level)
	s.mu.Unlock()

	return newScope(func() {
		s.mu.Lock()
		s.overrides.Pop(h)
		s.mu.Unlock()
	})
}

// WithLevel runs fn with the effective threshold overridden to level.
// The previous threshold is restored however fn exits.
func (s *State) WithLevel(level Level, fn func() error) error {
	return runScoped(s.Override(level), fn)
}

// Disable turns logging off until Enable is called, regardless of scopes.
func (s *State) Disable() {
	s.mu.Lock()
	s.globalDisabled = true
	s.mu.Unlock()
}

// Enable clears the global kill switch set by Disable. Open disable scopes
// still suppress output until they close.
func (s *State) Enable() {
	s.mu.Lock()
	s.globalDisabled = false
	s.mu.Unlock()
}

// DisabledScope suppresses all output until the returned scope is closed.
// Disable scopes are counted; output resumes only when every one of them
// has closed, in whatever order.
func (s *State) DisabledScope() *Scope {
	s.mu.Lock()
	h := s.disables.Push(struct{}{})
	s.mu.Unlock()

	return newScope(func() {
		s.mu.Lock()
		s.disables.Pop(h)
		s.mu.Unlock()
	})
}

// WithDisabled runs fn with logging suppressed.
func (s *State) WithDisabled(fn func() error) error {
	return runScoped(s.DisabledScope(), fn)
}

// EffectiveThreshold returns the innermost open override, or the base
// level when none is open.
func (s *State) EffectiveThreshold() Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.thresholdLocked()
}

// EffectiveEnabled reports whether logging is on: not globally disabled and
// no disable scope open.
func (s *State) EffectiveEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabledLocked()
}

// Allows reports whether a message at level passes the current filter.
// Threshold and enabled flag are read under the same lock.
func (s *State) Allows(level Level) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabledLocked() && s.thresholdLocked().Admits(level)
}

// OverrideDepth returns the number of open override scopes.
func (s *State) OverrideDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overrides.Len()
}

// DisableDepth returns the number of open disable scopes.
func (s *State) DisableDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disables.Len()
}

// Snapshot returns a consistent copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Base:           s.baseLocked(),
		Threshold:      s.thresholdLocked(),
		Enabled:        s.enabledLocked(),
		GlobalDisabled: s.globalDisabled,
		OverrideDepth:  s.overrides.Len(),
		DisableDepth:   s.disables.Len(),
	}
}

// Reset returns the State to its startup configuration. Scopes opened
// before Reset become no-ops when closed.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = DefaultLevel
	s.overrides.Reset()
	s.disables.Reset()
	s.globalDisabled = false
}

func (s *State) baseLocked() Level {
	if s.base == 0 {
		return DefaultLevel
	}
	return s.base
}

func (s *State) thresholdLocked() Level {
	if top, ok := s.overrides.Top(); ok {
		return top
	}
	return s.baseLocked()
}

func (s *State) enabledLocked() bool {
	return !s.globalDisabled && s.disables.Len() == 0
}
