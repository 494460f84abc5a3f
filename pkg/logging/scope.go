package logging

import (
	"slices"
	"sync"
)

// Handle identifies a single Push on a Stack. The zero Handle matches nothing.
type Handle struct {
	id uint64
}

type stackEntry[T any] struct {
	id    uint64
	value T
}

// Stack is an ordered stack whose pushes are undone through the Handle
// returned by Push, not by blind pops. Popping a handle removes that one
// entry wherever it sits, so scopes closed out of order never discard each
// other.
//
// A Stack is not safe for concurrent use. State serializes access to the
// stacks it owns.
type Stack[T any] struct {
	entries []stackEntry[T]
	lastID  uint64
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) Handle {
	s.lastID++
	s.entries = append(s.entries, stackEntry[T]{id: s.lastID, value: v})
	return Handle{id: s.lastID}
}

// Pop removes the entry pushed under h. Entries above it stay in place and
// keep their order. Pop reports whether h was still on the stack; popping a
// stale handle changes nothing.
func (s *Stack[T]) Pop(h Handle) bool {
	if h.id == 0 {
		return false
	}
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].id == h.id {
			s.entries = slices.Delete(s.entries, i, i+1)
			return true
		}
	}
	return false
}

// Top returns the most recently pushed value still on the stack.
func (s *Stack[T]) Top() (T, bool) {
	if len(s.entries) == 0 {
		var zero T
		return zero, false
	}
	return s.entries[len(s.entries)-1].value, true
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return len(s.entries)
}

// Values returns the stacked values, oldest first.
func (s *Stack[T]) Values() []T {
	out := make([]T, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.value
	}
	return out
}

// Reset empties the stack. Handles issued before Reset become stale.
func (s *Stack[T]) Reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// Scope is the guard for an open override or disable scope. Close releases
// it; calling Close more than once, or on a nil Scope, is a no-op. The usual
// pattern is:
//
//	scope := state.Override(logging.LevelDebug)
//	defer scope.Close()
type Scope struct {
	once    sync.Once
	release func()
}

func newScope(release func()) *Scope {
	return &Scope{release: release}
}

// Close ends the scope and restores the state that was in force before it
// was opened.
func (s *Scope) Close() {
	if s == nil || s.release == nil {
		return
	}
	s.once.Do(s.release)
}

// runScoped runs fn and closes scope on every exit path, panics included.
func runScoped(scope *Scope, fn func() error) error {
	defer scope.Close()
	if fn == nil {
		return nil
	}
	return fn()
}
