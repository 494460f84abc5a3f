package logging

import (
	"slices"
	"testing"
)

func TestStack_PushPop(t *testing.T) {
	var s Stack[string]

	if _, ok := s.Top(); ok {
		t.Fatal("Top() on empty stack reported a value")
	}

	a := s.Push("a")
	b := s.Push("b")

	top, ok := s.Top()
	if !ok || top != "b" {
		t.Errorf("Top() = %q, %v, want \"b\", true", top, ok)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	if !s.Pop(b) {
		t.Error("Pop(b) = false, want true")
	}
	if top, _ = s.Top(); top != "a" {
		t.Errorf("Top() after Pop(b) = %q, want \"a\"", top)
	}

	if !s.Pop(a) {
		t.Error("Pop(a) = false, want true")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStack_PopOuterKeepsInner(t *testing.T) {
	var s Stack[int]
	outer := s.Push(1)
	inner := s.Push(2)
	s.Push(3)

	if !s.Pop(outer) {
		t.Fatal("Pop(outer) = false, want true")
	}
	if got := s.Values(); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("Values() = %v, want [2 3]", got)
	}
	if top, _ := s.Top(); top != 3 {
		t.Errorf("Top() = %d, want 3", top)
	}

	if !s.Pop(inner) {
		t.Error("Pop(inner) = false, want true")
	}
	if got := s.Values(); !slices.Equal(got, []int{3}) {
		t.Errorf("Values() = %v, want [3]", got)
	}
	if s.Pop(outer) {
		t.Error("second Pop(outer) = true, want false")
	}
}

func TestStack_StaleHandle(t *testing.T) {
	var s Stack[int]
	h := s.Push(1)
	if !s.Pop(h) {
		t.Fatal("Pop(h) = false, want true")
	}

	// a later push must not be removed through the old handle
	s.Push(2)
	if s.Pop(h) {
		t.Error("Pop(stale) = true, want false")
	}
	if got := s.Values(); !slices.Equal(got, []int{2}) {
		t.Errorf("Values() = %v, want [2]", got)
	}

	if s.Pop(Handle{}) {
		t.Error("zero handle matched an entry")
	}
}

func TestStack_ResetInvalidatesHandles(t *testing.T) {
	var s Stack[int]
	h := s.Push(1)
	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", s.Len())
	}

	s.Push(5)
	if s.Pop(h) {
		t.Error("Pop(pre-reset handle) = true, want false")
	}
	if got := s.Values(); !slices.Equal(got, []int{5}) {
		t.Errorf("Values() = %v, want [5]", got)
	}
}

func TestScope_CloseOnce(t *testing.T) {
	calls := 0
	scope := newScope(func() { calls++ })

	scope.Close()
	scope.Close()

	if calls != 1 {
		t.Errorf("release called %d times, want 1", calls)
	}
}

func TestScope_NilSafe(t *testing.T) {
	var scope *Scope
	scope.Close()

	(&Scope{}).Close()
}
