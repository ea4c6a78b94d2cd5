package house

import "testing"

func TestPathStackPushPopTop(t *testing.T) {
	var s RoomPathStack
	a := &Room{name: "a"}
	b := &Room{name: "b"}
	s.Push(a)
	s.Push(b)
	if s.Top() != b {
		t.Fatalf("Top() = %v, want b", s.Top())
	}
	s.Pop()
	if s.Top() != a {
		t.Fatalf("Top() after Pop = %v, want a", s.Top())
	}
	s.Pop()
	if s.Top() != nil {
		t.Fatalf("Top() on empty stack = %v, want nil", s.Top())
	}
}

func TestPathStackPopOnEmptyIsNoOp(t *testing.T) {
	var s RoomPathStack
	s.Pop() // must not panic
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestPathStackNextPeek(t *testing.T) {
	var s RoomPathStack
	exit := &Room{name: "exit"}
	mid := &Room{name: "mid"}
	s.Push(exit)
	s.Push(mid)
	if got := s.NextPeek(); got != exit {
		t.Fatalf("NextPeek() = %v, want exit", got)
	}
}

func TestPathStackNextPeekPanicsBelowDepthTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NextPeek on a depth<2 stack should panic, matching the unchecked original")
		}
	}()
	var s RoomPathStack
	s.Push(&Room{name: "only"})
	s.NextPeek()
}

func TestPathStackCleanupExiting(t *testing.T) {
	var s RoomPathStack
	s.Push(&Room{name: "a"})
	s.Push(&Room{name: "b"})
	s.Cleanup(true)
	if s.Len() != 0 {
		t.Fatalf("Len() after exiting cleanup = %d, want 0", s.Len())
	}
}

func TestPathStackCleanupAliveKeepsBottom(t *testing.T) {
	var s RoomPathStack
	exit := &Room{name: "exit"}
	s.Push(exit)
	s.Push(&Room{name: "b"})
	s.Push(&Room{name: "c"})
	s.Cleanup(false)
	if s.Len() != 1 {
		t.Fatalf("Len() after alive cleanup = %d, want 1", s.Len())
	}
	if s.Top() != exit {
		t.Fatalf("Top() after alive cleanup = %v, want exit", s.Top())
	}
}
