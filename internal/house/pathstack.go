package house

// RoomPathStack is a hunter's breadcrumb trail: pushed on every
// non-returning move, popped on every returning move, used to retrace a
// path back to the exit room. The original represents this as a
// singly-linked list of malloc'd nodes; a slice is the idiomatic Go
// equivalent and needs no manual node freeing.
//
// A RoomPathStack is owned by exactly one Hunter and is never accessed by
// more than one goroutine, so it carries no lock of its own.
type RoomPathStack struct {
	rooms []*Room
}

// Push adds r to the top of the stack.
func (s *RoomPathStack) Push(r *Room) {
	s.rooms = append(s.rooms, r)
}

// Pop removes the top of the stack. A no-op on an empty stack.
func (s *RoomPathStack) Pop() {
	if len(s.rooms) == 0 {
		return
	}
	s.rooms = s.rooms[:len(s.rooms)-1]
}

// Top returns the room currently on top of the stack, or nil if empty.
func (s *RoomPathStack) Top() *Room {
	if len(s.rooms) == 0 {
		return nil
	}
	return s.rooms[len(s.rooms)-1]
}

// Len reports the number of rooms currently on the stack.
func (s *RoomPathStack) Len() int { return len(s.rooms) }

// NextPeek returns the room just below the top of the stack — the room a
// returning hunter should move to next. This mirrors
// roomstack_next_peek's unchecked pointer dereference exactly: called on
// a stack of depth < 2 it panics with an index-out-of-range, the Go
// analogue of the original's null-pointer dereference. Per the open
// question in the design notes, callers must guarantee depth >= 2 (the
// hunter is returning to exit and has not already reached it); the
// simulation never calls this otherwise.
func (s *RoomPathStack) NextPeek() *Room {
	return s.rooms[len(s.rooms)-2]
}

// Cleanup implements roomstack_cleanup's two modes. exiting == true pops
// every room (the hunter is leaving the simulation for good). exiting ==
// false pops down to exactly one remaining entry — the bottom of the
// stack, which is always the exit room once a hunter has left it — used
// when a hunter reaches the exit room alive but has not won yet, so its
// path resets to start a fresh outward trip.
func (s *RoomPathStack) Cleanup(exiting bool) {
	if exiting {
		s.rooms = s.rooms[:0]
		return
	}
	for len(s.rooms) > 1 {
		s.rooms = s.rooms[:len(s.rooms)-1]
	}
}
