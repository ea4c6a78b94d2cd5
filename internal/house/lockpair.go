package house

// LockGhostPair and LockHunterPair implement the §4.2 two-room lock
// ordering rule: when the same lock type is acquired on two rooms, the
// room with the lower Index is locked first. Grounded on the original's
// address-order locking for room_move, translated to an index-based
// total order since Go does not let a program compare pointer addresses
// as an ordering key the way C does without resorting to uintptr tricks.
//
// Both functions return an unlock func covering whichever rooms were
// actually locked, including the degenerate case where a and b are the
// same room (a self-move is never issued by the agents, but the helper
// stays correct if it ever is).

// LockGhostPair locks the GhostPresenceLock of a and b in index order and
// returns a function that releases both.
func LockGhostPair(a, b *Room) (unlock func()) {
	if a == b {
		a.LockGhostPresence()
		return a.UnlockGhostPresence
	}
	first, second := a, b
	if second.index < first.index {
		first, second = second, first
	}
	first.LockGhostPresence()
	second.LockGhostPresence()
	return func() {
		second.UnlockGhostPresence()
		first.UnlockGhostPresence()
	}
}

// LockHunterPair locks the HunterOccupancyLock of a and b in index order
// and returns a function that releases both.
func LockHunterPair(a, b *Room) (unlock func()) {
	if a == b {
		a.LockHunterOccupancy()
		return a.UnlockHunterOccupancy
	}
	first, second := a, b
	if second.index < first.index {
		first, second = second, first
	}
	first.LockHunterOccupancy()
	second.LockHunterOccupancy()
	return func() {
		second.UnlockHunterOccupancy()
		first.UnlockHunterOccupancy()
	}
}
