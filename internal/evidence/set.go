package evidence

import "math/bits"

// Set is a bit-union of Kind values, 0..=127. Room evidence, a ghost's
// identifying triple, and the case file's collected evidence are all Sets.
type Set uint8

// Contains reports whether k's bit is present in s.
func (s Set) Contains(k Kind) bool {
	return s&Set(k) == Set(k)
}

// SetBit returns s with k's bit set. Idempotent.
func (s Set) SetBit(k Kind) Set {
	return s | Set(k)
}

// ClearBit returns s with k's bit cleared. Idempotent.
func (s Set) ClearBit(k Kind) Set {
	return s &^ Set(k)
}

// Popcount returns the number of evidence bits set in s.
func (s Set) Popcount() int {
	return bits.OnesCount8(uint8(s))
}
