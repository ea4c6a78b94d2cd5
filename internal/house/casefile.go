package house

import (
	"sync"

	"haunted-house/internal/evidence"
)

// CaseFile is the shared evidence ledger every hunter deposits into. Its
// collected set is monotonic and its solved flag transitions false->true
// at most once; both invariants are enforced by always mutating under the
// single mutex below, never read-then-write across two acquisitions.
type CaseFile struct {
	mu        sync.Mutex
	collected evidence.Set
	solved    bool
}

// NewCaseFile returns an empty, unsolved case file.
func NewCaseFile() *CaseFile {
	return &CaseFile{}
}

// AddEvidence deposits k into the shared collected set. Idempotent, and
// never clears a previously-set bit.
func (c *CaseFile) AddEvidence(k evidence.Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.collected = c.collected.SetBit(k)
}

// Collected returns a snapshot of the evidence collected so far.
func (c *CaseFile) Collected() evidence.Set {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.collected
}

// Solved reports whether the case has already been marked solved.
func (c *CaseFile) Solved() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.solved
}

// CheckVictory implements §4.4's check_victory plus the "first hunter to
// observe it wins" serialization from §4.6 step 4a as one atomic
// operation: it reports whether the case is (now) solved, and if this
// call is the one that discovers a fresh victory, it also flips solved to
// true before returning — all under a single mutex acquisition.
//
// The original keeps check_victory and "set solved=true" as two
// operations inside one critical section in the caller; collapsing them
// into one method here is a deliberate simplification (recorded in
// DESIGN.md) that preserves the exact externally observable contract:
// solved flips false->true at most once, exactly one call performs that
// transition, and every call after it returns true without re-checking
// the evidence set.
func (c *CaseFile) CheckVictory() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.solved {
		return true
	}
	if c.collected.Popcount() >= 3 && evidence.IsValidGhost(c.collected) {
		c.solved = true
		return true
	}
	return false
}
