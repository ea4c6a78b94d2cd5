package house

import (
	"sync"
	"testing"

	"haunted-house/internal/evidence"
)

func TestCheckVictoryFalseBeforeThreeEvidences(t *testing.T) {
	c := NewCaseFile()
	c.AddEvidence(evidence.Writing)
	c.AddEvidence(evidence.Radio)
	if c.CheckVictory() {
		t.Fatal("CheckVictory should be false with only two evidences")
	}
}

func TestCheckVictoryFalseForInvalidTriple(t *testing.T) {
	// EMF|Orbs|Writing has popcount 3 but matches no ghost (Mare needs
	// Radio, not EMF) — the exact false-victory scenario from the spec's
	// concrete test matrix.
	c := NewCaseFile()
	c.AddEvidence(evidence.EMF)
	c.AddEvidence(evidence.Orbs)
	c.AddEvidence(evidence.Writing)
	if c.CheckVictory() {
		t.Fatal("CheckVictory should be false for EMF|Orbs|Writing")
	}
	if c.Solved() {
		t.Fatal("Solved must remain false after a failed CheckVictory")
	}
}

func TestCheckVictoryTrueForMareTriple(t *testing.T) {
	c := NewCaseFile()
	c.AddEvidence(evidence.Writing)
	c.AddEvidence(evidence.Radio)
	c.AddEvidence(evidence.Orbs)
	if !c.CheckVictory() {
		t.Fatal("CheckVictory should be true for Writing|Radio|Orbs (Mare)")
	}
	if !c.Solved() {
		t.Fatal("Solved should be true after a winning CheckVictory")
	}
}

func TestCheckVictoryIsMonotonic(t *testing.T) {
	c := NewCaseFile()
	c.AddEvidence(evidence.Writing)
	c.AddEvidence(evidence.Radio)
	c.AddEvidence(evidence.Orbs)
	before := c.Collected()
	c.CheckVictory()
	after := c.Collected()
	if before != after {
		t.Fatal("CheckVictory must not alter the collected evidence set")
	}
	if after.ClearBit(evidence.Writing) == after {
		t.Fatal("sanity: ClearBit should have changed the set")
	}
}

// TestCheckVictoryExactlyOneFirstWinner simulates the concrete race
// scenario: many goroutines race to observe the same winning evidence
// set; exactly one of CheckVictory's calls may be "the" transition, but
// every call after the first must also observe true, and Solved never
// flips back.
func TestCheckVictoryExactlyOneFirstWinner(t *testing.T) {
	c := NewCaseFile()
	c.AddEvidence(evidence.Writing)
	c.AddEvidence(evidence.Radio)
	c.AddEvidence(evidence.Orbs)

	const n = 64
	results := make([]bool, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.CheckVictory()
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if !r {
			t.Errorf("goroutine %d observed CheckVictory() == false, want true", i)
		}
	}
	if !c.Solved() {
		t.Fatal("case file should be solved after the race")
	}
}
