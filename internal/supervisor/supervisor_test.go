package supervisor

import (
	"testing"

	"haunted-house/internal/evidence"
	"haunted-house/internal/ghost"
	"haunted-house/internal/house"
	"haunted-house/internal/hunter"
	"haunted-house/internal/logger"
	"haunted-house/internal/metrics"
	"haunted-house/internal/rng"
)

func newTestSupervisor(t *testing.T, hunterCount int) *Supervisor {
	t.Helper()
	g, err := house.BuildDefaultHouse(rng.New(7))
	if err != nil {
		t.Fatalf("BuildDefaultHouse: %v", err)
	}
	log := logger.New("TEST", "error")
	m := metrics.New()
	cf := house.NewCaseFile()

	gh := ghost.New(evidence.Mare, g, rng.New(7), log, m, 4)
	sup := New(gh)
	for i := 0; i < hunterCount; i++ {
		h := hunter.New(hunter.Spec{Name: "H", ID: i, Device: evidence.Writing}, g, cf, rng.New(uint64(i+1)), log, m, 4, 4)
		sup.AddHunter(h)
	}
	return sup
}

func TestRunTerminatesWithAllAgentsExited(t *testing.T) {
	sup := newTestSupervisor(t, 3)
	sup.Run()

	for _, h := range sup.Hunters() {
		if !h.Exited() {
			t.Errorf("hunter %d did not exit", h.ID())
		}
	}
	sup.Cleanup()
}

func TestAddHunterAndLookup(t *testing.T) {
	sup := newTestSupervisor(t, 2)
	all := sup.Hunters()
	if len(all) != 2 {
		t.Fatalf("Hunters() len = %d, want 2", len(all))
	}
	if _, ok := sup.Hunter(0); !ok {
		t.Fatal("Hunter(0) should be registered")
	}
	if _, ok := sup.Hunter(999); ok {
		t.Fatal("Hunter(999) should not exist")
	}
}

func TestCleanupEmptiesRoster(t *testing.T) {
	sup := newTestSupervisor(t, 2)
	sup.Run()
	sup.Cleanup()
	if len(sup.Hunters()) != 0 {
		t.Fatal("Cleanup should empty the hunter roster")
	}
}
