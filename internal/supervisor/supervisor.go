// Package supervisor spawns one goroutine per agent, waits for every
// agent to terminate, and performs post-run cleanup. It never touches
// live agent state while agents are running — all coordination happens
// through the house package's locks and the shared CaseFile.
package supervisor

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v4"

	"haunted-house/internal/ghost"
	"haunted-house/internal/hunter"
)

// Supervisor owns the ghost, the hunter roster, and the WaitGroup that
// joins every agent goroutine. hunters is an xsync.Map rather than a
// plain map+mutex. Hunters are registered with AddHunter before Run; Run
// initializes and starts only the hunters it finds registered, so a
// hunter added while Run is in progress is not guaranteed to be
// initialized or started.
type Supervisor struct {
	ghost   *ghost.Ghost
	hunters *xsync.Map[int, *hunter.Hunter]
	wg      sync.WaitGroup
}

// New returns a Supervisor for g, with no hunters registered yet.
func New(g *ghost.Ghost) *Supervisor {
	return &Supervisor{
		ghost:   g,
		hunters: xsync.NewMap[int, *hunter.Hunter](),
	}
}

// AddHunter registers h with the supervisor. Call this before Run for
// every hunter the roster collaborator produced.
func (s *Supervisor) AddHunter(h *hunter.Hunter) {
	s.hunters.Store(h.ID(), h)
}

// Hunter looks up a registered hunter by id, for the report collaborator.
func (s *Supervisor) Hunter(id int) (*hunter.Hunter, bool) {
	return s.hunters.Load(id)
}

// Hunters returns every registered hunter. The returned slice is a fresh
// copy; callers must not mutate it expecting it to reflect later
// registrations.
func (s *Supervisor) Hunters() []*hunter.Hunter {
	out := make([]*hunter.Hunter, 0, s.hunters.Size())
	s.hunters.Range(func(_ int, h *hunter.Hunter) bool {
		out = append(out, h)
		return true
	})
	return out
}

// Run initializes the ghost and every registered hunter, spawns one
// goroutine per agent, and blocks until all of them have terminated.
func (s *Supervisor) Run() {
	s.ghost.Init()
	s.hunters.Range(func(_ int, h *hunter.Hunter) bool {
		h.Init()
		return true
	})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.ghost.Run()
	}()

	s.hunters.Range(func(_ int, h *hunter.Hunter) bool {
		s.wg.Add(1)
		go func(h *hunter.Hunter) {
			defer s.wg.Done()
			h.Run()
		}(h)
		return true
	})

	s.wg.Wait()
}

// Cleanup releases supervisor-owned resources after Run returns. Go's
// locks need no explicit destruction, unlike the semaphores in the
// original source, so this mainly exists to give callers a single place
// to release the hunter roster once every agent has joined.
func (s *Supervisor) Cleanup() {
	s.hunters.Clear()
}
