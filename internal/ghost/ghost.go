// Package ghost implements the single-ghost agent state machine: each
// turn it updates its boredom counter, may exit once bored enough, and
// otherwise idles, haunts, or moves.
package ghost

import (
	"haunted-house/internal/evidence"
	"haunted-house/internal/house"
	"haunted-house/internal/logger"
	"haunted-house/internal/metrics"
	"haunted-house/internal/rng"
)

// Ghost is the one supernatural agent in a run. It implements
// house.GhostOccupant so Room can manage its presence without house
// importing this package.
type Ghost struct {
	kind    evidence.GhostKind
	boredom int
	running bool
	exited  bool

	current *house.Room

	graph   *house.RoomGraph
	rand    rng.Source
	log     *logger.Logger
	metrics *metrics.Metrics

	boredomMax int
}

// New returns a ghost of the given kind, not yet placed in any room. Call
// Init to place it in a random starting room before Run.
func New(kind evidence.GhostKind, graph *house.RoomGraph, src rng.Source, log *logger.Logger, m *metrics.Metrics, boredomMax int) *Ghost {
	return &Ghost{
		kind:       kind,
		running:    true,
		graph:      graph,
		rand:       src,
		log:        log,
		metrics:    m,
		boredomMax: boredomMax,
	}
}

// ID identifies the ghost for house.GhostOccupant. There is always
// exactly one ghost, so this is a constant sentinel, not an allocated id.
func (g *Ghost) ID() int { return 0 }

// SetCurrentRoom implements house.GhostOccupant; Room calls this as part
// of AddGhostLocked/RemoveGhostLocked (move passes the destination room,
// never nil, since a ghost always occupies exactly one room while alive).
func (g *Ghost) SetCurrentRoom(r *house.Room) { g.current = r }

// CurrentRoom returns the ghost's room.
func (g *Ghost) CurrentRoom() *house.Room { return g.current }

// Kind returns the ghost's identifying kind.
func (g *Ghost) Kind() evidence.GhostKind { return g.kind }

// Exited reports whether the ghost has terminated.
func (g *Ghost) Exited() bool { return g.exited }

// Init places the ghost in a uniformly random starting room and logs
// GhostInit, mirroring house_load_data's room_choose_rand_start call.
func (g *Ghost) Init() {
	start := g.graph.ChooseRandomStart()
	start.LockGhostPresence()
	_ = start.AddGhostLocked(g)
	start.UnlockGhostPresence()
	g.log.GhostInit(g.kind.String(), start.Name())
}

const (
	actionIdle = iota
	actionHaunt
	actionMove
)

// Run executes the ghost's turn loop until it terminates. It is meant to
// run on its own goroutine, matching the one-thread-per-agent model.
func (g *Ghost) Run() {
	for g.running {
		g.takeTurn()
	}
}

// takeTurn implements the seven numbered steps of the ghost state
// machine in order.
func (g *Ghost) takeTurn() {
	g.metrics.TurnsTaken.Add(1)

	room := g.current

	room.LockHunterOccupancy()
	huntersPresent := room.HunterCountLocked() > 0
	room.UnlockHunterOccupancy()

	if huntersPresent {
		g.boredom = 0
	} else {
		g.boredom++
	}

	if g.boredom >= g.boredomMax {
		g.exit()
		return
	}

	g.metrics.RandCalls.Add(1)
	var action int
	if huntersPresent {
		action = []int{actionIdle, actionHaunt}[g.rand.IntN(0, 2)]
	} else {
		action = []int{actionIdle, actionHaunt, actionMove}[g.rand.IntN(0, 3)]
	}

	switch action {
	case actionIdle:
		g.idle()
	case actionHaunt:
		g.haunt()
	case actionMove:
		g.move()
	}
}

func (g *Ghost) idle() {
	g.log.GhostIdle(g.kind.String(), g.current.Name())
}

// haunt picks one of the ghost's three identifying evidence kinds and
// deposits it in the current room.
func (g *Ghost) haunt() {
	triple := evidence.Triple(g.kind)
	g.metrics.RandCalls.Add(1)
	k := triple[g.rand.IntN(0, len(triple))]

	room := g.current
	room.LockEvidence()
	room.AddEvidenceLocked(k)
	room.UnlockEvidence()

	g.metrics.EvidenceDeposited.Add(1)
	g.log.GhostEvidence(g.kind.String(), room.Name(), k.String())
}

// move relocates the ghost to a random neighbour, locking both rooms'
// GhostPresenceLocks in stable order.
func (g *Ghost) move() {
	from := g.current
	to := g.graph.ChooseRandomConnection(from)

	unlock := house.LockGhostPair(from, to)
	from.RemoveGhostLocked()
	_ = to.AddGhostLocked(g)
	unlock()

	g.metrics.MovesAttempted.Add(1)
	g.log.GhostMove(g.kind.String(), from.Name(), to.Name())
}

// exit implements step 3: remove from the room, log, and terminate.
func (g *Ghost) exit() {
	room := g.current
	room.LockGhostPresence()
	room.RemoveGhostLocked()
	room.UnlockGhostPresence()

	g.log.GhostExit(g.kind.String(), g.boredom)
	g.running = false
	g.exited = true
}
