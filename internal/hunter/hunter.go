// Package hunter implements the hunter agent state machine: stats
// update, exit checks, exit-room management (victory check, device
// swap), evidence gathering, and movement with the overflow-hunter
// reconciliation from the room model's initialization exception.
package hunter

import (
	"haunted-house/internal/evidence"
	"haunted-house/internal/house"
	"haunted-house/internal/logger"
	"haunted-house/internal/metrics"
	"haunted-house/internal/rng"
)

// ExitReason records why a hunter's turn loop terminated.
type ExitReason int

// The four exit reasons from the external interfaces table. NotYet never
// appears in a completed Hunter — it is the zero-ish sentinel before a
// hunter has exited.
const (
	ExitEvidence ExitReason = 0
	ExitBored    ExitReason = 1
	ExitAfraid   ExitReason = 2
	ExitNotYet   ExitReason = -1
)

func (r ExitReason) String() string {
	switch r {
	case ExitEvidence:
		return "Evidence"
	case ExitBored:
		return "Bored"
	case ExitAfraid:
		return "Afraid"
	default:
		return "NotYet"
	}
}

// Hunter is one investigator. It implements house.HunterOccupant so Room
// can manage its occupancy, current-room back-reference, and path stack
// without house importing this package.
type Hunter struct {
	name   string
	id     int
	device evidence.Kind

	current  *house.Room
	caseFile *house.CaseFile
	path     house.RoomPathStack

	boredom int
	fear    int

	exitReason ExitReason
	running    bool
	exited     bool

	returningToExit  bool
	initInFirstRoom  bool
	initAddedToExit  bool

	graph   *house.RoomGraph
	rand    rng.Source
	log     *logger.Logger
	metrics *metrics.Metrics

	boredomMax int
	fearMax    int
}

// Spec is the roster collaborator's description of one hunter to create:
// a name, id, and optionally a pre-selected starting device.
type Spec struct {
	Name   string
	ID     int
	Device evidence.Kind
}

// New constructs a Hunter from spec, wired to the shared graph, case
// file, RNG, logger, and metrics. It does not place the hunter in a room;
// call Init for that.
func New(spec Spec, graph *house.RoomGraph, caseFile *house.CaseFile, src rng.Source, log *logger.Logger, m *metrics.Metrics, boredomMax, fearMax int) *Hunter {
	return &Hunter{
		name:       spec.Name,
		id:         spec.ID,
		device:     spec.Device,
		running:    true,
		exitReason: ExitNotYet,
		graph:      graph,
		caseFile:   caseFile,
		rand:       src,
		log:        log,
		metrics:    m,
		boredomMax: boredomMax,
		fearMax:    fearMax,
	}
}

// ID implements house.HunterOccupant.
func (h *Hunter) ID() int { return h.id }

// SetCurrentRoom implements house.HunterOccupant.
func (h *Hunter) SetCurrentRoom(r *house.Room) { h.current = r }

// ReturningToExit implements house.HunterOccupant.
func (h *Hunter) ReturningToExit() bool { return h.returningToExit }

// PushPath implements house.HunterOccupant.
func (h *Hunter) PushPath(r *house.Room) { h.path.Push(r) }

// PopPath implements house.HunterOccupant.
func (h *Hunter) PopPath() { h.path.Pop() }

// SetInitAddedToExit implements house.HunterOccupant.
func (h *Hunter) SetInitAddedToExit(v bool) { h.initAddedToExit = v }

// InitAddedToExit implements house.HunterOccupant.
func (h *Hunter) InitAddedToExit() bool { return h.initAddedToExit }

// Name returns the hunter's display name.
func (h *Hunter) Name() string { return h.name }

// CurrentRoom returns the hunter's room.
func (h *Hunter) CurrentRoom() *house.Room { return h.current }

// ExitReason returns the reason the hunter's loop terminated; ExitNotYet
// while still running.
func (h *Hunter) ExitReason() ExitReason { return h.exitReason }

// Exited reports whether the hunter has terminated.
func (h *Hunter) Exited() bool { return h.exited }

// Init places the hunter at the exit room implementing §4.7: if the exit
// room has spare capacity, the hunter is added normally; otherwise it is
// created as an "overflow" hunter whose current room is the exit room but
// which is not physically present in the exit room's occupancy set, with
// its path stack seeded with just the exit room.
func (h *Hunter) Init() {
	exit := h.graph.ExitRoom()
	h.initInFirstRoom = true

	exit.LockHunterOccupancy()
	err := exit.AddHunterLocked(h)
	exit.UnlockHunterOccupancy()

	if err == house.ErrRoomFull {
		h.current = exit
		h.path.Push(exit)
		h.initAddedToExit = false
	} else {
		h.initAddedToExit = true
	}

	h.log.HunterInit(h.name, h.id, exit.Name(), h.device.String())
}

// Run executes the hunter's turn loop until it terminates.
func (h *Hunter) Run() {
	for h.running {
		h.takeTurn()
	}
}

// takeTurn implements the six numbered steps of the hunter state
// machine in order.
func (h *Hunter) takeTurn() {
	h.metrics.TurnsTaken.Add(1)

	h.statsUpdate()

	if h.current.IsExit() && h.returningToExit {
		h.returningToExit = false
		h.log.HunterReturnToVanComplete(h.name, h.id)
	}

	if h.boredom >= h.boredomMax {
		h.exit(ExitBored)
		return
	}
	if h.fear >= h.fearMax {
		h.exit(ExitAfraid)
		return
	}

	if h.current.IsExit() {
		if h.manageExitRoom() {
			return
		}
	}

	if !h.returningToExit {
		h.gatherEvidence()
	}

	h.move()
}

// statsUpdate implements step 1: read ghost presence, adjust boredom and
// fear accordingly.
func (h *Hunter) statsUpdate() {
	room := h.current
	room.LockGhostPresence()
	ghostPresent := room.GhostLocked() != nil
	room.UnlockGhostPresence()

	if ghostPresent {
		h.boredom = 0
		h.fear++
	} else {
		h.boredom++
	}
}

// exit implements step 3's exit procedure.
func (h *Hunter) exit(reason ExitReason) {
	room := h.current
	room.LockHunterOccupancy()
	room.RemoveHunterLocked(h)
	room.UnlockHunterOccupancy()

	h.log.HunterExit(h.name, h.id, reason.String(), h.boredom, h.fear)
	h.exitReason = reason
	h.running = false
	h.exited = true
	h.metrics.HuntersExited.Add(1)
	h.path.Cleanup(true)
}

// manageExitRoom implements step 4: victory check, then either leave the
// first-room special state alone or swap devices. Returns true if the
// hunter's turn ended here because of a victory exit.
func (h *Hunter) manageExitRoom() bool {
	if h.caseFile.CheckVictory() {
		h.exit(ExitEvidence)
		return true
	}

	if h.initInFirstRoom {
		return false
	}

	h.swapDevice()
	h.path.Cleanup(false)
	return false
}

// swapDevice implements step 4c: pick a new device uniformly; the
// original's swap may repeat the current device, and this is intentional
// per the open question in the design notes, not a bug to fix.
func (h *Hunter) swapDevice() {
	old := h.device
	h.metrics.RandCalls.Add(1)
	h.device = evidence.All[h.rand.IntN(0, len(evidence.All))]
	h.metrics.DeviceSwaps.Add(1)
	h.log.DeviceSwap(h.name, h.id, old.String(), h.device.String())
}

// gatherEvidence implements step 5.
func (h *Hunter) gatherEvidence() {
	room := h.current
	room.LockEvidence()
	present := room.EvidenceLocked().Contains(h.device)
	if present {
		room.ClearEvidenceLocked(h.device)
	}
	room.UnlockEvidence()

	if present {
		h.metrics.EvidenceFound.Add(1)
		h.log.HunterEvidence(h.name, h.id, room.Name(), h.device.String())
		h.caseFile.AddEvidence(h.device)
		if !room.IsExit() {
			h.returningToExit = true
			h.log.HunterReturnToVanStart(h.name, h.id, room.Name())
		}
		return
	}

	if !room.IsExit() {
		h.metrics.RandCalls.Add(1)
		if h.rand.IntN(0, 10) == 0 {
			h.returningToExit = true
			h.log.HunterReturnToVanStart(h.name, h.id, room.Name())
		}
	}
}

// move implements step 6, including the overflow-hunter reconciliation.
func (h *Hunter) move() {
	from := h.current
	var to *house.Room
	if h.returningToExit {
		to = h.path.NextPeek()
	} else {
		h.metrics.RandCalls.Add(1)
		to = h.graph.ChooseRandomConnection(from)
	}

	h.metrics.MovesAttempted.Add(1)
	unlock := house.LockHunterPair(from, to)

	if to.HunterCountLocked() >= house.MaxOccupancy {
		if !h.initAddedToExit && h.initInFirstRoom {
			exit := h.graph.ExitRoom()
			if exit == from {
				from.TryLateAddLocked(h)
			}
		}
		unlock()
		h.metrics.MovesBlocked.Add(1)
		return
	}

	from.RemoveHunterLocked(h)
	_ = to.AddHunterLocked(h)
	unlock()

	h.log.HunterMove(h.name, h.id, from.Name(), to.Name())

	if h.initInFirstRoom {
		h.initInFirstRoom = false
	}
}
