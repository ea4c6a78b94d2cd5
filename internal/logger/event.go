package logger

// This file layers the simulation's structured log-event contract on top
// of the generic action/message Logger above. Every method corresponds to
// one of the variants external collaborators are promised: HunterInit,
// GhostInit, HunterMove, GhostMove, HunterEvidence, GhostEvidence,
// GhostIdle, HunterReturnToVan (start/complete), DeviceSwap,
// HunterExit(reason), GhostExit. Each carries the identifiers, boredom or
// fear counters, room name(s), and device or evidence kind relevant to
// that event, formatted as one line through the existing level/action
// machinery rather than a second parallel sink.

// HunterInit logs a hunter's arrival at the start of the simulation.
func (l *Logger) HunterInit(name string, id int, room string, device string) {
	l.Infof("hunter_init", "%s (#%d) starts in %s carrying %s", name, id, room, device)
}

// GhostInit logs the ghost's starting room and kind.
func (l *Logger) GhostInit(kind string, room string) {
	l.Infof("ghost_init", "%s starts in %s", kind, room)
}

// HunterMove logs a hunter relocating between two rooms.
func (l *Logger) HunterMove(name string, id int, from, to string) {
	l.Infof("hunter_move", "%s (#%d) moves %s -> %s", name, id, from, to)
}

// GhostMove logs the ghost relocating between two rooms.
func (l *Logger) GhostMove(kind string, from, to string) {
	l.Infof("ghost_move", "%s moves %s -> %s", kind, from, to)
}

// HunterEvidence logs a hunter finding a matching evidence kind in its
// current room.
func (l *Logger) HunterEvidence(name string, id int, room, kind string) {
	l.Infof("hunter_evidence", "%s (#%d) finds %s in %s", name, id, kind, room)
}

// GhostEvidence logs the ghost depositing an evidence kind in its current
// room.
func (l *Logger) GhostEvidence(kind string, room, evidenceKind string) {
	l.Infof("ghost_evidence", "%s leaves %s in %s", kind, evidenceKind, room)
}

// GhostIdle logs a turn in which the ghost took no visible action.
func (l *Logger) GhostIdle(kind, room string) {
	l.Debugf("ghost_idle", "%s stays quiet in %s", kind, room)
}

// HunterReturnToVanStart logs a hunter beginning its retrace to the exit
// room, either because its device matched or by the random 1-in-10
// chance.
func (l *Logger) HunterReturnToVanStart(name string, id int, room string) {
	l.Infof("hunter_return_start", "%s (#%d) starts returning to the van from %s", name, id, room)
}

// HunterReturnToVanComplete logs a hunter arriving back at the exit room
// and clearing its returning state.
func (l *Logger) HunterReturnToVanComplete(name string, id int) {
	l.Infof("hunter_return_complete", "%s (#%d) is back at the van", name, id)
}

// DeviceSwap logs a hunter trading its equipped device for a new one
// while idling in the exit room.
func (l *Logger) DeviceSwap(name string, id int, from, to string) {
	l.Infof("device_swap", "%s (#%d) swaps %s for %s", name, id, from, to)
}

// HunterExit logs a hunter's terminal departure from the simulation, with
// the triggering exit reason already rendered as text by the caller
// (Evidence, Bored, or Afraid).
func (l *Logger) HunterExit(name string, id int, reason string, boredom, fear int) {
	l.Infof("hunter_exit", "%s (#%d) exits: %s (boredom=%d fear=%d)", name, id, reason, boredom, fear)
}

// GhostExit logs the ghost's terminal departure once its boredom has
// crossed the threshold.
func (l *Logger) GhostExit(kind string, boredom int) {
	l.Infof("ghost_exit", "%s exits: boredom (boredom=%d)", kind, boredom)
}
