package house

import "errors"

// ErrRoomFull is returned by AddHunterLocked when the target room is
// already at MaxOccupancy. Per the contract violation table this is not
// treated as an error condition by callers — a full room on move is a
// normal per-turn outcome, not a bug — but the typed value lets callers
// distinguish it from a programming mistake.
var ErrRoomFull = errors.New("house: room is at max occupancy")

// ErrGhostSlotOccupied is returned by AddGhostLocked if a second ghost
// ever attempts to occupy a room. The locking discipline in §4.2 makes
// this unreachable in practice; its presence here only guards against a
// defect, per the "occurrence is a bug" classification in the error
// handling design.
var ErrGhostSlotOccupied = errors.New("house: room already has a ghost")
