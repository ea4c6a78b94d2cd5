package house

import (
	"fmt"

	"haunted-house/internal/rng"
)

// RoomGraph owns every Room in the house. It is built once, before any
// agent goroutine starts, and is immutable afterward: callers only ever
// read Rooms/ExitRoom/Connections concurrently, and all per-room mutation
// goes through a Room's own locks. This is the "mutable bits live inside
// each room behind its locks, the graph itself is a shared read-only
// reference" split from the design notes.
type RoomGraph struct {
	rooms    []*Room
	exit     *Room
	rand     rng.Source
	byName   map[string]*Room
}

// NewRoomGraph returns an empty graph that draws randomness from src.
func NewRoomGraph(src rng.Source) *RoomGraph {
	return &RoomGraph{rand: src, byName: make(map[string]*Room)}
}

// AddRoom appends a new room named name to the graph. isExit marks the
// unique exit/van room; callers must mark exactly one room as exit before
// the graph is handed to any agent. Returns an error if the graph is
// already at MaxRooms or name is a duplicate.
func (g *RoomGraph) AddRoom(name string, isExit bool) (*Room, error) {
	if len(g.rooms) >= MaxRooms {
		return nil, fmt.Errorf("house: graph already has MaxRooms (%d) rooms", MaxRooms)
	}
	if len(name) == 0 || len(name) > MaxRoomName {
		return nil, fmt.Errorf("house: room name %q must be 1..%d bytes", name, MaxRoomName)
	}
	if _, dup := g.byName[name]; dup {
		return nil, fmt.Errorf("house: duplicate room name %q", name)
	}
	if isExit && g.exit != nil {
		return nil, fmt.Errorf("house: graph already has an exit room %q", g.exit.name)
	}
	r := newRoom(len(g.rooms), name, isExit)
	g.rooms = append(g.rooms, r)
	g.byName[name] = r
	if isExit {
		g.exit = r
	}
	return r, nil
}

// Connect adds an undirected edge between a and b, stored explicitly on
// both endpoints as the data model requires. Returns an error if either
// side is already at MaxConnections.
func (g *RoomGraph) Connect(a, b *Room) error {
	if err := a.connect(b); err != nil {
		return err
	}
	if err := b.connect(a); err != nil {
		return err
	}
	return nil
}

// ExitRoom returns the graph's designated exit/van room. Callers must not
// invoke this before the graph has been fully populated.
func (g *RoomGraph) ExitRoom() *Room { return g.exit }

// Rooms returns every room in the graph, in index order. The slice
// itself is never mutated after construction, so it is safe to share
// across goroutines without copying.
func (g *RoomGraph) Rooms() []*Room { return g.rooms }

// Room looks up a room by name, for the roster/report collaborators.
func (g *RoomGraph) Room(name string) (*Room, bool) {
	r, ok := g.byName[name]
	return r, ok
}

// ChooseRandomStart returns a uniformly random room, which may be the
// exit room.
func (g *RoomGraph) ChooseRandomStart() *Room {
	return g.rooms[g.rand.IntN(0, len(g.rooms))]
}

// ChooseRandomConnection returns a uniformly random neighbour of room. It
// panics if room has no connections, which would indicate a malformed
// graph (every room must be reachable from the exit, so a degree-0 room
// is a builder bug, not a runtime condition agents need to handle).
func (g *RoomGraph) ChooseRandomConnection(room *Room) *Room {
	conns := room.Connections()
	if len(conns) == 0 {
		panic(fmt.Sprintf("house: room %q has no connections", room.name))
	}
	return conns[g.rand.IntN(0, len(conns))]
}
