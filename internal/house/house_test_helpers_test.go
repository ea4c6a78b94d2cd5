package house

// fakeGhost and fakeHunter are minimal GhostOccupant/HunterOccupant
// implementations used only by this package's tests, standing in for the
// real ghost.Ghost and hunter.Hunter types without creating a test-only
// import of those packages.

type fakeGhost struct {
	id  int
	cur *Room
}

func (g *fakeGhost) ID() int                { return g.id }
func (g *fakeGhost) SetCurrentRoom(r *Room) { g.cur = r }

type fakeHunter struct {
	id               int
	cur              *Room
	returning        bool
	initAddedToExit  bool
	path             RoomPathStack
}

func (h *fakeHunter) ID() int                     { return h.id }
func (h *fakeHunter) SetCurrentRoom(r *Room)      { h.cur = r }
func (h *fakeHunter) ReturningToExit() bool       { return h.returning }
func (h *fakeHunter) PushPath(r *Room)            { h.path.Push(r) }
func (h *fakeHunter) PopPath()                    { h.path.Pop() }
func (h *fakeHunter) SetInitAddedToExit(v bool)   { h.initAddedToExit = v }
func (h *fakeHunter) InitAddedToExit() bool       { return h.initAddedToExit }
