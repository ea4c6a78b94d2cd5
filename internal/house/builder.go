package house

import "haunted-house/internal/rng"

// roomSpec names one room and its neighbours in the fixed layout built by
// BuildDefaultHouse. An edge may be listed on both of its endpoints;
// BuildDefaultHouse connects each pair once, in both directions.
type roomSpec struct {
	name  string
	isExit bool
	edges []string
}

// defaultLayout is the static topology the core consumes when no external
// room-layout file is supplied. It stands in for the "static room-graph
// population" collaborator spec.md places out of scope for the core
// engine proper; every room is reachable from the van, matching the
// RoomGraph contract in §6.
var defaultLayout = []roomSpec{
	{name: "Van", isExit: true, edges: []string{"Foyer"}},
	{name: "Foyer", edges: []string{"Van", "Living Room", "Kitchen", "Stairs"}},
	{name: "Living Room", edges: []string{"Foyer", "Dining Room"}},
	{name: "Dining Room", edges: []string{"Living Room", "Kitchen"}},
	{name: "Kitchen", edges: []string{"Foyer", "Dining Room", "Basement Stairs"}},
	{name: "Basement Stairs", edges: []string{"Kitchen", "Basement"}},
	{name: "Basement", edges: []string{"Basement Stairs", "Cellar", "Boiler Room"}},
	{name: "Cellar", edges: []string{"Basement"}},
	{name: "Boiler Room", edges: []string{"Basement"}},
	{name: "Stairs", edges: []string{"Foyer", "Upstairs Hall"}},
	{name: "Upstairs Hall", edges: []string{"Stairs", "Master Bedroom", "Bathroom", "Study", "Attic Stairs"}},
	{name: "Master Bedroom", edges: []string{"Upstairs Hall", "Bathroom"}},
	{name: "Bathroom", edges: []string{"Upstairs Hall", "Master Bedroom"}},
	{name: "Study", edges: []string{"Upstairs Hall", "Library"}},
	{name: "Library", edges: []string{"Study"}},
	{name: "Attic Stairs", edges: []string{"Upstairs Hall", "Attic"}},
	{name: "Attic", edges: []string{"Attic Stairs"}},
}

// BuildDefaultHouse constructs the fixed layout above into a ready-to-use
// RoomGraph. It is the one concrete RoomGraph source the core ships with;
// a real deployment may instead read a layout file and call AddRoom /
// Connect directly, which is why those remain exported on RoomGraph.
func BuildDefaultHouse(src rng.Source) (*RoomGraph, error) {
	g := NewRoomGraph(src)
	for _, spec := range defaultLayout {
		if _, err := g.AddRoom(spec.name, spec.isExit); err != nil {
			return nil, err
		}
	}
	connected := make(map[[2]string]bool)
	for _, spec := range defaultLayout {
		a := g.byName[spec.name]
		for _, neighbour := range spec.edges {
			key := edgeKey(spec.name, neighbour)
			if connected[key] {
				continue
			}
			b, ok := g.byName[neighbour]
			if !ok {
				continue
			}
			if err := g.Connect(a, b); err != nil {
				return nil, err
			}
			connected[key] = true
		}
	}
	return g, nil
}

func edgeKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}
