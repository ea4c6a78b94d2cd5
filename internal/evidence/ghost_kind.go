package evidence

// GhostKind identifies one of the 24 enumerated ghosts. Its underlying
// value is the bitwise OR of the exactly three Kind values that identify
// it — the same representation a collected Set uses, so a Set can be
// compared directly against a GhostKind's value once it has exactly
// three bits set.
type GhostKind Set

// The 24 ghosts, each the union of exactly three evidence kinds. At
// least one of Fingerprints, Temperature, or Infrared appears in every
// ghost's triple except Mare's and Spirit's, which are drawn only from
// Writing, Radio, Orbs and EMF.
const (
	Poltergeist GhostKind = GhostKind(Fingerprints | Temperature | Writing)
	TheMimic    GhostKind = GhostKind(Fingerprints | Temperature | Radio)
	Hantu       GhostKind = GhostKind(Fingerprints | Temperature | Orbs)
	Jinn        GhostKind = GhostKind(Fingerprints | Temperature | EMF)
	Phantom     GhostKind = GhostKind(Fingerprints | Infrared | Radio)
	Banshee     GhostKind = GhostKind(Fingerprints | Infrared | Orbs)
	Goryo       GhostKind = GhostKind(Fingerprints | Infrared | EMF)
	Bullies     GhostKind = GhostKind(Fingerprints | Writing | Radio)
	Myling      GhostKind = GhostKind(Fingerprints | Writing | EMF)
	Obake       GhostKind = GhostKind(Fingerprints | Orbs | EMF)
	Yurei       GhostKind = GhostKind(Temperature | Infrared | Orbs)
	Oni         GhostKind = GhostKind(Temperature | Infrared | EMF)
	Moroi       GhostKind = GhostKind(Temperature | Writing | Radio)
	Revenant    GhostKind = GhostKind(Temperature | Writing | Orbs)
	Shade       GhostKind = GhostKind(Temperature | Writing | EMF)
	Onryo       GhostKind = GhostKind(Temperature | Radio | Orbs)
	TheTwins    GhostKind = GhostKind(Temperature | Radio | EMF)
	Deogen      GhostKind = GhostKind(Infrared | Writing | Radio)
	Thaye       GhostKind = GhostKind(Infrared | Writing | Orbs)
	Yokai       GhostKind = GhostKind(Infrared | Radio | Orbs)
	Wraith      GhostKind = GhostKind(Infrared | Radio | EMF)
	Raiju       GhostKind = GhostKind(Infrared | Orbs | EMF)
	Mare        GhostKind = GhostKind(Writing | Radio | Orbs)
	Spirit      GhostKind = GhostKind(Writing | Radio | EMF)
)

// AllGhostKinds lists every ghost kind, in the order the original
// investigation board enumerates them.
var AllGhostKinds = [24]GhostKind{
	Poltergeist, TheMimic, Hantu, Jinn, Phantom, Banshee, Goryo, Bullies,
	Myling, Obake, Yurei, Oni, Moroi, Revenant, Shade, Onryo, TheTwins,
	Deogen, Thaye, Yokai, Wraith, Raiju, Mare, Spirit,
}

// ghostNames mirrors AllGhostKinds for String().
var ghostNames = [24]string{
	"Poltergeist", "The Mimic", "Hantu", "Jinn", "Phantom", "Banshee",
	"Goryo", "Bullies", "Myling", "Obake", "Yurei", "Oni", "Moroi",
	"Revenant", "Shade", "Onryo", "The Twins", "Deogen", "Thaye", "Yokai",
	"Wraith", "Raiju", "Mare", "Spirit",
}

// String returns the ghost kind's display name, or "Unknown" if the
// value does not match any of the 24 enumerated kinds.
func (g GhostKind) String() string {
	for i, k := range AllGhostKinds {
		if k == g {
			return ghostNames[i]
		}
	}
	return "Unknown"
}

// IsValidGhost reports whether s equals one of the 24 ghost unions. A
// set with more than three bits can never match, since every ghost union
// has exactly three — so no separate popcount pre-check is needed; an
// over-full set simply fails every comparison below.
func IsValidGhost(s Set) bool {
	for _, k := range AllGhostKinds {
		if Set(k) == s {
			return true
		}
	}
	return false
}

// Triple returns the three Kind values that compose g, in bit order.
func Triple(g GhostKind) [3]Kind {
	var out [3]Kind
	n := 0
	for _, k := range All {
		if Set(g).Contains(k) {
			out[n] = k
			n++
		}
		if n == 3 {
			break
		}
	}
	return out
}
