package rivercrossing

import "fmt"

// State is the bank assignment of the four actors, one bit each.
type State uint8

const (
	// Cabbage is set when the cabbage is on the far bank.
	Cabbage State = 1 << iota
	// Goat is set when the goat is on the far bank.
	Goat
	// Wolf is set when the wolf is on the far bank.
	Wolf
	// Peasant is set when the peasant is on the far bank.
	Peasant
)

const (
	// NumStates is the size of the state space.
	NumStates = 16

	// Start has everybody on the near bank.
	Start State = 0

	// Goal has everybody on the far bank.
	Goal State = Peasant | Wolf | Goat | Cabbage
)

// cargoes lists what the peasant may take along, in search order:
// nothing, the wolf, the goat, the cabbage.
var cargoes = [...]State{0, Wolf, Goat, Cabbage}

// Valid reports whether s fits in 4 bits.
func (s State) Valid() bool { return s < NumStates }

// Bits returns the bank (0 or 1) of the peasant, wolf, goat and cabbage.
func (s State) Bits() (p, w, g, c int) {
	return int(s&Peasant) >> 3, int(s&Wolf) >> 2, int(s&Goat) >> 1, int(s & Cabbage)
}

// String renders s as <pwgc>, e.g. <0111>.
func (s State) String() string {
	p, w, g, c := s.Bits()

	return fmt.Sprintf("<%d%d%d%d>", p, w, g, c)
}

// on reports whether item is on the same bank as the peasant.
func (s State) on(item State) bool {
	return (s&item != 0) == (s&Peasant != 0)
}

// IsDeadEnd reports whether s leaves the goat unattended with the wolf or
// with the cabbage.
func IsDeadEnd(s State) bool {
	if s.on(Goat) {
		return false
	}
	goat := s&Goat != 0

	return (s&Wolf != 0) == goat || (s&Cabbage != 0) == goat
}

// Cross returns the state after the peasant crosses with cargo, which is 0
// or a single item. It does not check legality; see CanTransition.
func Cross(s, cargo State) State {
	return s ^ (Peasant | cargo)
}

// CanTransition reports whether one crossing leads from from to to: the
// peasant changes bank, at most one item goes along, the item started on
// the peasant's bank, and to is not a dead end.
func CanTransition(from, to State) bool {
	if !from.Valid() || !to.Valid() || IsDeadEnd(to) {
		return false
	}
	diff := from ^ to
	if diff&Peasant == 0 {
		return false
	}
	cargo := diff &^ Peasant
	switch cargo {
	case 0:
		return true
	case Wolf, Goat, Cabbage:
		return from.on(cargo)
	default:
		return false
	}
}

// Successors returns the states reachable from s in one legal crossing,
// in search order.
func Successors(s State) []State {
	out := make([]State, 0, len(cargoes))
	for _, cargo := range cargoes {
		if next := Cross(s, cargo); CanTransition(s, next) {
			out = append(out, next)
		}
	}

	return out
}

// Adjacency returns the transition matrix of the puzzle. Rows of dead-end
// states are empty since the search never leaves them.
func Adjacency() [NumStates][NumStates]bool {
	var g [NumStates][NumStates]bool
	for i := State(0); i < NumStates; i++ {
		if IsDeadEnd(i) {
			continue
		}
		for j := State(0); j < NumStates; j++ {
			g[i][j] = CanTransition(i, j)
		}
	}

	return g
}
