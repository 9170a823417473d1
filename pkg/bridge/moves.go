package bridge

// Move is a single crossing: one or two people walk from the umbrella's bank
// to the opposite bank. Cost is the slowest mover's duration (the group
// walks at the pace of its slowest member).
type Move struct {
	Group State // mask of the people crossing (1 or 2 bits set)
	Cost  int   // minutes the crossing takes
	Next  State // configuration after the crossing
}

// Moves enumerates every legal crossing from st: all single people and all
// unordered pairs currently on the umbrella's bank. Groups are combinations,
// not permutations, so each pair appears exactly once. A bank with a single
// occupant yields only the one solo move; an empty bank yields none.
//
// Moves is a pure function of its inputs and allocates a fresh slice on
// every call.
func (s *Scenario) Moves(st State) []Move {
	var bank State
	if st.UmbrellaAtStart() {
		bank = s.StartBank(st)
	} else {
		bank = s.EndBank(st)
	}

	occupants := make([]int, 0, len(s.names))
	for i := range s.names {
		if bank&(1<<i) != 0 {
			occupants = append(occupants, i)
		}
	}

	n := len(occupants)
	moves := make([]Move, 0, n+n*(n-1)/2)
	for a := 0; a < n; a++ {
		i := occupants[a]
		solo := State(1) << i
		moves = append(moves, Move{Group: solo, Cost: s.durations[i], Next: st.apply(solo)})
		for b := a + 1; b < n; b++ {
			j := occupants[b]
			pair := solo | State(1)<<j
			moves = append(moves, Move{Group: pair, Cost: max(s.durations[i], s.durations[j]), Next: st.apply(pair)})
		}
	}
	return moves
}
