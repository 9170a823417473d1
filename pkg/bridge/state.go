package bridge

// State is a packed puzzle configuration. Bits [0, Scenario.Len()) hold the
// start bank's occupancy (bit i set means person i is still on the start
// bank) and the top bit holds the umbrella's position. States are plain
// comparable values: they work directly as map keys and compare with ==.
//
// The zero State is meaningless on its own; obtain states from
// [Scenario.Start] and [Move.Next].
type State uint64

// umbrellaStart marks the umbrella as being on the start bank.
const umbrellaStart State = 1 << 63

// UmbrellaAtStart reports whether the umbrella is on the start bank.
func (st State) UmbrellaAtStart() bool { return st&umbrellaStart != 0 }

// apply moves the given group of people across the bridge. Crossing flips
// the group's bank membership and carries the umbrella to the other bank,
// which is a pure XOR in this encoding regardless of direction.
func (st State) apply(group State) State { return st ^ group ^ umbrellaStart }
