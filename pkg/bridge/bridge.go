// Package bridge models the bridge crossing puzzle: a group of people must
// cross a bridge at night sharing a single umbrella, at most two at a time,
// each crossing taking as long as the slowest person in the group.
//
// The package provides the search-state model shared by the solvers in
// [github.com/mfranke/bridgecross/pkg/solve]: a [Scenario] assigns every
// person a stable bit index, a [State] packs a full configuration (who is on
// the start bank, where the umbrella is) into a single comparable value, and
// [Scenario.Moves] enumerates the legal crossings from any configuration.
//
// # State encoding
//
// A configuration is a partition of the people across the two banks plus the
// umbrella's position. Since the banks partition the people, the start bank's
// occupancy bitmask determines both banks, and one extra bit captures the
// umbrella. This keeps states comparable and directly usable as map keys,
// with no hashing of mutable containers.
package bridge

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNoPeople is returned by [New] when the crossing-time map is empty.
	// A scenario needs at least one person.
	ErrNoPeople = errors.New("scenario has no people")

	// ErrEmptyName is returned by [New] when a person has an empty name.
	ErrEmptyName = errors.New("person name must not be empty")

	// ErrBadDuration is returned by [New] when a crossing duration is zero
	// or negative. Crossing a bridge takes time.
	ErrBadDuration = errors.New("crossing duration must be positive")

	// ErrTooManyPeople is returned by [New] when the group exceeds
	// [MaxPeople]. The bitmask state encoding reserves one bit per person.
	ErrTooManyPeople = errors.New("too many people for bitmask encoding")
)

// MaxPeople is the largest group a Scenario can hold. The start-bank
// occupancy uses one bit per person and the top bit tracks the umbrella.
const MaxPeople = 62

// Scenario holds the people of a puzzle instance and their crossing
// durations, with a stable index assignment (names sorted lexicographically,
// index = bit position). Scenarios are immutable after construction and safe
// to share across solver runs.
type Scenario struct {
	names     []string       // sorted; index is the person's bit position
	durations []int          // minutes, by index
	index     map[string]int // name -> index
	all       State          // mask with one bit set per person
}

// New builds a Scenario from a crossing-time map (person name -> minutes).
// Names are sorted to give every person a stable bit index, so identical
// input maps always produce identical state encodings.
//
// Returns [ErrNoPeople], [ErrEmptyName], [ErrBadDuration], or
// [ErrTooManyPeople] for invalid input.
func New(times map[string]int) (*Scenario, error) {
	if len(times) == 0 {
		return nil, ErrNoPeople
	}
	if len(times) > MaxPeople {
		return nil, fmt.Errorf("%w: %d people, limit %d", ErrTooManyPeople, len(times), MaxPeople)
	}

	names := make([]string, 0, len(times))
	for name := range times {
		if name == "" {
			return nil, ErrEmptyName
		}
		names = append(names, name)
	}
	slices.Sort(names)

	s := &Scenario{
		names:     names,
		durations: make([]int, len(names)),
		index:     make(map[string]int, len(names)),
	}
	for i, name := range names {
		d := times[name]
		if d <= 0 {
			return nil, fmt.Errorf("%w: %s has duration %d", ErrBadDuration, name, d)
		}
		s.durations[i] = d
		s.index[name] = i
		s.all |= 1 << i
	}
	return s, nil
}

// Len returns the number of people in the scenario.
func (s *Scenario) Len() int { return len(s.names) }

// People returns every person's name in index order (lexicographic).
// The returned slice is a copy.
func (s *Scenario) People() []string { return slices.Clone(s.names) }

// Duration returns the crossing time of the person with the given index.
func (s *Scenario) Duration(i int) int { return s.durations[i] }

// Index returns the bit index assigned to name, or false if the person is
// not part of the scenario.
func (s *Scenario) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Start returns the initial configuration: everyone on the start bank,
// umbrella on the start bank.
func (s *Scenario) Start() State { return s.all | umbrellaStart }

// IsGoal reports whether st is a goal configuration: nobody left on the
// start bank. The umbrella's position is irrelevant at the goal.
func (s *Scenario) IsGoal(st State) bool { return st&s.all == 0 }

// StartBank returns the mask of people currently on the start bank.
func (s *Scenario) StartBank(st State) State { return st & s.all }

// EndBank returns the mask of people currently on the end bank.
func (s *Scenario) EndBank(st State) State { return ^st & s.all }

// Names expands a people mask into sorted names. Bits outside the
// scenario's people are ignored.
func (s *Scenario) Names(mask State) []string {
	names := make([]string, 0, len(s.names))
	for i := range s.names {
		if mask&(1<<i) != 0 {
			names = append(names, s.names[i])
		}
	}
	return names
}
