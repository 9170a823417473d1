package bridge

import (
	"math/bits"
	"slices"
	"testing"
)

func TestMoves_CountsSinglesAndPairs(t *testing.T) {
	s, _ := New(map[string]int{"Ada": 1, "Ben": 2, "Cleo": 5, "Dag": 10})
	moves := s.Moves(s.Start())

	// 4 singles + C(4,2) = 6 pairs.
	if len(moves) != 10 {
		t.Fatalf("Moves() returned %d moves, want 10", len(moves))
	}

	singles, pairs := 0, 0
	for _, mv := range moves {
		switch bits.OnesCount64(uint64(mv.Group)) {
		case 1:
			singles++
		case 2:
			pairs++
		default:
			t.Errorf("group %b has invalid size", mv.Group)
		}
	}
	if singles != 4 || pairs != 6 {
		t.Errorf("got %d singles and %d pairs, want 4 and 6", singles, pairs)
	}
}

func TestMoves_CostIsSlowestMember(t *testing.T) {
	s, _ := New(map[string]int{"Ada": 1, "Dag": 10})
	for _, mv := range s.Moves(s.Start()) {
		names := s.Names(mv.Group)
		if slices.Contains(names, "Dag") && mv.Cost != 10 {
			t.Errorf("group %v cost = %d, want 10", names, mv.Cost)
		}
		if slices.Equal(names, []string{"Ada"}) && mv.Cost != 1 {
			t.Errorf("solo Ada cost = %d, want 1", mv.Cost)
		}
	}
}

func TestMoves_FlipsMembershipAndUmbrella(t *testing.T) {
	s, _ := New(map[string]int{"Ada": 1, "Ben": 2})
	st := s.Start()

	for _, mv := range s.Moves(st) {
		if mv.Next.UmbrellaAtStart() {
			t.Errorf("umbrella did not cross with group %v", s.Names(mv.Group))
		}
		if s.StartBank(mv.Next)&mv.Group != 0 {
			t.Errorf("group %v still on the start bank", s.Names(mv.Group))
		}
		if s.EndBank(mv.Next)&mv.Group != mv.Group {
			t.Errorf("group %v did not arrive on the end bank", s.Names(mv.Group))
		}
	}
}

func TestMoves_ReturnTrip(t *testing.T) {
	s, _ := New(map[string]int{"Ada": 1, "Ben": 2})

	// Cross both, then enumerate return moves from the end bank.
	both := s.StartBank(s.Start())
	st := s.Start().apply(both)

	moves := s.Moves(st)
	if len(moves) != 3 {
		t.Fatalf("Moves() from end bank returned %d moves, want 3", len(moves))
	}
	for _, mv := range moves {
		if !mv.Next.UmbrellaAtStart() {
			t.Error("return trip should bring the umbrella back to the start bank")
		}
	}
}

func TestMoves_LoneOccupant(t *testing.T) {
	s, _ := New(map[string]int{"Ida": 7})
	moves := s.Moves(s.Start())

	if len(moves) != 1 {
		t.Fatalf("Moves() returned %d moves, want 1", len(moves))
	}
	if got := s.Names(moves[0].Group); !slices.Equal(got, []string{"Ida"}) {
		t.Errorf("mover = %v, want [Ida]", got)
	}
}

func TestMoves_EmptyBank(t *testing.T) {
	s, _ := New(map[string]int{"Ada": 1})

	// Ada crosses, comes back: umbrella at start with everyone. Now cross
	// once more and strand the umbrella on the end bank with Ada; moving
	// again from a goal state is legal, but an empty bank yields nothing.
	goal := s.Start().apply(1)
	if got := len(s.Moves(goal.apply(1).apply(1))); got != 1 {
		// Position after three solo crossings, umbrella on the end side.
		t.Errorf("Moves() = %d moves, want 1", got)
	}

	// An artificial state with the umbrella on an empty start bank.
	empty := goal ^ umbrellaStart // nobody on start bank, umbrella at start
	if got := len(s.Moves(empty)); got != 0 {
		t.Errorf("Moves() on empty bank = %d moves, want 0", got)
	}
}
