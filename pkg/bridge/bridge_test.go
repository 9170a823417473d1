package bridge

import (
	"errors"
	"slices"
	"testing"
)

func TestNew_AssignsSortedIndexes(t *testing.T) {
	s, err := New(map[string]int{"Cleo": 5, "Ada": 1, "Ben": 2})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := []string{"Ada", "Ben", "Cleo"}
	if got := s.People(); !slices.Equal(got, want) {
		t.Errorf("People() = %v, want %v", got, want)
	}

	for i, name := range want {
		idx, ok := s.Index(name)
		if !ok || idx != i {
			t.Errorf("Index(%s) = %d, %v, want %d, true", name, idx, ok, i)
		}
	}

	if got := s.Duration(2); got != 5 {
		t.Errorf("Duration(2) = %d, want 5", got)
	}
}

func TestNew_EmptySet(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoPeople) {
		t.Errorf("New(nil) error = %v, want ErrNoPeople", err)
	}
}

func TestNew_EmptyName(t *testing.T) {
	if _, err := New(map[string]int{"": 3}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("New() error = %v, want ErrEmptyName", err)
	}
}

func TestNew_NonPositiveDuration(t *testing.T) {
	for _, d := range []int{0, -4} {
		if _, err := New(map[string]int{"Ada": d}); !errors.Is(err, ErrBadDuration) {
			t.Errorf("New(duration=%d) error = %v, want ErrBadDuration", d, err)
		}
	}
}

func TestNew_TooManyPeople(t *testing.T) {
	times := make(map[string]int, MaxPeople+1)
	for i := 0; i <= MaxPeople; i++ {
		times[string(rune('a'+i/26))+string(rune('a'+i%26))] = 1
	}
	if _, err := New(times); !errors.Is(err, ErrTooManyPeople) {
		t.Errorf("New() error = %v, want ErrTooManyPeople", err)
	}
}

func TestStart(t *testing.T) {
	s, _ := New(map[string]int{"Ada": 1, "Ben": 2})
	st := s.Start()

	if !st.UmbrellaAtStart() {
		t.Error("Start(): umbrella should be on the start bank")
	}
	if got := s.Names(s.StartBank(st)); !slices.Equal(got, []string{"Ada", "Ben"}) {
		t.Errorf("StartBank = %v, want everyone", got)
	}
	if got := s.Names(s.EndBank(st)); len(got) != 0 {
		t.Errorf("EndBank = %v, want empty", got)
	}
	if s.IsGoal(st) {
		t.Error("initial configuration must not be the goal")
	}
}

func TestBanksPartitionPeople(t *testing.T) {
	s, _ := New(map[string]int{"Ada": 1, "Ben": 2, "Cleo": 5})
	st := s.Start()

	// Walk a few crossings and check the partition invariant after each.
	for range 4 {
		moves := s.Moves(st)
		if len(moves) == 0 {
			break
		}
		st = moves[len(moves)-1].Next

		start, end := s.StartBank(st), s.EndBank(st)
		if start&end != 0 {
			t.Fatalf("banks overlap: start=%b end=%b", start, end)
		}
		if start|end != s.StartBank(s.Start()) {
			t.Fatalf("banks do not cover everyone: start=%b end=%b", start, end)
		}
	}
}

func TestIsGoal(t *testing.T) {
	s, _ := New(map[string]int{"Ada": 1})
	st := s.Start()

	moves := s.Moves(st)
	if len(moves) != 1 {
		t.Fatalf("Moves() returned %d moves, want 1", len(moves))
	}
	if !s.IsGoal(moves[0].Next) {
		t.Error("after the only crossing, the goal should be reached")
	}
}

func TestNames_SubsetAndOrder(t *testing.T) {
	s, _ := New(map[string]int{"Ada": 1, "Ben": 2, "Cleo": 5})

	mask := State(0b101) // Ada and Cleo
	if got := s.Names(mask); !slices.Equal(got, []string{"Ada", "Cleo"}) {
		t.Errorf("Names(%b) = %v, want [Ada Cleo]", mask, got)
	}
	if got := s.Names(0); len(got) != 0 {
		t.Errorf("Names(0) = %v, want empty", got)
	}
}
