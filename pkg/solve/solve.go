// Package solve implements the bridge crossing solvers.
//
// Two independent algorithms find a minimum-time crossing plan for a
// [bridge.Scenario] within a time limit:
//
//   - [PriorityQueue] explores configurations in non-decreasing cumulative
//     time (Dijkstra over the configuration graph), so the first goal it
//     pops within the limit is globally optimal.
//   - [DepthFirst] explores depth-first with branch-and-bound pruning
//     against the best complete plan seen so far and a per-configuration
//     cheapest-arrival memo.
//
// Both return the same optimal time whenever a plan exists; their plans may
// differ when multiple optimal plans exist.
package solve

import (
	"github.com/mfranke/bridgecross/pkg/bridge"
	"github.com/mfranke/bridgecross/pkg/errors"
)

// Result is the outcome of a solver run.
//
// When no plan exists within the limit, Path is nil and Arrivals still
// carries every configuration the search reached, which is useful for
// diagnostics and visualization.
type Result struct {
	// Time is the total duration of the best plan in minutes.
	// Only meaningful when Solved reports true.
	Time int

	// Path is the sequence of configurations from the initial one to a
	// goal, each one crossing apart. Nil when no plan was found.
	Path []bridge.State

	// Arrivals maps every explored configuration to the cheapest
	// cumulative time it was reached with.
	Arrivals map[bridge.State]int
}

// Solved reports whether the result carries a complete crossing plan.
func (r *Result) Solved() bool { return len(r.Path) > 0 }

// Solver finds a minimum-time crossing plan within a time limit.
type Solver interface {
	// Solve searches for the cheapest plan that moves everyone to the end
	// bank in at most limit minutes. A plan whose total equals the limit
	// exactly is accepted.
	//
	// When the search space is exhausted without a qualifying plan, Solve
	// returns a Result with a nil Path but populated Arrivals, together
	// with an error carrying [errors.ErrCodeNoSolution].
	Solve(scn *bridge.Scenario, limit int) (*Result, error)

	// Name returns the algorithm name (e.g. "dijkstra", "dfs").
	Name() string
}

// All returns the available solvers in reporting order.
func All() []Solver {
	return []Solver{NewPriorityQueue(), NewDepthFirst()}
}

// ByName returns the solver with the given name, or an
// [errors.ErrCodeInvalidSolver] error for an unknown name.
func ByName(name string) (Solver, error) {
	for _, s := range All() {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidSolver, "unknown solver %q (want dijkstra or dfs)", name)
}

// validate rejects inputs no search should run on.
func validate(scn *bridge.Scenario, limit int) error {
	if scn == nil {
		return errors.New(errors.ErrCodeInvalidScenario, "nil scenario")
	}
	if limit <= 0 {
		return errors.New(errors.ErrCodeInvalidLimit, "time limit must be positive, got %d", limit)
	}
	return nil
}

// noSolution builds the exhausted-search outcome shared by both solvers.
func noSolution(arrivals map[bridge.State]int, limit int) (*Result, error) {
	return &Result{Arrivals: arrivals},
		errors.New(errors.ErrCodeNoSolution, "no crossing plan within %d minutes", limit)
}

// extend copies path and appends next. Paths are shared across queue
// entries, so in-place append would corrupt sibling entries.
func extend(path []bridge.State, next bridge.State) []bridge.State {
	out := make([]bridge.State, len(path)+1)
	copy(out, path)
	out[len(path)] = next
	return out
}
