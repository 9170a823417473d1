package solve

import (
	"cmp"
	"slices"

	"github.com/mfranke/bridgecross/pkg/bridge"
)

// DepthFirst is the branch-and-bound solver. It explores the configuration
// graph depth-first with an explicit stack, tracks the best complete plan
// seen so far, and prunes any partial plan that already costs as much as
// that best, exceeds the limit, or reaches its own configuration later than
// a previously discovered route.
//
// Unlike [PriorityQueue] it cannot stop at the first goal; it converges to
// the optimum by exhausting everything the bounds leave standing. Children
// are pushed in descending cost order so the cheapest-looking branch is
// explored first, which tightens the bound early. That ordering is a
// heuristic only; the result does not depend on it.
type DepthFirst struct{}

// NewDepthFirst creates the branch-and-bound solver.
func NewDepthFirst() *DepthFirst { return &DepthFirst{} }

// Name returns "dfs".
func (d *DepthFirst) Name() string { return "dfs" }

// frame is a stack entry: a partial plan ending in st.
type frame struct {
	time int
	path []bridge.State
	st   bridge.State
}

// Solve implements [Solver].
func (d *DepthFirst) Solve(scn *bridge.Scenario, limit int) (*Result, error) {
	if err := validate(scn, limit); err != nil {
		return nil, err
	}

	start := scn.Start()
	arrivals := map[bridge.State]int{start: 0}
	stack := []frame{{path: []bridge.State{start}, st: start}}

	var (
		found    bool
		bestTime int
		bestPath []bridge.State
	)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if scn.IsGoal(f.st) {
			if f.time <= limit && (!found || f.time < bestTime) {
				found, bestTime, bestPath = true, f.time, f.path
			}
			continue // a cheaper plan may still be on the stack
		}

		// Bound: already no better than the best complete plan, or over
		// the limit, or a cheaper route to this configuration was queued
		// after this frame was pushed.
		if found && f.time >= bestTime {
			continue
		}
		if f.time > limit {
			continue
		}
		if best, ok := arrivals[f.st]; ok && f.time > best {
			continue
		}

		var kids []frame
		for _, mv := range scn.Moves(f.st) {
			t := f.time + mv.Cost
			if t > limit {
				continue
			}
			if best, ok := arrivals[mv.Next]; ok && t >= best {
				continue
			}
			// Record before pushing: later frames must see the tightened
			// bound or they would re-expand a dominated route.
			arrivals[mv.Next] = t
			kids = append(kids, frame{time: t, path: extend(f.path, mv.Next), st: mv.Next})
		}

		// LIFO stack: push expensive children first so the cheapest pops first.
		slices.SortFunc(kids, func(a, b frame) int { return cmp.Compare(b.time, a.time) })
		stack = append(stack, kids...)
	}

	if !found {
		return noSolution(arrivals, limit)
	}
	return &Result{Time: bestTime, Path: bestPath, Arrivals: arrivals}, nil
}
