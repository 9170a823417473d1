// Package report reconstructs and renders step-by-step crossing plans.
//
// A solver returns a plan as a bare sequence of configurations plus the
// cheapest-arrival map it accumulated. This package turns consecutive
// configuration pairs back into human-readable steps: who crossed, in which
// direction, how long the trip took, and what both banks look like
// afterwards.
//
// Rendering here is plain text; the CLI layers terminal styling on top.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mfranke/bridgecross/pkg/bridge"
	"github.com/mfranke/bridgecross/pkg/errors"
	"github.com/mfranke/bridgecross/pkg/solve"
)

// Step is a single reconstructed crossing.
type Step struct {
	Movers    []string // who crossed, lexicographically ordered
	ToEnd     bool     // true: start -> end, false: the return trip
	Trip      int      // minutes this crossing took
	Elapsed   int      // cumulative minutes after this crossing
	StartBank []string // start bank occupants after the crossing
	EndBank   []string // end bank occupants after the crossing
}

// Direction renders the crossing direction as an arrow.
func (s Step) Direction() string {
	if s.ToEnd {
		return "-->"
	}
	return "<--"
}

// Steps reconstructs the crossings of a plan. For each consecutive pair the
// movers are the symmetric difference of the start-bank occupancy, the
// direction is where the umbrella sat before the crossing, and the trip time
// is the difference of the two configurations' arrival times.
//
// Returns an [errors.ErrCodeInternal] error if a configuration on the path
// is missing from the arrival map, which would indicate a solver bug.
func Steps(scn *bridge.Scenario, path []bridge.State, arrivals map[bridge.State]int) ([]Step, error) {
	if len(path) < 2 {
		return nil, nil
	}

	steps := make([]Step, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		prev, next := path[i], path[i+1]
		prevAt, ok := arrivals[prev]
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "configuration %d missing from arrival map", i)
		}
		nextAt, ok := arrivals[next]
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "configuration %d missing from arrival map", i+1)
		}

		group := scn.StartBank(prev) ^ scn.StartBank(next)
		steps = append(steps, Step{
			Movers:    scn.Names(group),
			ToEnd:     prev.UmbrellaAtStart(),
			Trip:      nextAt - prevAt,
			Elapsed:   nextAt,
			StartBank: scn.Names(scn.StartBank(next)),
			EndBank:   scn.Names(scn.EndBank(next)),
		})
	}
	return steps, nil
}

// separator matches the width of the step blocks below.
const separator = "------------------------------"

// Write renders a solver result as plain text. A result without a plan
// (nil, or a no-solution Result) renders an explicit message instead.
func Write(w io.Writer, scn *bridge.Scenario, res *solve.Result) error {
	if res == nil || !res.Solved() {
		_, err := fmt.Fprintln(w, "No solution could be found within the time limit.")
		return err
	}

	steps, err := Steps(scn, res.Path, res.Arrivals)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Solution found! Total time: %d minutes.\n", res.Time)
	b.WriteString(separator + "\n")
	for i, s := range steps {
		fmt.Fprintf(&b, "Step %d: %s cross %s (%d min)\n", i+1, strings.Join(s.Movers, ", "), s.Direction(), s.Trip)
		fmt.Fprintf(&b, "  > Time elapsed: %d min\n", s.Elapsed)
		fmt.Fprintf(&b, "  > Start side: [%s]\n", strings.Join(s.StartBank, ", "))
		fmt.Fprintf(&b, "  > End side:   [%s]\n", strings.Join(s.EndBank, ", "))
		b.WriteString(separator + "\n")
	}

	_, err = io.WriteString(w, b.String())
	return err
}
