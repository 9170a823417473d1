// Package export serializes solver results to machine-readable JSON.
//
// The solver core defines no wire format; this package is the external
// collaborator that turns results into something scripts can consume.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mfranke/bridgecross/pkg/report"
	"github.com/mfranke/bridgecross/pkg/solve"
)

// Run pairs one solver's result with its reconstructed steps.
type Run struct {
	Solver string
	Result *solve.Result
	Steps  []report.Step
}

type document struct {
	Scenario string      `json:"scenario,omitempty"`
	Limit    int         `json:"limit"`
	Results  []runResult `json:"results"`
}

type runResult struct {
	Solver   string `json:"solver"`
	Solved   bool   `json:"solved"`
	Time     *int   `json:"time,omitempty"`
	Explored int    `json:"states_explored"`
	Steps    []step `json:"steps,omitempty"`
}

type step struct {
	Movers    []string `json:"movers"`
	Direction string   `json:"direction"`
	Trip      int      `json:"trip"`
	Elapsed   int      `json:"elapsed"`
	StartBank []string `json:"start_bank"`
	EndBank   []string `json:"end_bank"`
}

// WriteJSON encodes the runs of a solve invocation as indented JSON.
// Unsolved runs omit the time and steps but keep the explored-state count.
func WriteJSON(w io.Writer, scenarioName string, limit int, runs []Run) error {
	doc := document{
		Scenario: scenarioName,
		Limit:    limit,
		Results:  make([]runResult, len(runs)),
	}

	for i, run := range runs {
		rr := runResult{
			Solver:   run.Solver,
			Solved:   run.Result.Solved(),
			Explored: len(run.Result.Arrivals),
		}
		if rr.Solved {
			t := run.Result.Time
			rr.Time = &t
			rr.Steps = make([]step, len(run.Steps))
			for j, s := range run.Steps {
				direction := "start"
				if s.ToEnd {
					direction = "end"
				}
				rr.Steps[j] = step{
					Movers:    s.Movers,
					Direction: direction,
					Trip:      s.Trip,
					Elapsed:   s.Elapsed,
					StartBank: s.StartBank,
					EndBank:   s.EndBank,
				}
			}
		}
		doc.Results[i] = rr
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}
