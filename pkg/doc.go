// Package pkg provides the core libraries for solving bridge crossing
// puzzles.
//
// # Overview
//
// A group of people must cross a bridge at night within a time limit. At
// most two can cross at once, the group's single umbrella must accompany
// every crossing, and a pair moves at the pace of its slower member. The
// packages here model the puzzle, search for minimum-time crossing plans,
// and render the results:
//
//  1. [bridge] - Puzzle model (people, configurations, legal crossings)
//  2. [solve] - Solvers (priority-queue search and depth-first branch and bound)
//  3. [report] - Step-by-step plan reconstruction and text rendering
//  4. [scenario] - TOML scenario files and built-in scenarios
//  5. [stategraph] - Graphviz rendering of the explored configuration space
//  6. [export] - JSON serialization of solver results
//  7. [errors] - Structured errors with machine-readable codes
//
// # Architecture
//
// The typical data flow:
//
//	Scenario file / built-in / --person flags
//	         ↓
//	    [scenario] package (parse + validate)
//	         ↓
//	    [bridge] package (bitmask configuration model)
//	         ↓
//	    [solve] package (find the optimal plan)
//	         ↓
//	    [report] / [export] / [stategraph] output
//
// # Quick Start
//
// Solve a scenario and print the plan:
//
//	import (
//	    "os"
//	    "github.com/mfranke/bridgecross/pkg/bridge"
//	    "github.com/mfranke/bridgecross/pkg/report"
//	    "github.com/mfranke/bridgecross/pkg/solve"
//	)
//
//	scn, _ := bridge.New(map[string]int{"A": 1, "B": 2, "C": 5, "D": 10})
//	res, _ := solve.NewPriorityQueue().Solve(scn, 17)
//	report.Write(os.Stdout, scn, res)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/solve/...    # Specific package
//	go test -run Example       # Examples only
//
// [bridge]: https://pkg.go.dev/github.com/mfranke/bridgecross/pkg/bridge
// [solve]: https://pkg.go.dev/github.com/mfranke/bridgecross/pkg/solve
// [report]: https://pkg.go.dev/github.com/mfranke/bridgecross/pkg/report
// [scenario]: https://pkg.go.dev/github.com/mfranke/bridgecross/pkg/scenario
// [stategraph]: https://pkg.go.dev/github.com/mfranke/bridgecross/pkg/stategraph
// [export]: https://pkg.go.dev/github.com/mfranke/bridgecross/pkg/export
// [errors]: https://pkg.go.dev/github.com/mfranke/bridgecross/pkg/errors
package pkg
