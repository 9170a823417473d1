package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mfranke/bridgecross/pkg/bridge"
	"github.com/mfranke/bridgecross/pkg/errors"
	"github.com/mfranke/bridgecross/pkg/export"
	"github.com/mfranke/bridgecross/pkg/solve"
)

func TestInlineScenario(t *testing.T) {
	opts := &solveOpts{
		people: []string{"A=1", "B=2"},
		limit:  2,
	}

	f, err := inlineScenario(opts)
	if err != nil {
		t.Fatalf("inlineScenario() error = %v", err)
	}
	if f.Limit != 2 {
		t.Errorf("Limit = %d, want 2", f.Limit)
	}
	if f.People["A"] != 1 || f.People["B"] != 2 {
		t.Errorf("People = %v", f.People)
	}
}

func TestInlineScenario_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts solveOpts
		want errors.Code
	}{
		{"missing equals", solveOpts{people: []string{"A"}, limit: 5}, errors.ErrCodeInvalidPerson},
		{"empty name", solveOpts{people: []string{"=3"}, limit: 5}, errors.ErrCodeInvalidPerson},
		{"bad minutes", solveOpts{people: []string{"A=fast"}, limit: 5}, errors.ErrCodeInvalidPerson},
		{"zero duration", solveOpts{people: []string{"A=0"}, limit: 5}, errors.ErrCodeInvalidPerson},
		{"no limit", solveOpts{people: []string{"A=1"}}, errors.ErrCodeInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := inlineScenario(&tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestLookupScenario_Builtin(t *testing.T) {
	f, err := lookupScenario("family")
	if err != nil {
		t.Fatalf("lookupScenario(family) error = %v", err)
	}
	if f.Limit != 60 || len(f.People) != 4 {
		t.Errorf("family = %+v", f)
	}
}

func TestLookupScenario_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "river.toml")
	content := "limit = 10\n\n[people]\nA = 1\nB = 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := lookupScenario(path)
	if err != nil {
		t.Fatalf("lookupScenario(%s) error = %v", path, err)
	}
	if f.Limit != 10 || len(f.People) != 2 {
		t.Errorf("loaded = %+v", f)
	}
}

func TestLookupScenario_Unknown(t *testing.T) {
	_, err := lookupScenario("atlantis")
	if !errors.Is(err, errors.ErrCodeScenarioNotFound) {
		t.Fatalf("error = %v, want SCENARIO_NOT_FOUND", err)
	}
}

func TestResolveScenario_PersonFlagsWin(t *testing.T) {
	// --person flags take precedence over a scenario argument
	opts := &solveOpts{people: []string{"X=3"}, limit: 3}
	f, err := resolveScenario("family", opts)
	if err != nil {
		t.Fatalf("resolveScenario() error = %v", err)
	}
	if _, ok := f.People["X"]; !ok {
		t.Errorf("People = %v, want the inline definition", f.People)
	}
}

func TestResolveScenario_NothingGiven(t *testing.T) {
	_, err := resolveScenario("", &solveOpts{})
	if !errors.Is(err, errors.ErrCodeInvalidScenario) {
		t.Fatalf("error = %v, want INVALID_SCENARIO", err)
	}
}

func TestFirstSolved(t *testing.T) {
	solvedRun := export.Run{
		Solver: "dijkstra",
		Result: &solve.Result{Time: 2, Path: []bridge.State{0}},
	}
	unsolvedRun := export.Run{
		Solver: "dfs",
		Result: &solve.Result{},
	}

	if run, ok := firstSolved([]export.Run{unsolvedRun, solvedRun}); !ok || run.Solver != "dijkstra" {
		t.Errorf("firstSolved() = %v/%v, want the dijkstra run", run.Solver, ok)
	}
	if _, ok := firstSolved([]export.Run{unsolvedRun}); ok {
		t.Error("firstSolved() = ok for unsolved runs")
	}
}

func TestRunSolve_Builtin(t *testing.T) {
	opts := &solveOpts{solver: "dijkstra", format: formatText}
	if err := runSolve(context.Background(), "pair", opts); err != nil {
		t.Fatalf("runSolve() error = %v", err)
	}
}

func TestRunSolve_BadFormat(t *testing.T) {
	opts := &solveOpts{solver: solverBoth, format: "yaml"}
	err := runSolve(context.Background(), "pair", opts)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestRunSolve_InteractiveNeedsText(t *testing.T) {
	opts := &solveOpts{solver: solverBoth, format: formatJSON, interactive: true}
	err := runSolve(context.Background(), "pair", opts)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestDisplayNamesCoverAllSolvers(t *testing.T) {
	for _, s := range solve.All() {
		if _, ok := displayNames[s.Name()]; !ok {
			t.Errorf("solver %q has no display name", s.Name())
		}
	}
}
