package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mfranke/bridgecross/pkg/bridge"
	"github.com/mfranke/bridgecross/pkg/errors"
	"github.com/mfranke/bridgecross/pkg/export"
	"github.com/mfranke/bridgecross/pkg/report"
	"github.com/mfranke/bridgecross/pkg/scenario"
	"github.com/mfranke/bridgecross/pkg/solve"
)

const (
	formatText = "text"
	formatJSON = "json"

	solverBoth = "both"
)

// displayNames maps solver names to their report headings.
var displayNames = map[string]string{
	"dijkstra": "Priority queue (Dijkstra)",
	"dfs":      "Depth-first (branch and bound)",
}

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	people      []string // repeated name=minutes definitions
	limit       int      // time budget for --person runs
	solver      string   // "dijkstra", "dfs", or "both"
	format      string   // "text" or "json"
	output      string   // output file for json (stdout if empty)
	interactive bool     // step through the plan in a TUI
}

// newSolveCmd creates the solve command. The scenario argument is
// auto-detected: an existing path is loaded as a TOML scenario file,
// anything else must be a built-in scenario name. Ad-hoc scenarios can be
// given inline with repeated --person flags plus --limit.
func newSolveCmd() *cobra.Command {
	opts := solveOpts{solver: solverBoth, format: formatText}

	cmd := &cobra.Command{
		Use:   "solve [scenario]",
		Short: "Solve a crossing scenario and print the plan",
		Long: `Solve a crossing scenario with both solvers and print the step-by-step plan.

The scenario argument is auto-detected: an existing file path is parsed as a
TOML scenario, anything else is looked up among the built-in scenarios.

Examples:
  bridgecross solve family                               # Built-in scenario
  bridgecross solve river.toml                           # Scenario file
  bridgecross solve --person A=1 --person B=2 --limit 2  # Inline scenario
  bridgecross solve family --solver dijkstra             # Single solver
  bridgecross solve family --format json -o result.json  # Machine-readable`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			return runSolve(cmd.Context(), arg, &opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.people, "person", nil, "add a person as name=minutes (repeatable)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "time limit in minutes (with --person)")
	cmd.Flags().StringVar(&opts.solver, "solver", opts.solver, "solver to run: dijkstra, dfs, or both")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "output format: text or json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file for --format json (stdout if empty)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "step through the plan interactively")

	return cmd
}

func runSolve(ctx context.Context, arg string, opts *solveOpts) error {
	logger := loggerFromContext(ctx)

	if opts.format != formatText && opts.format != formatJSON {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want text or json)", opts.format)
	}
	if opts.interactive && opts.format == formatJSON {
		return errors.New(errors.ErrCodeInvalidFormat, "--interactive only works with text output")
	}

	f, err := resolveScenario(arg, opts)
	if err != nil {
		return err
	}
	scn, err := f.Build()
	if err != nil {
		return err
	}
	logger.Debugf("Scenario %q: %d people, limit %d min", f.Name, scn.Len(), f.Limit)
	if opts.format == formatText {
		printInfo("%s: %d people, limit %d min", f.Name, scn.Len(), f.Limit)
	}

	solvers := solve.All()
	if opts.solver != solverBoth {
		s, err := solve.ByName(opts.solver)
		if err != nil {
			return err
		}
		solvers = []solve.Solver{s}
	}

	runs := make([]export.Run, 0, len(solvers))
	for _, s := range solvers {
		prog := newProgress(logger)
		res, err := s.Solve(scn, f.Limit)
		if err != nil && !errors.Is(err, errors.ErrCodeNoSolution) {
			return err
		}
		prog.done(fmt.Sprintf("%s explored %d configurations", s.Name(), len(res.Arrivals)))

		var steps []report.Step
		if res.Solved() {
			if steps, err = report.Steps(scn, res.Path, res.Arrivals); err != nil {
				return err
			}
		}
		runs = append(runs, export.Run{Solver: s.Name(), Result: res, Steps: steps})
	}

	if opts.format == formatJSON {
		return writeJSON(f, runs, opts.output)
	}

	for _, run := range runs {
		fmt.Println(styleTitle.Render("--- " + displayNames[run.Solver] + " ---"))
		if err := report.Write(os.Stdout, scn, run.Result); err != nil {
			return err
		}
		fmt.Println()
	}

	if opts.interactive {
		return runWalkthrough(scn, f, runs)
	}
	return nil
}

// writeJSON exports the runs to a file or stdout.
func writeJSON(f *scenario.File, runs []export.Run, output string) error {
	if output == "" {
		return export.WriteJSON(os.Stdout, f.Name, f.Limit, runs)
	}
	out, err := os.Create(output)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", output)
	}
	defer out.Close()
	if err := export.WriteJSON(out, f.Name, f.Limit, runs); err != nil {
		return err
	}
	printFile(output)
	return nil
}

// resolveScenario turns the command input into a validated scenario:
// inline --person flags, an existing TOML file, or a built-in name.
func resolveScenario(arg string, opts *solveOpts) (*scenario.File, error) {
	if len(opts.people) > 0 {
		return inlineScenario(opts)
	}
	if arg == "" {
		return nil, errors.New(errors.ErrCodeInvalidScenario,
			"provide a scenario file, a built-in name (%s), or --person flags",
			strings.Join(scenario.BuiltinNames(), ", "))
	}
	return lookupScenario(arg)
}

// lookupScenario auto-detects a scenario reference: an existing path loads
// as a TOML file, anything else must be a built-in name.
func lookupScenario(arg string) (*scenario.File, error) {
	if _, err := os.Stat(arg); err == nil {
		return scenario.Load(arg)
	}
	if f, ok := scenario.Builtin(arg); ok {
		return f, nil
	}
	return nil, errors.New(errors.ErrCodeScenarioNotFound,
		"scenario %q is neither a file nor a built-in (built-ins: %s)",
		arg, strings.Join(scenario.BuiltinNames(), ", "))
}

// inlineScenario builds a scenario from --person name=minutes flags.
func inlineScenario(opts *solveOpts) (*scenario.File, error) {
	people := make(map[string]int, len(opts.people))
	for _, spec := range opts.people {
		name, minutes, ok := strings.Cut(spec, "=")
		if !ok || name == "" {
			return nil, errors.New(errors.ErrCodeInvalidPerson, "invalid --person %q (want name=minutes)", spec)
		}
		d, err := strconv.Atoi(minutes)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPerson, err, "invalid --person %q", spec)
		}
		people[name] = d
	}

	f := &scenario.File{Name: "inline", Limit: opts.limit, People: people}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// firstSolved returns the first run carrying a complete plan.
func firstSolved(runs []export.Run) (export.Run, bool) {
	for _, run := range runs {
		if run.Result.Solved() {
			return run, true
		}
	}
	return export.Run{}, false
}

// runWalkthrough launches the interactive step-through on the first solved
// run, or explains why there is nothing to walk through.
func runWalkthrough(scn *bridge.Scenario, f *scenario.File, runs []export.Run) error {
	run, ok := firstSolved(runs)
	if !ok {
		printWarning("nothing to walk through: no solution within %d minutes", f.Limit)
		return nil
	}
	return walkthrough(scn, f.Limit, run)
}
