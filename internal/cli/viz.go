package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mfranke/bridgecross/pkg/errors"
	"github.com/mfranke/bridgecross/pkg/solve"
	"github.com/mfranke/bridgecross/pkg/stategraph"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// vizOpts holds the command-line flags for the viz command.
type vizOpts struct {
	output   string   // output base path (scenario name if empty)
	formats  []string // output formats: dot, svg, png
	solver   string   // which solver's exploration to render
	detailed bool     // include arrival times in node labels
}

// newVizCmd creates the viz command for rendering the explored
// configuration space. Even a scenario without a solution renders: the
// graph then shows everything the search reached under the limit.
func newVizCmd() *cobra.Command {
	var formatsStr string
	opts := vizOpts{solver: "dijkstra"}

	cmd := &cobra.Command{
		Use:   "viz [scenario]",
		Short: "Render the explored configuration space",
		Long: `Render the configuration space a solver explored as a graph.

Each explored configuration becomes a node ("start bank | end bank", with
[u] marking the umbrella's side), each legal crossing between explored
configurations an edge labelled with its duration. The optimal plan, when
one exists, is highlighted.

Examples:
  bridgecross viz family                       # SVG next to the scenario name
  bridgecross viz river.toml -f dot,svg,png    # Multiple formats
  bridgecross viz family --detailed            # Include arrival times`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runViz(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (scenario name if empty)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")
	cmd.Flags().StringVar(&opts.solver, "solver", opts.solver, "solver to trace: dijkstra or dfs")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include arrival times in node labels")

	return cmd
}

func runViz(ctx context.Context, arg string, opts *vizOpts) error {
	logger := loggerFromContext(ctx)

	f, err := lookupScenario(arg)
	if err != nil {
		return err
	}
	scn, err := f.Build()
	if err != nil {
		return err
	}

	s, err := solve.ByName(opts.solver)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	res, err := s.Solve(scn, f.Limit)
	if err != nil && !errors.Is(err, errors.ErrCodeNoSolution) {
		return err
	}
	prog.done(fmt.Sprintf("%s explored %d configurations", s.Name(), len(res.Arrivals)))
	if !res.Solved() {
		printWarning("no solution within %d minutes; rendering the explored space only", f.Limit)
	}

	dot := stategraph.ToDOT(scn, res, stategraph.Options{Detailed: opts.detailed})

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg))
	}

	for _, format := range opts.formats {
		path := base + "." + format
		data, err := renderFormat(ctx, dot, format)
		if err != nil {
			printError("Rendering %s failed", format)
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		printFile(path)
	}

	printSuccess("Rendered %d configurations", len(res.Arrivals))
	return nil
}

// renderFormat produces the bytes for one output format. Graphviz layout
// runs in-process (wasm) and can take a moment on larger spaces, hence the
// spinner.
func renderFormat(ctx context.Context, dot, format string) ([]byte, error) {
	if format == formatDOT {
		return []byte(dot), nil
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()
	defer spinner.Stop()

	var data []byte
	var err error
	switch format {
	case formatSVG:
		data, err = stategraph.RenderSVG(dot)
	case formatPNG:
		data, err = stategraph.RenderPNG(dot)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	if spinner.Cancelled() {
		return nil, ctx.Err()
	}
	return data, err
}

// parseFormats splits a comma-separated format list, defaulting to svg.
func parseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{formatSVG}
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

// validateFormats rejects anything but dot, svg, and png.
func validateFormats(formats []string) error {
	for _, f := range formats {
		switch f {
		case formatDOT, formatSVG, formatPNG:
		default:
			return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want dot, svg, or png)", f)
		}
	}
	return nil
}
