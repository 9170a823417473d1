// Package stategraph renders the configuration space a solver explored.
//
// Every configuration in a solver's arrival map becomes a node; every legal
// crossing between two explored configurations becomes an edge. When the
// result carries a plan, its nodes and edges are highlighted, which makes
// the optimal route visible inside the searched space.
//
// [ToDOT] produces Graphviz DOT text; [RenderSVG] and [RenderPNG] rasterize
// it in-process via goccy/go-graphviz.
package stategraph

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/mfranke/bridgecross/pkg/bridge"
	"github.com/mfranke/bridgecross/pkg/solve"
)

// Options configures state-graph rendering.
type Options struct {
	// Detailed includes each configuration's cheapest arrival time in its
	// node label.
	Detailed bool
}

// ToDOT converts a solver result into Graphviz DOT format. Nodes and edges
// on the solution path are emphasized; goal configurations are tinted.
// Output is deterministic: states are emitted in encoding order.
func ToDOT(scn *bridge.Scenario, res *solve.Result, opts Options) string {
	states := slices.Sorted(maps.Keys(res.Arrivals))

	onPath := make(map[bridge.State]bool, len(res.Path))
	pathEdge := make(map[[2]bridge.State]bool, len(res.Path))
	for i, st := range res.Path {
		onPath[st] = true
		if i > 0 {
			pathEdge[[2]bridge.State{res.Path[i-1], st}] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph crossings {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, st := range states {
		label := fmtLabel(scn, st, res.Arrivals[st], opts.Detailed)
		attrs := fmtAttrs(scn, st, label, onPath[st])
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(st), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, st := range states {
		for _, mv := range scn.Moves(st) {
			if _, explored := res.Arrivals[mv.Next]; !explored {
				continue
			}
			attrs := fmt.Sprintf("label=\"%d\"", mv.Cost)
			if pathEdge[[2]bridge.State{st, mv.Next}] {
				attrs += ", color=\"#0e7490\", penwidth=2.5"
			} else {
				attrs += ", color=grey"
			}
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", nodeID(st), nodeID(mv.Next), attrs)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeID gives each configuration a stable DOT identifier.
func nodeID(st bridge.State) string {
	return fmt.Sprintf("s%x", uint64(st))
}

// fmtLabel renders a configuration as "start bank | end bank" with an [u]
// marker on the umbrella's side.
func fmtLabel(scn *bridge.Scenario, st bridge.State, arrival int, detailed bool) string {
	start := bankLabel(scn.Names(scn.StartBank(st)))
	end := bankLabel(scn.Names(scn.EndBank(st)))
	if st.UmbrellaAtStart() {
		start += " [u]"
	} else {
		end += " [u]"
	}

	label := start + " | " + end
	if detailed {
		label += fmt.Sprintf("\nt=%d", arrival)
	}
	return label
}

func bankLabel(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func fmtAttrs(scn *bridge.Scenario, st bridge.State, label string, onPath bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case onPath && scn.IsGoal(st):
		attrs = append(attrs, "fillcolor=\"#bbf7d0\"", "penwidth=2")
	case onPath:
		attrs = append(attrs, "fillcolor=\"#cffafe\"", "penwidth=2")
	case scn.IsGoal(st):
		attrs = append(attrs, "fillcolor=\"#dcfce7\"")
	}
	return attrs
}
