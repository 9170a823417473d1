package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mfranke/bridgecross/pkg/scenario"
)

// newScenariosCmd creates the scenarios command listing the built-ins.
func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scenario.BuiltinNames() {
				f, _ := scenario.Builtin(name)

				people := make([]string, 0, len(f.People))
				for _, p := range slices.Sorted(maps.Keys(f.People)) {
					people = append(people, fmt.Sprintf("%s=%d", p, f.People[p]))
				}

				fmt.Println(styleTitle.Render(name) + " " + styleDim.Render("— "+f.Name))
				printKeyValue("limit", fmt.Sprintf("%d min", f.Limit))
				printKeyValue("people", strings.Join(people, ", "))
				fmt.Println()
			}
			printDetail("run one with: %s solve <name>", appName)
			return nil
		},
	}
}
