package scenario

import (
	"maps"
	"slices"
)

// builtins are ready-to-run scenarios available by name, without a file.
var builtins = map[string]*File{
	"family": {
		Name:  "Family at the river",
		Limit: 60,
		People: map[string]int{
			"Amogh":       5,
			"Ameya":       10,
			"Grandmother": 20,
			"Grandfather": 25,
		},
	},
	"tight": {
		Name:  "Family at the river, impossible deadline",
		Limit: 15,
		People: map[string]int{
			"Amogh":       5,
			"Ameya":       10,
			"Grandmother": 20,
			"Grandfather": 25,
		},
	},
	"pair": {
		Name:   "Two friends",
		Limit:  2,
		People: map[string]int{"A": 1, "B": 2},
	},
	"solo": {
		Name:   "One night walker",
		Limit:  7,
		People: map[string]int{"Ida": 7},
	},
}

// Builtin returns the built-in scenario with the given name. The returned
// File is a deep copy; callers may modify it freely.
func Builtin(name string) (*File, bool) {
	f, ok := builtins[name]
	if !ok {
		return nil, false
	}
	cp := *f
	cp.People = maps.Clone(f.People)
	return &cp, true
}

// BuiltinNames lists the built-in scenario names in sorted order.
func BuiltinNames() []string {
	return slices.Sorted(maps.Keys(builtins))
}
