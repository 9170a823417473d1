// Package scenario loads puzzle scenarios from TOML files and provides a
// small set of built-in scenarios for quick runs.
//
// A scenario file names the people with their crossing durations and sets
// the time limit:
//
//	name = "Family at the river"
//	limit = 60
//
//	[people]
//	Amogh = 5
//	Ameya = 10
//	Grandmother = 20
//	Grandfather = 25
package scenario

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mfranke/bridgecross/pkg/bridge"
	"github.com/mfranke/bridgecross/pkg/errors"
)

// File is a parsed scenario: the puzzle input before bit-index assignment.
type File struct {
	Name   string         `toml:"name"`  // optional display name
	Limit  int            `toml:"limit"` // time budget in minutes
	People map[string]int `toml:"people"`
}

// Load reads and validates a scenario file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scenario file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "read %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load %s", path)
	}
	return f, nil
}

// Parse decodes and validates TOML scenario data.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "parse scenario")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the scenario invariants: at least one person, positive
// durations, and a positive time limit.
func (f *File) Validate() error {
	if len(f.People) == 0 {
		return errors.New(errors.ErrCodeInvalidScenario, "scenario has no people")
	}
	for name, d := range f.People {
		if name == "" {
			return errors.New(errors.ErrCodeInvalidPerson, "person with empty name")
		}
		if d <= 0 {
			return errors.New(errors.ErrCodeInvalidPerson, "%s has non-positive duration %d", name, d)
		}
	}
	if f.Limit <= 0 {
		return errors.New(errors.ErrCodeInvalidLimit, "time limit must be positive, got %d", f.Limit)
	}
	return nil
}

// Build constructs the solver-facing model from the parsed scenario.
func (f *File) Build() (*bridge.Scenario, error) {
	scn, err := bridge.New(f.People)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "build scenario")
	}
	return scn, nil
}
