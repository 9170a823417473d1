package scenario

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/mfranke/bridgecross/pkg/errors"
)

const familyTOML = `name = "Family at the river"
limit = 60

[people]
Amogh = 5
Ameya = 10
Grandmother = 20
Grandfather = 25
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(familyTOML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if f.Name != "Family at the river" {
		t.Errorf("Name = %q", f.Name)
	}
	if f.Limit != 60 {
		t.Errorf("Limit = %d, want 60", f.Limit)
	}
	if len(f.People) != 4 {
		t.Errorf("got %d people, want 4", len(f.People))
	}
	if f.People["Grandfather"] != 25 {
		t.Errorf("Grandfather = %d, want 25", f.People["Grandfather"])
	}
}

func TestParse_BadTOML(t *testing.T) {
	_, err := Parse([]byte("limit = ["))
	if !errors.Is(err, errors.ErrCodeInvalidScenario) {
		t.Fatalf("error = %v, want INVALID_SCENARIO", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		file File
		want errors.Code
	}{
		{"valid", File{Limit: 10, People: map[string]int{"A": 1}}, ""},
		{"no people", File{Limit: 10}, errors.ErrCodeInvalidScenario},
		{"empty name", File{Limit: 10, People: map[string]int{"": 1}}, errors.ErrCodeInvalidPerson},
		{"zero duration", File{Limit: 10, People: map[string]int{"A": 0}}, errors.ErrCodeInvalidPerson},
		{"negative duration", File{Limit: 10, People: map[string]int{"A": -3}}, errors.ErrCodeInvalidPerson},
		{"zero limit", File{People: map[string]int{"A": 1}}, errors.ErrCodeInvalidLimit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.file.Validate()
			if tc.want == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate() error = %v, want %s", err, tc.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.toml")
	if err := os.WriteFile(path, []byte(familyTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if f.Limit != 60 || len(f.People) != 4 {
		t.Errorf("Load() = %+v", f)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Fatalf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestBuild(t *testing.T) {
	f, err := Parse([]byte(familyTOML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	scn, err := f.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if scn.Len() != 4 {
		t.Errorf("Len() = %d, want 4", scn.Len())
	}
}

func TestBuiltin(t *testing.T) {
	f, ok := Builtin("family")
	if !ok {
		t.Fatal("Builtin(family) not found")
	}
	if err := f.Validate(); err != nil {
		t.Errorf("built-in scenario invalid: %v", err)
	}

	// The copy must be detached from the registry.
	f.People["Amogh"] = 999
	again, _ := Builtin("family")
	if again.People["Amogh"] != 5 {
		t.Error("mutating a Builtin() result leaked into the registry")
	}

	if _, ok := Builtin("unknown"); ok {
		t.Error("Builtin(unknown) = ok, want not found")
	}
}

func TestBuiltinNames(t *testing.T) {
	names := BuiltinNames()
	want := []string{"family", "pair", "solo", "tight"}
	if !slices.Equal(names, want) {
		t.Errorf("BuiltinNames() = %v, want %v", names, want)
	}

	for _, name := range names {
		f, ok := Builtin(name)
		if !ok {
			t.Fatalf("Builtin(%q) not found", name)
		}
		if err := f.Validate(); err != nil {
			t.Errorf("%s: invalid built-in: %v", name, err)
		}
	}
}
