// Package harness runs design fixtures for conformance tests: YAML files
// naming a design directory, a part, and the expected outcome. Passing
// fixtures compare their emitted scene manifest against a golden file.
package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yantra4d/hyperobject/internal/compiler"
	"github.com/yantra4d/hyperobject/internal/layout"
	"github.com/yantra4d/hyperobject/internal/parts"
	"github.com/yantra4d/hyperobject/internal/scene"
)

// Fixture defines a conformance test fixture.
type Fixture struct {
	// Name uniquely identifies this fixture and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this fixture validates.
	Description string `yaml:"description"`

	// Designs is the path to a CUE design directory, relative to the
	// fixture file location.
	Designs string `yaml:"designs"`

	// Design selects a design by name. Empty means the sole design.
	Design string `yaml:"design,omitempty"`

	// Part is the part to build ("rack", "box", "lid", "holder", "slide",
	// "assembly"). Empty skips building and checks the layout only.
	Part string `yaml:"part,omitempty"`

	// Expect specifies the expected outcome.
	Expect Expect `yaml:"expect"`

	// dir is the fixture file's directory, for resolving Designs.
	dir string
}

// Expect specifies expected solve behavior.
type Expect struct {
	// Violations lists the expected violation codes, in any order.
	// Empty means the design must solve cleanly.
	Violations []string `yaml:"violations,omitempty"`
}

// Result captures a fixture run.
type Result struct {
	Plan       *layout.Plan
	Violations []layout.Violation

	// Node is the built part, nil when the fixture names no part or the
	// design violated invariants.
	Node scene.Node
}

// LoadFixture reads and validates a fixture file. Unknown YAML fields are
// errors, so fixtures cannot silently drift from the schema.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}

	var f Fixture
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}

	if f.Name == "" {
		return nil, fmt.Errorf("fixture %s: name is required", path)
	}
	if f.Designs == "" {
		return nil, fmt.Errorf("fixture %s: designs is required", path)
	}

	f.dir = filepath.Dir(path)
	return &f, nil
}

// Run executes a fixture: load and compile the designs, solve the layout,
// check the expected violations, and build the named part.
// An unexpected outcome is an error; assertion-grade comparison of the built
// geometry is the golden file's job.
func Run(f *Fixture) (*Result, error) {
	loadResult, loadErrors := compiler.LoadDir(filepath.Join(f.dir, f.Designs), compiler.LoadModeFailFast)
	if len(loadErrors) > 0 {
		return nil, fmt.Errorf("fixture %s: loading designs: %w", f.Name, loadErrors[0])
	}

	design, ok := loadResult.Design(f.Design)
	if !ok {
		return nil, fmt.Errorf("fixture %s: design %q not found", f.Name, f.Design)
	}

	if errs := compiler.Validate(design); len(errs) > 0 {
		return nil, fmt.Errorf("fixture %s: design fails schema validation: %v", f.Name, errs[0])
	}

	plan, violations := layout.Solve(design)
	result := &Result{Plan: plan, Violations: violations}

	if err := checkViolations(f, violations); err != nil {
		return nil, err
	}

	if f.Part != "" && len(violations) == 0 {
		node, err := parts.Build(f.Part, plan)
		if err != nil {
			return nil, fmt.Errorf("fixture %s: %w", f.Name, err)
		}
		result.Node = node
	}

	return result, nil
}

// checkViolations compares actual violation codes against the expectation,
// order-insensitively.
func checkViolations(f *Fixture, violations []layout.Violation) error {
	want := map[string]int{}
	for _, code := range f.Expect.Violations {
		want[code]++
	}
	got := map[string]int{}
	for _, v := range violations {
		got[string(v.Code)]++
	}

	for code, n := range want {
		if got[code] < n {
			return fmt.Errorf("fixture %s: expected violation %s not reported (got %v)",
				f.Name, code, codes(violations))
		}
	}
	for code := range got {
		if want[code] == 0 {
			return fmt.Errorf("fixture %s: unexpected violation %s (got %v)",
				f.Name, code, codes(violations))
		}
	}
	return nil
}

func codes(violations []layout.Violation) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = string(v.Code)
	}
	return out
}
