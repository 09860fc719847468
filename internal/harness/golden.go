package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/yantra4d/hyperobject/internal/scene"
)

// RunWithGolden executes a fixture and compares the built part's canonical
// manifest against a golden file stored in testdata/golden/{fixture.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files are the source of truth for emitted geometry: a formula
// change that moves any quantized dimension shows up as a byte diff here.
func RunWithGolden(t *testing.T, f *Fixture) error {
	t.Helper()

	result, err := Run(f)
	if err != nil {
		return err
	}
	if result.Node == nil {
		// Violation fixtures have no geometry to compare; Run already
		// checked the expectation.
		return nil
	}

	manifest, err := scene.MarshalManifest(result.Node)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, f.Name, manifest)

	return nil
}
