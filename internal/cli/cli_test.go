package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with the given args and captured output.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func designDir(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "designs.cue"), []byte(src), 0644))
	return dir
}

const goodDesign = `
package designs

design: good: {
	rack: slot_count: 5
}
`

const violatingDesign = `
package designs

design: loose: {
	latch: bump_height: 2.5
}
`

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"compile", "validate", "dims", "build", "parts"} {
		assert.Contains(t, names, want)
	}

	assert.NotNil(t, cmd.PersistentFlags().Lookup("format"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
}

func TestRootRejectsInvalidFormat(t *testing.T) {
	_, _, err := runCLI(t, "--format", "yaml", "parts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestCompileText(t *testing.T) {
	dir := designDir(t, goodDesign)

	stdout, _, err := runCLI(t, "compile", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ Compiled 1 design(s) from 1 file(s)")
	assert.Contains(t, stdout, "good: 5 slot(s)")
}

func TestCompileJSON(t *testing.T) {
	dir := designDir(t, goodDesign)

	stdout, _, err := runCLI(t, "--format", "json", "compile", dir)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCompileWritesOutputFile(t *testing.T) {
	dir := designDir(t, goodDesign)
	outFile := filepath.Join(t.TempDir(), "resolved.json")

	stdout, _, err := runCLI(t, "compile", dir, "-o", outFile)
	require.NoError(t, err)
	assert.Contains(t, stdout, outFile)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var result CompilationResult
	require.NoError(t, json.Unmarshal(data, &result))
	require.Len(t, result.Designs, 1)
	assert.Equal(t, "good", result.Designs[0].Name)
	assert.Equal(t, 5, result.Designs[0].Rack.SlotCount)
}

func TestCompileMissingDir(t *testing.T) {
	_, _, err := runCLI(t, "compile", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCompileReportsAllErrors(t *testing.T) {
	dir := designDir(t, `
package designs

design: bad1: {rack: slot_cuont: 5}
design: bad2: {turbo: true}
`)

	stdout, _, err := runCLI(t, "compile", dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "✗ Compilation failed")
	assert.Contains(t, stdout, "slot_cuont")
	assert.Contains(t, stdout, "turbo")
}

func TestValidateOK(t *testing.T) {
	dir := designDir(t, goodDesign)

	stdout, _, err := runCLI(t, "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ good")
	assert.Contains(t, stdout, "All 1 design(s) valid")
}

func TestValidateViolations(t *testing.T) {
	dir := designDir(t, violatingDesign)

	stdout, _, err := runCLI(t, "validate", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "✗ loose")
	assert.Contains(t, stdout, "LATCH_OVERTRAVEL")
}

func TestValidateJSONCarriesViolations(t *testing.T) {
	dir := designDir(t, violatingDesign)

	stdout, _, err := runCLI(t, "--format", "json", "validate", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Data.Valid)
	require.Len(t, resp.Data.Designs, 1)
	assert.NotEmpty(t, resp.Data.Designs[0].Violations)
}

func TestDimsText(t *testing.T) {
	dir := designDir(t, goodDesign)

	stdout, _, err := runCLI(t, "dims", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "design: good")
	assert.Contains(t, stdout, "[rack]")
	assert.Contains(t, stdout, "[assembly]")
}

func TestDimsJSON(t *testing.T) {
	dir := designDir(t, goodDesign)

	stdout, _, err := runCLI(t, "--format", "json", "dims", dir)
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   DimsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Data.Plans, 1)
	assert.Equal(t, 5, resp.Data.Plans[0].Rack.SlotCount)
}

func TestDimsUnknownDesign(t *testing.T) {
	dir := designDir(t, goodDesign)

	stdout, _, err := runCLI(t, "dims", dir, "--design", "missing")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, ErrCodeUnknownDesign)
	assert.Contains(t, stdout, "good") // lists the known names
}

func TestPartsText(t *testing.T) {
	stdout, _, err := runCLI(t, "parts")
	require.NoError(t, err)
	for _, name := range []string{"rack", "box", "lid", "holder", "slide", "assembly"} {
		assert.Contains(t, stdout, name)
	}
}

func TestPartsJSON(t *testing.T) {
	stdout, _, err := runCLI(t, "--format", "json", "parts")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   []PartInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Len(t, resp.Data, 6)
}

func TestBuildManifestsOnly(t *testing.T) {
	dir := designDir(t, goodDesign)
	out := t.TempDir()

	stdout, _, err := runCLI(t, "build", dir, "--part", "slide", "--skip-stl", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ Built 1 part(s)")

	manifest, err := os.ReadFile(filepath.Join(out, "good-slide.manifest.json"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `"kind":"group"`)
	assert.Contains(t, string(manifest), `"name":"slide"`)
}

func TestBuildJSONReportsFingerprints(t *testing.T) {
	dir := designDir(t, goodDesign)
	out := t.TempDir()

	stdout, _, err := runCLI(t, "--format", "json", "build", dir, "--part", "rack", "--skip-stl", "-o", out)
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   BuildResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.NotEmpty(t, resp.Data.RunID)
	require.Len(t, resp.Data.Parts, 1)
	assert.Len(t, resp.Data.Parts[0].Fingerprint, 64)
	assert.Empty(t, resp.Data.Parts[0].STL)

	// The design's own content-addressed ID rides alongside the geometry.
	require.Len(t, resp.Data.Designs, 1)
	assert.Equal(t, "good", resp.Data.Designs[0].Name)
	assert.Len(t, resp.Data.Designs[0].Fingerprint, 64)
	assert.NotEqual(t, resp.Data.Parts[0].Fingerprint, resp.Data.Designs[0].Fingerprint)
}

func TestBuildRefusesViolatingDesign(t *testing.T) {
	dir := designDir(t, violatingDesign)

	_, _, err := runCLI(t, "build", dir, "--skip-stl", "-o", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestBuildUnknownPart(t *testing.T) {
	dir := designDir(t, goodDesign)

	_, _, err := runCLI(t, "build", dir, "--part", "chassis", "--skip-stl")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestResolveParts(t *testing.T) {
	all, err := resolveParts("all")
	require.NoError(t, err)
	assert.Len(t, all, 6)

	one, err := resolveParts("lid")
	require.NoError(t, err)
	assert.Equal(t, []string{"lid"}, one)

	_, err = resolveParts("chassis")
	assert.Error(t, err)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "boom")))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
}
