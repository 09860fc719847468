package cli

import (
	"fmt"
	"os"
	"path/filepath"

	isosurface "github.com/Yeicor/sdfx-isosurface"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/render/dc"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yantra4d/hyperobject/internal/compiler"
	"github.com/yantra4d/hyperobject/internal/layout"
	"github.com/yantra4d/hyperobject/internal/parts"
	"github.com/yantra4d/hyperobject/internal/scene"
)

// Mesher names accepted by --mesher.
var ValidMeshers = []string{"dc", "iso"}

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	Design  string
	Part    string
	Output  string
	Mesher  string
	Cells   int
	SkipSTL bool
}

// PartResult describes one emitted part.
type PartResult struct {
	Design      string `json:"design"`
	Part        string `json:"part"`
	Fingerprint string `json:"fingerprint"`
	Manifest    string `json:"manifest"`
	STL         string `json:"stl,omitempty"`
}

// DesignInfo reports the content-addressed identity of one built design.
type DesignInfo struct {
	Name        string `json:"name"`
	Fingerprint string `json:"fingerprint"`
}

// BuildResult holds the build command output.
type BuildResult struct {
	// RunID is a V7 UUID identifying this build run. It appears only in
	// reports, never inside manifests, so emitted geometry stays
	// content-addressed.
	RunID   string       `json:"run_id"`
	Designs []DesignInfo `json:"designs"`
	Parts   []PartResult `json:"parts"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build <designs-dir>",
		Short: "Emit scene manifests and STL meshes",
		Long: `Compile designs, solve their layouts, and emit geometry.

Each selected part produces a canonical scene manifest (JSON) and an
STL mesh. Designs that violate layout invariants are refused; run
validate for the full report.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Design, "design", "", "design name (default: all designs)")
	cmd.Flags().StringVar(&opts.Part, "part", "all", "part to build (rack|box|lid|holder|slide|assembly|all)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", ".", "output directory")
	cmd.Flags().StringVar(&opts.Mesher, "mesher", "dc", "mesher (dc|iso)")
	cmd.Flags().IntVar(&opts.Cells, "cells", 200, "mesh cells along the longest axis")
	cmd.Flags().BoolVar(&opts.SkipSTL, "skip-stl", false, "emit manifests only, no meshes")

	return cmd
}

func runBuild(opts *BuildOptions, designsDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	partNames, err := resolveParts(opts.Part)
	if err != nil {
		_ = formatter.Error(ErrCodeUnknownPart, err.Error(), nil)
		return WrapExitError(ExitCommandError, err.Error(), nil)
	}

	loadResult, loadErrors := compiler.LoadDir(designsDir, compiler.LoadModeFailFast)
	if len(loadErrors) > 0 {
		return outputLoadError(formatter, loadErrors[0])
	}

	designs, err := selectDesigns(loadResult, opts.Design)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	if err := os.MkdirAll(opts.Output, 0755); err != nil {
		msg := fmt.Sprintf("creating output directory: %v", err)
		_ = formatter.Error(ErrCodeWriteFailed, msg, nil)
		return WrapExitError(ExitCommandError, msg, nil)
	}

	result := BuildResult{RunID: uuid.Must(uuid.NewV7()).String()}
	formatter.VerboseLog("build run %s", result.RunID)

	for i := range designs {
		d := &designs[i]

		if errs := compiler.Validate(d); len(errs) > 0 {
			_ = formatter.Error(errs[0].Code, fmt.Sprintf("design %s: %s", d.Name, errs[0].Error()), errs)
			return NewExitError(ExitFailure, fmt.Sprintf("design %s fails validation", d.Name))
		}
		plan, violations := layout.Solve(d)
		if len(violations) > 0 {
			_ = formatter.Error(string(violations[0].Code),
				fmt.Sprintf("design %s: %s", d.Name, violations[0].Error()), violations)
			return NewExitError(ExitFailure, fmt.Sprintf("design %s violates layout invariants", d.Name))
		}

		designFP, err := compiler.DesignFingerprint(d)
		if err != nil {
			msg := fmt.Sprintf("design %s: fingerprint: %v", d.Name, err)
			_ = formatter.Error(compiler.ErrCodeGeneric, msg, nil)
			return WrapExitError(ExitCommandError, msg, err)
		}
		result.Designs = append(result.Designs, DesignInfo{Name: d.Name, Fingerprint: designFP})

		for _, partName := range partNames {
			pr, err := emitPart(formatter, opts, plan, d.Name, partName)
			if err != nil {
				return err
			}
			result.Parts = append(result.Parts, pr)
		}
	}

	return outputBuildSuccess(formatter, result)
}

// resolveParts expands the --part flag into builder names.
func resolveParts(flag string) ([]string, error) {
	if flag == "all" {
		return parts.Names(), nil
	}
	for _, name := range parts.Names() {
		if name == flag {
			return []string{flag}, nil
		}
	}
	return nil, fmt.Errorf("unknown part %q, have: %v or all", flag, parts.Names())
}

// emitPart builds one part and writes its manifest and, unless skipped, its
// STL mesh.
func emitPart(formatter *OutputFormatter, opts *BuildOptions, plan *layout.Plan, design, partName string) (PartResult, error) {
	node, err := parts.Build(partName, plan)
	if err != nil {
		_ = formatter.Error(ErrCodeUnknownPart, err.Error(), nil)
		return PartResult{}, WrapExitError(ExitCommandError, err.Error(), nil)
	}

	manifest, err := scene.MarshalManifest(node)
	if err != nil {
		msg := fmt.Sprintf("%s/%s: manifest: %v", design, partName, err)
		_ = formatter.Error(ErrCodeMeshFailed, msg, nil)
		return PartResult{}, WrapExitError(ExitCommandError, msg, err)
	}
	fingerprint := scene.MustFingerprint(node)

	base := fmt.Sprintf("%s-%s", design, partName)
	manifestPath := filepath.Join(opts.Output, base+".manifest.json")
	if err := os.WriteFile(manifestPath, manifest, 0644); err != nil {
		msg := fmt.Sprintf("writing %s: %v", manifestPath, err)
		_ = formatter.Error(ErrCodeWriteFailed, msg, nil)
		return PartResult{}, WrapExitError(ExitCommandError, msg, nil)
	}

	pr := PartResult{
		Design:      design,
		Part:        partName,
		Fingerprint: fingerprint,
		Manifest:    manifestPath,
	}

	if !opts.SkipSTL {
		stlPath := filepath.Join(opts.Output, base+".stl")
		if err := meshToSTL(node, opts, stlPath); err != nil {
			msg := fmt.Sprintf("%s/%s: %v", design, partName, err)
			_ = formatter.Error(ErrCodeMeshFailed, msg, nil)
			return PartResult{}, WrapExitError(ExitCommandError, msg, err)
		}
		pr.STL = stlPath
		formatter.VerboseLog("meshed %s (%d cells, %s)", stlPath, opts.Cells, opts.Mesher)
	}

	return pr, nil
}

// meshToSTL lowers the tree to an SDF and meshes it with the selected
// renderer.
func meshToSTL(node scene.Node, opts *BuildOptions, path string) error {
	field, err := scene.ToSDF(node)
	if err != nil {
		return fmt.Errorf("lowering to SDF: %w", err)
	}

	var renderer render.Render3
	switch opts.Mesher {
	case "dc":
		renderer = dc.NewDualContouringDefault()
	case "iso":
		renderer = isosurface.NewRendererCompatible()
	default:
		return fmt.Errorf("unknown mesher %q, must be one of %v", opts.Mesher, ValidMeshers)
	}

	render.ToSTL(field, opts.Cells, path, renderer)
	return nil
}

func outputBuildSuccess(formatter *OutputFormatter, result BuildResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Built %d part(s) (run %s)\n\n", len(result.Parts), result.RunID)
	for _, di := range result.Designs {
		fmt.Fprintf(formatter.Writer, "  design %s %s\n", di.Name, di.Fingerprint)
	}
	fmt.Fprintln(formatter.Writer)
	for _, pr := range result.Parts {
		fmt.Fprintf(formatter.Writer, "  %s/%s\n", pr.Design, pr.Part)
		fmt.Fprintf(formatter.Writer, "    fingerprint %s\n", pr.Fingerprint)
		fmt.Fprintf(formatter.Writer, "    manifest    %s\n", pr.Manifest)
		if pr.STL != "" {
			fmt.Fprintf(formatter.Writer, "    stl         %s\n", pr.STL)
		}
	}
	return nil
}
