package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yantra4d/hyperobject/internal/compiler"
	"github.com/yantra4d/hyperobject/internal/layout"
)

// DesignValidation holds the validation outcome for one design.
type DesignValidation struct {
	Design     string                     `json:"design"`
	Valid      bool                       `json:"valid"`
	Errors     []compiler.ValidationError `json:"errors,omitempty"`
	Violations []layout.Violation         `json:"violations,omitempty"`
}

// ValidationResult holds validation results across all designs.
type ValidationResult struct {
	Valid   bool               `json:"valid"`
	Designs []DesignValidation `json:"designs"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <designs-dir>",
		Short: "Validate designs: parameter ranges and dimensional invariants",
		Long: `Validate CUE design scripts without emitting geometry.

Runs parameter-level schema checks (positivity, fractions, slot count)
and then solves each design's layout to check dimensional invariants
(cavity fit, lid clearance, latch engagement, recess depth).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, designsDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	loadResult, loadErrors := compiler.LoadDir(designsDir, compiler.LoadModeCollectAll)

	if loadResult == nil && len(loadErrors) > 0 {
		return outputLoadError(formatter, loadErrors[0])
	}
	if len(loadErrors) > 0 {
		return outputCompileErrors(formatter, loadErrors)
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", loadResult.FileCount, designsDir)

	result := ValidationResult{Valid: true}
	for i := range loadResult.Designs {
		d := &loadResult.Designs[i]
		dv := DesignValidation{Design: d.Name, Valid: true}

		dv.Errors = compiler.Validate(d)
		if len(dv.Errors) == 0 {
			// Layout invariants only make sense on a schema-valid design.
			_, dv.Violations = layout.Solve(d)
		}
		if len(dv.Errors) > 0 || len(dv.Violations) > 0 {
			dv.Valid = false
			result.Valid = false
		}

		result.Designs = append(result.Designs, dv)
	}

	return outputValidationResult(formatter, result)
}

func outputValidationResult(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
		if !result.Valid {
			return NewExitError(ExitFailure, "validation failed")
		}
		return nil
	}

	for _, dv := range result.Designs {
		if dv.Valid {
			fmt.Fprintf(formatter.Writer, "✓ %s\n", dv.Design)
			continue
		}
		fmt.Fprintf(formatter.Writer, "✗ %s\n", dv.Design)
		for _, e := range dv.Errors {
			fmt.Fprintf(formatter.Writer, "  %s\n", e.Error())
		}
		for _, v := range dv.Violations {
			fmt.Fprintf(formatter.Writer, "  %s\n", v.Error())
		}
	}

	if !result.Valid {
		return NewExitError(ExitFailure, "validation failed")
	}
	fmt.Fprintf(formatter.Writer, "\nAll %d design(s) valid\n", len(result.Designs))
	return nil
}
