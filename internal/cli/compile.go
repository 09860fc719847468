package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yantra4d/hyperobject/internal/compiler"
	"github.com/yantra4d/hyperobject/internal/param"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	Output string // output file path
}

// CompilationResult holds the resolved designs.
type CompilationResult struct {
	Designs []param.Design `json:"designs"`
}

// CompilationStats holds summary statistics.
type CompilationStats struct {
	DesignCount int
	FileCount   int
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <designs-dir>",
		Short: "Compile CUE design scripts to resolved parameters",
		Long: `Compile CUE design scripts to fully resolved parameter sets.

The compiler parses CUE files, overlays each design on the defaults,
and outputs resolved JSON for use by downstream tooling.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")

	return cmd
}

func runCompile(opts *CompileOptions, designsDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	loadResult, loadErrors := compiler.LoadDir(designsDir, compiler.LoadModeCollectAll)

	if loadResult == nil && len(loadErrors) > 0 {
		return outputLoadError(formatter, loadErrors[0])
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", loadResult.FileCount, designsDir)
	for _, d := range loadResult.Designs {
		formatter.VerboseLog("Compiling design: %s", d.Name)
	}

	if len(loadErrors) > 0 {
		return outputCompileErrors(formatter, loadErrors)
	}

	result := &CompilationResult{Designs: loadResult.Designs}
	stats := CompilationStats{
		DesignCount: len(result.Designs),
		FileCount:   loadResult.FileCount,
	}

	if opts.Output != "" {
		if err := writeResolvedToFile(result, opts.Output); err != nil {
			msg := fmt.Sprintf("writing output file: %v", err)
			_ = formatter.Error(ErrCodeWriteFailed, msg, nil)
			return WrapExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeWriteFailed, msg), nil)
		}
	}

	return outputCompileSuccess(formatter, result, stats, opts.Output)
}

// outputCompileSuccess outputs successful compilation results.
func outputCompileSuccess(formatter *OutputFormatter, result *CompilationResult, stats CompilationStats, outputFile string) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Compiled %d design(s) from %d file(s)\n\n",
		stats.DesignCount, stats.FileCount)

	if len(result.Designs) > 0 {
		fmt.Fprintln(formatter.Writer, "Designs:")
		for _, d := range result.Designs {
			fmt.Fprintf(formatter.Writer, "  %s: %d slot(s), slide %g x %g x %g\n",
				d.Name, d.Rack.SlotCount, d.Slide.Width, d.Slide.Height, d.Slide.Thickness)
		}
		fmt.Fprintln(formatter.Writer)
	}

	if outputFile != "" {
		fmt.Fprintf(formatter.Writer, "Wrote resolved designs to %s\n", outputFile)
	}

	return nil
}

// outputCompileErrors outputs multiple compilation errors.
func outputCompileErrors(formatter *OutputFormatter, errs []error) error {
	if formatter.Format == "json" {
		cliErrors := make([]CLIError, len(errs))
		for i, err := range errs {
			code, message := parseLoadError(err)
			cliErrors[i] = CLIError{
				Code:    code,
				Message: message,
			}
		}

		response := CLIResponse{
			Status: "error",
			Error:  &cliErrors[0],
			Data:   cliErrors, // Include all errors in data
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}

		return NewExitError(ExitCommandError, fmt.Sprintf("compilation failed with %d error(s)", len(errs)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Compilation failed")
	fmt.Fprintln(formatter.Writer)

	for _, err := range errs {
		code, message := parseLoadError(err)
		var loadErr *compiler.LoadError
		if errors.As(err, &loadErr) && loadErr.Pos.IsValid() {
			fmt.Fprintf(formatter.Writer, "%s:%d:%d\n",
				loadErr.Pos.Filename(),
				loadErr.Pos.Line(),
				loadErr.Pos.Column())
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", code, message)
	}

	return NewExitError(ExitCommandError, fmt.Sprintf("compilation failed with %d error(s)", len(errs)))
}

// parseLoadError extracts error code and message from an error.
func parseLoadError(err error) (string, string) {
	var loadErr *compiler.LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Code, loadErr.Message
	}
	var compileErr *compiler.CompileError
	if errors.As(err, &compileErr) {
		return compiler.ErrCodeBuildFailed, compileErr.Message
	}
	return compiler.ErrCodeGeneric, err.Error()
}

// writeResolvedToFile writes the compilation result to a file as indented JSON.
func writeResolvedToFile(result *CompilationResult, filename string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling designs: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}
