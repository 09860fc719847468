package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yantra4d/hyperobject/internal/compiler"
	"github.com/yantra4d/hyperobject/internal/layout"
)

// DimsOptions holds flags for the dims command.
type DimsOptions struct {
	*RootOptions
	Design string // restrict to one design
}

// DimsResult holds the solved plans for JSON output.
type DimsResult struct {
	Plans []*layout.Plan `json:"plans"`
}

// NewDimsCommand creates the dims command.
func NewDimsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DimsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dims <designs-dir>",
		Short: "Print the derived-dimension report",
		Long: `Solve each design's layout and print every derived dimension:
slot pitch, rib geometry, cavity and envelope sizes, latch and label
placement. Text output is a fixed-format table; JSON output is the
full solved plan.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDims(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Design, "design", "", "design name (default: all designs)")

	return cmd
}

func runDims(opts *DimsOptions, designsDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	loadResult, loadErrors := compiler.LoadDir(designsDir, compiler.LoadModeFailFast)
	if len(loadErrors) > 0 {
		return outputLoadError(formatter, loadErrors[0])
	}

	designs, err := selectDesigns(loadResult, opts.Design)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	result := DimsResult{}
	violated := false
	for i := range designs {
		plan, violations := layout.Solve(&designs[i])
		result.Plans = append(result.Plans, plan)
		if len(violations) > 0 {
			violated = true
			for _, v := range violations {
				formatter.VerboseLog("violation: %s", v.Error())
			}
		}
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		for i, plan := range result.Plans {
			if i > 0 {
				fmt.Fprintln(formatter.Writer)
			}
			fmt.Fprint(formatter.Writer, layout.Report(plan))
		}
	}

	// Dimensions are still reported for a violating design; the exit code
	// carries the failure.
	if violated {
		return NewExitError(ExitFailure, "one or more designs violate layout invariants")
	}
	return nil
}
