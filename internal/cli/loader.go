package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yantra4d/hyperobject/internal/compiler"
	"github.com/yantra4d/hyperobject/internal/param"
)

// CLI-only error codes, continuing the compiler's E0xx range.
const (
	ErrCodeWriteFailed   = "E010" // could not write an output file
	ErrCodeUnknownDesign = "E011" // --design names no loaded design
	ErrCodeUnknownPart   = "E012" // --part names no builder
	ErrCodeMeshFailed    = "E013" // SDF lowering or meshing failed
)

// outputLoadError reports a design-loading failure and converts it into a
// command-level exit error.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *compiler.LoadError
	if errors.As(err, &loadErr) {
		_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
		return WrapExitError(ExitCommandError, fmt.Sprintf("%s: %s", loadErr.Code, loadErr.Message), nil)
	}
	_ = formatter.Error(compiler.ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitCommandError, err.Error(), err)
}

// selectDesigns narrows the loaded designs to the --design flag. An empty
// name selects all designs.
func selectDesigns(result *compiler.LoadResult, name string) ([]param.Design, error) {
	if name == "" {
		return result.Designs, nil
	}
	if d, ok := result.Design(name); ok {
		return []param.Design{*d}, nil
	}
	known := make([]string, len(result.Designs))
	for i, d := range result.Designs {
		known[i] = d.Name
	}
	return nil, &compiler.LoadError{
		Code:    ErrCodeUnknownDesign,
		Message: fmt.Sprintf("unknown design %q, have: %s", name, strings.Join(known, ", ")),
	}
}
