package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/yantra4d/hyperobject/internal/param"
)

// Load error codes (E001-E099)
const (
	ErrCodeGeneric     = "E000" // unclassified error
	ErrCodeNotFound    = "E001" // designs directory not found
	ErrCodeNoFiles     = "E002" // no CUE files in directory
	ErrCodeScanError   = "E003" // error walking directory
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeBuildFailed = "E005" // CUE build failed
	ErrCodeNoDesigns   = "E006" // no design structs found
)

// LoadMode controls how errors are handled during design loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// LoadResult contains the results of loading designs from a directory.
type LoadResult struct {
	Designs   []param.Design
	CUEValue  cue.Value // the raw CUE value for additional processing
	FileCount int       // number of CUE files found
}

// Design returns the named design, or the sole design when name is empty.
func (r *LoadResult) Design(name string) (*param.Design, bool) {
	if name == "" {
		if len(r.Designs) == 1 {
			return &r.Designs[0], true
		}
		return nil, false
	}
	for i := range r.Designs {
		if r.Designs[i].Name == name {
			return &r.Designs[i], true
		}
	}
	return nil, false
}

// LoadError represents an error that occurred during design loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadDir loads and compiles CUE design scripts from a directory.
// Every struct under the top-level `design` field becomes a param.Design.
// Designs are returned sorted by name so downstream output is deterministic.
//
// If mode is LoadModeFailFast, returns on first error.
// If mode is LoadModeCollectAll, collects all errors.
func LoadDir(dir string, mode LoadMode) (*LoadResult, []error) {
	var errs []error

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("designs directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing designs directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	cueFiles, err := FindCUEFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	result := &LoadResult{
		CUEValue:  value,
		FileCount: len(cueFiles),
	}

	designsVal := value.LookupPath(cue.ParsePath("design"))
	if designsVal.Exists() {
		iter, iterErr := designsVal.Fields()
		if iterErr != nil {
			errs = append(errs, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("iterating designs: %v", iterErr)})
			if mode == LoadModeFailFast {
				return result, errs
			}
		} else {
			for iter.Next() {
				d, compileErr := CompileDesign(iter.Value())
				if compileErr != nil {
					errs = append(errs, convertCompileError(compileErr, "design."+iter.Label()))
					if mode == LoadModeFailFast {
						return result, errs
					}
					continue
				}
				result.Designs = append(result.Designs, *d)
			}
		}
	}

	if len(result.Designs) == 0 && len(errs) == 0 {
		errs = append(errs, &LoadError{Code: ErrCodeNoDesigns, Message: "no designs found in scripts"})
	}

	sort.Slice(result.Designs, func(i, j int) bool {
		return result.Designs[i].Name < result.Designs[j].Name
	})

	return result, errs
}

// FindCUEFiles walks the directory and returns all .cue file paths.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			// CUE's loader ignores hidden and cue.mod directories; so do we.
			name := info.Name()
			if name != filepath.Base(dir) && (strings.HasPrefix(name, ".") || name == "cue.mod") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// convertCompileError attaches the design path to a compile error and wraps
// it as a LoadError so callers can dispatch on a single type.
func convertCompileError(err error, path string) error {
	if ce, ok := err.(*CompileError); ok {
		return &LoadError{
			Code:    ErrCodeBuildFailed,
			Message: fmt.Sprintf("%s: %s: %s", path, ce.Field, ce.Message),
			Pos:     ce.Pos,
		}
	}
	return &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("%s: %v", path, err)}
}
