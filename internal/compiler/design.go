// Package compiler turns CUE design scripts into resolved parameter sets.
//
// A design script declares `design: <name>: {...}` structs whose fields
// override the defaults from the param package. Compilation is strict: a
// field the parameter model does not know is an error, with the CUE source
// position attached.
package compiler

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/yantra4d/hyperobject/internal/param"
)

// CompileDesign parses a CUE value into a param.Design.
// Uses the CUE SDK's Go API directly (not a CLI subprocess).
//
// The CUE value should be the design struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`design: travel: {rack: slot_count: 5}`)
//	d, err := CompileDesign(v.LookupPath(cue.ParsePath("design.travel")))
//
// Omitted fields take their defaults; present fields must be concrete.
func CompileDesign(v cue.Value) (*param.Design, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	d := param.Default()

	// Design name comes from the struct label.
	// The label may be quoted in CUE, e.g. design: "travel-5": {...}
	labels := v.Path().Selectors()
	if len(labels) > 0 {
		d.Name = strings.Trim(labels[len(labels)-1].String(), `"`)
	}

	sections := []struct {
		name  string
		parse func(cue.Value, *param.Design) error
	}{
		{"slide", parseSlide},
		{"rack", parseRack},
		{"box", parseBox},
		{"lid", parseLid},
		{"holder", parseHolder},
		{"label", parseLabel},
		{"handle", parseHandle},
		{"latch", parseLatch},
		{"features", parseFeatures},
	}

	known := map[string]bool{}
	for _, s := range sections {
		known[s.name] = true
	}

	// Reject unknown top-level sections before descending.
	iter, err := v.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		if !known[iter.Label()] {
			return nil, &CompileError{
				Field:   iter.Label(),
				Message: fmt.Sprintf("unknown design section %q", iter.Label()),
				Pos:     iter.Value().Pos(),
			}
		}
	}

	for _, s := range sections {
		sv := v.LookupPath(cue.ParsePath(s.name))
		if !sv.Exists() {
			continue
		}
		if err := s.parse(sv, &d); err != nil {
			return nil, err
		}
	}

	return &d, nil
}

// fieldParser binds a CUE field label to a destination in the design.
type fieldParser struct {
	label string
	parse func(cue.Value) error
}

// parseSection applies the given field parsers, rejecting unknown labels.
func parseSection(section string, v cue.Value, fields []fieldParser) error {
	known := map[string]func(cue.Value) error{}
	for _, f := range fields {
		known[f.label] = f.parse
	}

	iter, err := v.Fields()
	if err != nil {
		return formatCUEError(err)
	}
	for iter.Next() {
		parse, ok := known[iter.Label()]
		if !ok {
			return &CompileError{
				Field:   section + "." + iter.Label(),
				Message: fmt.Sprintf("unknown field %q in %s", iter.Label(), section),
				Pos:     iter.Value().Pos(),
			}
		}
		if err := parse(iter.Value()); err != nil {
			return err
		}
	}
	return nil
}

// floatField parses a concrete number into dst.
func floatField(section, label string, dst *float64) fieldParser {
	return fieldParser{label: label, parse: func(v cue.Value) error {
		f, err := v.Float64()
		if err != nil {
			return &CompileError{
				Field:   section + "." + label,
				Message: fmt.Sprintf("expected number: %v", err),
				Pos:     v.Pos(),
			}
		}
		*dst = f
		return nil
	}}
}

// intField parses a concrete integer into dst.
func intField(section, label string, dst *int) fieldParser {
	return fieldParser{label: label, parse: func(v cue.Value) error {
		n, err := v.Int64()
		if err != nil {
			return &CompileError{
				Field:   section + "." + label,
				Message: fmt.Sprintf("expected integer: %v", err),
				Pos:     v.Pos(),
			}
		}
		*dst = int(n)
		return nil
	}}
}

// boolField parses a concrete bool into dst.
func boolField(section, label string, dst *bool) fieldParser {
	return fieldParser{label: label, parse: func(v cue.Value) error {
		b, err := v.Bool()
		if err != nil {
			return &CompileError{
				Field:   section + "." + label,
				Message: fmt.Sprintf("expected bool: %v", err),
				Pos:     v.Pos(),
			}
		}
		*dst = b
		return nil
	}}
}

func parseSlide(v cue.Value, d *param.Design) error {
	return parseSection("slide", v, []fieldParser{
		floatField("slide", "width", &d.Slide.Width),
		floatField("slide", "height", &d.Slide.Height),
		floatField("slide", "thickness", &d.Slide.Thickness),
	})
}

func parseRack(v cue.Value, d *param.Design) error {
	return parseSection("rack", v, []fieldParser{
		intField("rack", "slot_count", &d.Rack.SlotCount),
		floatField("rack", "rib_width", &d.Rack.RibWidth),
		floatField("rack", "rib_height_frac", &d.Rack.RibHeightFrac),
		floatField("rack", "floor_thickness", &d.Rack.FloorThickness),
		floatField("rack", "fit_clearance", &d.Rack.FitClearance),
	})
}

func parseBox(v cue.Value, d *param.Design) error {
	return parseSection("box", v, []fieldParser{
		floatField("box", "wall", &d.Box.Wall),
		floatField("box", "clearance", &d.Box.Clearance),
		floatField("box", "headroom", &d.Box.Headroom),
		floatField("box", "corner_round", &d.Box.CornerRound),
	})
}

func parseLid(v cue.Value, d *param.Design) error {
	return parseSection("lid", v, []fieldParser{
		floatField("lid", "clearance", &d.Lid.Clearance),
		floatField("lid", "skirt_height", &d.Lid.SkirtHeight),
		floatField("lid", "top_thickness", &d.Lid.TopThickness),
	})
}

func parseHolder(v cue.Value, d *param.Design) error {
	return parseSection("holder", v, []fieldParser{
		floatField("holder", "wall", &d.Holder.Wall),
		floatField("holder", "rib_depth", &d.Holder.RibDepth),
		floatField("holder", "pocket_depth_frac", &d.Holder.PocketDepthFrac),
	})
}

func parseLabel(v cue.Value, d *param.Design) error {
	return parseSection("label", v, []fieldParser{
		floatField("label", "recess_depth", &d.Label.RecessDepth),
		floatField("label", "margin_frac", &d.Label.MarginFrac),
	})
}

func parseHandle(v cue.Value, d *param.Design) error {
	return parseSection("handle", v, []fieldParser{
		floatField("handle", "width", &d.Handle.Width),
		floatField("handle", "depth", &d.Handle.Depth),
		floatField("handle", "height", &d.Handle.Height),
	})
}

func parseLatch(v cue.Value, d *param.Design) error {
	return parseSection("latch", v, []fieldParser{
		floatField("latch", "arm_width", &d.Latch.ArmWidth),
		floatField("latch", "arm_length_frac", &d.Latch.ArmLengthFrac),
		floatField("latch", "bump_height", &d.Latch.BumpHeight),
	})
}

func parseFeatures(v cue.Value, d *param.Design) error {
	return parseSection("features", v, []fieldParser{
		boolField("features", "latch", &d.Features.Latch),
		boolField("features", "labels", &d.Features.Labels),
		boolField("features", "labels_both_faces", &d.Features.LabelsBothFaces),
		boolField("features", "handle", &d.Features.Handle),
		boolField("features", "mock_slides", &d.Features.MockSlides),
	})
}

// CompileError represents a compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
