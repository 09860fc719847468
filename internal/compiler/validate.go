package compiler

import (
	"fmt"
	"strings"

	"github.com/yantra4d/hyperobject/internal/param"
)

// Validation error codes (E100-E199)
const (
	// General validation errors (E100)
	ErrUnsupportedType = "E100" // unsupported type for validation

	// Dimension errors (E101-E109)
	ErrNonPositiveDimension = "E101" // dimension must be > 0
	ErrNegativeClearance    = "E102" // clearance must be >= 0
	ErrSlotCountTooSmall    = "E103" // slot count must be >= 1
	ErrFractionOutOfRange   = "E104" // fraction must be inside its open interval
	ErrEmptyName            = "E105" // design name required
)

// ValidationError represents a parameter schema validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a resolved design against parameter-level schema rules:
// positivity, clearance signs, slot count, fraction ranges. Dimensional
// invariants between derived quantities are the layout package's job.
// Returns all errors found (does not fail-fast).
func Validate(v any) []ValidationError {
	switch d := v.(type) {
	case *param.Design:
		return validateDesign(d)
	case param.Design:
		return validateDesign(&d)
	default:
		return []ValidationError{{
			Field:   "type",
			Message: fmt.Sprintf("unsupported type: %T", v),
			Code:    ErrUnsupportedType,
		}}
	}
}

func validateDesign(d *param.Design) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "design name is required",
			Code:    ErrEmptyName,
		})
	}

	// E101: strictly positive dimensions
	positive := []struct {
		field string
		value float64
	}{
		{"slide.width", d.Slide.Width},
		{"slide.height", d.Slide.Height},
		{"slide.thickness", d.Slide.Thickness},
		{"rack.rib_width", d.Rack.RibWidth},
		{"rack.floor_thickness", d.Rack.FloorThickness},
		{"box.wall", d.Box.Wall},
		{"lid.skirt_height", d.Lid.SkirtHeight},
		{"lid.top_thickness", d.Lid.TopThickness},
		{"holder.wall", d.Holder.Wall},
		{"label.recess_depth", d.Label.RecessDepth},
		{"handle.width", d.Handle.Width},
		{"handle.depth", d.Handle.Depth},
		{"handle.height", d.Handle.Height},
		{"latch.arm_width", d.Latch.ArmWidth},
		{"latch.bump_height", d.Latch.BumpHeight},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, ValidationError{
				Field:   p.field,
				Message: fmt.Sprintf("must be > 0, got %g", p.value),
				Code:    ErrNonPositiveDimension,
			})
		}
	}

	// E102: clearances may be zero but never negative
	clearances := []struct {
		field string
		value float64
	}{
		{"rack.fit_clearance", d.Rack.FitClearance},
		{"box.clearance", d.Box.Clearance},
		{"box.headroom", d.Box.Headroom},
		{"box.corner_round", d.Box.CornerRound},
		{"lid.clearance", d.Lid.Clearance},
		{"holder.rib_depth", d.Holder.RibDepth},
	}
	for _, c := range clearances {
		if c.value < 0 {
			errs = append(errs, ValidationError{
				Field:   c.field,
				Message: fmt.Sprintf("must be >= 0, got %g", c.value),
				Code:    ErrNegativeClearance,
			})
		}
	}

	// E103: at least one slot
	if d.Rack.SlotCount < 1 {
		errs = append(errs, ValidationError{
			Field:   "rack.slot_count",
			Message: fmt.Sprintf("must be >= 1, got %d", d.Rack.SlotCount),
			Code:    ErrSlotCountTooSmall,
		})
	}

	// E104: open-interval fractions
	fractions := []struct {
		field string
		value float64
		lo    float64
		hi    float64
	}{
		{"rack.rib_height_frac", d.Rack.RibHeightFrac, 0, 1},
		{"holder.pocket_depth_frac", d.Holder.PocketDepthFrac, 0, 1},
		{"label.margin_frac", d.Label.MarginFrac, 0, 0.5},
		{"latch.arm_length_frac", d.Latch.ArmLengthFrac, 0, 1},
	}
	for _, f := range fractions {
		if f.value <= f.lo || f.value >= f.hi {
			errs = append(errs, ValidationError{
				Field:   f.field,
				Message: fmt.Sprintf("must be in (%g, %g), got %g", f.lo, f.hi, f.value),
				Code:    ErrFractionOutOfRange,
			})
		}
	}

	return errs
}
