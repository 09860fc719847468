package layout

import (
	"fmt"
	"math"
)

// Violation represents a dimensional invariant broken by a solved plan.
//
// Violations are between derived quantities; parameter-level range errors are
// caught earlier by compiler.Validate. A disabled feature skips its
// invariants entirely.
type Violation struct {
	// Code identifies the invariant.
	Code ViolationCode `json:"code"`

	// Part names the affected part ("rack", "box", "lid", "holder").
	Part string `json:"part"`

	// Message is a human-readable description with the offending numbers.
	Message string `json:"message"`
}

// ViolationCode categorizes dimensional invariant violations.
type ViolationCode string

const (
	// ViolationCavityUndersized indicates the box cavity cannot hold the
	// rack plus clearance on some axis.
	ViolationCavityUndersized ViolationCode = "CAVITY_UNDERSIZED"

	// ViolationLidInterference indicates the lid inner envelope does not
	// clear the box outer envelope.
	ViolationLidInterference ViolationCode = "LID_INTERFERENCE"

	// ViolationRecessThroughWall indicates the label recess is as deep as
	// the box wall or deeper.
	ViolationRecessThroughWall ViolationCode = "RECESS_THROUGH_WALL"

	// ViolationLatchOvertravel indicates the latch arm is longer than the
	// skirt, or the bump too deep to ever seat.
	ViolationLatchOvertravel ViolationCode = "LATCH_OVERTRAVEL"

	// ViolationLatchNoEngagement indicates the bump does not protrude past
	// the lid clearance, so the snap never engages.
	ViolationLatchNoEngagement ViolationCode = "LATCH_NO_ENGAGEMENT"

	// ViolationRibTooTall indicates the rack ribs reach or exceed the slide
	// height, leaving nothing to grip.
	ViolationRibTooTall ViolationCode = "RIB_TOO_TALL"

	// ViolationHandleOverhang indicates the handle bar is wider than the
	// lid top it sits on.
	ViolationHandleOverhang ViolationCode = "HANDLE_OVERHANG"

	// ViolationRoundTooLarge indicates the corner round exceeds half the
	// smallest box outer dimension.
	ViolationRoundTooLarge ViolationCode = "ROUND_TOO_LARGE"
)

// Error implements the error interface.
func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s: %s", v.Code, v.Part, v.Message)
}

// dimEps absorbs float64 noise when comparing derived dimensions. One
// nanometre is far below any quantity the formulas can legitimately produce.
const dimEps = 1e-6

// check verifies the dimensional invariants of a solved plan.
// Returns all violations found (does not fail-fast).
func check(p *Plan) []Violation {
	var out []Violation

	// Rib height must leave protrusion for grip.
	if p.Rack.SlideProtrusion <= dimEps {
		out = append(out, Violation{
			Code: ViolationRibTooTall,
			Part: "rack",
			Message: fmt.Sprintf("rib height %.3f leaves no slide protrusion (slide height %.3f)",
				p.Rack.RibHeight, p.Design.Slide.Height),
		})
	}

	// Cavity must hold the rack plus clearance on every horizontal axis,
	// and the full slide protrusion plus headroom vertically. Structural
	// given the formulas; still checked so degenerate inputs surface here.
	if p.Box.CavityLength+dimEps < p.Rack.Length+2*p.Design.Box.Clearance ||
		p.Box.CavityWidth+dimEps < p.Rack.Depth+2*p.Design.Box.Clearance {
		out = append(out, Violation{
			Code: ViolationCavityUndersized,
			Part: "box",
			Message: fmt.Sprintf("cavity %.3f x %.3f cannot hold rack %.3f x %.3f with %.3f clearance",
				p.Box.CavityLength, p.Box.CavityWidth, p.Rack.Length, p.Rack.Depth, p.Design.Box.Clearance),
		})
	}
	if p.Box.CavityDepth+dimEps < p.Rack.Height+p.Rack.SlideProtrusion {
		out = append(out, Violation{
			Code: ViolationCavityUndersized,
			Part: "box",
			Message: fmt.Sprintf("cavity depth %.3f cannot hold rack %.3f with seated slides protruding %.3f",
				p.Box.CavityDepth, p.Rack.Height, p.Rack.SlideProtrusion),
		})
	}

	// Lid inner envelope must clear the box outer envelope.
	if p.Lid.InnerLength+dimEps < p.Box.OuterLength+2*p.Design.Lid.Clearance ||
		p.Lid.InnerWidth+dimEps < p.Box.OuterWidth+2*p.Design.Lid.Clearance {
		out = append(out, Violation{
			Code: ViolationLidInterference,
			Part: "lid",
			Message: fmt.Sprintf("lid inner %.3f x %.3f does not clear box outer %.3f x %.3f with %.3f clearance",
				p.Lid.InnerLength, p.Lid.InnerWidth, p.Box.OuterLength, p.Box.OuterWidth, p.Design.Lid.Clearance),
		})
	}

	if p.Box.Recess != nil && p.Box.Recess.Depth >= p.Box.Wall-dimEps {
		out = append(out, Violation{
			Code: ViolationRecessThroughWall,
			Part: "box",
			Message: fmt.Sprintf("label recess depth %.3f breaches wall %.3f",
				p.Box.Recess.Depth, p.Box.Wall),
		})
	}

	if p.Lid.Arm != nil {
		if p.Lid.Arm.Length > p.Lid.SkirtHeight+dimEps {
			out = append(out, Violation{
				Code: ViolationLatchOvertravel,
				Part: "lid",
				Message: fmt.Sprintf("latch arm %.3f exceeds skirt height %.3f",
					p.Lid.Arm.Length, p.Lid.SkirtHeight),
			})
		}
		// Engagement window: the bump must reach past the fit clearance but
		// stop short of the skirt wall, or the lid can never seat.
		if p.Lid.Arm.BumpHeight <= p.Design.Lid.Clearance+dimEps {
			out = append(out, Violation{
				Code: ViolationLatchNoEngagement,
				Part: "lid",
				Message: fmt.Sprintf("bump height %.3f does not reach past lid clearance %.3f",
					p.Lid.Arm.BumpHeight, p.Design.Lid.Clearance),
			})
		}
		if p.Lid.Arm.BumpHeight >= p.Design.Lid.Clearance+p.Lid.Wall-dimEps {
			out = append(out, Violation{
				Code: ViolationLatchOvertravel,
				Part: "lid",
				Message: fmt.Sprintf("bump height %.3f exceeds clearance %.3f plus skirt wall %.3f",
					p.Lid.Arm.BumpHeight, p.Design.Lid.Clearance, p.Lid.Wall),
			})
		}
	}

	if p.Lid.Handle != nil {
		if p.Lid.Handle.Width > p.Lid.OuterLength-dimEps ||
			p.Lid.Handle.Depth > p.Lid.OuterWidth-dimEps {
			out = append(out, Violation{
				Code: ViolationHandleOverhang,
				Part: "lid",
				Message: fmt.Sprintf("handle %.3f x %.3f overhangs lid top %.3f x %.3f",
					p.Lid.Handle.Width, p.Lid.Handle.Depth, p.Lid.OuterLength, p.Lid.OuterWidth),
			})
		}
	}

	if minDim := math.Min(p.Box.OuterLength, math.Min(p.Box.OuterWidth, p.Box.OuterHeight)); p.Box.CornerRound > minDim/2-dimEps {
		out = append(out, Violation{
			Code: ViolationRoundTooLarge,
			Part: "box",
			Message: fmt.Sprintf("corner round %.3f exceeds half the smallest outer dimension %.3f",
				p.Box.CornerRound, minDim),
		})
	}

	return out
}
