// Package layout is the derived-dimension engine: pure formulas from a
// resolved parameter set to the dimensions of every sub-part, plus the
// dimensional invariant checks that keep the parts mutually consistent as
// top-level parameters vary.
//
// Axis convention throughout: X runs along the rack's slot axis, Y across the
// slide width, Z up. Parts are laid out centered in X/Y with their base at
// Z=0; the assembly translates them into place.
package layout

import (
	"github.com/yantra4d/hyperobject/internal/param"
)

// Rack holds the derived dimensions of the slide rack.
type Rack struct {
	SlotCount int     `json:"slot_count"`
	SlotWidth float64 `json:"slot_width"` // CDG slot width: thickness + 2*fit
	Pitch     float64 `json:"pitch"`      // slot center-to-center spacing
	SlotDepth float64 `json:"slot_depth"` // Y opening: slide width + 2*fit

	RibWidth  float64 `json:"rib_width"`
	RibHeight float64 `json:"rib_height"`

	Length         float64 `json:"length"` // X
	Depth          float64 `json:"depth"`  // Y
	Height         float64 `json:"height"` // Z
	FloorThickness float64 `json:"floor_thickness"`

	// SlideProtrusion is how far a seated slide stands proud of the ribs.
	SlideProtrusion float64 `json:"slide_protrusion"`
}

// SlotCenter returns the X offset of slot i measured from the rack's -X face.
func (r Rack) SlotCenter(i int) float64 {
	return r.RibWidth + r.SlotWidth/2 + float64(i)*r.Pitch
}

// LabelRecess describes a recessed label field on a box face.
type LabelRecess struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`

	// BothFaces places a recess on both long faces instead of the front only.
	BothFaces bool `json:"both_faces"`
}

// LatchBump describes the catch bump on the box outer wall.
type LatchBump struct {
	Width      float64 `json:"width"`      // X extent
	Protrusion float64 `json:"protrusion"` // Y, outward from the wall
	Extent     float64 `json:"extent"`     // Z extent
	CenterZ    float64 `json:"center_z"`   // from the box bottom
}

// Box holds the derived dimensions of the storage box base.
type Box struct {
	CavityLength float64 `json:"cavity_length"` // X
	CavityWidth  float64 `json:"cavity_width"`  // Y
	CavityDepth  float64 `json:"cavity_depth"`  // Z, interior

	OuterLength float64 `json:"outer_length"`
	OuterWidth  float64 `json:"outer_width"`
	OuterHeight float64 `json:"outer_height"`

	Wall        float64 `json:"wall"`
	CornerRound float64 `json:"corner_round"`

	Recess *LabelRecess `json:"recess,omitempty"` // nil when labels are off
	Bump   *LatchBump   `json:"bump,omitempty"`   // nil when the latch is off
}

// LatchArm describes a snap arm on the lid skirt.
type LatchArm struct {
	Width      float64 `json:"width"`
	Length     float64 `json:"length"`      // Z, down from the lid top plate
	BumpHeight float64 `json:"bump_height"` // snap engagement depth
}

// HandleBar describes the bar handle on the lid top.
type HandleBar struct {
	Width  float64 `json:"width"` // X
	Depth  float64 `json:"depth"` // Y
	Height float64 `json:"height"`
}

// Lid holds the derived dimensions of the box lid. The lid is modeled in use
// orientation: skirt opening down at Z=0, top plate uppermost.
type Lid struct {
	InnerLength float64 `json:"inner_length"`
	InnerWidth  float64 `json:"inner_width"`
	OuterLength float64 `json:"outer_length"`
	OuterWidth  float64 `json:"outer_width"`

	SkirtHeight  float64 `json:"skirt_height"`
	TopThickness float64 `json:"top_thickness"`
	Height       float64 `json:"height"`
	Wall         float64 `json:"wall"`

	Arm    *LatchArm  `json:"arm,omitempty"`    // nil when the latch is off
	Handle *HandleBar `json:"handle,omitempty"` // nil when the handle is off
}

// Holder holds the derived dimensions of the single-slide holder. The pocket
// shares the CDG slot width with the rack, so a slide fits both identically.
type Holder struct {
	PocketWidth  float64 `json:"pocket_width"`  // X: CDG slot width
	PocketLength float64 `json:"pocket_length"` // Y: slide width + 2*fit
	PocketDepth  float64 `json:"pocket_depth"`  // Z

	OuterWidth  float64 `json:"outer_width"`  // X
	OuterLength float64 `json:"outer_length"` // Y
	Height      float64 `json:"height"`

	FloorThickness float64 `json:"floor_thickness"`

	RibWidth  float64 `json:"rib_width"`  // Y extent of the retention rib
	RibDepth  float64 `json:"rib_depth"`  // X protrusion into the pocket
	RibHeight float64 `json:"rib_height"` // Z extent
	RibZ      float64 `json:"rib_z"`      // rib center above the holder base
}

// Offset is a rigid translation in millimetres.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Assembly holds the placements for the combined scene: open box with the
// rack inside, lid flipped top-down beside it, holder on the other side.
type Assembly struct {
	RackOffset   Offset `json:"rack_offset"`
	LidOffset    Offset `json:"lid_offset"`
	HolderOffset Offset `json:"holder_offset"`

	// LidFlipped rotates the lid 180 degrees about X so it rests on its top.
	LidFlipped bool `json:"lid_flipped"`

	// MockSlideSlots lists the rack slot indices populated with mock slides.
	MockSlideSlots []int `json:"mock_slide_slots"`

	// HolderSlide reports whether the holder pocket gets a mock slide.
	HolderSlide bool `json:"holder_slide"`

	Gap float64 `json:"gap"` // clear space between parts on the bench
}

// Plan is the fully solved layout: the design plus every derived dimension.
type Plan struct {
	Design param.Design `json:"design"`

	Rack     Rack     `json:"rack"`
	Box      Box      `json:"box"`
	Lid      Lid      `json:"lid"`
	Holder   Holder   `json:"holder"`
	Assembly Assembly `json:"assembly"`
}

// assemblyGap is the bench spacing between parts in the assembly scene.
const assemblyGap = 8.0

// latchBumpExtentFactor sets the bump's vertical extent from its engagement
// depth. The 2:1 ratio gives the snap a lead-in without a separate parameter.
const latchBumpExtentFactor = 2.0

// Solve computes every derived dimension from the design and checks the
// dimensional invariants. The returned plan is complete even when violations
// are reported, so callers can still inspect the offending dimensions.
func Solve(d *param.Design) (*Plan, []Violation) {
	p := &Plan{Design: *d}

	p.Rack = solveRack(d)
	p.Box = solveBox(d, p.Rack)
	p.Lid = solveLid(d, p.Box)
	p.Holder = solveHolder(d)
	p.Assembly = solveAssembly(d, p)

	return p, check(p)
}

func solveRack(d *param.Design) Rack {
	sw := d.Slide.Thickness + 2*d.Rack.FitClearance
	n := d.Rack.SlotCount
	ribH := d.Rack.RibHeightFrac * d.Slide.Height

	r := Rack{
		SlotCount:      n,
		SlotWidth:      sw,
		Pitch:          sw + d.Rack.RibWidth,
		SlotDepth:      d.Slide.Width + 2*d.Rack.FitClearance,
		RibWidth:       d.Rack.RibWidth,
		RibHeight:      ribH,
		FloorThickness: d.Rack.FloorThickness,
	}
	r.Length = float64(n)*sw + float64(n+1)*d.Rack.RibWidth
	r.Depth = r.SlotDepth + 2*d.Rack.RibWidth
	r.Height = d.Rack.FloorThickness + ribH
	r.SlideProtrusion = d.Slide.Height - ribH
	return r
}

func solveBox(d *param.Design, r Rack) Box {
	b := Box{
		CavityLength: r.Length + 2*d.Box.Clearance,
		CavityWidth:  r.Depth + 2*d.Box.Clearance,
		// A seated slide tops out at floor + slide height; headroom above.
		CavityDepth: r.FloorThickness + d.Slide.Height + d.Box.Headroom,
		Wall:        d.Box.Wall,
		CornerRound: d.Box.CornerRound,
	}
	b.OuterLength = b.CavityLength + 2*d.Box.Wall
	b.OuterWidth = b.CavityWidth + 2*d.Box.Wall
	b.OuterHeight = b.CavityDepth + d.Box.Wall

	if d.Features.Labels {
		b.Recess = &LabelRecess{
			Width:     b.OuterLength * (1 - 2*d.Label.MarginFrac),
			Height:    b.OuterHeight * (1 - 2*d.Label.MarginFrac),
			Depth:     d.Label.RecessDepth,
			BothFaces: d.Features.LabelsBothFaces,
		}
	}

	if d.Features.Latch {
		armLen := d.Latch.ArmLengthFrac * d.Lid.SkirtHeight
		extent := latchBumpExtentFactor * d.Latch.BumpHeight
		b.Bump = &LatchBump{
			Width:      d.Latch.ArmWidth,
			Protrusion: d.Latch.BumpHeight,
			Extent:     extent,
			// Just above the arm tip when the lid is seated.
			CenterZ: b.OuterHeight - armLen + extent/2,
		}
	}

	return b
}

func solveLid(d *param.Design, b Box) Lid {
	l := Lid{
		InnerLength:  b.OuterLength + 2*d.Lid.Clearance,
		InnerWidth:   b.OuterWidth + 2*d.Lid.Clearance,
		SkirtHeight:  d.Lid.SkirtHeight,
		TopThickness: d.Lid.TopThickness,
		Wall:         d.Box.Wall,
	}
	l.OuterLength = l.InnerLength + 2*l.Wall
	l.OuterWidth = l.InnerWidth + 2*l.Wall
	l.Height = l.SkirtHeight + l.TopThickness

	if d.Features.Latch {
		l.Arm = &LatchArm{
			Width:      d.Latch.ArmWidth,
			Length:     d.Latch.ArmLengthFrac * d.Lid.SkirtHeight,
			BumpHeight: d.Latch.BumpHeight,
		}
	}

	if d.Features.Handle {
		l.Handle = &HandleBar{
			Width:  d.Handle.Width,
			Depth:  d.Handle.Depth,
			Height: d.Handle.Height,
		}
	}

	return l
}

func solveHolder(d *param.Design) Holder {
	sw := d.Slide.Thickness + 2*d.Rack.FitClearance
	pocketDepth := d.Holder.PocketDepthFrac * d.Slide.Height

	h := Holder{
		PocketWidth:    sw,
		PocketLength:   d.Slide.Width + 2*d.Rack.FitClearance,
		PocketDepth:    pocketDepth,
		FloorThickness: d.Holder.Wall,
		RibDepth:       d.Holder.RibDepth,
	}
	h.OuterWidth = h.PocketWidth + 2*d.Holder.Wall
	h.OuterLength = h.PocketLength + 2*d.Holder.Wall
	h.Height = h.FloorThickness + pocketDepth

	// Retention rib: a gentle crush rib two thirds of the way up the pocket.
	h.RibWidth = 0.6 * h.PocketLength
	h.RibHeight = pocketDepth / 4
	h.RibZ = h.FloorThickness + (2.0/3.0)*pocketDepth

	return h
}

func solveAssembly(d *param.Design, p *Plan) Assembly {
	a := Assembly{
		RackOffset: Offset{Z: p.Box.Wall},
		LidOffset: Offset{
			X: p.Box.OuterLength/2 + assemblyGap + p.Lid.OuterLength/2,
			Z: p.Lid.Height,
		},
		HolderOffset: Offset{
			X: -(p.Box.OuterLength/2 + assemblyGap + p.Holder.OuterWidth/2),
		},
		LidFlipped: true,
		Gap:        assemblyGap,
	}

	if d.Features.MockSlides {
		// Every other slot, starting at the first: enough slides to read the
		// pitch without hiding the rib geometry.
		for i := 0; i < p.Rack.SlotCount; i += 2 {
			a.MockSlideSlots = append(a.MockSlideSlots, i)
		}
		a.HolderSlide = true
	}

	return a
}
