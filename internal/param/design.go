// Package param defines the parameter model for the hyperobject slide-storage
// system: the top-level numeric and boolean knobs every design script may set,
// plus the defaults that make an empty design buildable.
//
// All dimensions are millimetres. Derived dimensions never live here; they are
// computed by the layout package on every evaluation.
package param

// Slide describes the substrate the whole system is sized around.
// The defaults are the AOCL standard: a 25.4 mm square microscope slide.
type Slide struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Thickness float64 `json:"thickness"`
}

// Rack parameters. Slot geometry is shared CDG: the slot width derived from
// Thickness+2*FitClearance is the physical interface every part agrees on.
type Rack struct {
	// SlotCount is the number of slide slots. Must be >= 1.
	SlotCount int `json:"slot_count"`

	// RibWidth is the width of the ribs separating slots. The two outer
	// ribs double as the rack's end walls.
	RibWidth float64 `json:"rib_width"`

	// RibHeightFrac is the rib height as a fraction of slide height,
	// strictly between 0 and 1 so slides protrude for grip.
	RibHeightFrac float64 `json:"rib_height_frac"`

	// FloorThickness is the slab under the slots.
	FloorThickness float64 `json:"floor_thickness"`

	// FitClearance is the per-side clearance between a slide face and the
	// slot wall.
	FitClearance float64 `json:"fit_clearance"`
}

// Box parameters for the storage box base.
type Box struct {
	Wall        float64 `json:"wall"`
	Clearance   float64 `json:"clearance"`
	Headroom    float64 `json:"headroom"`
	CornerRound float64 `json:"corner_round"`
}

// Lid parameters. The lid is an outside-skirt cap: its inner envelope wraps
// the box outer envelope plus Clearance.
type Lid struct {
	Clearance    float64 `json:"clearance"`
	SkirtHeight  float64 `json:"skirt_height"`
	TopThickness float64 `json:"top_thickness"`
}

// Holder parameters for the single-slide holder.
type Holder struct {
	Wall float64 `json:"wall"`

	// RibDepth is how far the retention rib protrudes into the pocket.
	RibDepth float64 `json:"rib_depth"`

	// PocketDepthFrac is the pocket depth as a fraction of slide height.
	PocketDepthFrac float64 `json:"pocket_depth_frac"`
}

// Label parameters for the recessed label fields on the box.
type Label struct {
	RecessDepth float64 `json:"recess_depth"`

	// MarginFrac is the margin on each side of the recess as a fraction of
	// the face dimension, strictly between 0 and 0.5.
	MarginFrac float64 `json:"margin_frac"`
}

// Handle parameters for the optional lid handle bar.
type Handle struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// Latch parameters for the snap-fit lid latch.
type Latch struct {
	ArmWidth float64 `json:"arm_width"`

	// ArmLengthFrac is the latch arm length as a fraction of skirt height.
	ArmLengthFrac float64 `json:"arm_length_frac"`

	// BumpHeight is the snap engagement depth.
	BumpHeight float64 `json:"bump_height"`
}

// Features toggles optional geometry on and off. A disabled feature removes
// its geometry and skips its invariants.
type Features struct {
	Latch           bool `json:"latch"`
	Labels          bool `json:"labels"`
	LabelsBothFaces bool `json:"labels_both_faces"`
	Handle          bool `json:"handle"`
	MockSlides      bool `json:"mock_slides"`
}

// Design is a complete parameter set. A Design plus the layout formulas fully
// determines every emitted solid.
type Design struct {
	Name string `json:"name"`

	Slide    Slide    `json:"slide"`
	Rack     Rack     `json:"rack"`
	Box      Box      `json:"box"`
	Lid      Lid      `json:"lid"`
	Holder   Holder   `json:"holder"`
	Label    Label    `json:"label"`
	Handle   Handle   `json:"handle"`
	Latch    Latch    `json:"latch"`
	Features Features `json:"features"`
}

// Default returns the baseline design: a 10-slot rack for AOCL slides with
// every feature enabled. Design scripts override individual fields.
func Default() Design {
	return Design{
		Name: "default",
		Slide: Slide{
			Width:     25.4,
			Height:    25.4,
			Thickness: 1.1,
		},
		Rack: Rack{
			SlotCount:      10,
			RibWidth:       2.0,
			RibHeightFrac:  0.6,
			FloorThickness: 2.4,
			FitClearance:   0.25,
		},
		Box: Box{
			Wall:        1.8,
			Clearance:   0.6,
			Headroom:    3.0,
			CornerRound: 1.2,
		},
		Lid: Lid{
			Clearance:    0.3,
			SkirtHeight:  10.0,
			TopThickness: 1.8,
		},
		Holder: Holder{
			Wall:            1.6,
			RibDepth:        0.3,
			PocketDepthFrac: 0.45,
		},
		Label: Label{
			RecessDepth: 0.6,
			MarginFrac:  0.12,
		},
		Handle: Handle{
			Width:  30.0,
			Depth:  8.0,
			Height: 6.0,
		},
		Latch: Latch{
			ArmWidth:      8.0,
			ArmLengthFrac: 0.7,
			BumpHeight:    0.8,
		},
		Features: Features{
			Latch:           true,
			Labels:          true,
			LabelsBothFaces: false,
			Handle:          true,
			MockSlides:      true,
		},
	}
}
