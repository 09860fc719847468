package layout

import (
	"fmt"
	"strings"
)

// Report renders the solved plan as a human-readable dimension table.
// The output is deterministic: fixed section order, fixed field order,
// millimetres to three decimals throughout. It backs both the `dims`
// command and the golden-file tests.
func Report(p *Plan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "design: %s\n", p.Design.Name)

	section(&b, "rack", []dim{
		{"slot_count", fmt.Sprintf("%d", p.Rack.SlotCount)},
		{"slot_width", mm(p.Rack.SlotWidth)},
		{"pitch", mm(p.Rack.Pitch)},
		{"slot_depth", mm(p.Rack.SlotDepth)},
		{"rib_width", mm(p.Rack.RibWidth)},
		{"rib_height", mm(p.Rack.RibHeight)},
		{"length", mm(p.Rack.Length)},
		{"depth", mm(p.Rack.Depth)},
		{"height", mm(p.Rack.Height)},
		{"slide_protrusion", mm(p.Rack.SlideProtrusion)},
	})

	boxDims := []dim{
		{"cavity_length", mm(p.Box.CavityLength)},
		{"cavity_width", mm(p.Box.CavityWidth)},
		{"cavity_depth", mm(p.Box.CavityDepth)},
		{"outer_length", mm(p.Box.OuterLength)},
		{"outer_width", mm(p.Box.OuterWidth)},
		{"outer_height", mm(p.Box.OuterHeight)},
		{"wall", mm(p.Box.Wall)},
		{"corner_round", mm(p.Box.CornerRound)},
	}
	if p.Box.Recess != nil {
		boxDims = append(boxDims,
			dim{"label_width", mm(p.Box.Recess.Width)},
			dim{"label_height", mm(p.Box.Recess.Height)},
			dim{"label_depth", mm(p.Box.Recess.Depth)},
		)
	}
	if p.Box.Bump != nil {
		boxDims = append(boxDims,
			dim{"bump_protrusion", mm(p.Box.Bump.Protrusion)},
			dim{"bump_center_z", mm(p.Box.Bump.CenterZ)},
		)
	}
	section(&b, "box", boxDims)

	lidDims := []dim{
		{"inner_length", mm(p.Lid.InnerLength)},
		{"inner_width", mm(p.Lid.InnerWidth)},
		{"outer_length", mm(p.Lid.OuterLength)},
		{"outer_width", mm(p.Lid.OuterWidth)},
		{"skirt_height", mm(p.Lid.SkirtHeight)},
		{"top_thickness", mm(p.Lid.TopThickness)},
		{"height", mm(p.Lid.Height)},
	}
	if p.Lid.Arm != nil {
		lidDims = append(lidDims,
			dim{"arm_width", mm(p.Lid.Arm.Width)},
			dim{"arm_length", mm(p.Lid.Arm.Length)},
			dim{"arm_bump", mm(p.Lid.Arm.BumpHeight)},
		)
	}
	if p.Lid.Handle != nil {
		lidDims = append(lidDims,
			dim{"handle_width", mm(p.Lid.Handle.Width)},
			dim{"handle_depth", mm(p.Lid.Handle.Depth)},
			dim{"handle_height", mm(p.Lid.Handle.Height)},
		)
	}
	section(&b, "lid", lidDims)

	section(&b, "holder", []dim{
		{"pocket_width", mm(p.Holder.PocketWidth)},
		{"pocket_length", mm(p.Holder.PocketLength)},
		{"pocket_depth", mm(p.Holder.PocketDepth)},
		{"outer_width", mm(p.Holder.OuterWidth)},
		{"outer_length", mm(p.Holder.OuterLength)},
		{"height", mm(p.Holder.Height)},
		{"rib_depth", mm(p.Holder.RibDepth)},
	})

	section(&b, "assembly", []dim{
		{"gap", mm(p.Assembly.Gap)},
		{"mock_slides", fmt.Sprintf("%d", len(p.Assembly.MockSlideSlots))},
	})

	return b.String()
}

type dim struct {
	name  string
	value string
}

func section(b *strings.Builder, name string, dims []dim) {
	fmt.Fprintf(b, "\n[%s]\n", name)
	for _, d := range dims {
		fmt.Fprintf(b, "  %-20s %s\n", d.name, d.value)
	}
}

func mm(v float64) string {
	return fmt.Sprintf("%.3f mm", v)
}
