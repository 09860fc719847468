package parts

import (
	"github.com/yantra4d/hyperobject/internal/layout"
	"github.com/yantra4d/hyperobject/internal/scene"
)

// Assembly builds the combined scene: the open box with the rack seated in
// its cavity, the lid flipped top-down beside it, the holder on the other
// side, and mock slides populating alternate rack slots plus the holder.
func Assembly(p *layout.Plan) scene.Node {
	a := p.Assembly

	// Rack plus its resident slides, placed together.
	rackGroup := []scene.Node{Rack(p)}
	for _, slot := range a.MockSlideSlots {
		x := p.Rack.SlotCenter(slot) - p.Rack.Length/2
		rackGroup = append(rackGroup, scene.At(MockSlide(p), x, 0, p.Rack.FloorThickness))
	}

	children := []scene.Node{
		BoxBase(p),
		scene.At(scene.NewUnion(rackGroup...), a.RackOffset.X, a.RackOffset.Y, a.RackOffset.Z),
	}

	lid := scene.Node(BoxLid(p))
	if a.LidFlipped {
		lid = &scene.RotateX{Degrees: 180, Child: lid}
	}
	children = append(children, scene.At(lid, a.LidOffset.X, a.LidOffset.Y, a.LidOffset.Z))

	holderGroup := []scene.Node{Holder(p)}
	if a.HolderSlide {
		holderGroup = append(holderGroup, scene.At(MockSlide(p), 0, 0, p.Holder.FloorThickness))
	}
	children = append(children, scene.At(scene.NewUnion(holderGroup...),
		a.HolderOffset.X, a.HolderOffset.Y, a.HolderOffset.Z))

	return &scene.Group{Name: "assembly", Child: &scene.Union{Children: children}}
}
