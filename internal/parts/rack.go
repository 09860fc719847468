package parts

import (
	"github.com/yantra4d/hyperobject/internal/layout"
	"github.com/yantra4d/hyperobject/internal/scene"
)

// Rack builds the slotted slide rack: a solid body with one slot cut per
// slide. The outer ribs survive as end walls, the side walls as rib-width
// rails, which is why the slot cuts stop short of the body faces.
func Rack(p *layout.Plan) scene.Node {
	r := p.Rack

	body := bottomBox(r.Length, r.Depth, r.Height, 0)

	cutH := r.RibHeight + cutOverrun
	cuts := make([]scene.Node, 0, r.SlotCount)
	for i := 0; i < r.SlotCount; i++ {
		x := r.SlotCenter(i) - r.Length/2
		cut := scene.At(
			&scene.Box{Size: scene.Vec{X: r.SlotWidth, Y: r.SlotDepth, Z: cutH}},
			x, 0, r.FloorThickness+cutH/2,
		)
		cuts = append(cuts, cut)
	}

	return &scene.Group{
		Name:  "rack",
		Child: &scene.Difference{Base: body, Cuts: cuts},
	}
}
