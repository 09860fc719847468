package parts

import (
	"github.com/yantra4d/hyperobject/internal/layout"
	"github.com/yantra4d/hyperobject/internal/scene"
)

// Holder builds the single-slide holder: a pocket sharing the CDG slot width
// with the rack, plus a crush rib that grips the slide face.
func Holder(p *layout.Plan) scene.Node {
	h := p.Holder

	body := bottomBox(h.OuterWidth, h.OuterLength, h.Height, 0)
	pocketH := h.PocketDepth + cutOverrun
	pocket := scene.At(
		&scene.Box{Size: scene.Vec{X: h.PocketWidth, Y: h.PocketLength, Z: pocketH}},
		0, 0, h.FloorThickness+pocketH/2,
	)

	frame := scene.Node(&scene.Difference{Base: body, Cuts: []scene.Node{pocket}})

	if h.RibDepth > 0 {
		// Retention rib on the +X pocket wall, embedded for a clean fuse.
		thickness := h.RibDepth + fuseEmbed
		x := h.PocketWidth/2 + (fuseEmbed-h.RibDepth)/2
		rib := scene.At(
			&scene.Box{Size: scene.Vec{X: thickness, Y: h.RibWidth, Z: h.RibHeight}},
			x, 0, h.RibZ,
		)
		frame = scene.NewUnion(frame, rib)
	}

	return &scene.Group{Name: "holder", Child: frame}
}
