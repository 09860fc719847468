package parts

import (
	"github.com/yantra4d/hyperobject/internal/layout"
	"github.com/yantra4d/hyperobject/internal/scene"
)

// BoxBase builds the storage box base: rounded shell, cavity cut from above,
// label recesses cut into the long faces, latch catch bumps fused onto the
// outer walls.
func BoxBase(p *layout.Plan) scene.Node {
	b := p.Box

	shell := bottomBox(b.OuterLength, b.OuterWidth, b.OuterHeight, b.CornerRound)

	cavityH := b.CavityDepth + cutOverrun
	cuts := []scene.Node{
		scene.At(
			&scene.Box{Size: scene.Vec{X: b.CavityLength, Y: b.CavityWidth, Z: cavityH}},
			0, 0, b.Wall+cavityH/2,
		),
	}

	if b.Recess != nil {
		cuts = append(cuts, labelRecessCut(b, -1))
		if b.Recess.BothFaces {
			cuts = append(cuts, labelRecessCut(b, +1))
		}
	}

	body := scene.Node(&scene.Difference{Base: shell, Cuts: cuts})

	if b.Bump != nil {
		body = scene.NewUnion(body, latchBump(b, -1), latchBump(b, +1))
	}

	return &scene.Group{Name: "box", Child: body}
}

// labelRecessCut returns the shallow label pocket on the given long face
// (side -1 is -Y, +1 is +Y). The cut overruns outward and penetrates exactly
// RecessDepth into the wall.
func labelRecessCut(b layout.Box, side float64) scene.Node {
	r := b.Recess
	depth := r.Depth + cutOverrun
	y := side * (b.OuterWidth/2 - r.Depth/2 + cutOverrun/2)
	return scene.At(
		&scene.Box{Size: scene.Vec{X: r.Width, Y: depth, Z: r.Height}},
		0, y, b.OuterHeight/2,
	)
}

// latchBump returns the catch bump on the given long face, embedded into the
// wall so the union is watertight.
func latchBump(b layout.Box, side float64) scene.Node {
	bump := b.Bump
	thickness := bump.Protrusion + fuseEmbed
	y := side * (b.OuterWidth/2 + (bump.Protrusion-fuseEmbed)/2)
	return scene.At(
		&scene.Box{Size: scene.Vec{X: bump.Width, Y: thickness, Z: bump.Extent}},
		0, y, bump.CenterZ,
	)
}
