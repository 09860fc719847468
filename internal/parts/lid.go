package parts

import (
	"github.com/yantra4d/hyperobject/internal/layout"
	"github.com/yantra4d/hyperobject/internal/scene"
)

// BoxLid builds the lid in use orientation: skirt opening down at Z=0, top
// plate uppermost. Latch arms are grip pads on the skirt exterior paired with
// snap bumps on the skirt interior; the handle bar sits on the top plate.
func BoxLid(p *layout.Plan) scene.Node {
	l := p.Lid

	outer := bottomBox(l.OuterLength, l.OuterWidth, l.Height, 0)
	cavityH := l.SkirtHeight + cutOverrun
	cavity := scene.At(
		&scene.Box{Size: scene.Vec{X: l.InnerLength, Y: l.InnerWidth, Z: cavityH}},
		0, 0, (l.SkirtHeight-cutOverrun)/2,
	)

	body := scene.Node(&scene.Difference{Base: outer, Cuts: []scene.Node{cavity}})

	var extras []scene.Node
	if l.Arm != nil {
		extras = append(extras,
			latchArmPad(l, -1), latchArmPad(l, +1),
			latchArmBump(l, -1), latchArmBump(l, +1),
		)
	}
	if l.Handle != nil {
		h := l.Handle
		extras = append(extras, scene.At(
			&scene.Box{Size: scene.Vec{X: h.Width, Y: h.Depth, Z: h.Height + fuseEmbed}},
			0, 0, l.Height+(h.Height-fuseEmbed)/2,
		))
	}

	if len(extras) > 0 {
		body = scene.NewUnion(append([]scene.Node{body}, extras...)...)
	}

	return &scene.Group{Name: "lid", Child: body}
}

// latchArmPad is the thumb pad proud of the skirt exterior over the arm
// region, so the user can flex the arm to release the snap.
func latchArmPad(l layout.Lid, side float64) scene.Node {
	arm := l.Arm
	thickness := l.Wall + fuseEmbed
	y := side * (l.OuterWidth/2 + (l.Wall-fuseEmbed)/2)
	return scene.At(
		&scene.Box{Size: scene.Vec{X: arm.Width, Y: thickness, Z: arm.Length}},
		0, y, arm.Length/2,
	)
}

// latchArmBump is the snap bump on the skirt interior. Its center matches
// the box catch bump when the lid is seated: the skirt bottom sits at box
// height minus skirt height, so box CenterZ maps to skirt Z minus that base.
func latchArmBump(l layout.Lid, side float64) scene.Node {
	arm := l.Arm
	extent := 2 * arm.BumpHeight
	thickness := arm.BumpHeight + fuseEmbed
	y := side * (l.InnerWidth/2 + (fuseEmbed-arm.BumpHeight)/2)
	z := l.SkirtHeight - arm.Length + extent/2
	return scene.At(
		&scene.Box{Size: scene.Vec{X: arm.Width, Y: thickness, Z: extent}},
		0, y, z,
	)
}
