package parts

import (
	"github.com/yantra4d/hyperobject/internal/layout"
	"github.com/yantra4d/hyperobject/internal/scene"
)

// MockSlide builds a stand-in substrate: the bare AOCL footprint standing on
// edge, thickness along X, the way slides sit in the rack and holder.
func MockSlide(p *layout.Plan) scene.Node {
	s := p.Design.Slide
	return &scene.Group{
		Name:  "slide",
		Child: bottomBox(s.Thickness, s.Width, s.Height, 0),
	}
}
