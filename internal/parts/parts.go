// Package parts builds the solid for each part of the slide-storage system
// from a solved layout plan. Every builder is a pure function: same plan,
// same tree, same fingerprint.
package parts

import (
	"fmt"
	"sort"

	"github.com/yantra4d/hyperobject/internal/layout"
	"github.com/yantra4d/hyperobject/internal/scene"
)

// cutOverrun extends boolean cuts past the faces they open onto, so meshers
// never see a coincident surface.
const cutOverrun = 0.1

// fuseEmbed sinks added features this far into their host wall, so unions
// never leave a zero-thickness seam.
const fuseEmbed = 0.5

// Builder is a pure part constructor.
type Builder func(*layout.Plan) scene.Node

var builders = map[string]Builder{
	"rack":     Rack,
	"box":      BoxBase,
	"lid":      BoxLid,
	"holder":   Holder,
	"slide":    MockSlide,
	"assembly": Assembly,
}

// Names returns the buildable part names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named part from the plan.
func Build(name string, p *layout.Plan) (scene.Node, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown part %q", name)
	}
	return b(p), nil
}

// bottomBox is a box centered in X/Y with its base on Z=0.
func bottomBox(x, y, z, round float64) scene.Node {
	return scene.At(&scene.Box{Size: scene.Vec{X: x, Y: y, Z: z}, Round: round}, 0, 0, z/2)
}
