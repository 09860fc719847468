// Package scene models emitted geometry as a CSG tree: primitives combined
// by boolean union/difference under rigid transforms. The tree has three
// consumers: the canonical manifest (deterministic JSON for fingerprints and
// golden files), the bounds walker, and the sdfx lowering for mesh export.
package scene

// Node is a sealed interface over the CSG node kinds. Only the types in this
// file implement it.
type Node interface {
	node()
}

// Vec is a point or extent in millimetres.
type Vec struct {
	X float64
	Y float64
	Z float64
}

// Box is a cuboid primitive centered at the origin. Round is the edge
// rounding radius; zero means sharp edges.
type Box struct {
	Size  Vec
	Round float64
}

func (*Box) node() {}

// Cylinder is a Z-axis cylinder primitive centered at the origin.
type Cylinder struct {
	Height float64
	Radius float64
	Round  float64
}

func (*Cylinder) node() {}

// Union combines children into one solid.
type Union struct {
	Children []Node
}

func (*Union) node() {}

// Difference subtracts every cut from the base, in order.
type Difference struct {
	Base Node
	Cuts []Node
}

func (*Difference) node() {}

// Translate rigidly offsets its child.
type Translate struct {
	Offset Vec
	Child  Node
}

func (*Translate) node() {}

// RotateX rotates its child about the X axis, degrees counter-clockwise.
type RotateX struct {
	Degrees float64
	Child   Node
}

func (*RotateX) node() {}

// RotateZ rotates its child about the Z axis, degrees counter-clockwise.
type RotateZ struct {
	Degrees float64
	Child   Node
}

func (*RotateZ) node() {}

// Group names a subtree. Groups carry no geometry of their own; they keep
// manifests legible and give parts stable addresses.
type Group struct {
	Name  string
	Child Node
}

func (*Group) node() {}

// NewUnion unions the given nodes, flattening the degenerate cases.
func NewUnion(children ...Node) Node {
	if len(children) == 1 {
		return children[0]
	}
	return &Union{Children: children}
}

// At translates n by (x, y, z).
func At(n Node, x, y, z float64) Node {
	if x == 0 && y == 0 && z == 0 {
		return n
	}
	return &Translate{Offset: Vec{X: x, Y: y, Z: z}, Child: n}
}
