package scene

import (
	"fmt"
	"math"
)

// AABB is an axis-aligned bounding box in millimetres.
type AABB struct {
	Min Vec
	Max Vec
}

// SizeX returns the X extent.
func (b AABB) SizeX() float64 { return b.Max.X - b.Min.X }

// SizeY returns the Y extent.
func (b AABB) SizeY() float64 { return b.Max.Y - b.Min.Y }

// SizeZ returns the Z extent.
func (b AABB) SizeZ() float64 { return b.Max.Z - b.Min.Z }

// Bounds computes a conservative axis-aligned bounding box of the tree.
// Difference cuts are ignored (a cut can only shrink the solid), so the
// result is exact for union/transform trees and an upper bound otherwise.
func Bounds(n Node) (AABB, error) {
	switch t := n.(type) {
	case *Box:
		h := Vec{X: t.Size.X / 2, Y: t.Size.Y / 2, Z: t.Size.Z / 2}
		return AABB{Min: Vec{-h.X, -h.Y, -h.Z}, Max: h}, nil
	case *Cylinder:
		return AABB{
			Min: Vec{-t.Radius, -t.Radius, -t.Height / 2},
			Max: Vec{t.Radius, t.Radius, t.Height / 2},
		}, nil
	case *Union:
		if len(t.Children) == 0 {
			return AABB{}, fmt.Errorf("empty union has no bounds")
		}
		out, err := Bounds(t.Children[0])
		if err != nil {
			return AABB{}, err
		}
		for _, c := range t.Children[1:] {
			b, err := Bounds(c)
			if err != nil {
				return AABB{}, err
			}
			out = merge(out, b)
		}
		return out, nil
	case *Difference:
		return Bounds(t.Base)
	case *Translate:
		b, err := Bounds(t.Child)
		if err != nil {
			return AABB{}, err
		}
		b.Min = Vec{b.Min.X + t.Offset.X, b.Min.Y + t.Offset.Y, b.Min.Z + t.Offset.Z}
		b.Max = Vec{b.Max.X + t.Offset.X, b.Max.Y + t.Offset.Y, b.Max.Z + t.Offset.Z}
		return b, nil
	case *RotateX:
		b, err := Bounds(t.Child)
		if err != nil {
			return AABB{}, err
		}
		return rotateBounds(b, t.Degrees, rotX), nil
	case *RotateZ:
		b, err := Bounds(t.Child)
		if err != nil {
			return AABB{}, err
		}
		return rotateBounds(b, t.Degrees, rotZ), nil
	case *Group:
		return Bounds(t.Child)
	default:
		return AABB{}, fmt.Errorf("unsupported scene node: %T", n)
	}
}

func merge(a, b AABB) AABB {
	return AABB{
		Min: Vec{math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)},
		Max: Vec{math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)},
	}
}

func rotX(v Vec, s, c float64) Vec {
	return Vec{X: v.X, Y: c*v.Y - s*v.Z, Z: s*v.Y + c*v.Z}
}

func rotZ(v Vec, s, c float64) Vec {
	return Vec{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y, Z: v.Z}
}

// rotateBounds rotates all eight corners and re-boxes them.
func rotateBounds(b AABB, degrees float64, rot func(Vec, float64, float64) Vec) AABB {
	rad := degrees * math.Pi / 180
	s, c := math.Sin(rad), math.Cos(rad)

	corners := []Vec{
		{b.Min.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
	}

	first := rot(corners[0], s, c)
	out := AABB{Min: first, Max: first}
	for _, corner := range corners[1:] {
		p := rot(corner, s, c)
		out = merge(out, AABB{Min: p, Max: p})
	}
	return out
}
