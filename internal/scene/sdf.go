package scene

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
)

// ToSDF lowers a CSG tree to an sdfx signed distance field for meshing.
// The tree is evaluated bottom-up; transforms become 4x4 rigid transforms on
// the child field.
func ToSDF(n Node) (sdf.SDF3, error) {
	switch t := n.(type) {
	case *Box:
		s, err := sdf.Box3D(sdf.V3{X: t.Size.X, Y: t.Size.Y, Z: t.Size.Z}, t.Round)
		if err != nil {
			return nil, fmt.Errorf("box: %w", err)
		}
		return s, nil
	case *Cylinder:
		s, err := sdf.Cylinder3D(t.Height, t.Radius, t.Round)
		if err != nil {
			return nil, fmt.Errorf("cylinder: %w", err)
		}
		return s, nil
	case *Union:
		if len(t.Children) == 0 {
			return nil, fmt.Errorf("empty union")
		}
		fields := make([]sdf.SDF3, len(t.Children))
		for i, c := range t.Children {
			s, err := ToSDF(c)
			if err != nil {
				return nil, fmt.Errorf("union[%d]: %w", i, err)
			}
			fields[i] = s
		}
		return sdf.Union3D(fields...), nil
	case *Difference:
		base, err := ToSDF(t.Base)
		if err != nil {
			return nil, fmt.Errorf("difference base: %w", err)
		}
		for i, c := range t.Cuts {
			cut, err := ToSDF(c)
			if err != nil {
				return nil, fmt.Errorf("difference cut[%d]: %w", i, err)
			}
			base = sdf.Difference3D(base, cut)
		}
		return base, nil
	case *Translate:
		child, err := ToSDF(t.Child)
		if err != nil {
			return nil, err
		}
		m := sdf.Translate3d(sdf.V3{X: t.Offset.X, Y: t.Offset.Y, Z: t.Offset.Z})
		return sdf.Transform3D(child, m), nil
	case *RotateX:
		child, err := ToSDF(t.Child)
		if err != nil {
			return nil, err
		}
		return sdf.Transform3D(child, sdf.RotateX(sdf.DtoR(t.Degrees))), nil
	case *RotateZ:
		child, err := ToSDF(t.Child)
		if err != nil {
			return nil, err
		}
		return sdf.Transform3D(child, sdf.RotateZ(sdf.DtoR(t.Degrees))), nil
	case *Group:
		return ToSDF(t.Child)
	default:
		return nil, fmt.Errorf("unsupported scene node: %T", n)
	}
}
