package scene

import (
	"fmt"
	"math"
)

// Manifests quantize dimensions to integer micrometers and angles to integer
// millidegrees. Canonical JSON forbids floats; 1 um is three orders of
// magnitude below printable tolerance, so nothing observable is lost and
// golden files stay byte-stable across architectures.

// UM converts millimetres to micrometers, rounding to the nearest integer.
func UM(mm float64) int64 {
	return int64(math.Round(mm * 1000))
}

// MDeg converts degrees to millidegrees, rounding to the nearest integer.
func MDeg(deg float64) int64 {
	return int64(math.Round(deg * 1000))
}

// Manifest converts a CSG tree to its canonical map form.
func Manifest(n Node) (map[string]any, error) {
	switch t := n.(type) {
	case *Box:
		return map[string]any{
			"kind":     "box",
			"size_um":  []any{UM(t.Size.X), UM(t.Size.Y), UM(t.Size.Z)},
			"round_um": UM(t.Round),
		}, nil
	case *Cylinder:
		return map[string]any{
			"kind":      "cylinder",
			"height_um": UM(t.Height),
			"radius_um": UM(t.Radius),
			"round_um":  UM(t.Round),
		}, nil
	case *Union:
		children := make([]any, len(t.Children))
		for i, c := range t.Children {
			m, err := Manifest(c)
			if err != nil {
				return nil, fmt.Errorf("union[%d]: %w", i, err)
			}
			children[i] = m
		}
		return map[string]any{
			"kind":     "union",
			"children": children,
		}, nil
	case *Difference:
		base, err := Manifest(t.Base)
		if err != nil {
			return nil, fmt.Errorf("difference base: %w", err)
		}
		cuts := make([]any, len(t.Cuts))
		for i, c := range t.Cuts {
			m, err := Manifest(c)
			if err != nil {
				return nil, fmt.Errorf("difference cut[%d]: %w", i, err)
			}
			cuts[i] = m
		}
		return map[string]any{
			"kind": "difference",
			"base": base,
			"cuts": cuts,
		}, nil
	case *Translate:
		child, err := Manifest(t.Child)
		if err != nil {
			return nil, fmt.Errorf("translate: %w", err)
		}
		return map[string]any{
			"kind":      "translate",
			"offset_um": []any{UM(t.Offset.X), UM(t.Offset.Y), UM(t.Offset.Z)},
			"child":     child,
		}, nil
	case *RotateX:
		child, err := Manifest(t.Child)
		if err != nil {
			return nil, fmt.Errorf("rotate_x: %w", err)
		}
		return map[string]any{
			"kind":       "rotate_x",
			"angle_mdeg": MDeg(t.Degrees),
			"child":      child,
		}, nil
	case *RotateZ:
		child, err := Manifest(t.Child)
		if err != nil {
			return nil, fmt.Errorf("rotate_z: %w", err)
		}
		return map[string]any{
			"kind":       "rotate_z",
			"angle_mdeg": MDeg(t.Degrees),
			"child":      child,
		}, nil
	case *Group:
		child, err := Manifest(t.Child)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", t.Name, err)
		}
		return map[string]any{
			"kind":  "group",
			"name":  t.Name,
			"child": child,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported scene node: %T", n)
	}
}

// MarshalManifest produces the canonical JSON manifest for a CSG tree.
func MarshalManifest(n Node) ([]byte, error) {
	m, err := Manifest(n)
	if err != nil {
		return nil, err
	}
	return MarshalCanonical(m)
}
