package compiler

import (
	"math"

	"github.com/yantra4d/hyperobject/internal/param"
	"github.com/yantra4d/hyperobject/internal/scene"
)

// ppm quantizes a dimensionless fraction to integer parts per million, the
// fraction analog of the scene package's micrometer quantization.
func ppm(f float64) int64 {
	return int64(math.Round(f * 1e6))
}

// DesignManifest converts a resolved design to its canonical map form:
// millimetre dimensions as integer micrometers, fractions as integer parts
// per million. This is the hashed identity of a parameter set, independent of
// any geometry built from it.
func DesignManifest(d *param.Design) map[string]any {
	return map[string]any{
		"name": d.Name,
		"slide": map[string]any{
			"width_um":     scene.UM(d.Slide.Width),
			"height_um":    scene.UM(d.Slide.Height),
			"thickness_um": scene.UM(d.Slide.Thickness),
		},
		"rack": map[string]any{
			"slot_count":         int64(d.Rack.SlotCount),
			"rib_width_um":       scene.UM(d.Rack.RibWidth),
			"rib_height_ppm":     ppm(d.Rack.RibHeightFrac),
			"floor_thickness_um": scene.UM(d.Rack.FloorThickness),
			"fit_clearance_um":   scene.UM(d.Rack.FitClearance),
		},
		"box": map[string]any{
			"wall_um":         scene.UM(d.Box.Wall),
			"clearance_um":    scene.UM(d.Box.Clearance),
			"headroom_um":     scene.UM(d.Box.Headroom),
			"corner_round_um": scene.UM(d.Box.CornerRound),
		},
		"lid": map[string]any{
			"clearance_um":     scene.UM(d.Lid.Clearance),
			"skirt_height_um":  scene.UM(d.Lid.SkirtHeight),
			"top_thickness_um": scene.UM(d.Lid.TopThickness),
		},
		"holder": map[string]any{
			"wall_um":          scene.UM(d.Holder.Wall),
			"rib_depth_um":     scene.UM(d.Holder.RibDepth),
			"pocket_depth_ppm": ppm(d.Holder.PocketDepthFrac),
		},
		"label": map[string]any{
			"recess_depth_um": scene.UM(d.Label.RecessDepth),
			"margin_ppm":      ppm(d.Label.MarginFrac),
		},
		"handle": map[string]any{
			"width_um":  scene.UM(d.Handle.Width),
			"depth_um":  scene.UM(d.Handle.Depth),
			"height_um": scene.UM(d.Handle.Height),
		},
		"latch": map[string]any{
			"arm_width_um":   scene.UM(d.Latch.ArmWidth),
			"arm_length_ppm": ppm(d.Latch.ArmLengthFrac),
			"bump_height_um": scene.UM(d.Latch.BumpHeight),
		},
		"features": map[string]any{
			"latch":             d.Features.Latch,
			"labels":            d.Features.Labels,
			"labels_both_faces": d.Features.LabelsBothFaces,
			"handle":            d.Features.Handle,
			"mock_slides":       d.Features.MockSlides,
		},
	}
}

// DesignFingerprint computes the content-addressed ID of a resolved design.
// Two designs fingerprint equal iff every parameter agrees to quantization
// precision, regardless of which script produced them.
func DesignFingerprint(d *param.Design) (string, error) {
	return scene.FingerprintDesign(DesignManifest(d))
}
