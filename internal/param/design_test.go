package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTargetsAOCL(t *testing.T) {
	d := Default()

	// The whole system is sized around the 25.4 mm square substrate.
	assert.Equal(t, 25.4, d.Slide.Width)
	assert.Equal(t, 25.4, d.Slide.Height)
	assert.Greater(t, d.Slide.Thickness, 0.0)
}

func TestDefaultFeaturesEnabled(t *testing.T) {
	d := Default()

	assert.True(t, d.Features.Latch)
	assert.True(t, d.Features.Labels)
	assert.True(t, d.Features.Handle)
	assert.True(t, d.Features.MockSlides)
	assert.False(t, d.Features.LabelsBothFaces, "single label face by default")
}

func TestDefaultFractionsAreOpenInterval(t *testing.T) {
	d := Default()

	assert.Greater(t, d.Rack.RibHeightFrac, 0.0)
	assert.Less(t, d.Rack.RibHeightFrac, 1.0)
	assert.Greater(t, d.Holder.PocketDepthFrac, 0.0)
	assert.Less(t, d.Holder.PocketDepthFrac, 1.0)
	assert.Less(t, d.Label.MarginFrac, 0.5)
}

func TestDefaultLatchWindow(t *testing.T) {
	d := Default()

	// The default snap must engage: past the lid clearance, short of the
	// clearance plus skirt wall.
	assert.Greater(t, d.Latch.BumpHeight, d.Lid.Clearance)
	assert.Less(t, d.Latch.BumpHeight, d.Lid.Clearance+d.Box.Wall)
}
