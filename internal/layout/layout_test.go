package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yantra4d/hyperobject/internal/param"
)

const eps = 1e-9

func solveDefault(t *testing.T) *Plan {
	t.Helper()
	d := param.Default()
	p, violations := Solve(&d)
	require.Empty(t, violations)
	return p
}

func TestSolveRackDefaults(t *testing.T) {
	p := solveDefault(t)

	// CDG slot width: 1.1 + 2*0.25.
	assert.InDelta(t, 1.6, p.Rack.SlotWidth, eps)
	assert.InDelta(t, 3.6, p.Rack.Pitch, eps)
	assert.InDelta(t, 25.9, p.Rack.SlotDepth, eps)

	// 10 slots, 11 ribs: 10*1.6 + 11*2.0.
	assert.InDelta(t, 38.0, p.Rack.Length, eps)
	assert.InDelta(t, 29.9, p.Rack.Depth, eps)

	assert.InDelta(t, 15.24, p.Rack.RibHeight, eps)
	assert.InDelta(t, 17.64, p.Rack.Height, eps)
	assert.InDelta(t, 10.16, p.Rack.SlideProtrusion, eps)
}

func TestSolveRackSingleSlot(t *testing.T) {
	d := param.Default()
	d.Rack.SlotCount = 1

	p, violations := Solve(&d)
	require.Empty(t, violations)

	// One slot, two end ribs.
	assert.InDelta(t, 1.6+2*2.0, p.Rack.Length, eps)
	assert.InDelta(t, p.Rack.RibWidth+p.Rack.SlotWidth/2, p.Rack.SlotCenter(0), eps)
}

func TestSlotCentersArePitchApart(t *testing.T) {
	p := solveDefault(t)

	for i := 1; i < p.Rack.SlotCount; i++ {
		assert.InDelta(t, p.Rack.Pitch, p.Rack.SlotCenter(i)-p.Rack.SlotCenter(i-1), eps)
	}
	// Last slot ends one rib width short of the rack end.
	last := p.Rack.SlotCenter(p.Rack.SlotCount-1) + p.Rack.SlotWidth/2
	assert.InDelta(t, p.Rack.Length-p.Rack.RibWidth, last, eps)
}

func TestSolveBoxDefaults(t *testing.T) {
	p := solveDefault(t)

	assert.InDelta(t, 39.2, p.Box.CavityLength, eps)
	assert.InDelta(t, 31.1, p.Box.CavityWidth, eps)
	// floor + slide height + headroom.
	assert.InDelta(t, 30.8, p.Box.CavityDepth, eps)

	assert.InDelta(t, 42.8, p.Box.OuterLength, eps)
	assert.InDelta(t, 34.7, p.Box.OuterWidth, eps)
	assert.InDelta(t, 32.6, p.Box.OuterHeight, eps)

	// A seated slide plus headroom always fits under the rim.
	assert.GreaterOrEqual(t, p.Box.CavityDepth+eps, p.Rack.Height+p.Rack.SlideProtrusion)
}

func TestSolveLidDefaults(t *testing.T) {
	p := solveDefault(t)

	assert.InDelta(t, 43.4, p.Lid.InnerLength, eps)
	assert.InDelta(t, 35.3, p.Lid.InnerWidth, eps)
	assert.InDelta(t, 47.0, p.Lid.OuterLength, eps)
	assert.InDelta(t, 38.9, p.Lid.OuterWidth, eps)
	assert.InDelta(t, 11.8, p.Lid.Height, eps)

	require.NotNil(t, p.Lid.Arm)
	assert.InDelta(t, 7.0, p.Lid.Arm.Length, eps)
	require.NotNil(t, p.Lid.Handle)
}

func TestSolveHolderSharesSlotWidth(t *testing.T) {
	p := solveDefault(t)

	// The holder pocket and the rack slots are the same interface.
	assert.InDelta(t, p.Rack.SlotWidth, p.Holder.PocketWidth, eps)
	assert.InDelta(t, p.Rack.SlotDepth, p.Holder.PocketLength, eps)

	assert.InDelta(t, 0.45*25.4, p.Holder.PocketDepth, eps)
	assert.InDelta(t, p.Holder.FloorThickness+p.Holder.PocketDepth, p.Holder.Height, eps)
	assert.InDelta(t, 0.6*p.Holder.PocketLength, p.Holder.RibWidth, eps)
	assert.Greater(t, p.Holder.RibZ, p.Holder.FloorThickness)
	assert.Less(t, p.Holder.RibZ, p.Holder.Height)
}

func TestSolveAssemblyPlacements(t *testing.T) {
	p := solveDefault(t)
	a := p.Assembly

	assert.InDelta(t, p.Box.Wall, a.RackOffset.Z, eps)
	assert.True(t, a.LidFlipped)
	// Flipped lid rests on its top plate; its origin ends up at lid height.
	assert.InDelta(t, p.Lid.Height, a.LidOffset.Z, eps)
	assert.Greater(t, a.LidOffset.X, p.Box.OuterLength/2)
	assert.Less(t, a.HolderOffset.X, -p.Box.OuterLength/2)

	// Every other slot starting at the first.
	assert.Equal(t, []int{0, 2, 4, 6, 8}, a.MockSlideSlots)
	assert.True(t, a.HolderSlide)
}

func TestSolveFeatureTogglesDropGeometry(t *testing.T) {
	d := param.Default()
	d.Features.Latch = false
	d.Features.Labels = false
	d.Features.Handle = false
	d.Features.MockSlides = false

	p, violations := Solve(&d)
	require.Empty(t, violations)

	assert.Nil(t, p.Box.Recess)
	assert.Nil(t, p.Box.Bump)
	assert.Nil(t, p.Lid.Arm)
	assert.Nil(t, p.Lid.Handle)
	assert.Empty(t, p.Assembly.MockSlideSlots)
	assert.False(t, p.Assembly.HolderSlide)
}

func TestSolveLatchBumpPlacement(t *testing.T) {
	p := solveDefault(t)

	require.NotNil(t, p.Box.Bump)
	assert.InDelta(t, 1.6, p.Box.Bump.Extent, eps)
	// Bump center sits at the seated arm tip plus half the extent.
	armLen := p.Lid.Arm.Length
	assert.InDelta(t, p.Box.OuterHeight-armLen+p.Box.Bump.Extent/2, p.Box.Bump.CenterZ, eps)
}

func TestViolationLatchOvertravel(t *testing.T) {
	d := param.Default()
	d.Latch.BumpHeight = 2.5 // past clearance + skirt wall

	_, violations := Solve(&d)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationLatchOvertravel, violations[0].Code)
	assert.Equal(t, "lid", violations[0].Part)
}

func TestViolationLatchNoEngagement(t *testing.T) {
	d := param.Default()
	d.Latch.BumpHeight = 0.2 // within the lid clearance

	_, violations := Solve(&d)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationLatchNoEngagement, violations[0].Code)
}

func TestViolationCavityUndersized(t *testing.T) {
	// compiler.Validate rejects negative headroom, but Solve called directly
	// must still surface the shallow cavity.
	d := param.Default()
	d.Box.Headroom = -5.0

	_, violations := Solve(&d)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationCavityUndersized, violations[0].Code)
	assert.Equal(t, "box", violations[0].Part)
}

func TestViolationLidInterference(t *testing.T) {
	// The lid inner envelope is derived from the box outer envelope, so the
	// check is exercised on a plan mutated after solving.
	d := param.Default()
	p, violations := Solve(&d)
	require.Empty(t, violations)

	p.Lid.InnerLength = p.Box.OuterLength - 1.0

	violations = check(p)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationLidInterference, violations[0].Code)
	assert.Equal(t, "lid", violations[0].Part)
}

func TestViolationRecessThroughWall(t *testing.T) {
	d := param.Default()
	d.Label.RecessDepth = d.Box.Wall

	_, violations := Solve(&d)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationRecessThroughWall, violations[0].Code)
}

func TestViolationRibTooTall(t *testing.T) {
	// compiler.Validate rejects frac >= 1, but Solve is defensive on its own
	// terms when called directly.
	d := param.Default()
	d.Rack.RibHeightFrac = 1.0

	_, violations := Solve(&d)
	require.NotEmpty(t, violations)
	assert.Equal(t, ViolationRibTooTall, violations[0].Code)
}

func TestViolationHandleOverhang(t *testing.T) {
	d := param.Default()
	d.Handle.Width = 100.0

	_, violations := Solve(&d)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationHandleOverhang, violations[0].Code)
}

func TestViolationRoundTooLarge(t *testing.T) {
	d := param.Default()
	d.Box.CornerRound = 20.0

	_, violations := Solve(&d)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationRoundTooLarge, violations[0].Code)
}

func TestDisabledFeatureSkipsItsInvariants(t *testing.T) {
	d := param.Default()
	d.Latch.BumpHeight = 2.5
	d.Features.Latch = false

	_, violations := Solve(&d)
	assert.Empty(t, violations)
}

func TestViolationErrorString(t *testing.T) {
	v := Violation{Code: ViolationRibTooTall, Part: "rack", Message: "too tall"}
	assert.Equal(t, "RIB_TOO_TALL: rack: too tall", v.Error())
}

func TestPlanIsCompleteDespiteViolations(t *testing.T) {
	d := param.Default()
	d.Latch.BumpHeight = 2.5

	p, violations := Solve(&d)
	require.NotEmpty(t, violations)
	// Callers still get the offending dimensions.
	assert.Greater(t, p.Box.OuterLength, 0.0)
	assert.NotNil(t, p.Lid.Arm)
}
