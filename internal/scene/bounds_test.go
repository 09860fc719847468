package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestBoundsBox(t *testing.T) {
	b, err := Bounds(&Box{Size: Vec{X: 10, Y: 20, Z: 30}})
	require.NoError(t, err)

	assert.InDelta(t, -5, b.Min.X, eps)
	assert.InDelta(t, 15, b.Max.Z, eps)
	assert.InDelta(t, 10, b.SizeX(), eps)
	assert.InDelta(t, 20, b.SizeY(), eps)
	assert.InDelta(t, 30, b.SizeZ(), eps)
}

func TestBoundsCylinder(t *testing.T) {
	b, err := Bounds(&Cylinder{Height: 8, Radius: 3})
	require.NoError(t, err)

	assert.InDelta(t, 6, b.SizeX(), eps)
	assert.InDelta(t, 6, b.SizeY(), eps)
	assert.InDelta(t, 8, b.SizeZ(), eps)
}

func TestBoundsTranslate(t *testing.T) {
	n := At(&Box{Size: Vec{X: 2, Y: 2, Z: 2}}, 0, 0, 1)

	b, err := Bounds(n)
	require.NoError(t, err)
	assert.InDelta(t, 0, b.Min.Z, eps)
	assert.InDelta(t, 2, b.Max.Z, eps)
}

func TestBoundsUnionMerges(t *testing.T) {
	n := NewUnion(
		At(&Box{Size: Vec{X: 2, Y: 2, Z: 2}}, -5, 0, 0),
		At(&Box{Size: Vec{X: 2, Y: 2, Z: 2}}, 5, 0, 0),
	)

	b, err := Bounds(n)
	require.NoError(t, err)
	assert.InDelta(t, -6, b.Min.X, eps)
	assert.InDelta(t, 6, b.Max.X, eps)
	assert.InDelta(t, 12, b.SizeX(), eps)
}

func TestBoundsEmptyUnion(t *testing.T) {
	_, err := Bounds(&Union{})
	assert.Error(t, err)
}

func TestBoundsDifferenceIgnoresCuts(t *testing.T) {
	n := &Difference{
		Base: &Box{Size: Vec{X: 4, Y: 4, Z: 4}},
		Cuts: []Node{At(&Box{Size: Vec{X: 100, Y: 1, Z: 1}}, 0, 0, 0)},
	}

	b, err := Bounds(n)
	require.NoError(t, err)
	assert.InDelta(t, 4, b.SizeX(), eps)
}

func TestBoundsRotateX180(t *testing.T) {
	// A box sitting on Z=0 flips to hang below it.
	n := &RotateX{Degrees: 180, Child: At(&Box{Size: Vec{X: 2, Y: 2, Z: 6}}, 0, 0, 3)}

	b, err := Bounds(n)
	require.NoError(t, err)
	assert.InDelta(t, -6, b.Min.Z, eps)
	assert.InDelta(t, 0, b.Max.Z, eps)
}

func TestBoundsRotateZ90SwapsXY(t *testing.T) {
	n := &RotateZ{Degrees: 90, Child: &Box{Size: Vec{X: 10, Y: 4, Z: 2}}}

	b, err := Bounds(n)
	require.NoError(t, err)
	assert.InDelta(t, 4, b.SizeX(), eps)
	assert.InDelta(t, 10, b.SizeY(), eps)
	assert.InDelta(t, 2, b.SizeZ(), eps)
}

func TestBoundsGroupIsTransparent(t *testing.T) {
	inner := &Box{Size: Vec{X: 3, Y: 3, Z: 3}}
	gb, err := Bounds(&Group{Name: "g", Child: inner})
	require.NoError(t, err)
	ib, err := Bounds(inner)
	require.NoError(t, err)
	assert.Equal(t, ib, gb)
}
