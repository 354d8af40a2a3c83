package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlane_FromPoints(t *testing.T) {
	a, b, c := Vector3Zero[float64](), NewVector3(1.0, 0.0, 0.0), NewVector3(0.0, 0.0, 1.0)

	up := NewPlaneFromPoints(a, b, c, true)
	assertVec3InDelta(t, Vector3Up[float64](), up.Normal, 1e-12)
	assert.InDelta(t, 0, up.D, 1e-12)

	down := NewPlaneFromPoints(a, b, c, false)
	assertVec3InDelta(t, Vector3Down[float64](), down.Normal, 1e-12)

	raised := NewPlaneFromNormalPoint(Vector3Up[float64](), NewVector3(7.0, 3.0, -2.0))
	assert.Equal(t, 3.0, raised.D)
	require.Equal(t, NewVector3(0.0, 3.0, 0.0), raised.Center())
}

func TestPlane_Distance(t *testing.T) {
	ground := NewPlane(0.0, 1.0, 0.0, 1.0)
	p := NewVector3(3.0, 5.0, -1.0)

	assert.Equal(t, 4.0, ground.DistanceTo(p))
	assert.Equal(t, -4.0, ground.Neg().DistanceTo(p))
	assert.True(t, ground.IsPointOver(p))
	assert.False(t, ground.IsPointOver(NewVector3(0.0, 0.0, 0.0)))
	assert.True(t, ground.HasPoint(NewVector3(9.0, 1.0, 9.0), 1e-9))
	require.Equal(t, NewVector3(3.0, 1.0, -1.0), ground.Project(p))
}

func TestPlane_Normalized(t *testing.T) {
	p := NewPlane(0.0, 2.0, 0.0, 4.0).Normalized()
	require.Equal(t, NewPlane(0.0, 1.0, 0.0, 2.0), p)
	require.Equal(t, Plane[float64]{}, NewPlane(0.0, 0.0, 0.0, 4.0).Normalized())
	assert.True(t, p.IsEqualApprox(NewPlane(0.0, 1.0, 0.0, 2.0)))
}

func TestPlane_Intersect3(t *testing.T) {
	x := NewPlane(1.0, 0.0, 0.0, 1.0)
	y := NewPlane(0.0, 1.0, 0.0, 2.0)
	z := NewPlane(0.0, 0.0, 1.0, 3.0)

	got, ok := x.Intersect3(y, z)
	require.True(t, ok)
	assertVec3InDelta(t, NewVector3(1.0, 2.0, 3.0), got, 1e-12)

	_, ok = x.Intersect3(NewPlane(1.0, 0.0, 0.0, 2.0), z)
	assert.False(t, ok, "parallel planes have no single common point")
}

func TestPlane_IntersectRay(t *testing.T) {
	ground := NewPlane(0.0, 1.0, 0.0, 0.0)
	from := NewVector3(2.0, 5.0, 0.0)

	hit, ok := ground.IntersectRay(from, Vector3Down[float64]())
	require.True(t, ok)
	assertVec3InDelta(t, NewVector3(2.0, 0.0, 0.0), hit, 1e-12)

	_, ok = ground.IntersectRay(from, Vector3Up[float64]())
	assert.False(t, ok, "pointing away")

	_, ok = ground.IntersectRay(from, Vector3Right[float64]())
	assert.False(t, ok, "parallel")
}

func TestPlane_IntersectSegment(t *testing.T) {
	ground := NewPlane(0.0, 1.0, 0.0, 0.0)

	hit, ok := ground.IntersectSegment(NewVector3(1.0, 2.0, 0.0), NewVector3(1.0, -2.0, 0.0))
	require.True(t, ok)
	assertVec3InDelta(t, NewVector3(1.0, 0.0, 0.0), hit, 1e-12)

	_, ok = ground.IntersectSegment(NewVector3(1.0, 2.0, 0.0), NewVector3(1.0, 1.0, 0.0))
	assert.False(t, ok, "segment stops short")

	_, ok = ground.IntersectSegment(NewVector3(0.0, 1.0, 0.0), NewVector3(5.0, 1.0, 0.0))
	assert.False(t, ok, "parallel")
}
