package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitBox() AABB[float64] {
	return NewAABB(Vector3Zero[float64](), Vector3One[float64]())
}

func TestAABB_Intersects(t *testing.T) {
	box := unitBox()

	tests := []struct {
		name           string
		other          AABB[float64]
		includeBorders bool
		want           bool
	}{
		{"overlapping", NewAABB(NewVector3(0.5, 0.5, 0.5), Vector3One[float64]()), false, true},
		{"disjoint", NewAABB(NewVector3(2.0, 2.0, 2.0), Vector3One[float64]()), false, false},
		{"sharing a face", NewAABB(NewVector3(1.0, 0.0, 0.0), Vector3One[float64]()), false, false},
		{"sharing a face with borders", NewAABB(NewVector3(1.0, 0.0, 0.0), Vector3One[float64]()), true, true},
		{"disjoint with borders", NewAABB(NewVector3(2.0, 2.0, 2.0), Vector3One[float64]()), true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, box.Intersects(tt.other, tt.includeBorders))
			assert.Equal(t, tt.want, tt.other.Intersects(box, tt.includeBorders), "symmetric")
		})
	}
}

func TestAABB_Combine(t *testing.T) {
	box := unitBox()

	got, ok := box.Intersection(NewAABB(NewVector3(0.5, 0.5, 0.5), Vector3One[float64]()))
	require.True(t, ok)
	require.Equal(t, NewAABB(NewVector3(0.5, 0.5, 0.5), NewVector3(0.5, 0.5, 0.5)), got)

	_, ok = box.Intersection(NewAABB(NewVector3(2.0, 2.0, 2.0), Vector3One[float64]()))
	assert.False(t, ok)

	require.Equal(t, NewAABB(Vector3Zero[float64](), NewVector3(3.0, 3.0, 3.0)),
		box.Merge(NewAABB(NewVector3(2.0, 2.0, 2.0), Vector3One[float64]())))
	require.Equal(t, NewAABB(NewVector3(0.0, -1.0, 0.0), NewVector3(1.0, 2.0, 1.0)),
		box.Expand(NewVector3(0.5, -1.0, 0.5)))
	require.Equal(t, NewAABB(NewVector3(-1.0, -1.0, -1.0), NewVector3(3.0, 3.0, 3.0)), box.Grow(1))

	assert.True(t, box.Encloses(box))
	assert.True(t, box.Encloses(NewAABB(NewVector3(0.25, 0.25, 0.25), NewVector3(0.5, 0.5, 0.5))))
	assert.False(t, box.Encloses(box.Grow(0.1)))
}

func TestAABB_Shape(t *testing.T) {
	box := NewAABB(NewVector3(1.0, 1.0, 1.0), NewVector3(-1.0, -3.0, -2.0))
	abs := box.Abs()
	require.Equal(t, NewAABB(NewVector3(0.0, -2.0, -1.0), NewVector3(1.0, 3.0, 2.0)), abs)
	assert.True(t, box.HasNoVolume())
	assert.True(t, box.HasNoSurface())
	assert.False(t, abs.HasNoVolume())
	assert.Equal(t, 6.0, abs.Volume())
	require.Equal(t, NewVector3(0.5, -0.5, 0.0), abs.Center())

	axis, size := abs.LongestAxis()
	assert.Equal(t, AxisY, axis)
	assert.Equal(t, 3.0, size)
	axis, size = abs.ShortestAxis()
	assert.Equal(t, AxisX, axis)
	assert.Equal(t, 1.0, size)

	assert.True(t, unitBox().HasPoint(Vector3One[float64]()), "faces are inclusive")
	assert.False(t, unitBox().HasPoint(NewVector3(1.0, 1.1, 0.0)))
	assert.Equal(t, "(0, 0, 0) - (1, 1, 1)", unitBox().String())
}

func TestAABB_Corners(t *testing.T) {
	box := NewAABB(Vector3Zero[float64](), NewVector3(1.0, 2.0, 3.0))

	require.Equal(t, Vector3Zero[float64](), box.Endpoint(0))
	require.Equal(t, NewVector3(1.0, 0.0, 3.0), box.Endpoint(5))
	require.Equal(t, box.End(), box.Endpoint(7))
	require.Panics(t, func() { box.Endpoint(8) })

	require.Equal(t, NewVector3(1.0, 0.0, 3.0), box.Support(NewVector3(1.0, -1.0, 1.0)))
	require.Equal(t, Vector3Zero[float64](), box.Support(NewVector3(-1.0, -1.0, -1.0)))
}

func TestAABB_Planes(t *testing.T) {
	box := unitBox()
	assert.True(t, box.IntersectsPlane(NewPlane(0.0, 1.0, 0.0, 0.5)))
	assert.False(t, box.IntersectsPlane(NewPlane(0.0, 1.0, 0.0, 2.0)))
	assert.False(t, box.IntersectsPlane(NewPlane(0.0, 1.0, 0.0, -2.0)))
}

func TestAABB_IntersectsSegment(t *testing.T) {
	box := unitBox()

	t.Run("entering through -X", func(t *testing.T) {
		hit, normal, ok := box.IntersectsSegment(NewVector3(-1.0, 0.5, 0.5), NewVector3(2.0, 0.5, 0.5))
		require.True(t, ok)
		assertVec3InDelta(t, NewVector3(0.0, 0.5, 0.5), hit, 1e-12)
		require.Equal(t, NewVector3(-1.0, 0.0, 0.0), normal)
	})

	t.Run("entering through +Y", func(t *testing.T) {
		hit, normal, ok := box.IntersectsSegment(NewVector3(0.5, 3.0, 0.5), NewVector3(0.5, -3.0, 0.5))
		require.True(t, ok)
		assertVec3InDelta(t, NewVector3(0.5, 1.0, 0.5), hit, 1e-12)
		require.Equal(t, NewVector3(0.0, 1.0, 0.0), normal)
	})

	t.Run("miss", func(t *testing.T) {
		_, _, ok := box.IntersectsSegment(NewVector3(-1.0, 2.0, 0.5), NewVector3(2.0, 2.0, 0.5))
		assert.False(t, ok)
	})

	t.Run("too short", func(t *testing.T) {
		_, _, ok := box.IntersectsSegment(NewVector3(-3.0, 0.5, 0.5), NewVector3(-2.0, 0.5, 0.5))
		assert.False(t, ok)
	})
}
