package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometry_FaceNormals(t *testing.T) {
	positions := []Vector3[float32]{
		NewVector3[float32](0, 0, 0),
		NewVector3[float32](1, 0, 0),
		NewVector3[float32](0, 1, 0),
		NewVector3[float32](0, 0, 1),
	}
	// Two triangles sharing the edge 0-1: one in XY, one in XZ.
	indices := []uint32{0, 1, 2, 0, 3, 1}

	normals := GenerateFaceNormals(positions, indices)
	require.Len(t, normals, 4)
	assertVec3InDelta(t, NewVector3[float32](0, 0, 1), normals[2], 1e-6)
	assertVec3InDelta(t, NewVector3[float32](0, 1, 0), normals[3], 1e-6)
	assertVec3InDelta(t, NewVector3[float32](0, 1, 0), normals[0], 1e-6, "last triangle wins")
}

func TestGeometry_Tangents(t *testing.T) {
	positions := []Vector3[float64]{
		NewVector3(0.0, 0.0, 0.0),
		NewVector3(2.0, 0.0, 0.0),
		NewVector3(0.0, 2.0, 0.0),
	}
	texcoords := []Vector2[float64]{
		NewVector2(0.0, 0.0),
		NewVector2(1.0, 0.0),
		NewVector2(0.0, 1.0),
	}

	tangents := GenerateTangents(positions, texcoords, []uint32{0, 1, 2})
	require.Len(t, tangents, 3)
	for _, tg := range tangents {
		assertVec3InDelta(t, Vector3Right[float64](), tg.XYZ(), 1e-12)
		assert.Equal(t, -1.0, tg.W)
	}

	// Mirrored UVs flip the handedness.
	texcoords[1], texcoords[2] = NewVector2(0.0, 1.0), NewVector2(1.0, 0.0)
	tangents = GenerateTangents(positions, texcoords, []uint32{0, 1, 2})
	assert.Equal(t, 1.0, tangents[0].W)
}

func TestGeometry_DeduplicatePoints(t *testing.T) {
	points := []Vector3[float64]{
		NewVector3(0.0, 0.0, 0.0),
		NewVector3(1.0, 0.0, 0.0),
		NewVector3(0.0, 0.0, 1e-9),
		NewVector3(1.0, 0.0, 0.0),
		NewVector3(0.0, 1.0, 0.0),
	}
	indices := []uint32{0, 1, 2, 3, 4, 2}

	unique := DeduplicatePoints(points, indices, 1e-6)
	require.Len(t, unique, 3)
	require.Equal(t, []uint32{0, 1, 0, 1, 2, 0}, indices)
	for i, idx := range []uint32{0, 1, 2, 3, 4} {
		assertVec3InDelta(t, points[idx], unique[indices[i]], 1e-6)
	}
}

func TestGeometry_BoundingBox(t *testing.T) {
	_, ok := BoundingBox[float64](nil)
	assert.False(t, ok)

	box, ok := BoundingBox([]Vector3[float64]{
		NewVector3(1.0, 2.0, 3.0),
		NewVector3(-1.0, 5.0, 0.0),
		NewVector3(0.0, 0.0, 4.0),
	})
	require.True(t, ok)
	require.Equal(t, NewAABB(NewVector3(-1.0, 0.0, 0.0), NewVector3(2.0, 5.0, 4.0)), box)

	single, ok := BoundingBox([]Vector3[float64]{NewVector3(1.0, 1.0, 1.0)})
	require.True(t, ok)
	assert.True(t, single.HasNoSurface())
}
