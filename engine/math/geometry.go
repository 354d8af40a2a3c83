package math

import "github.com/spaghettifunk/extramath/engine/core"

// GenerateFaceNormals returns one normal per vertex, taken from the last
// triangle that references it. Smoothing should be done in a separate pass if
// desired.
func GenerateFaceNormals[T Real](positions []Vector3[T], indices []uint32) []Vector3[T] {
	normals := make([]Vector3[T], len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		edge1 := positions[i1].Sub(positions[i0])
		edge2 := positions[i2].Sub(positions[i0])
		normal := edge1.Cross(edge2).Normalized()

		normals[i0] = normal
		normals[i1] = normal
		normals[i2] = normal
	}
	return normals
}

// GenerateTangents computes per-vertex tangents from texture coordinates. W
// holds the handedness of the bitangent (1 or -1).
func GenerateTangents[T Real](positions []Vector3[T], texcoords []Vector2[T], indices []uint32) []Vector4[T] {
	tangents := make([]Vector4[T], len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		edge1 := positions[i1].Sub(positions[i0])
		edge2 := positions[i2].Sub(positions[i0])

		deltaUV1 := texcoords[i1].Sub(texcoords[i0])
		deltaUV2 := texcoords[i2].Sub(texcoords[i0])

		fc := 1 / deltaUV1.Cross(deltaUV2)

		tangent := edge1.MulScalar(deltaUV2.Y).Sub(edge2.MulScalar(deltaUV1.Y)).MulScalar(fc).Normalized()

		var handedness T = 1
		if deltaUV1.Y*deltaUV2.X-deltaUV2.Y*deltaUV1.X < 0 {
			handedness = -1
		}

		t4 := tangent.ToVector4(handedness)
		tangents[i0] = t4
		tangents[i1] = t4
		tangents[i2] = t4
	}
	return tangents
}

// DeduplicatePoints merges points closer than tolerance on every axis and
// rewrites indices in place to point at the merged slice.
func DeduplicatePoints[T Real](points []Vector3[T], indices []uint32, tolerance T) []Vector3[T] {
	unique := make([]Vector3[T], 0, len(points))
	remap := make([]uint32, len(points))

	for v, p := range points {
		found := false
		for u, q := range unique {
			if p.Compare(q, tolerance) {
				remap[v] = uint32(u)
				found = true
				break
			}
		}
		if !found {
			remap[v] = uint32(len(unique))
			unique = append(unique, p)
		}
	}

	for i, idx := range indices {
		indices[i] = remap[idx]
	}

	core.LogDebug("DeduplicatePoints: removed %d points, orig/now %d/%d", len(points)-len(unique), len(points), len(unique))
	return unique
}

// BoundingBox returns the smallest box enclosing every point, or false for an
// empty slice.
func BoundingBox[T Real](points []Vector3[T]) (AABB[T], bool) {
	if len(points) == 0 {
		return AABB[T]{}, false
	}
	box := AABB[T]{Position: points[0]}
	for _, p := range points[1:] {
		box = box.Expand(p)
	}
	return box, true
}
