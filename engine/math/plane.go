package math

import "fmt"

// Plane is the set of points p with Normal·p = D. Distances are only
// metric when Normal is unit length.
type Plane[T Real] struct {
	Normal Vector3[T]
	D      T
}

/**
 * @brief Creates a plane from the coefficients of a*x + b*y + c*z = d.
 */
func NewPlane[T Real](a, b, c, d T) Plane[T] {
	return Plane[T]{Normal: Vector3[T]{a, b, c}, D: d}
}

func NewPlaneFromNormalPoint[T Real](normal, point Vector3[T]) Plane[T] {
	return Plane[T]{Normal: normal, D: normal.Dot(point)}
}

// NewPlaneFromPoints builds the plane through three points. With clockwise
// winding the normal points toward the viewer.
func NewPlaneFromPoints[T Real](v1, v2, v3 Vector3[T], clockwise bool) Plane[T] {
	var normal Vector3[T]
	if clockwise {
		normal = v1.Sub(v3).Cross(v1.Sub(v2))
	} else {
		normal = v1.Sub(v2).Cross(v1.Sub(v3))
	}
	normal.Normalize()
	return Plane[T]{Normal: normal, D: normal.Dot(v1)}
}

// Center is the point of the plane closest to the origin.
func (p Plane[T]) Center() Vector3[T] {
	return p.Normal.MulScalar(p.D)
}

// DistanceTo is signed: positive above the plane.
func (p Plane[T]) DistanceTo(point Vector3[T]) T {
	return p.Normal.Dot(point) - p.D
}

func (p Plane[T]) IsPointOver(point Vector3[T]) bool {
	return p.Normal.Dot(point) > p.D
}

func (p Plane[T]) HasPoint(point Vector3[T], tolerance T) bool {
	return Abs(p.DistanceTo(point)) <= tolerance
}

// Project returns the orthogonal projection of point onto the plane.
func (p Plane[T]) Project(point Vector3[T]) Vector3[T] {
	return point.Sub(p.Normal.MulScalar(p.DistanceTo(point)))
}

// Normalized rescales normal and D so the normal is unit length. A zero
// normal yields the zero plane.
func (p Plane[T]) Normalized() Plane[T] {
	l := p.Normal.Length()
	if l == 0 {
		return Plane[T]{}
	}
	return Plane[T]{Normal: p.Normal.DivScalar(l), D: p.D / l}
}

func (p Plane[T]) Neg() Plane[T] {
	return Plane[T]{Normal: p.Normal.Neg(), D: -p.D}
}

// Intersect3 returns the single point shared by p, p1 and p2. It reports
// false when two of the planes are parallel.
func (p Plane[T]) Intersect3(p1, p2 Plane[T]) (Vector3[T], bool) {
	normal0 := p.Normal
	normal1 := p1.Normal
	normal2 := p2.Normal

	denom := normal0.Cross(normal1).Dot(normal2)
	if IsZeroApprox(denom) {
		return Vector3[T]{}, false
	}

	result := normal1.Cross(normal2).MulScalar(p.D).
		Add(normal2.Cross(normal0).MulScalar(p1.D)).
		Add(normal0.Cross(normal1).MulScalar(p2.D))

	return result.DivScalar(denom), true
}

// IntersectRay casts a ray from along dir. Rays parallel to the plane or
// pointing away from it report false.
func (p Plane[T]) IntersectRay(from, dir Vector3[T]) (Vector3[T], bool) {
	den := p.Normal.Dot(dir)
	if IsZeroApprox(den) {
		return Vector3[T]{}, false
	}

	dist := (p.Normal.Dot(from) - p.D) / den
	if dist > Epsilon[T]() {
		// Plane is behind the ray.
		return Vector3[T]{}, false
	}

	return from.Add(dir.MulScalar(-dist)), true
}

// IntersectSegment intersects the segment begin -> end with the plane.
func (p Plane[T]) IntersectSegment(begin, end Vector3[T]) (Vector3[T], bool) {
	segment := begin.Sub(end)
	den := p.Normal.Dot(segment)
	if IsZeroApprox(den) {
		return Vector3[T]{}, false
	}

	dist := (p.Normal.Dot(begin) - p.D) / den
	eps := Epsilon[T]()
	if dist < -eps || dist > 1+eps {
		return Vector3[T]{}, false
	}

	return begin.Add(segment.MulScalar(-dist)), true
}

func (p Plane[T]) IsEqualApprox(other Plane[T]) bool {
	return p.Normal.IsEqualApprox(other.Normal) && IsEqualApprox(p.D, other.D)
}

func (p Plane[T]) String() string {
	return fmt.Sprintf("%v, %g", p.Normal, p.D)
}
