package math

import "fmt"

// AABB is an axis-aligned bounding box given by its minimum corner and size.
// A negative size is allowed; Abs returns the canonical form.
type AABB[T Real] struct {
	Position Vector3[T]
	Size     Vector3[T]
}

func NewAABB[T Real](position, size Vector3[T]) AABB[T] {
	return AABB[T]{Position: position, Size: size}
}

// End is the corner opposite Position.
func (b AABB[T]) End() Vector3[T] {
	return b.Position.Add(b.Size)
}

func (b AABB[T]) Volume() T {
	return b.Size.X * b.Size.Y * b.Size.Z
}

func (b AABB[T]) Center() Vector3[T] {
	return b.Position.Add(b.Size.MulScalar(0.5))
}

// Abs returns an equivalent box with non-negative size.
func (b AABB[T]) Abs() AABB[T] {
	return AABB[T]{
		Position: Vector3[T]{
			b.Position.X + min(b.Size.X, 0),
			b.Position.Y + min(b.Size.Y, 0),
			b.Position.Z + min(b.Size.Z, 0),
		},
		Size: b.Size.Abs(),
	}
}

func (b AABB[T]) HasNoVolume() bool {
	return b.Size.X <= 0 || b.Size.Y <= 0 || b.Size.Z <= 0
}

func (b AABB[T]) HasNoSurface() bool {
	return b.Size.X <= 0 && b.Size.Y <= 0 && b.Size.Z <= 0
}

// HasPoint is inclusive on every face.
func (b AABB[T]) HasPoint(point Vector3[T]) bool {
	end := b.End()
	if point.X < b.Position.X || point.Y < b.Position.Y || point.Z < b.Position.Z {
		return false
	}
	if point.X > end.X || point.Y > end.Y || point.Z > end.Z {
		return false
	}
	return true
}

/**
 * @brief Reports whether the boxes overlap. Boxes that only share a face do
 * not intersect unless includeBorders is set.
 */
func (b AABB[T]) Intersects(other AABB[T], includeBorders bool) bool {
	end, otherEnd := b.End(), other.End()
	for i := 0; i < 3; i++ {
		if includeBorders {
			if b.Position.Index(i) > otherEnd.Index(i) || end.Index(i) < other.Position.Index(i) {
				return false
			}
			continue
		}
		if b.Position.Index(i) >= otherEnd.Index(i) || end.Index(i) <= other.Position.Index(i) {
			return false
		}
	}
	return true
}

// Encloses reports whether other lies completely inside b.
func (b AABB[T]) Encloses(other AABB[T]) bool {
	srcMin, srcMax := b.Position, b.End()
	dstMin, dstMax := other.Position, other.End()
	return srcMin.X <= dstMin.X && srcMax.X >= dstMax.X &&
		srcMin.Y <= dstMin.Y && srcMax.Y >= dstMax.Y &&
		srcMin.Z <= dstMin.Z && srcMax.Z >= dstMax.Z
}

// Intersection returns the overlapping box, or false when they are disjoint.
func (b AABB[T]) Intersection(other AABB[T]) (AABB[T], bool) {
	srcMin, srcMax := b.Position, b.End()
	dstMin, dstMax := other.Position, other.End()

	var lo, hi Vector3[T]
	for i := 0; i < 3; i++ {
		if srcMin.Index(i) > dstMax.Index(i) || srcMax.Index(i) < dstMin.Index(i) {
			return AABB[T]{}, false
		}
		lo.SetIndex(i, max(srcMin.Index(i), dstMin.Index(i)))
		hi.SetIndex(i, min(srcMax.Index(i), dstMax.Index(i)))
	}
	return AABB[T]{Position: lo, Size: hi.Sub(lo)}, true
}

// Merge returns the smallest box enclosing both.
func (b AABB[T]) Merge(other AABB[T]) AABB[T] {
	end, otherEnd := b.End(), other.End()
	lo := Vector3[T]{min(b.Position.X, other.Position.X), min(b.Position.Y, other.Position.Y), min(b.Position.Z, other.Position.Z)}
	hi := Vector3[T]{max(end.X, otherEnd.X), max(end.Y, otherEnd.Y), max(end.Z, otherEnd.Z)}
	return AABB[T]{Position: lo, Size: hi.Sub(lo)}
}

// Expand grows b to include point.
func (b AABB[T]) Expand(point Vector3[T]) AABB[T] {
	begin := b.Position
	end := b.End()
	begin = Vector3[T]{min(begin.X, point.X), min(begin.Y, point.Y), min(begin.Z, point.Z)}
	end = Vector3[T]{max(end.X, point.X), max(end.Y, point.Y), max(end.Z, point.Z)}
	return AABB[T]{Position: begin, Size: end.Sub(begin)}
}

// Grow moves every face outward by by.
func (b AABB[T]) Grow(by T) AABB[T] {
	b.Position = b.Position.SubScalar(by)
	b.Size = b.Size.AddScalar(by * 2)
	return b
}

// Endpoint returns corner idx (0..7). Bit 2 selects the end on X, bit 1 on Y
// and bit 0 on Z.
func (b AABB[T]) Endpoint(idx int) Vector3[T] {
	if idx < 0 || idx > 7 {
		indexPanic("AABB endpoint", idx, 7)
	}
	p := b.Position
	if idx&4 != 0 {
		p.X += b.Size.X
	}
	if idx&2 != 0 {
		p.Y += b.Size.Y
	}
	if idx&1 != 0 {
		p.Z += b.Size.Z
	}
	return p
}

// Support returns the corner furthest along normal.
func (b AABB[T]) Support(normal Vector3[T]) Vector3[T] {
	half := b.Size.MulScalar(0.5)
	ofs := b.Position.Add(half)
	pick := func(n, h T) T {
		if n > 0 {
			return h
		}
		return -h
	}
	return Vector3[T]{pick(normal.X, half.X), pick(normal.Y, half.Y), pick(normal.Z, half.Z)}.Add(ofs)
}

// LongestAxis returns the axis and length of the longest side.
// X wins ties, then Y.
func (b AABB[T]) LongestAxis() (Axis, T) {
	axis, size := AxisX, b.Size.X
	if b.Size.Y > size {
		axis, size = AxisY, b.Size.Y
	}
	if b.Size.Z > size {
		axis, size = AxisZ, b.Size.Z
	}
	return axis, size
}

// ShortestAxis returns the axis and length of the shortest side.
func (b AABB[T]) ShortestAxis() (Axis, T) {
	axis, size := AxisX, b.Size.X
	if b.Size.Y < size {
		axis, size = AxisY, b.Size.Y
	}
	if b.Size.Z < size {
		axis, size = AxisZ, b.Size.Z
	}
	return axis, size
}

// IntersectsPlane reports whether the plane splits the box.
func (b AABB[T]) IntersectsPlane(p Plane[T]) bool {
	over, under := false, false
	for i := 0; i < 8; i++ {
		if p.DistanceTo(b.Endpoint(i)) > 0 {
			over = true
		} else {
			under = true
		}
	}
	return over && under
}

/**
 * @brief Clips the segment from -> to against the box (slab test).
 * @return the entry point, the normal of the face hit, and false when the
 * segment misses.
 */
func (b AABB[T]) IntersectsSegment(from, to Vector3[T]) (Vector3[T], Vector3[T], bool) {
	var lo, hi T = 0, 1
	axis := 0
	var sign T

	for i := 0; i < 3; i++ {
		segFrom := from.Index(i)
		segTo := to.Index(i)
		boxBegin := b.Position.Index(i)
		boxEnd := boxBegin + b.Size.Index(i)

		var cmin, cmax, csign T
		length := segTo - segFrom

		if segFrom < segTo {
			if segFrom > boxEnd || segTo < boxBegin {
				return Vector3[T]{}, Vector3[T]{}, false
			}
			cmin, cmax = 0, 1
			if segFrom < boxBegin {
				cmin = (boxBegin - segFrom) / length
			}
			if segTo > boxEnd {
				cmax = (boxEnd - segFrom) / length
			}
			csign = -1
		} else {
			if segTo > boxEnd || segFrom < boxBegin {
				return Vector3[T]{}, Vector3[T]{}, false
			}
			cmin, cmax = 0, 1
			if segFrom > boxEnd {
				cmin = (boxEnd - segFrom) / length
			}
			if segTo < boxBegin {
				cmax = (boxBegin - segFrom) / length
			}
			csign = 1
		}

		if cmin > lo {
			lo = cmin
			axis = i
			sign = csign
		}
		if cmax < hi {
			hi = cmax
		}
		if hi < lo {
			return Vector3[T]{}, Vector3[T]{}, false
		}
	}

	var normal Vector3[T]
	normal.SetIndex(axis, sign)
	return from.Add(to.Sub(from).MulScalar(lo)), normal, true
}

func (b AABB[T]) IsEqualApprox(other AABB[T]) bool {
	return b.Position.IsEqualApprox(other.Position) && b.Size.IsEqualApprox(other.Size)
}

func (b AABB[T]) String() string {
	return fmt.Sprintf("%v - %v", b.Position, b.Size)
}
