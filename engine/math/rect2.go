package math

import "fmt"

// Rect2 is an axis-aligned rectangle given by its position (top-left corner)
// and size. A negative size is allowed; Abs returns the canonical form.
type Rect2[T Real] struct {
	Position Vector2[T]
	Size     Vector2[T]
}

func NewRect2[T Real](x, y, width, height T) Rect2[T] {
	return Rect2[T]{Position: Vector2[T]{x, y}, Size: Vector2[T]{width, height}}
}

// End is the corner opposite Position.
func (r Rect2[T]) End() Vector2[T] {
	return r.Position.Add(r.Size)
}

func (r Rect2[T]) Area() T {
	return r.Size.X * r.Size.Y
}

func (r Rect2[T]) Center() Vector2[T] {
	return r.Position.Add(r.Size.MulScalar(0.5))
}

// Abs returns an equivalent rectangle with non-negative size.
func (r Rect2[T]) Abs() Rect2[T] {
	return Rect2[T]{
		Position: Vector2[T]{r.Position.X + min(r.Size.X, 0), r.Position.Y + min(r.Size.Y, 0)},
		Size:     r.Size.Abs(),
	}
}

func (r Rect2[T]) HasNoArea() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// HasPoint includes the top-left edges and excludes the bottom-right ones.
func (r Rect2[T]) HasPoint(point Vector2[T]) bool {
	if point.X < r.Position.X || point.Y < r.Position.Y {
		return false
	}
	end := r.End()
	if point.X >= end.X || point.Y >= end.Y {
		return false
	}
	return true
}

// Intersects reports overlap. Touching edges only count with includeBorders.
func (r Rect2[T]) Intersects(other Rect2[T], includeBorders bool) bool {
	end, otherEnd := r.End(), other.End()
	if includeBorders {
		if r.Position.X > otherEnd.X || end.X < other.Position.X {
			return false
		}
		if r.Position.Y > otherEnd.Y || end.Y < other.Position.Y {
			return false
		}
		return true
	}
	if r.Position.X >= otherEnd.X || end.X <= other.Position.X {
		return false
	}
	if r.Position.Y >= otherEnd.Y || end.Y <= other.Position.Y {
		return false
	}
	return true
}

// Encloses reports whether other lies completely inside r.
func (r Rect2[T]) Encloses(other Rect2[T]) bool {
	end, otherEnd := r.End(), other.End()
	return other.Position.X >= r.Position.X && other.Position.Y >= r.Position.Y &&
		otherEnd.X <= end.X && otherEnd.Y <= end.Y
}

// Intersection returns the overlapping area, or false when there is none.
func (r Rect2[T]) Intersection(other Rect2[T]) (Rect2[T], bool) {
	if !r.Intersects(other, false) {
		return Rect2[T]{}, false
	}
	end, otherEnd := r.End(), other.End()
	pos := Vector2[T]{max(r.Position.X, other.Position.X), max(r.Position.Y, other.Position.Y)}
	e := Vector2[T]{min(end.X, otherEnd.X), min(end.Y, otherEnd.Y)}
	return Rect2[T]{Position: pos, Size: e.Sub(pos)}, true
}

// Merge returns the smallest rectangle enclosing both.
func (r Rect2[T]) Merge(other Rect2[T]) Rect2[T] {
	end, otherEnd := r.End(), other.End()
	pos := Vector2[T]{min(r.Position.X, other.Position.X), min(r.Position.Y, other.Position.Y)}
	e := Vector2[T]{max(end.X, otherEnd.X), max(end.Y, otherEnd.Y)}
	return Rect2[T]{Position: pos, Size: e.Sub(pos)}
}

// Expand grows r to include point.
func (r Rect2[T]) Expand(point Vector2[T]) Rect2[T] {
	begin := r.Position
	end := r.End()
	begin = Vector2[T]{min(begin.X, point.X), min(begin.Y, point.Y)}
	end = Vector2[T]{max(end.X, point.X), max(end.Y, point.Y)}
	return Rect2[T]{Position: begin, Size: end.Sub(begin)}
}

// Grow moves every edge outward by by.
func (r Rect2[T]) Grow(by T) Rect2[T] {
	return r.GrowIndividual(by, by, by, by)
}

func (r Rect2[T]) GrowIndividual(left, top, right, bottom T) Rect2[T] {
	r.Position.X -= left
	r.Position.Y -= top
	r.Size.X += left + right
	r.Size.Y += top + bottom
	return r
}

func (r Rect2[T]) IsEqualApprox(other Rect2[T]) bool {
	return r.Position.IsEqualApprox(other.Position) && r.Size.IsEqualApprox(other.Size)
}

func (r Rect2[T]) String() string {
	return fmt.Sprintf("%v - %v", r.Position, r.Size)
}
