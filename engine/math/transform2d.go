package math

import (
	"fmt"

	"github.com/spaghettifunk/extramath/engine/core"
)

/**
 * @brief A 2x3 affine transform: two basis columns plus an origin.
 */
type Transform2D[T Real] struct {
	X, Y   Vector2[T]
	Origin Vector2[T]
}

func NewTransform2D[T Real](x, y, origin Vector2[T]) Transform2D[T] {
	return Transform2D[T]{X: x, Y: y, Origin: origin}
}

// NewTransform2DFromRotation builds a rotation of rot radians placed at position.
func NewTransform2DFromRotation[T Real](rot T, position Vector2[T]) Transform2D[T] {
	sr, cr := Sincos(rot)
	return Transform2D[T]{
		X:      Vector2[T]{cr, sr},
		Y:      Vector2[T]{-sr, cr},
		Origin: position,
	}
}

func Transform2DIdentity[T Real]() Transform2D[T] {
	return Transform2D[T]{X: Vector2[T]{1, 0}, Y: Vector2[T]{0, 1}}
}

func Transform2DFlipX[T Real]() Transform2D[T] {
	return Transform2D[T]{X: Vector2[T]{-1, 0}, Y: Vector2[T]{0, 1}}
}

func Transform2DFlipY[T Real]() Transform2D[T] {
	return Transform2D[T]{X: Vector2[T]{1, 0}, Y: Vector2[T]{0, -1}}
}

// Index returns X, Y or Origin for 0..2.
func (t Transform2D[T]) Index(i int) Vector2[T] {
	switch i {
	case 0:
		return t.X
	case 1:
		return t.Y
	case 2:
		return t.Origin
	}
	indexPanic("Transform2D column", i, 2)
	return Vector2[T]{}
}

func (t *Transform2D[T]) SetIndex(i int, v Vector2[T]) {
	switch i {
	case 0:
		t.X = v
	case 1:
		t.Y = v
	case 2:
		t.Origin = v
	default:
		indexPanic("Transform2D column", i, 2)
	}
}

func (t Transform2D[T]) tdotx(v Vector2[T]) T {
	return t.X.X*v.X + t.Y.X*v.Y
}

func (t Transform2D[T]) tdoty(v Vector2[T]) T {
	return t.X.Y*v.X + t.Y.Y*v.Y
}

func (t Transform2D[T]) BasisDeterminant() T {
	return t.X.X*t.Y.Y - t.X.Y*t.Y.X
}

// BasisXform applies only the rotation and scale part.
func (t Transform2D[T]) BasisXform(v Vector2[T]) Vector2[T] {
	return Vector2[T]{t.tdotx(v), t.tdoty(v)}
}

// BasisXformInv applies the transposed basis, the inverse for orthonormal bases.
func (t Transform2D[T]) BasisXformInv(v Vector2[T]) Vector2[T] {
	return Vector2[T]{t.X.Dot(v), t.Y.Dot(v)}
}

func (t Transform2D[T]) Xform(v Vector2[T]) Vector2[T] {
	return t.BasisXform(v).Add(t.Origin)
}

func (t Transform2D[T]) XformInv(v Vector2[T]) Vector2[T] {
	return t.BasisXformInv(v.Sub(t.Origin))
}

// XformRect returns the rectangle enclosing the four transformed corners.
func (t Transform2D[T]) XformRect(r Rect2[T]) Rect2[T] {
	x := t.X.MulScalar(r.Size.X)
	y := t.Y.MulScalar(r.Size.Y)
	pos := t.Xform(r.Position)

	out := Rect2[T]{Position: pos}
	out = out.Expand(pos.Add(x))
	out = out.Expand(pos.Add(y))
	out = out.Expand(pos.Add(x).Add(y))
	return out
}

// Rotation returns the angle of the X axis in radians.
func (t Transform2D[T]) Rotation() T {
	return Atan2(t.X.Y, t.X.X)
}

// Scale returns the axis lengths. A negative determinant is reported on Y.
func (t Transform2D[T]) Scale() Vector2[T] {
	detSign := Sign(t.BasisDeterminant())
	return Vector2[T]{t.X.Length(), detSign * t.Y.Length()}
}

// Mul composes t * other: other is applied first.
func (t Transform2D[T]) Mul(other Transform2D[T]) Transform2D[T] {
	return Transform2D[T]{
		X:      Vector2[T]{t.tdotx(other.X), t.tdoty(other.X)},
		Y:      Vector2[T]{t.tdotx(other.Y), t.tdoty(other.Y)},
		Origin: t.Xform(other.Origin),
	}
}

// Inverse assumes an orthonormal basis and transposes it.
func (t Transform2D[T]) Inverse() Transform2D[T] {
	t.X.Y, t.Y.X = t.Y.X, t.X.Y
	t.Origin = t.BasisXform(t.Origin.Neg())
	return t
}

/**
 * @brief Inverts a transform with arbitrary scale and skew.
 * @return ErrSingularMatrix when the basis determinant is zero.
 */
func (t Transform2D[T]) AffineInverse() (Transform2D[T], error) {
	det := t.BasisDeterminant()
	if det == 0 {
		return Transform2D[T]{}, fmt.Errorf("transform2d %v: %w", t, core.ErrSingularMatrix)
	}
	idet := 1 / det

	t.X.X, t.Y.Y = t.Y.Y, t.X.X
	t.X = t.X.Mul(Vector2[T]{idet, -idet})
	t.Y = t.Y.Mul(Vector2[T]{-idet, idet})

	t.Origin = t.BasisXform(t.Origin.Neg())
	return t, nil
}

func (t Transform2D[T]) Orthonormalized() Transform2D[T] {
	x := t.X.Normalized()
	y := t.Y.Sub(x.MulScalar(x.Dot(t.Y))).Normalized()
	t.X, t.Y = x, y
	return t
}

// Rotated pre-multiplies by a rotation of phi radians.
func (t Transform2D[T]) Rotated(phi T) Transform2D[T] {
	return NewTransform2DFromRotation(phi, Vector2[T]{}).Mul(t)
}

// Scaled scales the basis rows and the origin.
func (t Transform2D[T]) Scaled(scale Vector2[T]) Transform2D[T] {
	t = t.scaleBasis(scale)
	t.Origin = t.Origin.Mul(scale)
	return t
}

func (t Transform2D[T]) scaleBasis(scale Vector2[T]) Transform2D[T] {
	t.X.X *= scale.X
	t.X.Y *= scale.Y
	t.Y.X *= scale.X
	t.Y.Y *= scale.Y
	return t
}

// Translated moves the origin by offset in local coordinates.
func (t Transform2D[T]) Translated(offset Vector2[T]) Transform2D[T] {
	t.Origin = t.Origin.Add(t.BasisXform(offset))
	return t
}

// InterpolateWith blends rotation along the shorter arc and lerps scale and origin.
func (t Transform2D[T]) InterpolateWith(other Transform2D[T], weight T) Transform2D[T] {
	r1 := t.Rotation()
	s1 := t.Scale()
	r2 := other.Rotation()
	s2 := other.Scale()

	s, c := Sincos(r1)
	v1 := Vector2[T]{c, s}
	s, c = Sincos(r2)
	v2 := Vector2[T]{c, s}

	dot := Clamp(v1.Dot(v2), -1, 1)

	var v Vector2[T]
	if dot > 0.9995 {
		// Nearly identical angles.
		v = v1.LinearInterpolate(v2, weight).Normalized()
	} else {
		angle := weight * Acos(dot)
		v3 := v2.Sub(v1.MulScalar(dot)).Normalized()
		sa, ca := Sincos(angle)
		v = v1.MulScalar(ca).Add(v3.MulScalar(sa))
	}

	res := NewTransform2DFromRotation(Atan2(v.Y, v.X), t.Origin.LinearInterpolate(other.Origin, weight))
	return res.scaleBasis(s1.LinearInterpolate(s2, weight))
}

func (t Transform2D[T]) IsEqualApprox(other Transform2D[T]) bool {
	return t.X.IsEqualApprox(other.X) && t.Y.IsEqualApprox(other.Y) && t.Origin.IsEqualApprox(other.Origin)
}

func (t Transform2D[T]) Compare(other Transform2D[T], tolerance T) bool {
	return t.X.Compare(other.X, tolerance) && t.Y.Compare(other.Y, tolerance) && t.Origin.Compare(other.Origin, tolerance)
}

func (t Transform2D[T]) String() string {
	return fmt.Sprintf("[X: %v, Y: %v, O: %v]", t.X, t.Y, t.Origin)
}
