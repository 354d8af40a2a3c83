package math

import (
	"fmt"
	m "math"
)

// Vector3 is a 3D point or direction.
type Vector3[T Real] struct {
	X, Y, Z T
}

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 */
func NewVector3[T Real](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.
 */
func Vector3Zero[T Real]() Vector3[T] {
	return Vector3[T]{0, 0, 0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.
 */
func Vector3One[T Real]() Vector3[T] {
	return Vector3[T]{1, 1, 1}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to +Inf.
 */
func Vector3Inf[T Real]() Vector3[T] {
	inf := T(m.Inf(1))
	return Vector3[T]{inf, inf, inf}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func Vector3Up[T Real]() Vector3[T] {
	return Vector3[T]{0, 1, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func Vector3Down[T Real]() Vector3[T] {
	return Vector3[T]{0, -1, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func Vector3Left[T Real]() Vector3[T] {
	return Vector3[T]{-1, 0, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func Vector3Right[T Real]() Vector3[T] {
	return Vector3[T]{1, 0, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func Vector3Forward[T Real]() Vector3[T] {
	return Vector3[T]{0, 0, -1}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func Vector3Back[T Real]() Vector3[T] {
	return Vector3[T]{0, 0, 1}
}

// Index returns X, Y or Z for 0, 1 or 2. Any other index panics.
func (v Vector3[T]) Index(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	indexPanic("Vector3", i, 2)
	return 0
}

// SetIndex is the mutating counterpart of Index.
func (v *Vector3[T]) SetIndex(i int, value T) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		indexPanic("Vector3", i, 2)
	}
}

func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector3[T]) AddScalar(s T) Vector3[T] {
	return Vector3[T]{v.X + s, v.Y + s, v.Z + s}
}

func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vector3[T]) SubScalar(s T) Vector3[T] {
	return Vector3[T]{v.X - s, v.Y - s, v.Z - s}
}

func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// Mul multiplies component-wise.
func (v Vector3[T]) Mul(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vector3[T]) MulScalar(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Div divides component-wise. A zero divisor yields IEEE Inf or NaN.
func (v Vector3[T]) Div(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	return Vector3[T]{v.X / s, v.Y / s, v.Z / s}
}

// Mod is the component-wise truncated remainder, see Mod.
func (v Vector3[T]) Mod(other Vector3[T]) Vector3[T] {
	return Vector3[T]{Mod(v.X, other.X), Mod(v.Y, other.Y), Mod(v.Z, other.Z)}
}

func (v Vector3[T]) ModScalar(s T) Vector3[T] {
	return Vector3[T]{Mod(v.X, s), Mod(v.Y, s), Mod(v.Z, s)}
}

func (v Vector3[T]) PosMod(mod T) Vector3[T] {
	return Vector3[T]{PosMod(v.X, mod), PosMod(v.Y, mod), PosMod(v.Z, mod)}
}

func (v Vector3[T]) PosModv(modv Vector3[T]) Vector3[T] {
	return Vector3[T]{PosMod(v.X, modv.X), PosMod(v.Y, modv.Y), PosMod(v.Z, modv.Z)}
}

func (v Vector3[T]) Dot(other Vector3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

func (v Vector3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3[T]) Length() T {
	return Sqrt(v.LengthSquared())
}

// Normalize scales v in place to unit length. The zero vector stays zero.
func (v *Vector3[T]) Normalize() {
	lengthSq := v.LengthSquared()
	if lengthSq == 0 {
		v.X, v.Y, v.Z = 0, 0, 0
		return
	}
	length := Sqrt(lengthSq)
	v.X /= length
	v.Y /= length
	v.Z /= length
}

// Normalized returns a unit length copy of v, or the zero vector when v is zero.
func (v Vector3[T]) Normalized() Vector3[T] {
	v.Normalize()
	return v
}

func (v Vector3[T]) IsNormalized() bool {
	return Abs(v.LengthSquared()-1) < K_UNIT_EPSILON
}

// Inverse returns (1/x, 1/y, 1/z).
func (v Vector3[T]) Inverse() Vector3[T] {
	return Vector3[T]{1 / v.X, 1 / v.Y, 1 / v.Z}
}

func (v Vector3[T]) Abs() Vector3[T] {
	return Vector3[T]{Abs(v.X), Abs(v.Y), Abs(v.Z)}
}

func (v Vector3[T]) Sign() Vector3[T] {
	return Vector3[T]{Sign(v.X), Sign(v.Y), Sign(v.Z)}
}

func (v Vector3[T]) Floor() Vector3[T] {
	return Vector3[T]{Floor(v.X), Floor(v.Y), Floor(v.Z)}
}

func (v Vector3[T]) Ceil() Vector3[T] {
	return Vector3[T]{Ceil(v.X), Ceil(v.Y), Ceil(v.Z)}
}

func (v Vector3[T]) Round() Vector3[T] {
	return Vector3[T]{Round(v.X), Round(v.Y), Round(v.Z)}
}

// Snapped rounds each component to the nearest multiple of the matching step component.
func (v Vector3[T]) Snapped(step Vector3[T]) Vector3[T] {
	return Vector3[T]{Stepify(v.X, step.X), Stepify(v.Y, step.Y), Stepify(v.Z, step.Z)}
}

func (v Vector3[T]) DistanceTo(other Vector3[T]) T {
	return other.Sub(v).Length()
}

func (v Vector3[T]) DistanceSquaredTo(other Vector3[T]) T {
	return other.Sub(v).LengthSquared()
}

// DirectionTo is the normalized vector pointing from v to other.
func (v Vector3[T]) DirectionTo(other Vector3[T]) Vector3[T] {
	return other.Sub(v).Normalized()
}

// AngleTo returns the unsigned angle in radians between v and other.
func (v Vector3[T]) AngleTo(other Vector3[T]) T {
	return Atan2(v.Cross(other).Length(), v.Dot(other))
}

func (v Vector3[T]) LinearInterpolate(to Vector3[T], weight T) Vector3[T] {
	return Vector3[T]{
		Lerp(v.X, to.X, weight),
		Lerp(v.Y, to.Y, weight),
		Lerp(v.Z, to.Z, weight)}
}

// CubicInterpolate does a Catmull-Rom interpolation between v and b using
// preA and postB as handles.
func (v Vector3[T]) CubicInterpolate(b, preA, postB Vector3[T], weight T) Vector3[T] {
	p0, p1, p2, p3 := preA, v, b, postB
	t := weight
	t2 := t * t
	t3 := t2 * t

	return p1.MulScalar(2).
		Add(p0.Neg().Add(p2).MulScalar(t)).
		Add(p0.MulScalar(2).Sub(p1.MulScalar(5)).Add(p2.MulScalar(4)).Sub(p3).MulScalar(t2)).
		Add(p0.Neg().Add(p1.MulScalar(3)).Sub(p2.MulScalar(3)).Add(p3).MulScalar(t3)).
		MulScalar(0.5)
}

// MoveToward moves v toward to by at most delta.
func (v Vector3[T]) MoveToward(to Vector3[T], delta T) Vector3[T] {
	vd := to.Sub(v)
	length := vd.Length()
	if length <= delta || length < Epsilon[T]() {
		return to
	}
	return v.Add(vd.DivScalar(length).MulScalar(delta))
}

// LimitLength shortens v to at most length.
func (v Vector3[T]) LimitLength(length T) Vector3[T] {
	l := v.Length()
	if l > 0 && length < l {
		return v.DivScalar(l).MulScalar(length)
	}
	return v
}

// Project returns v projected onto onNormal.
func (v Vector3[T]) Project(onNormal Vector3[T]) Vector3[T] {
	return onNormal.MulScalar(v.Dot(onNormal) / onNormal.LengthSquared())
}

// Reflect mirrors v across the plane defined by normal, which must be normalized.
func (v Vector3[T]) Reflect(normal Vector3[T]) Vector3[T] {
	if debugChecks {
		assertNormalized(normal.IsNormalized(), "Vector3.Reflect", "normal")
	}
	return normal.MulScalar(2 * v.Dot(normal)).Sub(v)
}

// Bounce is the reflection of v off a surface with the given normal.
func (v Vector3[T]) Bounce(normal Vector3[T]) Vector3[T] {
	if debugChecks {
		assertNormalized(normal.IsNormalized(), "Vector3.Bounce", "normal")
	}
	return v.Reflect(normal).Neg()
}

// Slide removes the component of v along normal.
func (v Vector3[T]) Slide(normal Vector3[T]) Vector3[T] {
	if debugChecks {
		assertNormalized(normal.IsNormalized(), "Vector3.Slide", "normal")
	}
	return v.Sub(normal.MulScalar(v.Dot(normal)))
}

// Rotated rotates v around axis by angle radians. axis must be normalized.
func (v Vector3[T]) Rotated(axis Vector3[T], angle T) Vector3[T] {
	if debugChecks {
		assertNormalized(axis.IsNormalized(), "Vector3.Rotated", "axis")
	}
	return NewBasisFromAxisAngle(axis, angle).Xform(v)
}

// Slerp rotates v toward to by weight of the angle between them. Both vectors
// must be normalized. Coincident vectors fall back to a linear blend and
// opposite vectors rotate around an arbitrary perpendicular axis.
func (v Vector3[T]) Slerp(to Vector3[T], weight T) Vector3[T] {
	if debugChecks {
		assertNormalized(v.IsNormalized(), "Vector3.Slerp", "from")
		assertNormalized(to.IsNormalized(), "Vector3.Slerp", "to")
	}
	theta := v.AngleTo(to)
	axis := v.Cross(to)
	if IsZeroApprox(axis.LengthSquared()) {
		if v.Dot(to) >= 0 {
			return v.LinearInterpolate(to, weight)
		}
		axis = v.Cross(v.leastAlignedAxis())
	}
	return NewBasisFromAxisAngle(axis.Normalized(), theta*weight).Xform(v)
}

// leastAlignedAxis is the unit axis on which v has the smallest magnitude.
func (v Vector3[T]) leastAlignedAxis() Vector3[T] {
	var out Vector3[T]
	out.SetIndex(int(v.Abs().MinAxis()), 1)
	return out
}

// MaxAxis returns the axis of the largest component.
func (v Vector3[T]) MaxAxis() Axis {
	if v.X < v.Y {
		if v.Y < v.Z {
			return AxisZ
		}
		return AxisY
	}
	if v.X < v.Z {
		return AxisZ
	}
	return AxisX
}

// MinAxis returns the axis of the smallest component.
func (v Vector3[T]) MinAxis() Axis {
	if v.X < v.Y {
		if v.X < v.Z {
			return AxisX
		}
		return AxisZ
	}
	if v.Y < v.Z {
		return AxisY
	}
	return AxisZ
}

// Outer returns the outer product v ⊗ b.
func (v Vector3[T]) Outer(b Vector3[T]) Basis[T] {
	return NewBasisRows(
		v.X*b.X, v.X*b.Y, v.X*b.Z,
		v.Y*b.X, v.Y*b.Y, v.Y*b.Z,
		v.Z*b.X, v.Z*b.Y, v.Z*b.Z)
}

// ToDiagonalMatrix returns a basis scaling each axis by the matching component.
func (v Vector3[T]) ToDiagonalMatrix() Basis[T] {
	return NewBasisFromScale(v)
}

func (v Vector3[T]) ToVector4(w T) Vector4[T] {
	return Vector4[T]{v.X, v.Y, v.Z, w}
}

func (v Vector3[T]) IsEqualApprox(other Vector3[T]) bool {
	return IsEqualApprox(v.X, other.X) && IsEqualApprox(v.Y, other.Y) && IsEqualApprox(v.Z, other.Z)
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vector3[T]) Compare(other Vector3[T], tolerance T) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}
	if Abs(v.Y-other.Y) > tolerance {
		return false
	}
	if Abs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
