package math

import "fmt"

// Vector2 is a 2D point or direction.
type Vector2[T Real] struct {
	X, Y T
}

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 */
func NewVector2[T Real](x, y T) Vector2[T] {
	return Vector2[T]{x, y}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.
 */
func Vector2Zero[T Real]() Vector2[T] {
	return Vector2[T]{}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.
 */
func Vector2One[T Real]() Vector2[T] {
	return Vector2[T]{1, 1}
}

/**
 * @brief Up is negative Y in 2D screen space (0, -1).
 */
func Vector2Up[T Real]() Vector2[T] {
	return Vector2[T]{0, -1}
}

/**
 * @brief Down is positive Y in 2D screen space (0, 1).
 */
func Vector2Down[T Real]() Vector2[T] {
	return Vector2[T]{0, 1}
}

/**
 * @brief Creates and returns a 2-component vector pointing left (-1, 0).
 */
func Vector2Left[T Real]() Vector2[T] {
	return Vector2[T]{-1, 0}
}

/**
 * @brief Creates and returns a 2-component vector pointing right (1, 0).
 */
func Vector2Right[T Real]() Vector2[T] {
	return Vector2[T]{1, 0}
}

/**
 * @brief Returns component i (0 = X, 1 = Y). Panics with ErrIndexOutOfRange otherwise.
 */
func (v Vector2[T]) Index(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	indexPanic("Vector2", i, 1)
	return 0
}

/**
 * @brief Sets component i (0 = X, 1 = Y). Panics with ErrIndexOutOfRange otherwise.
 */
func (v *Vector2[T]) SetIndex(i int, value T) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		indexPanic("Vector2", i, 1)
	}
}

/**
 * @brief Adds other to v component-wise.
 */
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X + other.X, v.Y + other.Y}
}

/**
 * @brief Subtracts other from v component-wise.
 */
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X - other.X, v.Y - other.Y}
}

func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{-v.X, -v.Y}
}

/**
 * @brief Multiplies v by other component-wise.
 */
func (v Vector2[T]) Mul(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X * other.X, v.Y * other.Y}
}

func (v Vector2[T]) MulScalar(s T) Vector2[T] {
	return Vector2[T]{v.X * s, v.Y * s}
}

/**
 * @brief Divides v by other component-wise. Division by zero follows IEEE rules.
 */
func (v Vector2[T]) Div(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X / other.X, v.Y / other.Y}
}

func (v Vector2[T]) DivScalar(s T) Vector2[T] {
	return Vector2[T]{v.X / s, v.Y / s}
}

func (v Vector2[T]) Mod(other Vector2[T]) Vector2[T] {
	return Vector2[T]{Mod(v.X, other.X), Mod(v.Y, other.Y)}
}

func (v Vector2[T]) ModScalar(s T) Vector2[T] {
	return Vector2[T]{Mod(v.X, s), Mod(v.Y, s)}
}

/**
 * @brief Applies PosMod to each component, so results take the sign of mod.
 */
func (v Vector2[T]) PosMod(mod T) Vector2[T] {
	return Vector2[T]{PosMod(v.X, mod), PosMod(v.Y, mod)}
}

/**
 * @brief Returns the dot product of v and other.
 */
func (v Vector2[T]) Dot(other Vector2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the Z component of the 3D cross product of v and other.
func (v Vector2[T]) Cross(other Vector2[T]) T {
	return v.X*other.Y - v.Y*other.X
}

func (v Vector2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the Euclidean length of v.
 */
func (v Vector2[T]) Length() T {
	return Sqrt(v.LengthSquared())
}

// Normalize scales v in place to unit length. The zero vector stays zero.
func (v *Vector2[T]) Normalize() {
	lengthSq := v.LengthSquared()
	if lengthSq == 0 {
		v.X, v.Y = 0, 0
		return
	}
	length := Sqrt(lengthSq)
	v.X /= length
	v.Y /= length
}

/**
 * @brief Returns a unit length copy of v. The zero vector stays zero.
 */
func (v Vector2[T]) Normalized() Vector2[T] {
	v.Normalize()
	return v
}

/**
 * @brief Reports whether v has unit length within K_UNIT_EPSILON.
 */
func (v Vector2[T]) IsNormalized() bool {
	return Abs(v.LengthSquared()-1) < K_UNIT_EPSILON
}

func (v Vector2[T]) Abs() Vector2[T] {
	return Vector2[T]{Abs(v.X), Abs(v.Y)}
}

func (v Vector2[T]) Sign() Vector2[T] {
	return Vector2[T]{Sign(v.X), Sign(v.Y)}
}

func (v Vector2[T]) Floor() Vector2[T] {
	return Vector2[T]{Floor(v.X), Floor(v.Y)}
}

func (v Vector2[T]) Ceil() Vector2[T] {
	return Vector2[T]{Ceil(v.X), Ceil(v.Y)}
}

func (v Vector2[T]) Round() Vector2[T] {
	return Vector2[T]{Round(v.X), Round(v.Y)}
}

/**
 * @brief Rounds each component to the nearest multiple of the matching step.
 */
func (v Vector2[T]) Snapped(step Vector2[T]) Vector2[T] {
	return Vector2[T]{Stepify(v.X, step.X), Stepify(v.Y, step.Y)}
}

// Angle returns the angle of v relative to the positive X axis, in radians.
func (v Vector2[T]) Angle() T {
	return Atan2(v.Y, v.X)
}

// AngleTo returns the signed angle from v to other.
func (v Vector2[T]) AngleTo(other Vector2[T]) T {
	return Atan2(v.Cross(other), v.Dot(other))
}

// AngleToPoint returns the angle of the line from v to point.
func (v Vector2[T]) AngleToPoint(point Vector2[T]) T {
	return Atan2(v.Y-point.Y, v.X-point.X)
}

func (v Vector2[T]) DistanceTo(other Vector2[T]) T {
	return other.Sub(v).Length()
}

func (v Vector2[T]) DistanceSquaredTo(other Vector2[T]) T {
	return other.Sub(v).LengthSquared()
}

/**
 * @brief Returns the unit vector pointing from v to other.
 */
func (v Vector2[T]) DirectionTo(other Vector2[T]) Vector2[T] {
	return other.Sub(v).Normalized()
}

// Rotated rotates v by phi radians counter-clockwise.
func (v Vector2[T]) Rotated(phi T) Vector2[T] {
	sine, cosine := Sincos(phi)
	return Vector2[T]{
		v.X*cosine - v.Y*sine,
		v.X*sine + v.Y*cosine,
	}
}

// Tangent is v rotated by -90 degrees.
func (v Vector2[T]) Tangent() Vector2[T] {
	return Vector2[T]{v.Y, -v.X}
}

/**
 * @brief Projects v onto onNormal, which does not need to be unit length.
 */
func (v Vector2[T]) Project(onNormal Vector2[T]) Vector2[T] {
	return onNormal.MulScalar(v.Dot(onNormal) / onNormal.LengthSquared())
}

/**
 * @brief Reflects v across the line through the origin along normal. normal must be normalized.
 */
func (v Vector2[T]) Reflect(normal Vector2[T]) Vector2[T] {
	if debugChecks {
		assertNormalized(normal.IsNormalized(), "Vector2.Reflect", "normal")
	}
	return normal.MulScalar(2 * v.Dot(normal)).Sub(v)
}

/**
 * @brief Returns v bounced off a surface with the given normal: the negated Reflect.
 */
func (v Vector2[T]) Bounce(normal Vector2[T]) Vector2[T] {
	if debugChecks {
		assertNormalized(normal.IsNormalized(), "Vector2.Bounce", "normal")
	}
	return v.Reflect(normal).Neg()
}

/**
 * @brief Removes the component of v along normal. normal must be normalized.
 */
func (v Vector2[T]) Slide(normal Vector2[T]) Vector2[T] {
	if debugChecks {
		assertNormalized(normal.IsNormalized(), "Vector2.Slide", "normal")
	}
	return v.Sub(normal.MulScalar(v.Dot(normal)))
}

// Slerp rotates v toward to by weight of the signed angle between them.
func (v Vector2[T]) Slerp(to Vector2[T], weight T) Vector2[T] {
	if debugChecks {
		assertNormalized(v.IsNormalized(), "Vector2.Slerp", "from")
		assertNormalized(to.IsNormalized(), "Vector2.Slerp", "to")
	}
	theta := v.AngleTo(to)
	return v.Rotated(theta * weight)
}

/**
 * @brief Lerps each component toward to by weight.
 */
func (v Vector2[T]) LinearInterpolate(to Vector2[T], weight T) Vector2[T] {
	return Vector2[T]{Lerp(v.X, to.X, weight), Lerp(v.Y, to.Y, weight)}
}

/**
 * @brief Catmull-Rom interpolation from v to b, with preA and postB as the outer control points.
 */
func (v Vector2[T]) CubicInterpolate(b, preA, postB Vector2[T], weight T) Vector2[T] {
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

/**
 * @brief Moves v toward to by at most delta without overshooting.
 */
func (v Vector2[T]) MoveToward(to Vector2[T], delta T) Vector2[T] {
	vd := to.Sub(v)
	length := vd.Length()
	if length <= delta || length < Epsilon[T]() {
		return to
	}
	return v.Add(vd.DivScalar(length).MulScalar(delta))
}

/**
 * @brief Shortens v to length when it is longer; shorter vectors are returned as is.
 */
func (v Vector2[T]) LimitLength(length T) Vector2[T] {
	l := v.Length()
	if l > 0 && length < l {
		return v.DivScalar(l).MulScalar(length)
	}
	return v
}

// Aspect returns X / Y.
func (v Vector2[T]) Aspect() T {
	return v.X / v.Y
}

// MaxAxis returns AxisX unless Y is strictly larger.
func (v Vector2[T]) MaxAxis() Axis {
	if v.X < v.Y {
		return AxisY
	}
	return AxisX
}

// MinAxis returns AxisY unless X is strictly smaller.
func (v Vector2[T]) MinAxis() Axis {
	if v.X < v.Y {
		return AxisX
	}
	return AxisY
}

/**
 * @brief Compares both components with IsEqualApprox.
 */
func (v Vector2[T]) IsEqualApprox(other Vector2[T]) bool {
	return IsEqualApprox(v.X, other.X) && IsEqualApprox(v.Y, other.Y)
}

func (v Vector2[T]) Compare(other Vector2[T], tolerance T) bool {
	return Abs(v.X-other.X) <= tolerance && Abs(v.Y-other.Y) <= tolerance
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
