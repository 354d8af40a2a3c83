package math

import "fmt"

// Vector4 is a 4-component vector, used for homogeneous coordinates and colors.
type Vector4[T Real] struct {
	X, Y, Z, W T
}

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVector4[T Real](x, y, z, w T) Vector4[T] {
	return Vector4[T]{x, y, z, w}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 0.
 */
func Vector4Zero[T Real]() Vector4[T] {
	return Vector4[T]{}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 1.
 */
func Vector4One[T Real]() Vector4[T] {
	return Vector4[T]{1, 1, 1, 1}
}

/**
 * @brief Returns component i (0 = X ... 3 = W). Panics with ErrIndexOutOfRange otherwise.
 */
func (v Vector4[T]) Index(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	indexPanic("Vector4", i, 3)
	return 0
}

/**
 * @brief Sets component i (0 = X ... 3 = W). Panics with ErrIndexOutOfRange otherwise.
 */
func (v *Vector4[T]) SetIndex(i int, value T) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	case 3:
		v.W = value
	default:
		indexPanic("Vector4", i, 3)
	}
}

/**
 * @brief Adds other to v component-wise.
 */
func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

/**
 * @brief Subtracts other from v component-wise.
 */
func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v Vector4[T]) Neg() Vector4[T] {
	return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

/**
 * @brief Multiplies v by other component-wise.
 */
func (v Vector4[T]) Mul(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

func (v Vector4[T]) MulScalar(s T) Vector4[T] {
	return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

/**
 * @brief Divides v by other component-wise. Division by zero follows IEEE rules.
 */
func (v Vector4[T]) Div(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

func (v Vector4[T]) DivScalar(s T) Vector4[T] {
	return Vector4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

/**
 * @brief Returns the dot product of v and other.
 */
func (v Vector4[T]) Dot(other Vector4[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vector4[T]) LengthSquared() T {
	return v.Dot(v)
}

/**
 * @brief Returns the Euclidean length of v.
 */
func (v Vector4[T]) Length() T {
	return Sqrt(v.LengthSquared())
}

// Normalized returns a unit length copy of v, or zero when v is zero.
func (v Vector4[T]) Normalized() Vector4[T] {
	lengthSq := v.LengthSquared()
	if lengthSq == 0 {
		return Vector4[T]{}
	}
	return v.DivScalar(Sqrt(lengthSq))
}

/**
 * @brief Reports whether v has unit length within K_UNIT_EPSILON.
 */
func (v Vector4[T]) IsNormalized() bool {
	return Abs(v.LengthSquared()-1) < K_UNIT_EPSILON
}

func (v Vector4[T]) Abs() Vector4[T] {
	return Vector4[T]{Abs(v.X), Abs(v.Y), Abs(v.Z), Abs(v.W)}
}

func (v Vector4[T]) Floor() Vector4[T] {
	return Vector4[T]{Floor(v.X), Floor(v.Y), Floor(v.Z), Floor(v.W)}
}

func (v Vector4[T]) Ceil() Vector4[T] {
	return Vector4[T]{Ceil(v.X), Ceil(v.Y), Ceil(v.Z), Ceil(v.W)}
}

func (v Vector4[T]) Round() Vector4[T] {
	return Vector4[T]{Round(v.X), Round(v.Y), Round(v.Z), Round(v.W)}
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vector4[T]) DistanceTo(other Vector4[T]) T {
	return other.Sub(v).Length()
}

/**
 * @brief Lerps each component toward to by weight.
 */
func (v Vector4[T]) LinearInterpolate(to Vector4[T], weight T) Vector4[T] {
	return Vector4[T]{
		Lerp(v.X, to.X, weight),
		Lerp(v.Y, to.Y, weight),
		Lerp(v.Z, to.Z, weight),
		Lerp(v.W, to.W, weight),
	}
}

// MaxAxis returns the axis of the largest component; the first wins ties.
func (v Vector4[T]) MaxAxis() Axis {
	axis := AxisX
	best := v.X
	for i := 1; i < 4; i++ {
		if c := v.Index(i); c > best {
			best = c
			axis = Axis(i)
		}
	}
	return axis
}

// MinAxis returns the axis of the smallest component; the first wins ties.
func (v Vector4[T]) MinAxis() Axis {
	axis := AxisX
	best := v.X
	for i := 1; i < 4; i++ {
		if c := v.Index(i); c < best {
			best = c
			axis = Axis(i)
		}
	}
	return axis
}

// XYZ drops the W component.
func (v Vector4[T]) XYZ() Vector3[T] {
	return Vector3[T]{v.X, v.Y, v.Z}
}

/**
 * @brief Compares every component with IsEqualApprox.
 */
func (v Vector4[T]) IsEqualApprox(other Vector4[T]) bool {
	return IsEqualApprox(v.X, other.X) && IsEqualApprox(v.Y, other.Y) &&
		IsEqualApprox(v.Z, other.Z) && IsEqualApprox(v.W, other.W)
}

func (v Vector4[T]) Compare(other Vector4[T], tolerance T) bool {
	return Abs(v.X-other.X) <= tolerance && Abs(v.Y-other.Y) <= tolerance &&
		Abs(v.Z-other.Z) <= tolerance && Abs(v.W-other.W) <= tolerance
}

func (v Vector4[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
