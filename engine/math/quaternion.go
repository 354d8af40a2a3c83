package math

import "fmt"

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion[T Real] struct {
	X, Y, Z, W T
}

func NewQuaternion[T Real](x, y, z, w T) Quaternion[T] {
	return Quaternion[T]{x, y, z, w}
}

/** @brief The identity rotation (0, 0, 0, 1). */
func QuaternionIdentity[T Real]() Quaternion[T] {
	return Quaternion[T]{0, 0, 0, 1}
}

// NewQuaternionFromAxisAngle rotates angle radians around axis. The axis is
// normalized on the fly; a zero axis yields the zero quaternion, which is not
// a valid rotation.
func NewQuaternionFromAxisAngle[T Real](axis Vector3[T], angle T) Quaternion[T] {
	d := axis.Length()
	if d == 0 {
		return Quaternion[T]{}
	}

	sinAngle, cosAngle := Sincos(angle * 0.5)
	s := sinAngle / d

	return Quaternion[T]{axis.X * s, axis.Y * s, axis.Z * s, cosAngle}
}

// NewQuaternionFromEuler builds the YXZ rotation (Z first, then X, then Y),
// the same convention as NewBasisFromEuler.
func NewQuaternionFromEuler[T Real](euler Vector3[T]) Quaternion[T] {
	sinA1, cosA1 := Sincos(euler.Y * 0.5)
	sinA2, cosA2 := Sincos(euler.X * 0.5)
	sinA3, cosA3 := Sincos(euler.Z * 0.5)

	return Quaternion[T]{
		sinA1*cosA2*sinA3 + cosA1*sinA2*cosA3,
		sinA1*cosA2*cosA3 - cosA1*sinA2*sinA3,
		cosA1*cosA2*sinA3 - sinA1*sinA2*cosA3,
		sinA1*sinA2*sinA3 + cosA1*cosA2*cosA3,
	}
}

// NewQuaternionFromBasis uses the fast conversion; see Basis.Quat.
func NewQuaternionFromBasis[T Real](b Basis[T]) Quaternion[T] {
	return b.Quat()
}

// Index returns X, Y, Z or W for 0..3. Any other index panics.
func (q Quaternion[T]) Index(i int) T {
	switch i {
	case 0:
		return q.X
	case 1:
		return q.Y
	case 2:
		return q.Z
	case 3:
		return q.W
	}
	indexPanic("Quaternion", i, 3)
	return 0
}

func (q *Quaternion[T]) SetIndex(i int, value T) {
	switch i {
	case 0:
		q.X = value
	case 1:
		q.Y = value
	case 2:
		q.Z = value
	case 3:
		q.W = value
	default:
		indexPanic("Quaternion", i, 3)
	}
}

func (q Quaternion[T]) Add(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

func (q Quaternion[T]) Sub(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.X - other.X, q.Y - other.Y, q.Z - other.Z, q.W - other.W}
}

func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{-q.X, -q.Y, -q.Z, -q.W}
}

func (q Quaternion[T]) MulScalar(s T) Quaternion[T] {
	return Quaternion[T]{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

func (q Quaternion[T]) DivScalar(s T) Quaternion[T] {
	return q.MulScalar(1 / s)
}

// Mul is the Hamilton product q * other: other is applied first.
func (q Quaternion[T]) Mul(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		q.W*other.Y + q.Y*other.W + q.Z*other.X - q.X*other.Z,
		q.W*other.Z + q.Z*other.W + q.X*other.Y - q.Y*other.X,
		q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// MulVector multiplies by the pure quaternion (v, 0).
func (q Quaternion[T]) MulVector(v Vector3[T]) Quaternion[T] {
	return Quaternion[T]{
		q.W*v.X + q.Y*v.Z - q.Z*v.Y,
		q.W*v.Y + q.Z*v.X - q.X*v.Z,
		q.W*v.Z + q.X*v.Y - q.Y*v.X,
		-q.X*v.X - q.Y*v.Y - q.Z*v.Z,
	}
}

func (q Quaternion[T]) Dot(other Quaternion[T]) T {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

func (q Quaternion[T]) LengthSquared() T {
	return q.Dot(q)
}

func (q Quaternion[T]) Length() T {
	return Sqrt(q.LengthSquared())
}

func (q Quaternion[T]) Normalized() Quaternion[T] {
	return q.DivScalar(q.Length())
}

func (q Quaternion[T]) IsNormalized() bool {
	return Abs(q.LengthSquared()-1) < K_UNIT_EPSILON
}

func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse is the conjugate, which only inverts unit quaternions.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	if debugChecks {
		assertNormalized(q.IsNormalized(), "Quaternion.Inverse", "receiver")
	}
	return q.Conjugate()
}

// GetEuler returns the YXZ Euler angles of the rotation.
func (q Quaternion[T]) GetEuler() Vector3[T] {
	if debugChecks {
		assertNormalized(q.IsNormalized(), "Quaternion.GetEuler", "receiver")
	}
	return NewBasisFromQuaternion(q).GetEuler()
}

// Xform rotates v: v + 2·(u×(u×v) + w·(u×v)) with u the vector part.
func (q Quaternion[T]) Xform(v Vector3[T]) Vector3[T] {
	if debugChecks {
		assertNormalized(q.IsNormalized(), "Quaternion.Xform", "receiver")
	}
	u := Vector3[T]{q.X, q.Y, q.Z}
	uv := u.Cross(v)
	return v.Add(uv.MulScalar(q.W).Add(u.Cross(uv)).MulScalar(2))
}

// Slerp interpolates along the shortest arc between two unit quaternions.
// Nearly parallel inputs are blended linearly.
func (q Quaternion[T]) Slerp(to Quaternion[T], weight T) Quaternion[T] {
	if debugChecks {
		assertNormalized(q.IsNormalized(), "Quaternion.Slerp", "from")
		assertNormalized(to.IsNormalized(), "Quaternion.Slerp", "to")
	}

	// calc cosine
	cosom := q.Dot(to)

	// adjust signs (if necessary)
	if cosom < 0 {
		cosom = -cosom
		to = to.Neg()
	}

	var scale0, scale1 T
	if 1-cosom > Epsilon[T]() {
		omega := Acos(cosom)
		sinom := Sin(omega)
		scale0 = Sin((1-weight)*omega) / sinom
		scale1 = Sin(weight*omega) / sinom
	} else {
		// "from" and "to" are very close, a linear blend avoids dividing by ~0.
		scale0 = 1 - weight
		scale1 = weight
	}

	return Quaternion[T]{
		scale0*q.X + scale1*to.X,
		scale0*q.Y + scale1*to.Y,
		scale0*q.Z + scale1*to.Z,
		scale0*q.W + scale1*to.W,
	}
}

// Slerpni is Slerp without the shortest path correction. Quaternions closer
// than |dot| > 0.9999 return q unchanged. Meant for chains of rotations that
// are already known to be close.
func (q Quaternion[T]) Slerpni(to Quaternion[T], weight T) Quaternion[T] {
	if debugChecks {
		assertNormalized(q.IsNormalized(), "Quaternion.Slerpni", "from")
		assertNormalized(to.IsNormalized(), "Quaternion.Slerpni", "to")
	}

	dot := q.Dot(to)
	if Abs(dot) > 0.9999 {
		return q
	}

	theta := Acos(dot)
	sinT := 1 / Sin(theta)
	newFactor := Sin(weight*theta) * sinT
	invFactor := Sin((1-weight)*theta) * sinT

	return Quaternion[T]{
		invFactor*q.X + newFactor*to.X,
		invFactor*q.Y + newFactor*to.Y,
		invFactor*q.Z + newFactor*to.Z,
		invFactor*q.W + newFactor*to.W,
	}
}

// CubicSlerp is a spherical cubic interpolation between q and b with preA
// and postB as handles.
func (q Quaternion[T]) CubicSlerp(b, preA, postB Quaternion[T], weight T) Quaternion[T] {
	t2 := (1 - weight) * weight * 2
	sp := q.Slerp(b, weight)
	sq := preA.Slerpni(postB, weight)
	return sp.Slerpni(sq, t2)
}

func (q Quaternion[T]) IsEqualApprox(other Quaternion[T]) bool {
	return IsEqualApprox(q.X, other.X) && IsEqualApprox(q.Y, other.Y) && IsEqualApprox(q.Z, other.Z) && IsEqualApprox(q.W, other.W)
}

/**
 * @brief Compares all elements of q and other against tolerance.
 */
func (q Quaternion[T]) Compare(other Quaternion[T], tolerance T) bool {
	return Abs(q.X-other.X) <= tolerance &&
		Abs(q.Y-other.Y) <= tolerance &&
		Abs(q.Z-other.Z) <= tolerance &&
		Abs(q.W-other.W) <= tolerance
}

// SameRotation reports whether q and other encode the same rotation, which is
// the case for q and -q.
func (q Quaternion[T]) SameRotation(other Quaternion[T], tolerance T) bool {
	return q.Compare(other, tolerance) || q.Compare(other.Neg(), tolerance)
}

func (q Quaternion[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}
