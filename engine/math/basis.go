package math

import (
	"fmt"

	"github.com/spaghettifunk/extramath/engine/core"
)

// Basis is a 3x3 matrix holding rotation and scale (M = R·S). It is stored as
// three rows but its public axes are the columns: X(), Y() and Z() are the
// local X, Y and Z axes.
type Basis[T Real] struct {
	Row0, Row1, Row2 Vector3[T]
}

// NewBasis builds a basis from its three column axes.
func NewBasis[T Real](x, y, z Vector3[T]) Basis[T] {
	return Basis[T]{
		Row0: Vector3[T]{x.X, y.X, z.X},
		Row1: Vector3[T]{x.Y, y.Y, z.Y},
		Row2: Vector3[T]{x.Z, y.Z, z.Z},
	}
}

// NewBasisRows builds a basis from nine entries in row-major reading order.
func NewBasisRows[T Real](xx, xy, xz, yx, yy, yz, zx, zy, zz T) Basis[T] {
	return Basis[T]{
		Row0: Vector3[T]{xx, xy, xz},
		Row1: Vector3[T]{yx, yy, yz},
		Row2: Vector3[T]{zx, zy, zz},
	}
}

/**
 * @brief Returns the identity basis: no rotation and unit scale.
 */
func BasisIdentity[T Real]() Basis[T] {
	return NewBasisRows[T](1, 0, 0, 0, 1, 0, 0, 0, 1)
}

// NewBasisFromScale returns a diagonal basis.
func NewBasisFromScale[T Real](scale Vector3[T]) Basis[T] {
	return NewBasisRows(scale.X, 0, 0, 0, scale.Y, 0, 0, 0, scale.Z)
}

// NewBasisFromAxisAngle is a rotation of phi radians around axis (Rodrigues'
// formula). axis must be normalized.
func NewBasisFromAxisAngle[T Real](axis Vector3[T], phi T) Basis[T] {
	if debugChecks {
		assertNormalized(axis.IsNormalized(), "NewBasisFromAxisAngle", "axis")
	}
	var b Basis[T]
	axisSq := Vector3[T]{axis.X * axis.X, axis.Y * axis.Y, axis.Z * axis.Z}
	sine, cosine := Sincos(phi)

	b.Row0.X = axisSq.X + cosine*(1-axisSq.X)
	b.Row1.Y = axisSq.Y + cosine*(1-axisSq.Y)
	b.Row2.Z = axisSq.Z + cosine*(1-axisSq.Z)

	t := 1 - cosine

	xyzt := axis.X * axis.Y * t
	zyxs := axis.Z * sine
	b.Row0.Y = xyzt - zyxs
	b.Row1.X = xyzt + zyxs

	xyzt = axis.X * axis.Z * t
	zyxs = axis.Y * sine
	b.Row0.Z = xyzt + zyxs
	b.Row2.X = xyzt - zyxs

	xyzt = axis.Y * axis.Z * t
	zyxs = axis.X * sine
	b.Row1.Z = xyzt - zyxs
	b.Row2.Y = xyzt + zyxs

	return b
}

// NewBasisFromEuler composes Y·X·Z rotations: Z is applied first, then X, then Y.
func NewBasisFromEuler[T Real](euler Vector3[T]) Basis[T] {
	s, c := Sincos(euler.X)
	xmat := NewBasisRows(1, 0, 0, 0, c, -s, 0, s, c)

	s, c = Sincos(euler.Y)
	ymat := NewBasisRows(c, 0, s, 0, 1, 0, -s, 0, c)

	s, c = Sincos(euler.Z)
	zmat := NewBasisRows(c, -s, 0, s, c, 0, 0, 0, 1)

	return ymat.Mul(xmat).Mul(zmat)
}

// NewBasisFromQuaternion converts a rotation quaternion to a matrix. The
// quaternion does not need to be unit length; it is normalized implicitly.
func NewBasisFromQuaternion[T Real](q Quaternion[T]) Basis[T] {
	s := 2 / q.LengthSquared()

	xs := q.X * s
	ys := q.Y * s
	zs := q.Z * s
	wx := q.W * xs
	wy := q.W * ys
	wz := q.W * zs
	xx := q.X * xs
	xy := q.X * ys
	xz := q.X * zs
	yy := q.Y * ys
	yz := q.Y * zs
	zz := q.Z * zs

	return NewBasisRows(
		1-(yy+zz), xy-wz, xz+wy,
		xy+wz, 1-(xx+zz), yz-wx,
		xz-wy, yz+wx, 1-(xx+yy))
}

// NewBasisFromQuaternionScale returns R·S for rotation q and the given scale.
func NewBasisFromQuaternionScale[T Real](q Quaternion[T], scale Vector3[T]) Basis[T] {
	return NewBasisFromQuaternion(q).Mul(NewBasisFromScale(scale))
}

// X returns the local X axis (column 0).
func (b Basis[T]) X() Vector3[T] {
	return b.Column(0)
}

// Y returns the local Y axis (column 1).
func (b Basis[T]) Y() Vector3[T] {
	return b.Column(1)
}

// Z returns the local Z axis (column 2).
func (b Basis[T]) Z() Vector3[T] {
	return b.Column(2)
}

/**
 * @brief Replaces the local X axis (column 0).
 */
func (b *Basis[T]) SetX(v Vector3[T]) {
	b.SetColumn(0, v)
}

/**
 * @brief Replaces the local Y axis (column 1).
 */
func (b *Basis[T]) SetY(v Vector3[T]) {
	b.SetColumn(1, v)
}

/**
 * @brief Replaces the local Z axis (column 2).
 */
func (b *Basis[T]) SetZ(v Vector3[T]) {
	b.SetColumn(2, v)
}

// Column returns axis i, reading entry i of every row.
func (b Basis[T]) Column(i int) Vector3[T] {
	return Vector3[T]{b.Row0.Index(i), b.Row1.Index(i), b.Row2.Index(i)}
}

// SetColumn writes axis i into entry i of every row.
func (b *Basis[T]) SetColumn(i int, v Vector3[T]) {
	b.Row0.SetIndex(i, v.X)
	b.Row1.SetIndex(i, v.Y)
	b.Row2.SetIndex(i, v.Z)
}

/**
 * @brief Returns row i as stored. Panics with ErrIndexOutOfRange outside 0..2.
 */
func (b Basis[T]) Row(i int) Vector3[T] {
	switch i {
	case 0:
		return b.Row0
	case 1:
		return b.Row1
	case 2:
		return b.Row2
	}
	indexPanic("Basis row", i, 2)
	return Vector3[T]{}
}

/**
 * @brief Replaces row i. Panics with ErrIndexOutOfRange outside 0..2.
 */
func (b *Basis[T]) SetRow(i int, v Vector3[T]) {
	switch i {
	case 0:
		b.Row0 = v
	case 1:
		b.Row1 = v
	case 2:
		b.Row2 = v
	default:
		indexPanic("Basis row", i, 2)
	}
}

// Index returns column i, matching the axis accessors.
func (b Basis[T]) Index(i int) Vector3[T] {
	if i < 0 || i > 2 {
		indexPanic("Basis column", i, 2)
	}
	return b.Column(i)
}

/**
 * @brief Returns the determinant, expanded along the first row. Negative means the basis mirrors.
 */
func (b Basis[T]) Determinant() T {
	cofac00 := b.Row1.Y*b.Row2.Z - b.Row1.Z*b.Row2.Y
	cofac10 := b.Row1.Z*b.Row2.X - b.Row1.X*b.Row2.Z
	cofac20 := b.Row1.X*b.Row2.Y - b.Row1.Y*b.Row2.X

	return b.Row0.X*cofac00 + b.Row0.Y*cofac10 + b.Row0.Z*cofac20
}

// Inverse returns the adjugate over the determinant, or ErrSingularMatrix
// when the determinant is exactly zero.
func (b Basis[T]) Inverse() (Basis[T], error) {
	cofac00 := b.Row1.Y*b.Row2.Z - b.Row1.Z*b.Row2.Y
	cofac10 := b.Row1.Z*b.Row2.X - b.Row1.X*b.Row2.Z
	cofac20 := b.Row1.X*b.Row2.Y - b.Row1.Y*b.Row2.X

	det := b.Row0.X*cofac00 + b.Row0.Y*cofac10 + b.Row0.Z*cofac20
	if det == 0 {
		return Basis[T]{}, fmt.Errorf("basis %v: %w", b, core.ErrSingularMatrix)
	}

	detInv := 1 / det

	cofac01 := b.Row0.Z*b.Row2.Y - b.Row0.Y*b.Row2.Z
	cofac02 := b.Row0.Y*b.Row1.Z - b.Row0.Z*b.Row1.Y
	cofac11 := b.Row0.X*b.Row2.Z - b.Row0.Z*b.Row2.X
	cofac12 := b.Row0.Z*b.Row1.X - b.Row0.X*b.Row1.Z
	cofac21 := b.Row0.Y*b.Row2.X - b.Row0.X*b.Row2.Y
	cofac22 := b.Row0.X*b.Row1.Y - b.Row0.Y*b.Row1.X

	return NewBasisRows(
		cofac00*detInv, cofac01*detInv, cofac02*detInv,
		cofac10*detInv, cofac11*detInv, cofac12*detInv,
		cofac20*detInv, cofac21*detInv, cofac22*detInv), nil
}

/**
 * @brief Returns the transpose. For an orthonormal basis this is the inverse.
 */
func (b Basis[T]) Transposed() Basis[T] {
	return NewBasis(b.Row0, b.Row1, b.Row2)
}

// Orthonormalized runs Gram-Schmidt over the columns: X is normalized first,
// Y is made orthogonal to X, then Z to both.
func (b Basis[T]) Orthonormalized() Basis[T] {
	column0 := b.Column(0)
	column1 := b.Column(1)
	column2 := b.Column(2)

	column0.Normalize()
	column1 = column1.Sub(column0.MulScalar(column0.Dot(column1)))
	column1.Normalize()
	column2 = column2.Sub(column0.MulScalar(column0.Dot(column2))).Sub(column1.MulScalar(column1.Dot(column2)))
	column2.Normalize()

	return NewBasis(column0, column1, column2)
}

// Tdotx is the dot product of column 0 with v.
func (b Basis[T]) Tdotx(v Vector3[T]) T {
	return b.Row0.X*v.X + b.Row1.X*v.Y + b.Row2.X*v.Z
}

// Tdoty is the dot product of column 1 with v.
func (b Basis[T]) Tdoty(v Vector3[T]) T {
	return b.Row0.Y*v.X + b.Row1.Y*v.Y + b.Row2.Y*v.Z
}

// Tdotz is the dot product of column 2 with v.
func (b Basis[T]) Tdotz(v Vector3[T]) T {
	return b.Row0.Z*v.X + b.Row1.Z*v.Y + b.Row2.Z*v.Z
}

// Mul returns the matrix product b * other.
func (b Basis[T]) Mul(other Basis[T]) Basis[T] {
	return NewBasisRows(
		other.Tdotx(b.Row0), other.Tdoty(b.Row0), other.Tdotz(b.Row0),
		other.Tdotx(b.Row1), other.Tdoty(b.Row1), other.Tdotz(b.Row1),
		other.Tdotx(b.Row2), other.Tdoty(b.Row2), other.Tdotz(b.Row2))
}

// Xform transforms v by the matrix.
func (b Basis[T]) Xform(v Vector3[T]) Vector3[T] {
	return Vector3[T]{b.Row0.Dot(v), b.Row1.Dot(v), b.Row2.Dot(v)}
}

// XformInv transforms v by the transpose, which is the inverse only for
// orthonormal bases.
func (b Basis[T]) XformInv(v Vector3[T]) Vector3[T] {
	return Vector3[T]{b.Tdotx(v), b.Tdoty(v), b.Tdotz(v)}
}

// Rotated pre-multiplies by a rotation of phi radians around axis.
func (b Basis[T]) Rotated(axis Vector3[T], phi T) Basis[T] {
	return NewBasisFromAxisAngle(axis, phi).Mul(b)
}

// Scaled scales the rows, i.e. pre-multiplies by a diagonal matrix.
func (b Basis[T]) Scaled(scale Vector3[T]) Basis[T] {
	b.Row0 = b.Row0.MulScalar(scale.X)
	b.Row1 = b.Row1.MulScalar(scale.Y)
	b.Row2 = b.Row2.MulScalar(scale.Z)
	return b
}

// Scale returns the column lengths, negated when the determinant is negative.
func (b Basis[T]) Scale() Vector3[T] {
	detSign := Sign(b.Determinant())
	return Vector3[T]{
		b.Column(0).Length(),
		b.Column(1).Length(),
		b.Column(2).Length(),
	}.MulScalar(detSign)
}

// Quat converts the matrix to a quaternion with the trace based method. It
// is only exact for orthonormal input; use RotationQuat for bases that may
// carry scale or shear.
func (b Basis[T]) Quat() Quaternion[T] {
	trace := b.Row0.X + b.Row1.Y + b.Row2.Z

	if trace > 0 {
		s := Sqrt(trace+1) * 2
		invS := 1 / s
		return Quaternion[T]{
			(b.Row2.Y - b.Row1.Z) * invS,
			(b.Row0.Z - b.Row2.X) * invS,
			(b.Row1.X - b.Row0.Y) * invS,
			s * 0.25,
		}
	}

	if b.Row0.X > b.Row1.Y && b.Row0.X > b.Row2.Z {
		s := Sqrt(b.Row0.X-b.Row1.Y-b.Row2.Z+1) * 2
		invS := 1 / s
		return Quaternion[T]{
			s * 0.25,
			(b.Row0.Y + b.Row1.X) * invS,
			(b.Row0.Z + b.Row2.X) * invS,
			(b.Row2.Y - b.Row1.Z) * invS,
		}
	}

	if b.Row1.Y > b.Row2.Z {
		s := Sqrt(-b.Row0.X+b.Row1.Y-b.Row2.Z+1) * 2
		invS := 1 / s
		return Quaternion[T]{
			(b.Row0.Y + b.Row1.X) * invS,
			s * 0.25,
			(b.Row1.Z + b.Row2.Y) * invS,
			(b.Row0.Z - b.Row2.X) * invS,
		}
	}

	s := Sqrt(-b.Row0.X-b.Row1.Y+b.Row2.Z+1) * 2
	invS := 1 / s
	return Quaternion[T]{
		(b.Row0.Z + b.Row2.X) * invS,
		(b.Row1.Z + b.Row2.Y) * invS,
		s * 0.25,
		(b.Row1.X - b.Row0.Y) * invS,
	}
}

// RotationQuat extracts the rotation of an arbitrary basis: it orthonormalizes
// first and flips the scale when the determinant is negative.
func (b Basis[T]) RotationQuat() Quaternion[T] {
	orthonormalized := b.Orthonormalized()
	if orthonormalized.Determinant() < 0 {
		orthonormalized = orthonormalized.Scaled(Vector3[T]{-1, -1, -1})
	}
	return orthonormalized.Quat()
}

// GetEuler decomposes the rotation into YXZ Euler angles (radians). The
// result is such that NewBasisFromEuler(b.GetEuler()) reproduces the rotation.
func (b Basis[T]) GetEuler() Vector3[T] {
	o := b.Orthonormalized()

	var euler Vector3[T]
	mzy := o.Row1.Z

	if mzy < 1 {
		if mzy > -1 {
			euler.X = Asin(-mzy)
			euler.Y = Atan2(o.Row0.Z, o.Row2.Z)
			euler.Z = Atan2(o.Row1.X, o.Row1.Y)
		} else {
			// Gimbal lock, looking straight down.
			euler.X = K_HALF_PI
			euler.Y = -Atan2(-o.Row0.Y, o.Row0.X)
		}
	} else {
		// Gimbal lock, looking straight up.
		euler.X = -K_HALF_PI
		euler.Y = -Atan2(o.Row0.Y, o.Row0.X)
	}

	return euler
}

// Slerp interpolates the rotation of b toward target. Scale is discarded.
func (b Basis[T]) Slerp(target Basis[T], weight T) Basis[T] {
	from := b.RotationQuat()
	to := target.RotationQuat()
	return NewBasisFromQuaternion(from.Slerp(to, weight))
}

/**
 * @brief Compares every entry with IsEqualApprox.
 */
func (b Basis[T]) IsEqualApprox(other Basis[T]) bool {
	return b.Row0.IsEqualApprox(other.Row0) && b.Row1.IsEqualApprox(other.Row1) && b.Row2.IsEqualApprox(other.Row2)
}

// Compare checks every entry against tolerance.
func (b Basis[T]) Compare(other Basis[T], tolerance T) bool {
	return b.Row0.Compare(other.Row0, tolerance) && b.Row1.Compare(other.Row1, tolerance) && b.Row2.Compare(other.Row2, tolerance)
}

func (b Basis[T]) String() string {
	return fmt.Sprintf("[X: %v, Y: %v, Z: %v]", b.Column(0), b.Column(1), b.Column(2))
}
