package math

import "fmt"

/**
 * @brief Represents an affine 3D transform: p' = Basis·p + Origin.
 */
type Transform[T Real] struct {
	/** @brief The rotation and scale part. */
	Basis Basis[T]
	/** @brief The translation part. */
	Origin Vector3[T]
}

func NewTransform[T Real](basis Basis[T], origin Vector3[T]) Transform[T] {
	return Transform[T]{Basis: basis, Origin: origin}
}

// NewTransformFromColumns builds a transform from its three basis axes and origin.
func NewTransformFromColumns[T Real](x, y, z, origin Vector3[T]) Transform[T] {
	return Transform[T]{Basis: NewBasis(x, y, z), Origin: origin}
}

func NewTransformFromQuaternion[T Real](q Quaternion[T], origin Vector3[T]) Transform[T] {
	return Transform[T]{Basis: NewBasisFromQuaternion(q), Origin: origin}
}

func TransformIdentity[T Real]() Transform[T] {
	return Transform[T]{Basis: BasisIdentity[T]()}
}

// TransformFlipX mirrors the X axis.
func TransformFlipX[T Real]() Transform[T] {
	return Transform[T]{Basis: NewBasisFromScale(Vector3[T]{-1, 1, 1})}
}

// TransformFlipY mirrors the Y axis.
func TransformFlipY[T Real]() Transform[T] {
	return Transform[T]{Basis: NewBasisFromScale(Vector3[T]{1, -1, 1})}
}

// TransformFlipZ mirrors the Z axis.
func TransformFlipZ[T Real]() Transform[T] {
	return Transform[T]{Basis: NewBasisFromScale(Vector3[T]{1, 1, -1})}
}

// Index returns the basis columns for 0..2 and the origin for 3.
func (t Transform[T]) Index(i int) Vector3[T] {
	switch i {
	case 0, 1, 2:
		return t.Basis.Column(i)
	case 3:
		return t.Origin
	}
	indexPanic("Transform column", i, 3)
	return Vector3[T]{}
}

func (t *Transform[T]) SetIndex(i int, v Vector3[T]) {
	switch i {
	case 0, 1, 2:
		t.Basis.SetColumn(i, v)
	case 3:
		t.Origin = v
	default:
		indexPanic("Transform column", i, 3)
	}
}

// Mul composes t * other: other is applied first, then t.
func (t Transform[T]) Mul(other Transform[T]) Transform[T] {
	return Transform[T]{
		Basis:  t.Basis.Mul(other.Basis),
		Origin: t.Xform(other.Origin),
	}
}

/**
 * @brief Inverts a transform that may carry scale and shear.
 * @return ErrSingularMatrix when the basis has a zero determinant.
 */
func (t Transform[T]) AffineInverse() (Transform[T], error) {
	inv, err := t.Basis.Inverse()
	if err != nil {
		return Transform[T]{}, fmt.Errorf("affine inverse: %w", err)
	}
	return Transform[T]{Basis: inv, Origin: inv.Xform(t.Origin.Neg())}, nil
}

// Inverse assumes a pure rotation and translation and uses the transpose of
// the basis. The result is wrong for scaled bases; use AffineInverse there.
func (t Transform[T]) Inverse() Transform[T] {
	inv := t.Basis.Transposed()
	return Transform[T]{Basis: inv, Origin: inv.Xform(t.Origin.Neg())}
}

/**
 * @brief Blends toward other by weight. Rotation is slerped, scale and origin
 * are interpolated linearly. Shear is not preserved.
 */
func (t Transform[T]) InterpolateWith(other Transform[T], weight T) Transform[T] {
	srcScale := t.Basis.Scale()
	srcRot := t.Basis.RotationQuat()
	srcLoc := t.Origin

	dstScale := other.Basis.Scale()
	dstRot := other.Basis.RotationQuat()
	dstLoc := other.Origin

	rot := srcRot.Slerp(dstRot, weight).Normalized()
	scale := srcScale.LinearInterpolate(dstScale, weight)

	return Transform[T]{
		Basis:  NewBasisFromQuaternionScale(rot, scale),
		Origin: srcLoc.LinearInterpolate(dstLoc, weight),
	}
}

// LookingAt keeps the origin and rotates so that -Z points at target.
func (t Transform[T]) LookingAt(target, up Vector3[T]) Transform[T] {
	t.SetLookAt(t.Origin, target, up)
	return t
}

// SetLookAt places the transform at eye with -Z pointing at target and Y
// roughly along up. The basis is right handed and orthonormal.
func (t *Transform[T]) SetLookAt(eye, target, up Vector3[T]) {
	vZ := eye.Sub(target)
	vZ.Normalize()

	vY := up
	vX := vY.Cross(vZ)

	// Recompute Y so all three axes are orthogonal.
	vY = vZ.Cross(vX)

	vX.Normalize()
	vY.Normalize()

	t.Basis = NewBasis(vX, vY, vZ)
	t.Origin = eye
}

func (t Transform[T]) Orthonormalized() Transform[T] {
	t.Basis = t.Basis.Orthonormalized()
	return t
}

// Rotated pre-multiplies by a rotation of phi radians around axis, rotating
// the origin as well.
func (t Transform[T]) Rotated(axis Vector3[T], phi T) Transform[T] {
	return NewTransform(NewBasisFromAxisAngle(axis, phi), Vector3[T]{}).Mul(t)
}

// Scaled pre-multiplies by a scale, scaling the origin as well.
func (t Transform[T]) Scaled(scale Vector3[T]) Transform[T] {
	t.Basis = t.Basis.Scaled(scale)
	t.Origin = t.Origin.Mul(scale)
	return t
}

// Translated moves the origin by offset expressed in local coordinates.
func (t Transform[T]) Translated(offset Vector3[T]) Transform[T] {
	t.Origin = t.Origin.Add(t.Basis.Xform(offset))
	return t
}

func (t Transform[T]) Xform(v Vector3[T]) Vector3[T] {
	return t.Basis.Xform(v).Add(t.Origin)
}

// XformInv applies the inverse for orthonormal bases.
func (t Transform[T]) XformInv(v Vector3[T]) Vector3[T] {
	return t.Basis.XformInv(v.Sub(t.Origin))
}

// XformPlane transforms a plane by moving a point on it and its normal.
func (t Transform[T]) XformPlane(p Plane[T]) Plane[T] {
	point := t.Xform(p.Normal.MulScalar(p.D))
	pointDir := t.Xform(p.Normal.MulScalar(p.D + 1))
	normal := pointDir.Sub(point)
	normal.Normalize()
	return NewPlaneFromNormalPoint(normal, point)
}

// XformAABB returns the box enclosing the eight transformed corners.
func (t Transform[T]) XformAABB(box AABB[T]) AABB[T] {
	result := AABB[T]{Position: t.Xform(box.Endpoint(0))}
	for i := 1; i < 8; i++ {
		result = result.Expand(t.Xform(box.Endpoint(i)))
	}
	return result
}

func (t Transform[T]) IsEqualApprox(other Transform[T]) bool {
	return t.Basis.IsEqualApprox(other.Basis) && t.Origin.IsEqualApprox(other.Origin)
}

func (t Transform[T]) Compare(other Transform[T], tolerance T) bool {
	return t.Basis.Compare(other.Basis, tolerance) && t.Origin.Compare(other.Origin, tolerance)
}

func (t Transform[T]) String() string {
	return fmt.Sprintf("%v - %v", t.Basis, t.Origin)
}
