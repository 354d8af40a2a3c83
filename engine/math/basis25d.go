package math

import "fmt"

/**
 * @brief Projects 3D positions onto a 2D screen for games that fake depth.
 * Each field is where one unit along that 3D axis lands in 2D.
 */
type Basis25D[T Real] struct {
	X, Y, Z Vector2[T]
}

func NewBasis25D[T Real](x, y, z Vector2[T]) Basis25D[T] {
	return Basis25D[T]{X: x, Y: y, Z: z}
}

// NewBasis25DFromComponents takes the three axes as six numbers.
func NewBasis25DFromComponents[T Real](xx, xy, yx, yy, zx, zy T) Basis25D[T] {
	return Basis25D[T]{X: Vector2[T]{xx, xy}, Y: Vector2[T]{yx, yy}, Z: Vector2[T]{zx, zy}}
}

// Basis25DFortyFive looks down at 45 degrees.
func Basis25DFortyFive[T Real]() Basis25D[T] {
	return NewBasis25DFromComponents[T](1, 0, 0, -K_SQRT_ONE_OVER_TWO, 0, K_SQRT_ONE_OVER_TWO)
}

// Basis25DIsometric is the classic 2:1-ish isometric projection.
func Basis25DIsometric[T Real]() Basis25D[T] {
	return NewBasis25DFromComponents[T](K_SQRT_THREE/2, 0.5, 0, -1, -K_SQRT_THREE/2, 0.5)
}

func Basis25DTopDown[T Real]() Basis25D[T] {
	return NewBasis25DFromComponents[T](1, 0, 0, 0, 0, 1)
}

func Basis25DFrontSide[T Real]() Basis25D[T] {
	return NewBasis25DFromComponents[T](1, 0, 0, -1, 0, 0)
}

func Basis25DObliqueY[T Real]() Basis25D[T] {
	return NewBasis25DFromComponents[T](1, 0, -1, -1, 0, 1)
}

func Basis25DObliqueZ[T Real]() Basis25D[T] {
	return NewBasis25DFromComponents[T](1, 0, 0, -1, -1, 1)
}

func (b Basis25D[T]) Index(i int) Vector2[T] {
	switch i {
	case 0:
		return b.X
	case 1:
		return b.Y
	case 2:
		return b.Z
	}
	indexPanic("Basis25D axis", i, 2)
	return Vector2[T]{}
}

func (b *Basis25D[T]) SetIndex(i int, v Vector2[T]) {
	switch i {
	case 0:
		b.X = v
	case 1:
		b.Y = v
	case 2:
		b.Z = v
	default:
		indexPanic("Basis25D axis", i, 2)
	}
}

// Xform projects a 3D vector to 2D.
func (b Basis25D[T]) Xform(v Vector3[T]) Vector2[T] {
	return b.X.MulScalar(v.X).Add(b.Y.MulScalar(v.Y)).Add(b.Z.MulScalar(v.Z))
}

// Transformed applies the basis of t to every axis, as in t * b.
func (b Basis25D[T]) Transformed(t Transform2D[T]) Basis25D[T] {
	return Basis25D[T]{X: t.BasisXform(b.X), Y: t.BasisXform(b.Y), Z: t.BasisXform(b.Z)}
}

func (b Basis25D[T]) IsEqualApprox(other Basis25D[T]) bool {
	return b.X.IsEqualApprox(other.X) && b.Y.IsEqualApprox(other.Y) && b.Z.IsEqualApprox(other.Z)
}

func (b Basis25D[T]) String() string {
	return fmt.Sprintf("[X: %v, Y: %v, Z: %v]", b.X, b.Y, b.Z)
}

// Transform25D pairs a 3D position with the Basis25D used to draw it.
type Transform25D[T Real] struct {
	Basis           Basis25D[T]
	SpatialPosition Vector3[T]
}

func NewTransform25D[T Real](basis Basis25D[T], position Vector3[T]) Transform25D[T] {
	return Transform25D[T]{Basis: basis, SpatialPosition: position}
}

// FlatPosition is the 2D screen position of the spatial position.
func (t Transform25D[T]) FlatPosition() Vector2[T] {
	return t.Basis.Xform(t.SpatialPosition)
}

// FlatTransform is an unrotated Transform2D placed at FlatPosition.
func (t Transform25D[T]) FlatTransform() Transform2D[T] {
	return NewTransform2DFromRotation(0, t.FlatPosition())
}

func (t Transform25D[T]) Translated(offset Vector3[T]) Transform25D[T] {
	t.SpatialPosition = t.SpatialPosition.Add(offset)
	return t
}

func (t Transform25D[T]) String() string {
	return fmt.Sprintf("%v - %v", t.Basis, t.SpatialPosition)
}
