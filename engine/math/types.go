package math

import "golang.org/x/exp/constraints"

// Real is the set of scalar types the floating-point value types are built on.
// Both precision tiers share a single implementation; float32 is the engine
// native tier and float64 the double-precision one.
type Real interface {
	constraints.Float
}

// Axis names a component of a vector. Returned by MaxAxis/MinAxis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisW
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	case AxisW:
		return "W"
	}
	return "?"
}

// Single precision (engine native) tier.
type (
	Vector2f      = Vector2[float32]
	Vector3f      = Vector3[float32]
	Vector4f      = Vector4[float32]
	Quaternionf   = Quaternion[float32]
	Basisf        = Basis[float32]
	Transformf    = Transform[float32]
	Transform2Df  = Transform2D[float32]
	Planef        = Plane[float32]
	AABBf         = AABB[float32]
	Rect2f        = Rect2[float32]
	Basis25Df     = Basis25D[float32]
	Transform25Df = Transform25D[float32]
)

// Double precision tier.
type (
	Vector2d      = Vector2[float64]
	Vector3d      = Vector3[float64]
	Vector4d      = Vector4[float64]
	Quaterniond   = Quaternion[float64]
	Basisd        = Basis[float64]
	Transformd    = Transform[float64]
	Transform2Dd  = Transform2D[float64]
	Planed        = Plane[float64]
	AABBd         = AABB[float64]
	Rect2d        = Rect2[float64]
	Basis25Dd     = Basis25D[float64]
	Transform25Dd = Transform25D[float64]
)
