package math

import "fmt"

// Vector2i is a 2D vector of integers, for grid coordinates and pixel sizes.
type Vector2i struct {
	X, Y int
}

// Vector3i is a 3D vector of integers, for voxel and cell coordinates.
type Vector3i struct {
	X, Y, Z int
}

func NewVector2i(x, y int) Vector2i {
	return Vector2i{x, y}
}

func NewVector3i(x, y, z int) Vector3i {
	return Vector3i{x, y, z}
}

func (v Vector2i) Index(i int) int {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	indexPanic("Vector2i", i, 1)
	return 0
}

func (v *Vector2i) SetIndex(i int, value int) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		indexPanic("Vector2i", i, 1)
	}
}

func (v Vector2i) Add(other Vector2i) Vector2i {
	return Vector2i{v.X + other.X, v.Y + other.Y}
}

func (v Vector2i) Sub(other Vector2i) Vector2i {
	return Vector2i{v.X - other.X, v.Y - other.Y}
}

func (v Vector2i) Neg() Vector2i {
	return Vector2i{-v.X, -v.Y}
}

func (v Vector2i) Mul(other Vector2i) Vector2i {
	return Vector2i{v.X * other.X, v.Y * other.Y}
}

func (v Vector2i) MulScalar(s int) Vector2i {
	return Vector2i{v.X * s, v.Y * s}
}

// Div is truncated integer division. A zero component divisor panics.
func (v Vector2i) Div(other Vector2i) Vector2i {
	return Vector2i{v.X / other.X, v.Y / other.Y}
}

func (v Vector2i) DivScalar(s int) Vector2i {
	return Vector2i{v.X / s, v.Y / s}
}

func (v Vector2i) Mod(other Vector2i) Vector2i {
	return Vector2i{v.X % other.X, v.Y % other.Y}
}

func (v Vector2i) ModScalar(s int) Vector2i {
	return Vector2i{v.X % s, v.Y % s}
}

// PosMod wraps every component into [0, mod) for positive mod.
func (v Vector2i) PosMod(mod int) Vector2i {
	return Vector2i{PosModInt(v.X, mod), PosModInt(v.Y, mod)}
}

func (v Vector2i) Abs() Vector2i {
	return Vector2i{absInt(v.X), absInt(v.Y)}
}

func (v Vector2i) Sign() Vector2i {
	return Vector2i{signInt(v.X), signInt(v.Y)}
}

func (v Vector2i) LengthSquared() int {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2i) Length() float64 {
	return Sqrt(float64(v.LengthSquared()))
}

func (v Vector2i) MaxAxis() Axis {
	if v.X < v.Y {
		return AxisY
	}
	return AxisX
}

func (v Vector2i) MinAxis() Axis {
	if v.X < v.Y {
		return AxisX
	}
	return AxisY
}

// Aspect returns X / Y as a floating point ratio.
func (v Vector2i) Aspect() float64 {
	return float64(v.X) / float64(v.Y)
}

func (v Vector2i) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

func (v Vector3i) Index(i int) int {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	indexPanic("Vector3i", i, 2)
	return 0
}

func (v *Vector3i) SetIndex(i int, value int) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		indexPanic("Vector3i", i, 2)
	}
}

func (v Vector3i) Add(other Vector3i) Vector3i {
	return Vector3i{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector3i) Sub(other Vector3i) Vector3i {
	return Vector3i{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vector3i) Neg() Vector3i {
	return Vector3i{-v.X, -v.Y, -v.Z}
}

func (v Vector3i) Mul(other Vector3i) Vector3i {
	return Vector3i{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vector3i) MulScalar(s int) Vector3i {
	return Vector3i{v.X * s, v.Y * s, v.Z * s}
}

// Div is truncated integer division. A zero component divisor panics.
func (v Vector3i) Div(other Vector3i) Vector3i {
	return Vector3i{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

func (v Vector3i) DivScalar(s int) Vector3i {
	return Vector3i{v.X / s, v.Y / s, v.Z / s}
}

func (v Vector3i) Mod(other Vector3i) Vector3i {
	return Vector3i{v.X % other.X, v.Y % other.Y, v.Z % other.Z}
}

func (v Vector3i) ModScalar(s int) Vector3i {
	return Vector3i{v.X % s, v.Y % s, v.Z % s}
}

func (v Vector3i) PosMod(mod int) Vector3i {
	return Vector3i{PosModInt(v.X, mod), PosModInt(v.Y, mod), PosModInt(v.Z, mod)}
}

func (v Vector3i) Abs() Vector3i {
	return Vector3i{absInt(v.X), absInt(v.Y), absInt(v.Z)}
}

func (v Vector3i) Sign() Vector3i {
	return Vector3i{signInt(v.X), signInt(v.Y), signInt(v.Z)}
}

func (v Vector3i) LengthSquared() int {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3i) Length() float64 {
	return Sqrt(float64(v.LengthSquared()))
}

// MaxAxis uses the same strict comparison chain as Vector3.MaxAxis.
func (v Vector3i) MaxAxis() Axis {
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

func (v Vector3i) MinAxis() Axis {
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

func (v Vector3i) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}
