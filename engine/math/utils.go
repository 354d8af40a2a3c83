package math

import "golang.org/x/exp/constraints"

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// WrapInt wraps value into [min, max). A zero-width range returns min.
func WrapInt[T constraints.Integer](value, min, max T) T {
	rng := max - min
	if rng == 0 {
		return min
	}
	return min + ((value-min)%rng+rng)%rng
}

// PosModInt is the integer modulo whose result has the sign of b.
func PosModInt[T constraints.Signed](a, b T) T {
	c := a % b
	if (c < 0 && b > 0) || (c > 0 && b < 0) {
		c += b
	}
	return c
}

// NearestPo2 returns the smallest power of two greater than or equal to value.
func NearestPo2(value int) int {
	value--
	value |= value >> 1
	value |= value >> 2
	value |= value >> 4
	value |= value >> 8
	value |= value >> 16
	value |= value >> 32
	value++
	return value
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func signInt(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
