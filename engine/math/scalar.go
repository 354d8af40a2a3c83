package math

import (
	m "math"
	"unsafe"

	"github.com/chewxy/math32"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI = 3.14159265358979323846264338327950288
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 = 2.0 * K_PI
	/** @brief Alias of K_PI_2, one full turn in radians. */
	K_TAU = K_PI_2
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI = 0.25 * K_PI
	/** @brief One divided by an approximate representation of PI. */
	K_ONE_OVER_PI = 1.0 / K_PI
	/** @brief One divided by half of an approximate representation of PI. */
	K_ONE_OVER_TWO_PI = 1.0 / K_PI_2
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO = 1.41421356237309504880
	/** @brief An approximation of the square root of 3. */
	K_SQRT_THREE = 1.73205080756887729352
	/** @brief One divided by an approximation of the square root of 2. */
	K_SQRT_ONE_OVER_TWO = 0.70710678118654752440
	/** @brief One divided by an approximation of the square root of 3. */
	K_SQRT_ONE_OVER_THREE = 0.57735026918962576450
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER = 180.0 / K_PI
	/** @brief A huge number that should be larger than any valid number used. */
	K_INFINITY = 1e30
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON = 1.192092896e-07
	/** @brief Tolerance used by the IsNormalized family. */
	K_UNIT_EPSILON = 0.001
)

// is32 reports whether T is a 32-bit float. Named float types count too.
func is32[T Real]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// Epsilon is the comparison tolerance of the precision tier T: 1e-6 for
// single precision and 1e-14 for double precision.
func Epsilon[T Real]() T {
	if is32[T]() {
		return 1e-6
	}
	return 1e-14
}

/**
 * Transcendentals. Single precision goes through chewxy/math32 so float32
 * callers never bounce through float64; everything else uses the standard library.
 */

func Sqrt[T Real](x T) T {
	if is32[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(m.Sqrt(float64(x)))
}

func Abs[T Real](x T) T {
	if is32[T]() {
		return T(math32.Abs(float32(x)))
	}
	return T(m.Abs(float64(x)))
}

func Sin[T Real](x T) T {
	if is32[T]() {
		return T(math32.Sin(float32(x)))
	}
	return T(m.Sin(float64(x)))
}

func Cos[T Real](x T) T {
	if is32[T]() {
		return T(math32.Cos(float32(x)))
	}
	return T(m.Cos(float64(x)))
}

// Sincos returns Sin(x), Cos(x).
func Sincos[T Real](x T) (T, T) {
	if is32[T]() {
		s, c := math32.Sincos(float32(x))
		return T(s), T(c)
	}
	s, c := m.Sincos(float64(x))
	return T(s), T(c)
}

func Tan[T Real](x T) T {
	if is32[T]() {
		return T(math32.Tan(float32(x)))
	}
	return T(m.Tan(float64(x)))
}

func Asin[T Real](x T) T {
	if is32[T]() {
		return T(math32.Asin(float32(x)))
	}
	return T(m.Asin(float64(x)))
}

func Acos[T Real](x T) T {
	if is32[T]() {
		return T(math32.Acos(float32(x)))
	}
	return T(m.Acos(float64(x)))
}

func Atan[T Real](x T) T {
	if is32[T]() {
		return T(math32.Atan(float32(x)))
	}
	return T(m.Atan(float64(x)))
}

func Atan2[T Real](y, x T) T {
	if is32[T]() {
		return T(math32.Atan2(float32(y), float32(x)))
	}
	return T(m.Atan2(float64(y), float64(x)))
}

func Sinh[T Real](x T) T {
	if is32[T]() {
		return T(math32.Sinh(float32(x)))
	}
	return T(m.Sinh(float64(x)))
}

func Cosh[T Real](x T) T {
	if is32[T]() {
		return T(math32.Cosh(float32(x)))
	}
	return T(m.Cosh(float64(x)))
}

func Tanh[T Real](x T) T {
	if is32[T]() {
		return T(math32.Tanh(float32(x)))
	}
	return T(m.Tanh(float64(x)))
}

func Exp[T Real](x T) T {
	if is32[T]() {
		return T(math32.Exp(float32(x)))
	}
	return T(m.Exp(float64(x)))
}

func Log[T Real](x T) T {
	if is32[T]() {
		return T(math32.Log(float32(x)))
	}
	return T(m.Log(float64(x)))
}

func Pow[T Real](x, y T) T {
	if is32[T]() {
		return T(math32.Pow(float32(x), float32(y)))
	}
	return T(m.Pow(float64(x), float64(y)))
}

func Floor[T Real](x T) T {
	if is32[T]() {
		return T(math32.Floor(float32(x)))
	}
	return T(m.Floor(float64(x)))
}

func Ceil[T Real](x T) T {
	if is32[T]() {
		return T(math32.Ceil(float32(x)))
	}
	return T(m.Ceil(float64(x)))
}

// Round rounds half away from zero.
func Round[T Real](x T) T {
	if is32[T]() {
		return T(math32.Round(float32(x)))
	}
	return T(m.Round(float64(x)))
}

// Mod is the truncated floating-point remainder; the result has the sign of x.
func Mod[T Real](x, y T) T {
	if is32[T]() {
		return T(math32.Mod(float32(x), float32(y)))
	}
	return T(m.Mod(float64(x), float64(y)))
}

func IsNaN[T Real](x T) bool {
	return x != x
}

func IsInf[T Real](x T) bool {
	return !IsNaN(x) && IsNaN(x-x)
}

// Sign returns -1, 0 or 1.
func Sign[T Real](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// PosMod is Mod whose result always has the sign of b.
func PosMod[T Real](a, b T) T {
	c := Mod(a, b)
	if (c < 0 && b > 0) || (c > 0 && b < 0) {
		c += b
	}
	return c
}

func DegToRad[T Real](degrees T) T {
	return degrees * K_DEG2RAD_MULTIPLIER
}

func RadToDeg[T Real](radians T) T {
	return radians * K_RAD2DEG_MULTIPLIER
}

// Lerp linearly interpolates from `from` to `to` by weight.
func Lerp[T Real](from, to, weight T) T {
	return from + (to-from)*weight
}

// InverseLerp returns the weight that Lerp would need to produce value.
func InverseLerp[T Real](from, to, value T) T {
	return (value - from) / (to - from)
}

// LerpAngle interpolates between two angles in radians along the shortest arc.
func LerpAngle[T Real](from, to, weight T) T {
	difference := Mod(to-from, K_TAU)
	distance := Mod(2*difference, K_TAU) - difference
	return from + distance*weight
}

// Wrap wraps value into [min, max). A zero-width range returns min.
func Wrap[T Real](value, min, max T) T {
	rng := max - min
	if IsZeroApprox(rng) {
		return min
	}
	return min + PosMod(value-min, rng)
}

// MoveToward moves from toward to by at most delta.
func MoveToward[T Real](from, to, delta T) T {
	if Abs(to-from) <= delta {
		return to
	}
	return from + Sign(to-from)*delta
}

func SmoothStep[T Real](from, to, weight T) T {
	if IsEqualApprox(from, to) {
		return from
	}
	x := Clamp((weight-from)/(to-from), 0, 1)
	return x * x * (3 - 2*x)
}

// Ease applies the engine easing curve: c > 0 is ease in/out, c < 0 is
// in-out/out-in and 0 is constant.
func Ease[T Real](s, curve T) T {
	if s < 0 {
		s = 0
	} else if s > 1 {
		s = 1
	}

	if curve > 0 {
		if curve < 1 {
			return 1 - Pow(1-s, 1/curve)
		}
		return Pow(s, curve)
	}

	if curve < 0 {
		if s < 0.5 {
			return Pow(s*2, -curve) * 0.5
		}
		return (1-Pow(1-(s-0.5)*2, -curve))*0.5 + 0.5
	}

	return 0
}

// Stepify snaps s to the nearest multiple of step. A zero step is a no-op.
func Stepify[T Real](s, step T) T {
	if step != 0 {
		return Floor(s/step+0.5) * step
	}
	return s
}

// IsEqualApprox compares with a tolerance scaled by the magnitude of a, never
// below Epsilon of the tier.
func IsEqualApprox[T Real](a, b T) bool {
	// Check for exact equality first, required to handle "infinity" values.
	if a == b {
		return true
	}
	eps := Epsilon[T]()
	tolerance := eps * Abs(a)
	if tolerance < eps {
		tolerance = eps
	}
	return Abs(a-b) < tolerance
}

// IsEqualApproxTol compares with a caller supplied absolute tolerance.
func IsEqualApproxTol[T Real](a, b, tolerance T) bool {
	if a == b {
		return true
	}
	return Abs(a-b) < tolerance
}

func IsZeroApprox[T Real](s T) bool {
	return Abs(s) < Epsilon[T]()
}

func Cartesian2Polar[T Real](x, y T) Vector2[T] {
	return Vector2[T]{Sqrt(x*x + y*y), Atan2(y, x)}
}

func Polar2Cartesian[T Real](r, th T) Vector2[T] {
	s, c := Sincos(th)
	return Vector2[T]{r * c, r * s}
}
