package math

import (
	"golang.org/x/exp/rand"
)

// Random is a seeded generator for sampling vectors and rotations. It is not
// safe for concurrent use.
type Random struct {
	r *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

// Int returns a value in [min, max].
func (r *Random) Int(min, max int) int {
	return min + r.r.Intn(max-min+1)
}

// RandomRange returns a value in [min, max).
func RandomRange[T Real](r *Random, min, max T) T {
	return min + T(r.r.Float64())*(max-min)
}

// RandomVector3 samples every component in [min, max).
func RandomVector3[T Real](r *Random, min, max T) Vector3[T] {
	return Vector3[T]{RandomRange(r, min, max), RandomRange(r, min, max), RandomRange(r, min, max)}
}

// RandomUnitVector3 samples a direction uniformly on the unit sphere.
func RandomUnitVector3[T Real](r *Random) Vector3[T] {
	z := RandomRange[T](r, -1, 1)
	phi := RandomRange[T](r, 0, K_TAU)
	s, c := Sincos(phi)
	rad := Sqrt(1 - z*z)
	return Vector3[T]{rad * c, rad * s, z}
}

// RandomRotation samples a unit quaternion uniformly (Shoemake's method).
func RandomRotation[T Real](r *Random) Quaternion[T] {
	u1 := RandomRange[T](r, 0, 1)
	u2 := RandomRange[T](r, 0, K_TAU)
	u3 := RandomRange[T](r, 0, K_TAU)

	a := Sqrt(1 - u1)
	b := Sqrt(u1)
	s2, c2 := Sincos(u2)
	s3, c3 := Sincos(u3)

	return Quaternion[T]{a * s2, a * c2, b * s3, b * c3}
}
