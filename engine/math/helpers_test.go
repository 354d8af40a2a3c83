package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVec3InDelta[T Real](t *testing.T, expected, actual Vector3[T], delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, float64(expected.X), float64(actual.X), delta, msgAndArgs...)
	assert.InDelta(t, float64(expected.Y), float64(actual.Y), delta, msgAndArgs...)
	assert.InDelta(t, float64(expected.Z), float64(actual.Z), delta, msgAndArgs...)
}

func assertBasisInDelta[T Real](t *testing.T, expected, actual Basis[T], delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assertVec3InDelta(t, expected.Row0, actual.Row0, delta, msgAndArgs...)
	assertVec3InDelta(t, expected.Row1, actual.Row1, delta, msgAndArgs...)
	assertVec3InDelta(t, expected.Row2, actual.Row2, delta, msgAndArgs...)
}

// randomBasis returns a rotation scaled by factors in [0.5, 2).
func randomBasis[T Real](r *Random) Basis[T] {
	return NewBasisFromQuaternionScale(RandomRotation[T](r), RandomVector3[T](r, 0.5, 2))
}

func randomTransform[T Real](r *Random) Transform[T] {
	return NewTransform(randomBasis[T](r), RandomVector3[T](r, -10, 10))
}
