package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuaternion_FromAxisAngle(t *testing.T) {
	t.Run("quarter turn around Z maps X to Y", func(t *testing.T) {
		q32 := NewQuaternionFromAxisAngle(NewVector3[float32](0, 0, 1), K_HALF_PI)
		assertVec3InDelta(t, NewVector3[float32](0, 1, 0), q32.Xform(NewVector3[float32](1, 0, 0)), 1e-6)

		q64 := NewQuaternionFromAxisAngle(NewVector3[float64](0, 0, 1), K_HALF_PI)
		assertVec3InDelta(t, NewVector3[float64](0, 1, 0), q64.Xform(NewVector3[float64](1, 0, 0)), 1e-12)
	})

	t.Run("zero axis gives the zero quaternion", func(t *testing.T) {
		q := NewQuaternionFromAxisAngle(Vector3Zero[float64](), 1.2)
		require.Equal(t, Quaternion[float64]{}, q)
	})

	t.Run("unnormalized axis", func(t *testing.T) {
		q := NewQuaternionFromAxisAngle(NewVector3(0.0, 0.0, 5.0), K_HALF_PI)
		assert.InDelta(t, 1, q.Length(), 1e-12)
	})
}

func TestQuaternion_Euler(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 100; i++ {
		// Stay away from the gimbal lock at X = ±90°.
		euler := NewVector3(RandomRange(r, -1.4, 1.4), RandomRange(r, -3.0, 3.0), RandomRange(r, -3.0, 3.0))

		q := NewQuaternionFromEuler(euler)
		b := NewBasisFromEuler(euler)
		assert.True(t, q.SameRotation(b.Quat(), 1e-9), "euler %v", euler)
		assertVec3InDelta(t, euler, q.GetEuler(), 1e-9)
	}
}

func TestQuaternion_Algebra(t *testing.T) {
	r := NewRandom(11)
	for i := 0; i < 100; i++ {
		a := RandomRotation[float64](r)
		b := RandomRotation[float64](r)
		v := RandomVector3[float64](r, -5, 5)

		require.InDelta(t, 1, a.Length(), 1e-12)

		// a*b applies b first.
		assertVec3InDelta(t, a.Xform(b.Xform(v)), a.Mul(b).Xform(v), 1e-9)
		assertVec3InDelta(t, v, a.Inverse().Xform(a.Xform(v)), 1e-9)
		assert.True(t, a.Mul(a.Inverse()).SameRotation(QuaternionIdentity[float64](), 1e-12))

		// Xform agrees with the matrix form.
		assertVec3InDelta(t, NewBasisFromQuaternion(a).Xform(v), a.Xform(v), 1e-9)
	}

	q := NewQuaternion(1.0, 2.0, 3.0, 4.0)
	require.Equal(t, NewQuaternion(-1.0, -2.0, -3.0, 4.0), q.Conjugate())
	require.Equal(t, 30.0, q.LengthSquared())
	require.Equal(t, q.Mul(NewQuaternion(0.5, -1.0, 2.0, 0.0)), q.MulVector(NewVector3(0.5, -1.0, 2.0)))
	require.Equal(t, 3.0, q.Index(2))
	assert.Equal(t, "(1, 2, 3, 4)", q.String())
}

func TestQuaternion_Slerp(t *testing.T) {
	t.Run("boundaries and unit length", func(t *testing.T) {
		r := NewRandom(3)
		for i := 0; i < 100; i++ {
			q1 := RandomRotation[float64](r)
			q2 := RandomRotation[float64](r)

			assert.True(t, q1.Slerp(q2, 0).SameRotation(q1, 1e-9))
			assert.True(t, q1.Slerp(q2, 1).SameRotation(q2, 1e-9))
			for w := 0.0; w <= 1.0; w += 0.125 {
				assert.InDelta(t, 1, q1.Slerp(q2, w).Length(), 1e-9)
			}
		}
	})

	t.Run("float32", func(t *testing.T) {
		r := NewRandom(4)
		for i := 0; i < 50; i++ {
			q1 := RandomRotation[float32](r)
			q2 := RandomRotation[float32](r)
			assert.True(t, q1.Slerp(q2, 0).SameRotation(q1, 1e-5))
			assert.True(t, q1.Slerp(q2, 1).SameRotation(q2, 1e-5))
			assert.InDelta(t, 1, float64(q1.Slerp(q2, 0.3).Length()), 1e-5)
		}
	})

	t.Run("takes the short path", func(t *testing.T) {
		from := QuaternionIdentity[float64]()
		to := NewQuaternionFromAxisAngle(Vector3Up[float64](), K_HALF_PI).Neg()
		half := from.Slerp(to, 0.5)
		want := NewQuaternionFromAxisAngle(Vector3Up[float64](), K_QUARTER_PI)
		assert.True(t, half.SameRotation(want, 1e-12))
	})

	t.Run("identical inputs blend linearly", func(t *testing.T) {
		q := NewQuaternionFromAxisAngle(Vector3Right[float64](), 0.4)
		got := q.Slerp(q, 0.5)
		assert.False(t, IsNaN(got.W))
		assert.True(t, got.Compare(q, 1e-12))
	})

	t.Run("slerpni keeps close inputs", func(t *testing.T) {
		q := NewQuaternionFromAxisAngle(Vector3Right[float64](), 0.4)
		close := NewQuaternionFromAxisAngle(Vector3Right[float64](), 0.4001)
		require.Equal(t, q, q.Slerpni(close, 0.5))

		far := NewQuaternionFromAxisAngle(Vector3Right[float64](), 1.4)
		mid := q.Slerpni(far, 0.5)
		assert.True(t, mid.SameRotation(NewQuaternionFromAxisAngle(Vector3Right[float64](), 0.9), 1e-12))
	})

	t.Run("cubic slerp endpoints", func(t *testing.T) {
		a := NewQuaternionFromAxisAngle(Vector3Up[float64](), 0.2)
		b := NewQuaternionFromAxisAngle(Vector3Up[float64](), 1.2)
		assert.True(t, a.CubicSlerp(b, a, b, 0).SameRotation(a, 1e-9))
		assert.True(t, a.CubicSlerp(b, a, b, 1).SameRotation(b, 1e-9))
		assert.InDelta(t, 1, a.CubicSlerp(b, a, b, 0.5).Length(), 1e-9)
	})
}

func TestQuaternion_Index(t *testing.T) {
	var q Quaternion[float32]
	for i := 0; i < 4; i++ {
		q.SetIndex(i, float32(i+1))
	}
	require.Equal(t, NewQuaternion[float32](1, 2, 3, 4), q)
	require.Panics(t, func() { q.Index(4) })
	require.Panics(t, func() { q.SetIndex(-1, 0) })
}

func TestQuaternion_BasisRoundTrip(t *testing.T) {
	r := NewRandom(5)
	for i := 0; i < 200; i++ {
		q := RandomRotation[float64](r)
		b := NewBasisFromQuaternion(q)

		require.InDelta(t, 1, b.Determinant(), 1e-9)
		assert.True(t, b.Quat().SameRotation(q, 1e-9), "q %v", q)
		assert.True(t, NewBasisFromQuaternion(b.Quat()).Quat().SameRotation(b.Quat(), 1e-9))
		assert.True(t, NewQuaternionFromBasis(b).SameRotation(q, 1e-9))
	}

	t.Run("half turns hit every branch", func(t *testing.T) {
		for _, axis := range []Vector3[float64]{Vector3Right[float64](), Vector3Up[float64](), Vector3Back[float64]()} {
			q := NewQuaternionFromAxisAngle(axis, m.Pi)
			assert.True(t, NewBasisFromQuaternion(q).Quat().SameRotation(q, 1e-12), "axis %v", axis)
		}
	})
}
