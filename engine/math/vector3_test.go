package math

import (
	"errors"
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/extramath/engine/core"
)

func TestVector3_Cross(t *testing.T) {
	t.Run("X cross Y is exactly Z", func(t *testing.T) {
		require.Equal(t, NewVector3[float32](0, 0, 1), NewVector3[float32](1, 0, 0).Cross(NewVector3[float32](0, 1, 0)))
		require.Equal(t, NewVector3[float64](0, 0, 1), NewVector3[float64](1, 0, 0).Cross(NewVector3[float64](0, 1, 0)))
	})

	t.Run("anticommutative", func(t *testing.T) {
		a := NewVector3(1.5, -2.0, 3.0)
		b := NewVector3(-0.5, 4.0, 2.0)
		assertVec3InDelta(t, a.Cross(b).Neg(), b.Cross(a), 1e-12)
		assert.InDelta(t, 0, a.Cross(b).Dot(a), 1e-12)
	})
}

func TestVector3_Normalized(t *testing.T) {
	t.Run("zero stays zero", func(t *testing.T) {
		require.Equal(t, Vector3Zero[float64](), Vector3Zero[float64]().Normalized())
		require.Equal(t, Vector3Zero[float32](), Vector3Zero[float32]().Normalized())

		v := Vector3Zero[float32]()
		v.Normalize()
		require.False(t, IsNaN(v.X))
	})

	t.Run("idempotent", func(t *testing.T) {
		r := NewRandom(1)
		for i := 0; i < 200; i++ {
			v := RandomVector3[float64](r, -100, 100)
			n := v.Normalized()
			assertVec3InDelta(t, n, n.Normalized(), 1e-12)
			assert.True(t, n.IsNormalized())
		}
	})

	t.Run("float32", func(t *testing.T) {
		n := NewVector3[float32](3, 0, 4).Normalized()
		assertVec3InDelta(t, NewVector3[float32](0.6, 0, 0.8), n, 1e-6)
		assert.InDelta(t, 1, float64(n.Length()), 1e-6)
	})
}

func TestVector3_Arithmetic(t *testing.T) {
	a := NewVector3(1.0, 2.0, 3.0)
	b := NewVector3(4.0, 5.0, 6.0)

	require.Equal(t, NewVector3(5.0, 7.0, 9.0), a.Add(b))
	require.Equal(t, NewVector3(-3.0, -3.0, -3.0), a.Sub(b))
	require.Equal(t, NewVector3(4.0, 10.0, 18.0), a.Mul(b))
	require.Equal(t, NewVector3(2.0, 4.0, 6.0), a.MulScalar(2))
	require.Equal(t, NewVector3(-1.0, -2.0, -3.0), a.Neg())
	require.Equal(t, 32.0, a.Dot(b))
	require.Equal(t, 14.0, a.LengthSquared())

	t.Run("division by zero is IEEE", func(t *testing.T) {
		d := a.DivScalar(0)
		assert.True(t, IsInf(d.X))
		z := Vector3Zero[float64]().DivScalar(0)
		assert.True(t, IsNaN(z.X))
	})

	t.Run("PosMod is never negative", func(t *testing.T) {
		v := NewVector3(-1.0, 5.5, -7.25).PosMod(2)
		assertVec3InDelta(t, NewVector3(1.0, 1.5, 0.75), v, 1e-12)
	})
}

func TestVector3_Index(t *testing.T) {
	v := NewVector3[float32](1, 2, 3)
	for i := 0; i < 3; i++ {
		v.SetIndex(i, v.Index(i)*10)
	}
	require.Equal(t, NewVector3[float32](10, 20, 30), v)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, core.ErrIndexOutOfRange))
	}()
	v.Index(3)
}

func TestVector3_Axes(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector3[float64]
		max, min Axis
	}{
		{"distinct", NewVector3(1.0, 3.0, 2.0), AxisY, AxisX},
		{"all equal", NewVector3(1.0, 1.0, 1.0), AxisX, AxisZ},
		{"x and y tie high", NewVector3(2.0, 2.0, 1.0), AxisX, AxisZ},
		{"y and z tie high", NewVector3(1.0, 2.0, 2.0), AxisY, AxisX},
		{"x and z tie low", NewVector3(0.0, 1.0, 0.0), AxisY, AxisZ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.max, tt.v.MaxAxis())
			assert.Equal(t, tt.min, tt.v.MinAxis())
		})
	}
}

func TestVector3_ReflectBounceSlide(t *testing.T) {
	n := Vector3Up[float64]()
	v := NewVector3(1.0, -1.0, 0.0)

	assertVec3InDelta(t, NewVector3(-1.0, -1.0, 0.0), v.Reflect(n), 1e-12)
	assertVec3InDelta(t, NewVector3(1.0, 1.0, 0.0), v.Bounce(n), 1e-12)
	assertVec3InDelta(t, NewVector3(1.0, 0.0, 0.0), v.Slide(n), 1e-12)
}

func TestVector3_Rotated(t *testing.T) {
	v := NewVector3[float32](1, 0, 0).Rotated(NewVector3[float32](0, 0, 1), K_HALF_PI)
	assertVec3InDelta(t, NewVector3[float32](0, 1, 0), v, 1e-6)
}

func TestVector3_Slerp(t *testing.T) {
	x := NewVector3(1.0, 0.0, 0.0)
	y := NewVector3(0.0, 1.0, 0.0)

	t.Run("quarter turn", func(t *testing.T) {
		half := x.Slerp(y, 0.5)
		assertVec3InDelta(t, NewVector3(m.Sqrt2/2, m.Sqrt2/2, 0), half, 1e-12)
		assertVec3InDelta(t, x, x.Slerp(y, 0), 1e-12)
		assertVec3InDelta(t, y, x.Slerp(y, 1), 1e-12)
	})

	t.Run("coincident vectors", func(t *testing.T) {
		got := x.Slerp(x, 0.3)
		assertVec3InDelta(t, x, got, 1e-12)
		assert.False(t, IsNaN(got.X))
	})

	t.Run("opposite vectors", func(t *testing.T) {
		got := x.Slerp(x.Neg(), 0.5)
		assert.False(t, IsNaN(got.X) || IsNaN(got.Y) || IsNaN(got.Z))
		assert.InDelta(t, 1, got.Length(), 1e-12)
		assert.InDelta(t, 0, got.Dot(x), 1e-12)
		assertVec3InDelta(t, x.Neg(), x.Slerp(x.Neg(), 1), 1e-12)
	})
}

func TestVector3_Movement(t *testing.T) {
	from := Vector3Zero[float64]()
	to := NewVector3(10.0, 0.0, 0.0)

	assertVec3InDelta(t, NewVector3(3.0, 0.0, 0.0), from.MoveToward(to, 3), 1e-12)
	assertVec3InDelta(t, to, from.MoveToward(to, 30), 1e-12)
	assertVec3InDelta(t, NewVector3(2.0, 0.0, 0.0), to.LimitLength(2), 1e-12)
	assertVec3InDelta(t, NewVector3(5.0, 0.0, 0.0), from.LinearInterpolate(to, 0.5), 1e-12)
	assertVec3InDelta(t, from, from.CubicInterpolate(to, from, to, 0), 1e-12)
	assertVec3InDelta(t, to, from.CubicInterpolate(to, from, to, 1), 1e-12)
	assert.InDelta(t, K_HALF_PI, Vector3Right[float64]().AngleTo(Vector3Up[float64]()), 1e-12)
	assert.InDelta(t, 10, from.DistanceTo(to), 1e-12)
}

func TestVector3_Rounding(t *testing.T) {
	v := NewVector3(1.5, -1.5, 2.4)
	require.Equal(t, NewVector3(2.0, -2.0, 2.0), v.Round())
	require.Equal(t, NewVector3(1.0, -2.0, 2.0), v.Floor())
	require.Equal(t, NewVector3(2.0, -1.0, 3.0), v.Ceil())
	require.Equal(t, NewVector3(1.0, -1.0, 1.0), v.Sign())
	assertVec3InDelta(t, NewVector3(1.5, -1.5, 2.5), v.Snapped(NewVector3(0.5, 0.5, 0.5)), 1e-12)
}

func TestVector3_Outer(t *testing.T) {
	b := NewVector3(1.0, 2.0, 3.0).Outer(NewVector3(4.0, 5.0, 6.0))
	require.Equal(t, NewVector3(4.0, 5.0, 6.0), b.Row0)
	require.Equal(t, NewVector3(12.0, 15.0, 18.0), b.Row2)
	assert.Equal(t, "(1, 2, 3)", NewVector3(1.0, 2.0, 3.0).String())
}
