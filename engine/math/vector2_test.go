package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec2InDelta[T Real](t *testing.T, expected, actual Vector2[T], delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, float64(expected.X), float64(actual.X), delta, msgAndArgs...)
	assert.InDelta(t, float64(expected.Y), float64(actual.Y), delta, msgAndArgs...)
}

func TestVector2_Basics(t *testing.T) {
	a := NewVector2(3.0, 4.0)
	b := NewVector2(1.0, 2.0)

	require.Equal(t, 5.0, a.Length())
	require.Equal(t, 11.0, a.Dot(b))
	require.Equal(t, 2.0, a.Cross(b))
	require.Equal(t, NewVector2(4.0, 6.0), a.Add(b))
	require.Equal(t, NewVector2(3.0, 8.0), a.Mul(b))
	require.Equal(t, NewVector2(1.0, 0.0), a.Mod(NewVector2(2.0, 2.0)))
	require.Equal(t, NewVector2(1.0, 0.0), NewVector2(-1.0, 2.0).PosMod(2))
	require.Equal(t, Vector2Zero[float32](), Vector2Zero[float32]().Normalized())
	assertVec2InDelta(t, NewVector2(0.6, 0.8), a.Normalized(), 1e-12)
	assert.True(t, a.Normalized().IsNormalized())
	require.Equal(t, NewVector2(0.0, -1.0), Vector2Up[float64]())
	require.Equal(t, 4.0, a.Index(1))
	require.Panics(t, func() { a.Index(2) })
	assert.Equal(t, "(3, 4)", a.String())
}

func TestVector2_Angles(t *testing.T) {
	right := Vector2Right[float64]()
	down := Vector2Down[float64]()

	assert.InDelta(t, K_HALF_PI, down.Angle(), 1e-12)
	assert.InDelta(t, K_HALF_PI, right.AngleTo(down), 1e-12)
	assert.InDelta(t, -K_HALF_PI, down.AngleTo(right), 1e-12)
	assert.InDelta(t, m.Pi, Vector2Zero[float64]().AngleToPoint(right), 1e-12)
	assertVec2InDelta(t, down, right.Rotated(K_HALF_PI), 1e-12)
	require.Equal(t, NewVector2(4.0, -3.0), NewVector2(3.0, 4.0).Tangent())
	assertVec2InDelta(t, NewVector2(m.Sqrt2/2, m.Sqrt2/2), right.Slerp(down, 0.5), 1e-12)
}

func TestVector2_Surfaces(t *testing.T) {
	n := NewVector2(0.0, 1.0)
	v := NewVector2(2.0, -1.0)

	assertVec2InDelta(t, NewVector2(-2.0, -1.0), v.Reflect(n), 1e-12)
	assertVec2InDelta(t, NewVector2(2.0, 1.0), v.Bounce(n), 1e-12)
	assertVec2InDelta(t, NewVector2(2.0, 0.0), v.Slide(n), 1e-12)
	assertVec2InDelta(t, NewVector2(2.0, 0.0), v.Project(NewVector2(5.0, 0.0)), 1e-12)
}

func TestVector2_Movement(t *testing.T) {
	from := Vector2Zero[float64]()
	to := NewVector2(0.0, 10.0)

	assertVec2InDelta(t, NewVector2(0.0, 4.0), from.MoveToward(to, 4), 1e-12)
	assertVec2InDelta(t, to, from.MoveToward(to, 40), 1e-12)
	assertVec2InDelta(t, NewVector2(0.0, 1.0), to.LimitLength(1), 1e-12)
	assertVec2InDelta(t, NewVector2(0.0, 2.5), from.LinearInterpolate(to, 0.25), 1e-12)
	assertVec2InDelta(t, to, from.CubicInterpolate(to, from, to, 1), 1e-12)
	assert.InDelta(t, 10, from.DistanceTo(to), 1e-12)
	assertVec2InDelta(t, NewVector2(0.0, 1.0), from.DirectionTo(to), 1e-12)
	assert.InDelta(t, 2, NewVector2(4.0, 2.0).Aspect(), 1e-12)
}

func TestVector2_Axes(t *testing.T) {
	assert.Equal(t, AxisY, NewVector2(1.0, 2.0).MaxAxis())
	assert.Equal(t, AxisX, NewVector2(1.0, 2.0).MinAxis())
	assert.Equal(t, AxisX, NewVector2(1.0, 1.0).MaxAxis())
	assert.Equal(t, AxisY, NewVector2(1.0, 1.0).MinAxis())
	assert.Equal(t, "Y", AxisY.String())
}

func TestVector2_Rounding(t *testing.T) {
	v := NewVector2(-1.5, 2.25)
	require.Equal(t, NewVector2(-2.0, 2.0), v.Round())
	require.Equal(t, NewVector2(-2.0, 2.0), v.Floor())
	require.Equal(t, NewVector2(-1.0, 3.0), v.Ceil())
	require.Equal(t, NewVector2(1.5, 2.25), v.Abs())
	require.Equal(t, NewVector2(-1.0, 1.0), v.Sign())
	require.Equal(t, NewVector2(-1.5, 2.5), v.Snapped(NewVector2(0.5, 0.5)))
}

func TestVector4(t *testing.T) {
	v := NewVector4(1.0, -2.0, 3.0, -4.0)

	require.Equal(t, 30.0, v.LengthSquared())
	require.Equal(t, NewVector3(1.0, -2.0, 3.0), v.XYZ())
	require.Equal(t, NewVector4(1.0, 2.0, 3.0, 4.0), v.Abs())
	require.Equal(t, -4.0, v.Index(3))
	require.Equal(t, AxisZ, v.MaxAxis())
	require.Equal(t, AxisW, v.MinAxis())
	require.Equal(t, AxisX, Vector4One[float64]().MaxAxis(), "first axis wins ties")
	require.Equal(t, Vector4Zero[float64](), Vector4Zero[float64]().Normalized())
	assert.InDelta(t, 1, v.Normalized().Length(), 1e-12)
	assert.InDelta(t, 0, v.Dot(NewVector4(2.0, 1.0, 0.0, 0.0)), 1e-12)
	require.Equal(t, NewVector4(0.5, -1.0, 1.5, -2.0), Vector4Zero[float64]().LinearInterpolate(v, 0.5))
	require.Panics(t, func() { v.Index(4) })

	var w Vector4[float32]
	w.SetIndex(3, 1)
	require.Equal(t, NewVector4[float32](0, 0, 0, 1), w)
	assert.Equal(t, "(0, 0, 0, 1)", w.String())
}

func TestVectorInt(t *testing.T) {
	t.Run("Vector2i", func(t *testing.T) {
		v := NewVector2i(-7, 4)
		require.Equal(t, NewVector2i(-3, 2), v.DivScalar(2))
		require.Equal(t, NewVector2i(-1, 0), v.ModScalar(2))
		require.Equal(t, NewVector2i(1, 0), v.PosMod(2))
		require.Equal(t, NewVector2i(7, 4), v.Abs())
		require.Equal(t, NewVector2i(-1, 1), v.Sign())
		require.Equal(t, 65, v.LengthSquared())
		assert.InDelta(t, m.Sqrt(65), v.Length(), 1e-12)
		assert.InDelta(t, -1.75, v.Aspect(), 1e-12)
		require.Equal(t, AxisY, v.MaxAxis())
		assert.Equal(t, "(-7, 4)", v.String())
		require.Panics(t, func() { v.Div(NewVector2i(1, 0)) })
	})

	t.Run("Vector3i", func(t *testing.T) {
		v := NewVector3i(1, 5, 5)
		require.Equal(t, AxisY, v.MaxAxis())
		require.Equal(t, AxisX, v.MinAxis())
		require.Equal(t, NewVector3i(2, 10, 10), v.MulScalar(2))
		require.Equal(t, NewVector3i(0, 4, 4), v.Sub(NewVector3i(1, 1, 1)))
		require.Equal(t, 51, v.LengthSquared())
		v.SetIndex(2, -3)
		require.Equal(t, -3, v.Index(2))
		require.Equal(t, NewVector3i(1, 1, 1), v.PosMod(2))
		require.Panics(t, func() { v.Index(3) })
		require.Panics(t, func() { v.ModScalar(0) })
	})
}
