//go:build extramath_debug

package math

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/extramath/engine/core"
)

func recoverPrecondition(fn func()) (err *PreconditionError) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(*PreconditionError)
		}
	}()
	fn()
	return nil
}

func TestPreconditions(t *testing.T) {
	unit := Vector3Up[float64]()
	long := NewVector3(0.0, 2.0, 0.0)
	q := NewQuaternion(0.0, 0.0, 0.0, 2.0)

	tests := []struct {
		name string
		op   string
		fn   func()
	}{
		{"reflect", "Vector3.Reflect", func() { unit.Reflect(long) }},
		{"bounce", "Vector3.Bounce", func() { unit.Bounce(long) }},
		{"slide", "Vector3.Slide", func() { unit.Slide(long) }},
		{"rotated", "Vector3.Rotated", func() { unit.Rotated(long, 1) }},
		{"slerp", "Vector3.Slerp", func() { long.Slerp(unit, 0.5) }},
		{"vector2 slerp", "Vector2.Slerp", func() { NewVector2(2.0, 0.0).Slerp(Vector2Up[float64](), 0.5) }},
		{"basis axis", "NewBasisFromAxisAngle", func() { NewBasisFromAxisAngle(long, 1) }},
		{"quaternion inverse", "Quaternion.Inverse", func() { q.Inverse() }},
		{"quaternion xform", "Quaternion.Xform", func() { q.Xform(unit) }},
		{"quaternion slerp", "Quaternion.Slerp", func() { q.Slerp(QuaternionIdentity[float64](), 0.5) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := recoverPrecondition(tt.fn)
			require.NotNil(t, err)
			assert.Equal(t, tt.op, err.Op)
			assert.True(t, errors.Is(err, core.ErrNotNormalized))
		})
	}

	t.Run("unit input passes", func(t *testing.T) {
		assert.NotPanics(t, func() { unit.Reflect(Vector3Right[float64]()) })
		assert.NotPanics(t, func() { QuaternionIdentity[float32]().Inverse() })
	})
}
