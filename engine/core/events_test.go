package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvents(t *testing.T) {
	EventInitialize()
	t.Cleanup(EventShutdown)

	first, second := "first", "second"
	var calls []string

	handler := func(handled bool) FnOnEvent {
		return func(code SystemEventCode, sender interface{}, listener interface{}, data EventContext) bool {
			calls = append(calls, listener.(string)+":"+data.Path)
			return handled
		}
	}

	require.True(t, EventRegister(EVENT_CODE_RIG_LOADED, first, handler(false)))
	require.True(t, EventRegister(EVENT_CODE_RIG_LOADED, second, handler(true)))
	assert.False(t, EventRegister(EVENT_CODE_RIG_LOADED, first, handler(false)), "duplicate listener")
	assert.False(t, EventRegister(MAX_EVENT_CODE+1, first, handler(false)))

	t.Run("fires in registration order until handled", func(t *testing.T) {
		calls = nil
		assert.True(t, EventFire(EVENT_CODE_RIG_LOADED, nil, EventContext{Path: "arm.toml"}))
		assert.Equal(t, []string{"first:arm.toml", "second:arm.toml"}, calls)
	})

	t.Run("unregister", func(t *testing.T) {
		calls = nil
		require.True(t, EventUnregister(EVENT_CODE_RIG_LOADED, second))
		assert.False(t, EventUnregister(EVENT_CODE_RIG_LOADED, second))
		assert.False(t, EventFire(EVENT_CODE_RIG_LOADED, nil, EventContext{Path: "arm.yaml"}))
		assert.Equal(t, []string{"first:arm.yaml"}, calls)
	})

	t.Run("payload", func(t *testing.T) {
		var got EventContext
		EventRegister(EVENT_CODE_RIG_FAILED, t, func(_ SystemEventCode, _ interface{}, _ interface{}, data EventContext) bool {
			got = data
			return true
		})
		EventFire(EVENT_CODE_RIG_FAILED, nil, EventContext{RunID: "run", Err: ErrInvalidRig})
		assert.Equal(t, "run", got.RunID)
		assert.True(t, errors.Is(got.Err, ErrInvalidRig))
	})

	t.Run("shutdown drops registrations", func(t *testing.T) {
		EventShutdown()
		calls = nil
		assert.False(t, EventFire(EVENT_CODE_RIG_LOADED, nil, EventContext{}))
		assert.Empty(t, calls)
	})
}
