package core

import "sync"

// EventContext carries the payload of a fired event.
type EventContext struct {
	// RunID identifies the evaluation run that produced the event.
	RunID string
	// Path is the rig file involved, if any.
	Path string
	// Err is set for failure events.
	Err error
	// Data is event specific.
	Data interface{}
}

type SystemEventCode int

const (
	// Stops the watch loop.
	EVENT_CODE_APPLICATION_QUIT SystemEventCode = 0x01

	// A rig file was parsed and validated.
	/* Context usage:
	 * Path = rig file, Data = the loaded config
	 */
	EVENT_CODE_RIG_LOADED SystemEventCode = 0x02

	// A rig was evaluated.
	/* Context usage:
	 * RunID, Path, Data = the evaluation report
	 */
	EVENT_CODE_RIG_EVALUATED SystemEventCode = 0x03

	// Loading or evaluating a rig failed.
	/* Context usage:
	 * Path, Err
	 */
	EVENT_CODE_RIG_FAILED SystemEventCode = 0x04

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

type eventSystemState struct {
	mu         sync.RWMutex
	registered map[SystemEventCode][]registeredEvent
}

var onceEvent sync.Once
var eventState *eventSystemState = nil

// Should return true if handled.
type FnOnEvent func(code SystemEventCode, sender interface{}, listenerInst interface{}, data EventContext) bool

func EventInitialize() {
	onceEvent.Do(func() {
		eventState = &eventSystemState{
			registered: make(map[SystemEventCode][]registeredEvent),
		}
	})
}

// EventShutdown drops every registration.
func EventShutdown() {
	if eventState == nil {
		return
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	eventState.registered = make(map[SystemEventCode][]registeredEvent)
}

/**
 * Register to listen for when events are sent with the provided code. A listener
 * can only be registered once per code.
 * @param code The event code to listen for.
 * @param listener The listener instance. Can be nil.
 * @param onEvent The callback invoked when the event code is fired.
 * @returns true if the event is successfully registered; otherwise false.
 */
func EventRegister(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	if eventState == nil || code > MAX_EVENT_CODE {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()

	for _, e := range eventState.registered[code] {
		if e.listener == listener {
			LogWarn("EventRegister: listener already registered for code %d", code)
			return false
		}
	}
	eventState.registered[code] = append(eventState.registered[code], registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister from listening for when events are sent with the provided code.
 * @returns true if a matching registration was removed.
 */
func EventUnregister(code SystemEventCode, listener interface{}) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()

	events := eventState.registered[code]
	for i, e := range events {
		if e.listener == listener {
			eventState.registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of the given code. If a handler returns true,
 * the event is considered handled and is not passed on to any more listeners.
 * @returns true if handled, otherwise false.
 */
func EventFire(code SystemEventCode, sender interface{}, context EventContext) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.RLock()
	events := append([]registeredEvent(nil), eventState.registered[code]...)
	eventState.mu.RUnlock()

	for _, e := range events {
		if e.callback(code, sender, e.listener, context) {
			return true
		}
	}
	return false
}
