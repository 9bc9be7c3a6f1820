package eventbus

import (
	"slices"
	"sync"
)

// hooks holds the lifecycle hook state for the EventBus.
type hooks struct {
	mu          sync.RWMutex
	onPublish   []func(Event, any)
	onDrop      []func(Event, any)
	onSubscribe []func(Event)
	onPanic     []func(Event, any, any)
}

// register appends fn to the hook list at dst under the write lock.
func register[F any](h *hooks, dst *[]F, fn F) {
	h.mu.Lock()
	*dst = append(*dst, fn)
	h.mu.Unlock()
}

// snapshot copies the hook list at src so hooks run without holding the lock.
func snapshot[F any](h *hooks, src *[]F) []F {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(*src)
}

// OnPublish registers a hook that fires after an event is successfully enqueued.
func (bus *EventBus) OnPublish(fn func(Event, any)) {
	register(&bus.hooks, &bus.hooks.onPublish, fn)
}

// OnDrop registers a hook that fires when an event is dropped due to a full buffer.
func (bus *EventBus) OnDrop(fn func(Event, any)) {
	register(&bus.hooks, &bus.hooks.onDrop, fn)
}

// OnSubscribe registers a hook that fires after a subscriber is registered.
func (bus *EventBus) OnSubscribe(fn func(Event)) {
	register(&bus.hooks, &bus.hooks.onSubscribe, fn)
}

// OnPanic registers a hook that fires when a subscriber panics.
func (bus *EventBus) OnPanic(fn func(Event, any, any)) {
	register(&bus.hooks, &bus.hooks.onPanic, fn)
}

// send enqueues an event and fires hooks. Used by the typed Publish* methods.
func (bus *EventBus) send(event Event, payload any) {
	select {
	case bus.ch <- envelope{event: event, payload: payload}:
		for _, fn := range snapshot(&bus.hooks, &bus.hooks.onPublish) {
			fn(event, payload)
		}
	default:
		for _, fn := range snapshot(&bus.hooks, &bus.hooks.onDrop) {
			fn(event, payload)
		}
	}
}

func (bus *EventBus) runOnSubscribe(event Event) {
	for _, fn := range snapshot(&bus.hooks, &bus.hooks.onSubscribe) {
		fn(event)
	}
}

// runOnPanic fires panic hooks. A hook that panics itself is swallowed.
func (bus *EventBus) runOnPanic(event Event, payload any, recovered any) {
	for _, fn := range snapshot(&bus.hooks, &bus.hooks.onPanic) {
		func() {
			defer func() { recover() }() //nolint:errcheck
			fn(event, payload, recovered)
		}()
	}
}
