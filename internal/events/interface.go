package events

import "context"

// Emitter publishes events.
type Emitter interface {
	Emit(event Event) error
}

// Listener observes events.
type Listener interface {
	// Listen returns a channel receiving events of the given types (all types
	// when none are given). The channel is closed when ctx is done or the bus closes.
	Listen(ctx context.Context, types ...EventType) <-chan Event

	// Once registers fn to run for the next event of type t only.
	// The returned func unregisters it if it has not fired yet.
	Once(t EventType, fn func(Event)) (cancel func())
}

// EventBus combines publishing and observing.
type EventBus interface {
	Emitter
	Listener
	Close() error
}

// Compile-time verification that *Bus implements EventBus
var _ EventBus = (*Bus)(nil)
