package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// ErrBusClosed is returned when emitting on a closed bus
var ErrBusClosed = errors.New("event bus closed")

// defaultBufferSize is the per-listener queue length
const defaultBufferSize = 16

type subscriber struct {
	types map[EventType]bool
	ch    chan Event
	once  func(Event)
}

func (s *subscriber) wants(t EventType) bool {
	return len(s.types) == 0 || s.types[t]
}

// Bus is an in-process event bus. Listener channels are buffered and delivery
// is non-blocking: a listener that falls behind loses events rather than
// stalling the emitter.
type Bus struct {
	mu         sync.Mutex
	subs       map[uint64]*subscriber
	nextID     uint64
	sequence   atomic.Int64
	bufferSize int
	closed     bool
}

// NewBus creates a new, open event bus
func NewBus() *Bus {
	return &Bus{
		subs:       make(map[uint64]*subscriber),
		bufferSize: defaultBufferSize,
	}
}

// Emit stamps the event and delivers it to every interested listener.
// One-shot handlers run synchronously on the caller's goroutine.
func (b *Bus) Emit(event Event) error {
	event.SequenceID = b.sequence.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	var onces []func(Event)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBusClosed
	}
	for id, s := range b.subs {
		if !s.wants(event.Type) {
			continue
		}
		if s.once != nil {
			onces = append(onces, s.once)
			delete(b.subs, id)
			continue
		}
		select {
		case s.ch <- event:
		default:
			slog.Warn("event listener queue full, dropping event",
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}
	b.mu.Unlock()

	for _, fn := range onces {
		fn(event)
	}
	return nil
}

// Listen implements Listener
func (b *Bus) Listen(ctx context.Context, types ...EventType) <-chan Event {
	ch := make(chan Event, b.bufferSize)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch
	}
	id := b.add(&subscriber{types: typeSet(types), ch: ch})
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.remove(id)
	}()

	return ch
}

// Once implements Listener
func (b *Bus) Once(t EventType, fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return func() {}
	}
	id := b.add(&subscriber{types: typeSet([]EventType{t}), once: fn})
	return func() { b.remove(id) }
}

// Close closes every listener channel. Further emits fail with ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for id, s := range b.subs {
		if s.ch != nil {
			close(s.ch)
		}
		delete(b.subs, id)
	}
	return nil
}

// add registers s. Caller must hold b.mu.
func (b *Bus) add(s *subscriber) uint64 {
	b.nextID++
	b.subs[b.nextID] = s
	return b.nextID
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.subs[id]
	if !ok {
		return
	}
	delete(b.subs, id)
	if s.ch != nil {
		close(s.ch)
	}
}

func typeSet(types []EventType) map[EventType]bool {
	if len(types) == 0 {
		return nil
	}
	set := make(map[EventType]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}
