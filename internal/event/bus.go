package event

import (
	"errors"
	"sync"
)

// ErrBusClosed is returned by Send once the consumer side has shut down.
// A producer seeing it must propagate, not swallow: the authoritative
// consumer is gone and the application is tearing down.
var ErrBusClosed = errors.New("event bus is closed")

// Sender is the write side of a Bus, handed to screens and to the terminal
// event source.
type Sender interface {
	Send(Event) error
}

// Bus is an unbounded multi-producer, single-consumer event queue.
// Sends never block; ordering is FIFO. The application driver is the only
// reader and drains it once per loop iteration via TryRecv.
type Bus struct {
	mu     sync.Mutex
	queue  []Event
	closed bool
}

// NewBus constructs an open, empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Send enqueues one event. It fails with ErrBusClosed after Close.
func (b *Bus) Send(ev Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	b.queue = append(b.queue, ev)
	return nil
}

// TryRecv dequeues the oldest pending event. The second return value is
// false when the bus is empty; an empty bus is a normal polling outcome,
// not an error.
func (b *Bus) TryRecv() (Event, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.queue) == 0 {
		return nil, false
	}
	ev := b.queue[0]
	b.queue = b.queue[1:]
	return ev, true
}

// Len reports the number of pending events.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Close marks the bus closed. Pending events stay readable; further sends
// fail with ErrBusClosed. Close is idempotent.
func (b *Bus) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
}
