package events

import (
	"errors"
	"sync"
)

// ErrSlowConsumer is the terminal error of a subscription whose buffer
// overflowed. The subscriber is disconnected explicitly rather than
// silently losing events mid-stream.
var ErrSlowConsumer = errors.New("subscriber buffer overflow, connection closed")

// DefaultSubscriberBuffer is the per-subscription channel capacity.
const DefaultSubscriberBuffer = 256

// Emitter owns one run's event stream: it assigns the strictly increasing
// sequence numbers, keeps the full ordered log, and fans events out to
// subscribers through bounded buffers.
//
// Emission is synchronous with respect to pipeline progression — the
// controller's Emit returns only after the event is sequenced, logged, and
// offered to every subscriber — but never blocks on a slow consumer: a
// subscriber that cannot keep up within its buffer is closed with
// ErrSlowConsumer.
type Emitter struct {
	correlationID string

	mu     sync.Mutex
	seq    int
	log    []Event
	subs   map[*Subscription]struct{}
	closed bool
}

// Subscription is one consumer's view of a run's event stream.
type Subscription struct {
	ch     chan Event
	types  map[string]bool // nil = all event types
	err    error
	closed bool
}

// Events returns the subscription's event channel. It is closed when the
// run's terminal event has been delivered, when the subscription is
// cancelled, or on buffer overflow (check Err).
func (s *Subscription) Events() <-chan Event { return s.ch }

// Err returns the terminal error of the subscription, if any. Non-nil only
// after Events() is closed.
func (s *Subscription) Err() error { return s.err }

// NewEmitter creates an emitter for one run.
func NewEmitter(correlationID string) *Emitter {
	return &Emitter{
		correlationID: correlationID,
		subs:          make(map[*Subscription]struct{}),
	}
}

// CorrelationID returns the run this emitter belongs to.
func (e *Emitter) CorrelationID() string { return e.correlationID }

// Subscribe registers a consumer. eventTypes filters delivery to the given
// types; empty means all. Events emitted before Subscribe are not replayed
// here — late consumers use the persisted log (catchup) instead.
func (e *Emitter) Subscribe(buffer int, eventTypes ...string) *Subscription {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	sub := &Subscription{ch: make(chan Event, buffer)}
	if len(eventTypes) > 0 {
		sub.types = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			sub.types[t] = true
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		close(sub.ch)
		sub.closed = true
		return sub
	}
	e.subs[sub] = struct{}{}
	return sub
}

// Unsubscribe removes a consumer and closes its channel.
func (e *Emitter) Unsubscribe(sub *Subscription) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dropLocked(sub, nil)
}

// Emit assigns the next sequence number, records the event in the log, and
// delivers it to all subscribers. A terminal event type closes the stream
// after delivery. Returns the sequenced event.
func (e *Emitter) Emit(event Event) Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return event
	}

	e.seq++
	event.Sequence = e.seq
	e.log = append(e.log, event)

	for sub := range e.subs {
		if sub.types != nil && !sub.types[event.EventType] {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			// Bounded-buffer contract: close the consumer rather than
			// dropping events behind its back.
			e.dropLocked(sub, ErrSlowConsumer)
		}
	}

	if Terminal(event.EventType) {
		e.closeLocked()
	}
	return event
}

// Log returns a copy of the full ordered event log so far.
func (e *Emitter) Log() []Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Event, len(e.log))
	copy(out, e.log)
	return out
}

// Close terminates the stream without a terminal event (controller crash
// paths). Subscribers see their channels closed with no error.
func (e *Emitter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closeLocked()
}

func (e *Emitter) closeLocked() {
	if e.closed {
		return
	}
	e.closed = true
	for sub := range e.subs {
		e.dropLocked(sub, nil)
	}
}

func (e *Emitter) dropLocked(sub *Subscription, err error) {
	if sub.closed {
		return
	}
	sub.err = err
	sub.closed = true
	close(sub.ch)
	delete(e.subs, sub)
}
