package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	eventpb "evstream/api/proto/gen/pb-go/eventpb"
)

// DefaultQueueSize is the default number of events buffered per session.
const DefaultQueueSize = 16

// Stream is the write side of a client's server-streaming call.
type Stream interface {
	Send(*eventpb.EventMessage) error
	Context() context.Context
}

// Session associates a client id with its open stream.
//
// Events are not written to the stream directly. They are queued with Deliver
// and written by the goroutine serving the call, so a slow client never blocks
// the caller of Deliver.
type Session struct {
	ClientID     string
	Seq          uint64
	RegisteredAt time.Time

	stream    Stream
	queue     chan *eventpb.EventMessage
	done      chan struct{}
	closeOnce sync.Once
	draining  atomic.Bool
	replaced  atomic.Bool
	delivered atomic.Uint64
}

func newSession(clientID string, seq uint64, stream Stream, queueSize int) *Session {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Session{
		ClientID:     clientID,
		Seq:          seq,
		RegisteredAt: time.Now(),
		stream:       stream,
		queue:        make(chan *eventpb.EventMessage, queueSize),
		done:         make(chan struct{}),
	}
}

// Stream returns the stream handle owned by the session.
func (s *Session) Stream() Stream {
	return s.stream
}

// Deliver queues msg for the session without blocking.
func (s *Session) Deliver(msg *eventpb.EventMessage) error {
	select {
	case <-s.done:
		return ErrSessionClosed
	default:
	}
	select {
	case s.queue <- msg:
		s.delivered.Add(1)
		return nil
	case <-s.done:
		return ErrSessionClosed
	default:
		return ErrSlowConsumer
	}
}

// Delivered returns the number of events queued for the session so far.
func (s *Session) Delivered() uint64 {
	return s.delivered.Load()
}

// Queue returns the session's outbound events in the order they were delivered.
func (s *Session) Queue() <-chan *eventpb.EventMessage {
	return s.queue
}

// Done is closed when the session is closed.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Closed reports whether the session has been closed.
func (s *Session) Closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// End closes the session after the events already queued have been written.
func (s *Session) End() {
	s.draining.Store(true)
	s.Close()
}

// Draining reports whether queued events should still be written after the
// session is closed.
func (s *Session) Draining() bool {
	return s.draining.Load()
}

// Replaced reports whether a newer session took over the client id.
func (s *Session) Replaced() bool {
	return s.replaced.Load()
}

func (s *Session) replace() {
	s.replaced.Store(true)
	s.Close()
}

// Close marks the session closed. It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}
