// Package handler drives the lifecycle of a single event stream call.
//
// A call starts OPENING. A request without a client id is REJECTED and never
// registered. Otherwise the session is registered and becomes ACTIVE, writing
// queued events to the stream in order. The session becomes CLOSED when the
// transport cancels the call, when the session is closed by the server
// (eviction, replacement or the end of a bounded broadcast), when a write
// fails, or when the per-session event limit is reached. Every path into
// CLOSED removes the session from the registry.
package handler

import (
	"context"
	"sync/atomic"

	eventpb "evstream/api/proto/gen/pb-go/eventpb"
	"evstream/internal/pkg/log"
	"evstream/internal/pkg/metrics"
	"evstream/internal/pkg/session"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// Handler serves one stream call.
type Handler struct {
	registry  session.Registry
	metrics   *metrics.Metrics
	maxEvents uint64

	state atomic.Int32
	sent  atomic.Uint64
	sess  *session.Session
}

// HandlerCfg configures a Handler.
type HandlerCfg func(*Handler) error

// WithRegistry sets the session registry.
func WithRegistry(r session.Registry) HandlerCfg {
	return func(h *Handler) error {
		h.registry = r
		return nil
	}
}

// WithMaxEvents ends the stream after n events have been written. Zero means unbounded.
func WithMaxEvents(n uint64) HandlerCfg {
	return func(h *Handler) error {
		h.maxEvents = n
		return nil
	}
}

// WithMetrics sets the metrics the handler reports to.
func WithMetrics(m *metrics.Metrics) HandlerCfg {
	return func(h *Handler) error {
		h.metrics = m
		return nil
	}
}

// NewHandler creates a new handler.
func NewHandler(cfgs ...HandlerCfg) (*Handler, error) {
	h := &Handler{}
	for _, cfg := range cfgs {
		if err := cfg(h); err != nil {
			return nil, errors.Wrap(err, "apply handler cfg failed")
		}
	}
	if h.registry == nil {
		return nil, errors.New("handler requires a session registry")
	}
	return h, nil
}

// State returns the current lifecycle state.
func (h *Handler) State() State {
	return State(h.state.Load())
}

// Sent returns the number of events written to the stream.
func (h *Handler) Sent() uint64 {
	return h.sent.Load()
}

func (h *Handler) transition(to State, fields logrus.Fields) {
	from := State(h.state.Swap(int32(to)))
	logger.WithFields(fields).WithFields(logrus.Fields{
		"from": from.String(),
		"to":   to.String(),
	}).Debug("session state changed")
}

// Run registers the caller and writes its events to stream until the session closes.
// ctx must be the call's context so that transport cancellation ends the session.
func (h *Handler) Run(ctx context.Context, req *eventpb.EventRequest, stream session.Stream) error {
	fields := log.RequestToFields(req)
	if req.GetClientId() == "" {
		h.transition(StateRejected, fields)
		h.metrics.SessionRejected(metrics.ReasonInvalidClientID)
		logger.WithFields(fields).Warn("rejecting stream without client id")
		return ErrInvalidClientID
	}
	sess, replaced, err := h.registry.Register(req.GetClientId(), stream)
	if err != nil {
		h.transition(StateRejected, fields)
		h.metrics.SessionRejected(metrics.ReasonInvalidClientID)
		return errors.Wrap(err, "register session failed")
	}
	h.sess = sess
	if replaced != nil {
		logger.WithFields(log.SessionToFields(replaced)).Info("replacing existing session")
	}
	h.transition(StateActive, fields)
	h.metrics.SessionOpened()
	logger.WithFields(fields).Info("client connected")

	defer h.close()
	return h.serve(ctx)
}

func (h *Handler) serve(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			logger.WithFields(log.SessionToFields(h.sess)).Info("client disconnected")
			return nil
		case <-h.sess.Done():
			if h.sess.Draining() {
				return h.flush(ctx)
			}
			return h.stopped()
		case msg := <-h.sess.Queue():
			// a replaced or evicted session gets no further writes
			if h.sess.Closed() && !h.sess.Draining() {
				return h.stopped()
			}
			done, err := h.send(ctx, msg)
			if err != nil || done {
				return err
			}
		}
	}
}

// stopped ends a session closed without draining.
func (h *Handler) stopped() error {
	if h.sess.Replaced() {
		return ErrSessionReplaced
	}
	logger.WithFields(log.SessionToFields(h.sess)).Info("session closed by server")
	return nil
}

// flush writes the events still queued when the session was ended.
func (h *Handler) flush(ctx context.Context) error {
	for {
		select {
		case msg := <-h.sess.Queue():
			done, err := h.send(ctx, msg)
			if err != nil || done {
				return err
			}
		default:
			logger.WithFields(log.SessionToFields(h.sess)).Info("stream ended by server")
			return nil
		}
	}
}

// send writes msg and reports whether the event limit has been reached.
func (h *Handler) send(ctx context.Context, msg *eventpb.EventMessage) (bool, error) {
	if err := h.sess.Stream().Send(msg); err != nil {
		h.metrics.EventDropped(metrics.ReasonWriteFailed)
		if ctx.Err() != nil {
			logger.WithFields(log.SessionToFields(h.sess)).Info("client disconnected during write")
			return true, nil
		}
		return true, errors.Wrap(ErrWriteFailed, err.Error())
	}
	sent := h.sent.Add(1)
	h.metrics.EventSent()
	logger.WithFields(log.EventMessageToFields(msg)).Debug("sent event")
	if h.maxEvents > 0 && sent >= h.maxEvents {
		logger.WithFields(log.SessionToFields(h.sess)).WithField("sent", sent).Info("max events reached, ending stream")
		return true, nil
	}
	return false, nil
}

func (h *Handler) close() {
	h.registry.Remove(h.sess)
	h.metrics.SessionClosed()
	h.transition(StateClosed, log.SessionToFields(h.sess))
}
