// Package broadcast implements the periodic event broadcaster.
//
// On every tick the broadcaster snapshots the session registry and queues one
// event per recipient. Queuing never blocks: a session that is closed or whose
// queue is full is evicted from the registry and the tick carries on with the
// remaining sessions.
//
// The broadcaster runs until its context is cancelled, or, when a maximum tick
// count is configured, until that many ticks have fired. In the bounded case it
// ends every remaining stream from the server side before returning.
package broadcast

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	eventpb "evstream/api/proto/gen/pb-go/eventpb"
	"evstream/internal/pkg/log"
	"evstream/internal/pkg/metrics"
	"evstream/internal/pkg/session"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// DefaultInterval is the broadcast interval used when none is configured.
const DefaultInterval = 2 * time.Second

// RecipientMode selects which sessions receive an event on each tick.
type RecipientMode string

// Supported recipient modes.
const (
	RecipientsAll    RecipientMode = "all"
	RecipientsSingle RecipientMode = "single"
)

// Valid reports whether m is a supported recipient mode.
func (m RecipientMode) Valid() bool {
	return m == RecipientsAll || m == RecipientsSingle
}

// Broadcaster periodically delivers events to registered sessions.
type Broadcaster struct {
	registry session.Registry
	interval time.Duration
	maxTicks uint64
	mode     RecipientMode
	metrics  *metrics.Metrics
	now      func() time.Time

	ticks atomic.Uint64
}

// Cfg configures a Broadcaster.
type Cfg func(*Broadcaster) error

// WithRegistry sets the registry the broadcaster reads recipients from.
func WithRegistry(r session.Registry) Cfg {
	return func(b *Broadcaster) error {
		b.registry = r
		return nil
	}
}

// WithInterval sets the time between ticks.
func WithInterval(d time.Duration) Cfg {
	return func(b *Broadcaster) error {
		if d <= 0 {
			return errors.Errorf("invalid broadcast interval %s", d)
		}
		b.interval = d
		return nil
	}
}

// WithMaxTicks bounds the number of ticks. Zero means unbounded.
func WithMaxTicks(n uint64) Cfg {
	return func(b *Broadcaster) error {
		b.maxTicks = n
		return nil
	}
}

// WithRecipientMode sets which sessions receive each tick's events.
func WithRecipientMode(m RecipientMode) Cfg {
	return func(b *Broadcaster) error {
		if !m.Valid() {
			return errors.Errorf("invalid recipient mode %q", m)
		}
		b.mode = m
		return nil
	}
}

// WithMetrics sets the metrics the broadcaster reports to.
func WithMetrics(m *metrics.Metrics) Cfg {
	return func(b *Broadcaster) error {
		b.metrics = m
		return nil
	}
}

// WithClock overrides the clock used to timestamp events.
func WithClock(now func() time.Time) Cfg {
	return func(b *Broadcaster) error {
		b.now = now
		return nil
	}
}

// NewBroadcaster creates a new Broadcaster with the given configuration.
func NewBroadcaster(cfgs ...Cfg) (*Broadcaster, error) {
	b := &Broadcaster{
		interval: DefaultInterval,
		mode:     RecipientsAll,
		now:      time.Now,
	}
	for _, cfg := range cfgs {
		if err := cfg(b); err != nil {
			return nil, errors.Wrap(err, "apply Broadcaster cfg failed")
		}
	}
	if b.registry == nil {
		return nil, errors.New("broadcaster requires a session registry")
	}
	return b, nil
}

// TickResult summarises one tick.
type TickResult struct {
	Tick      uint64
	Delivered int
	Evicted   int
}

// Run ticks until ctx is done or the maximum tick count is reached.
func (b *Broadcaster) Run(ctx context.Context) error {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()
	logger.WithFields(logrus.Fields{
		"interval":  b.interval.String(),
		"max_ticks": b.maxTicks,
		"mode":      string(b.mode),
	}).Info("broadcaster started")
	for {
		select {
		case <-ctx.Done():
			logger.WithField("ticks", b.ticks.Load()).Info("broadcaster stopped")
			return nil
		case <-ticker.C:
			res := b.Tick()
			if b.maxTicks > 0 && res.Tick >= b.maxTicks {
				closed := b.registry.CloseAll()
				logger.WithFields(logrus.Fields{
					"ticks":  res.Tick,
					"closed": closed,
				}).Info("max ticks reached, ending streams")
				return nil
			}
		}
	}
}

// Tick delivers one event to each recipient and returns what happened.
func (b *Broadcaster) Tick() TickResult {
	res := TickResult{Tick: b.ticks.Add(1)}
	b.metrics.Tick()

	payload, err := json.Marshal(eventPayload{Message: res.Tick})
	if err != nil {
		logger.WithError(err).Error("marshal event payload failed")
		return res
	}
	timestamp := b.now().UTC().Format(time.RFC3339Nano)

	for _, sess := range b.recipients() {
		msg := &eventpb.EventMessage{
			Id:        sess.ClientID,
			Message:   string(payload),
			Timestamp: timestamp,
		}
		if err := sess.Deliver(msg); err != nil {
			b.evict(sess, err)
			res.Evicted++
			continue
		}
		res.Delivered++
	}
	logger.WithFields(logrus.Fields{
		"tick":      res.Tick,
		"delivered": res.Delivered,
		"evicted":   res.Evicted,
	}).Debug("broadcast tick")
	return res
}

// Ticks returns the number of ticks fired so far.
func (b *Broadcaster) Ticks() uint64 {
	return b.ticks.Load()
}

type eventPayload struct {
	Message uint64 `json:"message"`
}

func (b *Broadcaster) recipients() []*session.Session {
	sessions := b.registry.Snapshot()
	if b.mode == RecipientsSingle && len(sessions) > 1 {
		return sessions[len(sessions)-1:]
	}
	return sessions
}

func (b *Broadcaster) evict(sess *session.Session, cause error) {
	reason := metrics.ReasonSessionClosed
	if errors.Is(cause, session.ErrSlowConsumer) {
		reason = metrics.ReasonSlowConsumer
	}
	b.metrics.EventDropped(reason)
	removed := b.registry.Remove(sess)
	logger.WithFields(log.SessionToFields(sess)).WithFields(logrus.Fields{
		"reason":  reason,
		"removed": removed,
	}).Warn("evicting session")
}
