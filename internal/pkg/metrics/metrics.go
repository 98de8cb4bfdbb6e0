// Package metrics exposes the Prometheus collectors reported by the event stream server.
package metrics

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "evstream"

// Drop and rejection reasons used as label values.
const (
	ReasonSlowConsumer    = "slow_consumer"
	ReasonSessionClosed   = "session_closed"
	ReasonWriteFailed     = "write_failed"
	ReasonInvalidClientID = "invalid_client_id"
	ReasonCapacity        = "capacity"
)

// Metrics holds the collectors shared by the registry, broadcaster and server.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	sessionsActive   prometheus.Gauge
	sessionsRejected *prometheus.CounterVec
	eventsSent       prometheus.Counter
	eventsDropped    *prometheus.CounterVec
	ticks            prometheus.Counter
}

var (
	defaultOnce sync.Once
	defaultM    *Metrics
)

// Default returns the Metrics registered with the global Prometheus registry.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultM = MustNewMetrics(prometheus.DefaultRegisterer)
	})
	return defaultM
}

// MustNewMetrics creates Metrics registered with reg, reusing collectors that
// are already registered under the same name. Any other registration error panics.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &Metrics{
		sessionsActive: mustRegister(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of client sessions currently streaming.",
		})),
		sessionsRejected: mustRegister(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_rejected_total",
			Help:      "Stream calls refused before registration.",
		}, []string{"reason"})),
		eventsSent: mustRegister(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_sent_total",
			Help:      "Events written to client streams.",
		})),
		eventsDropped: mustRegister(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "Events that could not be delivered, by reason.",
		}, []string{"reason"})),
		ticks: mustRegister(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broadcast_ticks_total",
			Help:      "Broadcaster ticks executed.",
		})),
	}
}

func mustRegister[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// SessionOpened records a session entering the active state.
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.sessionsActive.Inc()
}

// SessionClosed records a session leaving the active state.
func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.sessionsActive.Dec()
}

// SessionRejected records a stream call refused for reason.
func (m *Metrics) SessionRejected(reason string) {
	if m == nil {
		return
	}
	m.sessionsRejected.WithLabelValues(reason).Inc()
}

// EventSent records an event written to a stream.
func (m *Metrics) EventSent() {
	if m == nil {
		return
	}
	m.eventsSent.Inc()
}

// EventDropped records an event that was not delivered for reason.
func (m *Metrics) EventDropped(reason string) {
	if m == nil {
		return
	}
	m.eventsDropped.WithLabelValues(reason).Inc()
}

// Tick records one broadcaster tick.
func (m *Metrics) Tick() {
	if m == nil {
		return
	}
	m.ticks.Inc()
}
