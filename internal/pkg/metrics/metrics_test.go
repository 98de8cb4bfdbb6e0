package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := MustNewMetrics(reg)
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	m.EventSent()
	m.EventDropped(ReasonSlowConsumer)
	m.SessionRejected(ReasonInvalidClientID)
	m.Tick()

	require.Equal(t, 1.0, testutil.ToFloat64(m.sessionsActive))
	require.Equal(t, 1.0, testutil.ToFloat64(m.eventsSent))
	require.Equal(t, 1.0, testutil.ToFloat64(m.eventsDropped.WithLabelValues(ReasonSlowConsumer)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.sessionsRejected.WithLabelValues(ReasonInvalidClientID)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.ticks))
}

func TestMustNewMetricsReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := MustNewMetrics(reg)
	b := MustNewMetrics(reg)
	a.Tick()
	b.Tick()
	require.Equal(t, 2.0, testutil.ToFloat64(a.ticks))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.SessionOpened()
		m.SessionClosed()
		m.SessionRejected(ReasonCapacity)
		m.EventSent()
		m.EventDropped(ReasonWriteFailed)
		m.Tick()
	})
}
