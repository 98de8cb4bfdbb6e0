package cfg

import (
	"evstream/internal"
	"evstream/internal/app/apps"
	"evstream/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// HealthCfg is configuration for the health and metrics endpoints.
type HealthCfg struct {
	port     uint16
	registry *prometheus.Registry
}

// NewHealthCfg creates a new HealthCfg serving on port. A non-nil registry
// replaces the global Prometheus registry.
func NewHealthCfg(port uint16, registry *prometheus.Registry) *HealthCfg {
	return &HealthCfg{
		port:     port,
		registry: registry,
	}
}

// HealthFromEnv creates a new HealthCfg from the current environment.
func HealthFromEnv() *HealthCfg {
	return &HealthCfg{
		port: uint16(internal.HealthPort),
	}
}

// ApplyServerApp applies the HealthCfg to a ServerApp.
func (cfg HealthCfg) ApplyServerApp(app *apps.ServerApp) error {
	app.HealthPort = cfg.port
	if cfg.registry != nil {
		app.Metrics = metrics.MustNewMetrics(cfg.registry)
		app.Gatherer = cfg.registry
	}
	return nil
}
