package apps

import (
	"context"
	"fmt"
	"net"
	"time"

	"evstream/internal/pkg/broadcast"
	"evstream/internal/pkg/health"
	"evstream/internal/pkg/metrics"
	"evstream/internal/pkg/server"
	"evstream/internal/pkg/session"
	"evstream/internal/pkg/transport"
	"evstream/internal/pkg/validate"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// ServerAppCfg configures a ServerApp.
type ServerAppCfg interface {
	ApplyServerApp(*ServerApp) error
}

// ServerApp is the event stream server application.
type ServerApp struct {
	Host       string
	Port       uint16 `validate:"required_without=Listener"`
	HealthPort uint16
	Transport  transport.Config

	Interval    time.Duration           `validate:"gt=0"`
	MaxTicks    uint64
	Recipients  broadcast.RecipientMode `validate:"oneof=all single"`
	MaxEvents   uint64
	MaxSessions int64 `validate:"gte=0"`
	QueueSize   int   `validate:"gt=0"`

	// Listener, when set, is served instead of binding Host:Port.
	Listener net.Listener `validate:"-"`
	// Metrics defaults to the collectors registered with the global Prometheus registry.
	Metrics  *metrics.Metrics    `validate:"-"`
	Gatherer prometheus.Gatherer `validate:"-"`

	registry *session.MemoryRegistry
}

// NewServerApp creates a new ServerApp.
func NewServerApp(cfgs ...ServerAppCfg) (*ServerApp, error) {
	app := &ServerApp{
		Interval:   broadcast.DefaultInterval,
		Recipients: broadcast.RecipientsAll,
		QueueSize:  session.DefaultQueueSize,
		Transport:  transport.Config{Security: transport.SecurityInsecure},
	}
	for _, cfg := range cfgs {
		if err := cfg.ApplyServerApp(app); err != nil {
			return nil, errors.Wrap(err, "apply ServerApp cfg failed")
		}
	}
	if err := validate.Validate().Struct(app); err != nil {
		return nil, errors.Wrap(err, "validate ServerApp failed")
	}
	app.registry = session.NewMemoryRegistry(session.WithQueueSize(app.QueueSize))
	return app, nil
}

// Registry returns the session registry of the app.
func (app *ServerApp) Registry() session.Registry {
	return app.registry
}

// Run serves the event stream until ctx is done or a bounded broadcast completes.
// Certificate and bind failures are returned before anything is started.
func (app *ServerApp) Run(ctx context.Context, _ []string) error {
	creds, err := app.Transport.ServerOption()
	if err != nil {
		return errors.Wrap(err, "load server credentials failed")
	}
	m := app.Metrics
	if m == nil {
		m = metrics.Default()
	}
	srv, err := server.NewServer(
		server.WithSessionRegistry(app.registry),
		server.WithMaxEvents(app.MaxEvents),
		server.WithMaxSessions(app.MaxSessions),
		server.WithMetrics(m),
	)
	if err != nil {
		return errors.Wrap(err, "new server failed")
	}
	bc, err := broadcast.NewBroadcaster(
		broadcast.WithRegistry(app.registry),
		broadcast.WithInterval(app.Interval),
		broadcast.WithMaxTicks(app.MaxTicks),
		broadcast.WithRecipientMode(app.Recipients),
		broadcast.WithMetrics(m),
	)
	if err != nil {
		return errors.Wrap(err, "new broadcaster failed")
	}
	var hs *health.Server
	if app.HealthPort > 0 {
		hs, err = health.NewServer(
			health.WithHost(app.Host),
			health.WithPort(app.HealthPort),
			health.WithGatherer(app.gatherer()),
			health.WithSessions(app.registry),
		)
		if err != nil {
			return errors.Wrap(err, "new health server failed")
		}
	}

	lis := app.Listener
	if lis == nil {
		lis, err = transport.Listen(fmt.Sprintf("%s:%d", app.Host, app.Port))
		if err != nil {
			return errors.Wrap(err, "listen grpc failed")
		}
	}
	var healthLis net.Listener
	if hs != nil {
		healthLis, err = hs.Listen()
		if err != nil {
			_ = lis.Close()
			return errors.Wrap(err, "listen health failed")
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return errors.Wrap(srv.Serve(gctx, lis, creds), "serve failed")
	})
	g.Go(func() error {
		// a bounded broadcast stops the whole app once its streams are ended
		defer cancel()
		return errors.Wrap(bc.Run(gctx), "run broadcaster failed")
	})
	if hs != nil {
		g.Go(func() error {
			return errors.Wrap(hs.Serve(gctx, healthLis), "serve health failed")
		})
	}
	return g.Wait()
}

func (app *ServerApp) gatherer() prometheus.Gatherer {
	if app.Gatherer != nil {
		return app.Gatherer
	}
	return prometheus.DefaultGatherer
}
