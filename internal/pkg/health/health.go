// Package health serves the liveness and metrics endpoints on the health port.
package health

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

const shutdownTimeout = 5 * time.Second

// Sizer reports the number of live sessions.
type Sizer interface {
	Size() int
}

// Server serves /healthz and /metrics.
type Server struct {
	host     string
	port     int
	gatherer prometheus.Gatherer
	sessions Sizer
}

// Cfg configures a Server.
type Cfg func(*Server) error

// WithHost sets the interface the health server binds. Empty binds all interfaces.
func WithHost(host string) Cfg {
	return func(s *Server) error {
		s.host = host
		return nil
	}
}

// WithPort sets the port the health server listens on.
func WithPort(port uint16) Cfg {
	return func(s *Server) error {
		s.port = int(port)
		return nil
	}
}

// WithGatherer sets the Prometheus gatherer exposed on /metrics.
func WithGatherer(g prometheus.Gatherer) Cfg {
	return func(s *Server) error {
		s.gatherer = g
		return nil
	}
}

// WithSessions reports the live session count on /healthz.
func WithSessions(sizer Sizer) Cfg {
	return func(s *Server) error {
		s.sessions = sizer
		return nil
	}
}

// NewServer creates a new health Server.
func NewServer(cfgs ...Cfg) (*Server, error) {
	s := &Server{
		gatherer: prometheus.DefaultGatherer,
		port:     -1,
	}
	for _, cfg := range cfgs {
		if err := cfg(s); err != nil {
			return nil, errors.Wrap(err, "apply health Server cfg failed")
		}
	}
	if s.port < 0 {
		return nil, errors.New("health server port is required")
	}
	return s, nil
}

// Handler returns the HTTP handler for the health endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if s.sessions != nil {
			fmt.Fprintf(w, "ok sessions=%d\n", s.sessions.Size())
			return
		}
		fmt.Fprintln(w, "ok")
	})
	mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return mux
}

// Serve listens on lis until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("health server shutdown failed")
		}
	}()
	logger.WithField("addr", lis.Addr().String()).Info("health server listening")
	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve health failed")
	}
	return nil
}

// Addr returns the address the health server binds.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

// Listen binds the health server address.
func (s *Server) Listen() (net.Listener, error) {
	addr := s.Addr()
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen on %s failed", addr)
	}
	return lis, nil
}
