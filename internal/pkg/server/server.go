package server

import (
	"context"
	"net"
	"time"

	eventpb "evstream/api/proto/gen/pb-go/eventpb"
	"evstream/internal/pkg/handler"
	"evstream/internal/pkg/log"
	"evstream/internal/pkg/metrics"
	"evstream/internal/pkg/session"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

const shutdownTimeout = 5 * time.Second

// Server implements a gRPC server that streams events to registered clients.
type Server struct {
	eventpb.UnimplementedControllerServer

	registry  session.Registry
	metrics   *metrics.Metrics
	maxEvents uint64
	sessions  *semaphore.Weighted
}

// Cfg configures a Server.
type Cfg func(*Server) error

// WithSessionRegistry sets the session registry for the server.
func WithSessionRegistry(r session.Registry) Cfg {
	return func(s *Server) error {
		s.registry = r
		return nil
	}
}

// WithMaxEvents ends each stream after n events. Zero means unbounded.
func WithMaxEvents(n uint64) Cfg {
	return func(s *Server) error {
		s.maxEvents = n
		return nil
	}
}

// WithMaxSessions limits the number of concurrent stream calls. Zero means unbounded.
func WithMaxSessions(n int64) Cfg {
	return func(s *Server) error {
		if n < 0 {
			return errors.Errorf("invalid max sessions %d", n)
		}
		if n > 0 {
			s.sessions = semaphore.NewWeighted(n)
		}
		return nil
	}
}

// WithMetrics sets the metrics the server reports to.
func WithMetrics(m *metrics.Metrics) Cfg {
	return func(s *Server) error {
		s.metrics = m
		return nil
	}
}

// NewServer creates a new Server with the given configuration.
func NewServer(cfgs ...Cfg) (*Server, error) {
	server := &Server{}
	for _, cfg := range cfgs {
		if err := cfg(server); err != nil {
			return nil, errors.Wrap(err, "apply Server cfg failed")
		}
	}
	if server.registry == nil {
		server.registry = session.NewMemoryRegistry()
	}
	return server, nil
}

// Registry returns the session registry the server registers sessions in.
func (s *Server) Registry() session.Registry {
	return s.registry
}

// StreamEvent implements the gRPC endpoint for the server-streaming event call.
func (s *Server) StreamEvent(req *eventpb.EventRequest, srv eventpb.Controller_StreamEventServer) error {
	fields := log.RequestToFields(req)
	logger.WithFields(fields).Info("new stream call")
	if s.sessions != nil {
		if !s.sessions.TryAcquire(1) {
			s.metrics.SessionRejected(metrics.ReasonCapacity)
			logger.WithFields(fields).Warn("rejecting stream, session limit reached")
			return status.Error(codes.ResourceExhausted, "session limit reached")
		}
		defer s.sessions.Release(1)
	}
	h, err := handler.NewHandler(
		handler.WithRegistry(s.registry),
		handler.WithMaxEvents(s.maxEvents),
		handler.WithMetrics(s.metrics),
	)
	if err != nil {
		return status.Error(codes.Internal, errors.Wrap(err, "new handler failed").Error())
	}
	return toStatus(h.Run(srv.Context(), req, srv))
}

func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, handler.ErrInvalidClientID), errors.Is(err, session.ErrInvalidClientID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, handler.ErrSessionReplaced):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, handler.ErrWriteFailed):
		return status.Error(codes.Unavailable, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// Serve registers the server on a new gRPC server and serves lis until ctx is done.
// On shutdown every session is ended before the gRPC server is stopped.
func (s *Server) Serve(ctx context.Context, lis net.Listener, opts ...grpc.ServerOption) error {
	gs := grpc.NewServer(opts...)
	eventpb.RegisterControllerServer(gs, s)
	shutdown := make(chan struct{})
	go func() {
		defer close(shutdown)
		<-ctx.Done()
		closed := s.registry.CloseAll()
		logger.WithField("closed", closed).Info("stopping grpc server")
		stopped := make(chan struct{})
		go func() {
			gs.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(shutdownTimeout):
			logger.Warn("graceful stop timed out, forcing stop")
			gs.Stop()
		}
	}()
	logger.WithField("addr", lis.Addr().String()).Info("grpc server listening")
	if err := gs.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return errors.Wrap(err, "serve grpc failed")
	}
	<-shutdown
	return nil
}
