package cfg

import (
	"evstream/internal"
	"evstream/internal/app/apps"
)

// SessionCfg is configuration for the per-session limits of the server.
type SessionCfg struct {
	maxEvents   uint64
	maxSessions int64
	queueSize   int
}

// NewSessionCfg creates a new SessionCfg from the given config.
func NewSessionCfg(maxEvents uint64, maxSessions int64, queueSize int) *SessionCfg {
	return &SessionCfg{
		maxEvents:   maxEvents,
		maxSessions: maxSessions,
		queueSize:   queueSize,
	}
}

// SessionFromEnv creates a new SessionCfg from the current environment.
func SessionFromEnv() *SessionCfg {
	return &SessionCfg{
		maxEvents:   uint64(internal.MaxEvents),
		maxSessions: int64(internal.MaxGoroutines),
		queueSize:   int(internal.QueueSize),
	}
}

// ApplyServerApp applies the SessionCfg to a ServerApp.
func (cfg SessionCfg) ApplyServerApp(app *apps.ServerApp) error {
	app.MaxEvents = cfg.maxEvents
	app.MaxSessions = cfg.maxSessions
	app.QueueSize = cfg.queueSize
	return nil
}
