package cfg

import (
	"net"

	"evstream/internal/app/apps"
)

// ListenerCfg makes a ServerApp serve an already bound listener.
type ListenerCfg struct {
	lis net.Listener
}

// NewListenerCfg creates a new ListenerCfg.
func NewListenerCfg(lis net.Listener) *ListenerCfg {
	return &ListenerCfg{lis: lis}
}

// ApplyServerApp applies the ListenerCfg to a ServerApp.
func (cfg ListenerCfg) ApplyServerApp(app *apps.ServerApp) error {
	app.Listener = cfg.lis
	return nil
}
