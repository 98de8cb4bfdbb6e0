package cfg

import (
	"time"

	"evstream/internal"
	"evstream/internal/app/apps"
)

// ClientCfg is configuration for the demo client.
type ClientCfg struct {
	serverAddr string
	clientID   string
	killswitch time.Duration
	maxEvents  uint64
}

// NewClientCfg creates a new ClientCfg from the given config.
func NewClientCfg(serverAddr, clientID string, killswitch time.Duration, maxEvents uint64) *ClientCfg {
	return &ClientCfg{
		serverAddr: serverAddr,
		clientID:   clientID,
		killswitch: killswitch,
		maxEvents:  maxEvents,
	}
}

// ClientFromEnv creates a new ClientCfg from the current environment.
// maxEvents comes from the command line.
func ClientFromEnv(maxEvents uint64) *ClientCfg {
	return &ClientCfg{
		serverAddr: internal.ServerAddr,
		clientID:   internal.ClientID,
		killswitch: time.Duration(internal.ClientKillswitchMS) * time.Millisecond,
		maxEvents:  maxEvents,
	}
}

// ApplyClientApp applies the ClientCfg to a ClientApp.
func (cfg ClientCfg) ApplyClientApp(app *apps.ClientApp) error {
	app.ServerAddr = cfg.serverAddr
	app.ClientID = cfg.clientID
	app.Killswitch = cfg.killswitch
	app.MaxEvents = cfg.maxEvents
	return nil
}
