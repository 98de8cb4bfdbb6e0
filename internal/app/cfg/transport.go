package cfg

import (
	"evstream/internal"
	"evstream/internal/app/apps"
	"evstream/internal/pkg/transport"
)

// TransportCfg is configuration for the transport security.
type TransportCfg struct {
	cfg transport.Config
}

// NewTransportCfg creates a new TransportCfg from the given config.
func NewTransportCfg(cfg transport.Config) *TransportCfg {
	return &TransportCfg{cfg: cfg}
}

// TransportFromEnv creates a new TransportCfg from the current environment.
func TransportFromEnv() *TransportCfg {
	return &TransportCfg{
		cfg: transport.Config{
			Security:   transport.Security(internal.Transport),
			CAFile:     internal.CACert,
			CertFile:   internal.Cert,
			KeyFile:    internal.Key,
			ServerName: internal.ServerName,
		},
	}
}

// ApplyClientApp applies the TransportCfg to a ClientApp.
func (cfg TransportCfg) ApplyClientApp(app *apps.ClientApp) error {
	app.Transport = cfg.cfg
	return nil
}

// ApplyServerApp applies the TransportCfg to a ServerApp.
func (cfg TransportCfg) ApplyServerApp(app *apps.ServerApp) error {
	app.Transport = cfg.cfg
	return nil
}
