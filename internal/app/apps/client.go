package apps

import (
	"context"
	"fmt"
	"time"

	"evstream/internal/pkg/client"
	"evstream/internal/pkg/transport"
	"evstream/internal/pkg/validate"

	"github.com/pkg/errors"
)

// ClientAppCfg configures a ClientApp.
type ClientAppCfg interface {
	ApplyClientApp(*ClientApp) error
}

// ClientApp is the demo event stream client application.
type ClientApp struct {
	Port       uint16 `validate:"required_without=ServerAddr"`
	ServerAddr string
	ClientID   string
	Transport  transport.Config
	Killswitch time.Duration `validate:"gte=0"`
	MaxEvents  uint64

	received uint64
}

// NewClientApp creates a new ClientApp.
func NewClientApp(cfgs ...ClientAppCfg) (*ClientApp, error) {
	app := &ClientApp{
		Transport: transport.Config{Security: transport.SecurityInsecure},
	}
	for _, cfg := range cfgs {
		if err := cfg.ApplyClientApp(app); err != nil {
			return nil, errors.Wrap(err, "apply ClientApp cfg failed")
		}
	}
	if err := validate.Validate().Struct(app); err != nil {
		return nil, errors.Wrap(err, "validate ClientApp failed")
	}
	return app, nil
}

// Received returns the number of events received by the last Run.
func (app *ClientApp) Received() uint64 {
	return app.received
}

// Run receives events until the server ends the stream or MaxEvents have been received.
// When the killswitch drops the connection, a new stream is opened with the same client id.
func (app *ClientApp) Run(ctx context.Context, _ []string) error {
	addr := app.ServerAddr
	if addr == "" {
		addr = fmt.Sprintf("localhost:%d", app.Port)
	}
	c, err := client.NewClient(
		client.WithServerAddr(addr),
		client.WithClientID(app.ClientID),
		client.WithTransport(app.Transport),
		client.WithKillswitch(app.Killswitch),
		client.WithMaxEvents(app.MaxEvents),
	)
	if err != nil {
		return errors.Wrap(err, "create client failed")
	}
	defer func() {
		app.received = c.Received()
		if err := c.Close(); err != nil {
			logger.WithError(err).Warn("close client failed")
		}
	}()
	for {
		if err := c.Connect(ctx); err != nil {
			return errors.Wrap(err, "connect client failed")
		}
		err := c.Run(ctx)
		if errors.Is(err, client.ErrClientDisconnected) && ctx.Err() == nil {
			logger.WithField("client_id", c.ClientID()).Info("reconnecting")
			continue
		}
		return errors.Wrap(err, "run client failed")
	}
}
