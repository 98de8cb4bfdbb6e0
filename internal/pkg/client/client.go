package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	eventpb "evstream/api/proto/gen/pb-go/eventpb"
	"evstream/internal/pkg/log"
	"evstream/internal/pkg/transport"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// Client implements the client side of the event stream.
type Client struct {
	serverAddr string
	clientID   string
	transport  transport.Config
	killswitch time.Duration
	maxEvents  uint64

	received atomic.Uint64
	counter  uint64

	conn    *grpc.ClientConn
	service eventpb.ControllerClient
}

// Cfg configures a Client.
type Cfg func(*Client) error

// WithServerPort sets the server port to connect to on localhost.
func WithServerPort(p uint16) Cfg {
	return func(c *Client) error {
		c.serverAddr = fmt.Sprintf("localhost:%d", p)
		return nil
	}
}

// WithServerAddr sets the server address to connect to.
func WithServerAddr(addr string) Cfg {
	return func(c *Client) error {
		c.serverAddr = addr
		return nil
	}
}

// WithClientID sets the id the client registers with.
func WithClientID(id string) Cfg {
	return func(c *Client) error {
		c.clientID = id
		return nil
	}
}

// WithTransport sets the transport security used to dial the server.
func WithTransport(cfg transport.Config) Cfg {
	return func(c *Client) error {
		c.transport = cfg
		return nil
	}
}

// WithKillswitch drops the connection after d. Zero disables the killswitch.
func WithKillswitch(d time.Duration) Cfg {
	return func(c *Client) error {
		c.killswitch = d
		return nil
	}
}

// WithMaxEvents stops the client after n events. Zero means until the server ends the stream.
func WithMaxEvents(n uint64) Cfg {
	return func(c *Client) error {
		c.maxEvents = n
		return nil
	}
}

// NewClient creates a new Client with the given configuration.
func NewClient(cfgs ...Cfg) (*Client, error) {
	client := &Client{}
	for _, cfg := range cfgs {
		if err := cfg(client); err != nil {
			return nil, errors.Wrap(err, "apply Client cfg failed")
		}
	}
	if client.clientID == "" {
		client.clientID = uuid.New().String()
	}
	return client, nil
}

// ClientID returns the id the client registers with.
func (c *Client) ClientID() string {
	return c.clientID
}

// Received returns the number of events received.
func (c *Client) Received() uint64 {
	return c.received.Load()
}

// Connect establishes the connection to the server.
func (c *Client) Connect(_ context.Context) error {
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return errors.Wrap(err, "close client connection failed")
		}
	}
	creds, err := c.transport.DialOption()
	if err != nil {
		return errors.Wrap(err, "build transport credentials failed")
	}
	c.conn, err = grpc.NewClient(c.serverAddr, creds)
	if err != nil {
		return errors.Wrapf(err, "connect to %s failed", c.serverAddr)
	}
	c.service = eventpb.NewControllerClient(c.conn)
	return nil
}

// Close closes the connection to the server.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return errors.Wrap(err, "close client connection failed")
}

// Run opens the event stream and receives events until it ends.
func (c *Client) Run(ctx context.Context) error {
	if c.service == nil {
		return ErrNotConnected
	}
	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if c.killswitch > 0 {
		streamCtx, cancel = context.WithTimeout(streamCtx, c.killswitch)
		defer cancel()
	}

	stream, err := c.service.StreamEvent(streamCtx, &eventpb.EventRequest{ClientId: c.clientID})
	if err != nil {
		return errors.Wrap(err, "call stream event failed")
	}
	logger.WithField("client_id", c.clientID).Info("stream opened")
	for {
		msg, err := stream.Recv()
		if err == io.EOF {
			logger.WithField("received", c.Received()).Info("stream ended by server")
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if streamCtx.Err() != nil || status.Code(err) == codes.Canceled {
				logger.WithField("client_id", c.clientID).Warn("killswitch fired, disconnecting")
				return ErrClientDisconnected
			}
			return errors.Wrap(err, "receive event failed")
		}
		if err := c.handleMessage(msg); err != nil {
			return errors.Wrap(err, "handle message failed")
		}
		if c.maxEvents > 0 && c.Received() >= c.maxEvents {
			logger.WithField("received", c.Received()).Info("received all events, closing stream")
			return nil
		}
	}
}

type eventPayload struct {
	Message uint64 `json:"message"`
}

// handleMessage checks that msg belongs to this client and follows the previous event.
func (c *Client) handleMessage(msg *eventpb.EventMessage) error {
	logger.WithFields(log.EventMessageToFields(msg)).Info("received event")
	if msg.GetId() != c.clientID {
		return errors.Wrapf(ErrUnexpectedClientID, "got %q, want %q", msg.GetId(), c.clientID)
	}
	var payload eventPayload
	if err := json.Unmarshal([]byte(msg.GetMessage()), &payload); err != nil {
		return errors.Wrap(err, "decode event payload failed")
	}
	if payload.Message <= c.counter {
		return errors.Wrapf(ErrOutOfOrder, "counter %d after %d", payload.Message, c.counter)
	}
	c.counter = payload.Message
	c.received.Add(1)
	return nil
}
