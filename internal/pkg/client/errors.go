package client

import "github.com/pkg/errors"

// ErrNotConnected indicates Run was called before Connect.
var ErrNotConnected = errors.New("not connected")

// ErrUnexpectedClientID indicates an event addressed to another client was received.
var ErrUnexpectedClientID = errors.New("unexpected client id")

// ErrOutOfOrder indicates an event arrived with a counter not greater than the previous one.
var ErrOutOfOrder = errors.New("event out of order")

// ErrClientDisconnected indicates that the client disconnected from the server but should reconnect.
var ErrClientDisconnected = errors.New("client disconnected")
