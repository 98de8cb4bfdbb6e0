package session

import "errors"

var ErrSessionNotFound = errors.New("session not found")

// ErrInvalidClientID is returned when a session is registered without a client id.
var ErrInvalidClientID = errors.New("invalid client id")

// ErrSessionClosed is returned when delivering to a session that has been closed.
var ErrSessionClosed = errors.New("session closed")

// ErrSlowConsumer is returned when a session's outbound queue is full.
var ErrSlowConsumer = errors.New("slow consumer")
