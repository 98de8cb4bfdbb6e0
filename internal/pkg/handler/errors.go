package handler

import "github.com/pkg/errors"

// ErrInvalidClientID indicates the stream was opened without a client id.
var ErrInvalidClientID = errors.New("client id is required")

// ErrSessionReplaced indicates a newer stream registered with the same client id.
var ErrSessionReplaced = errors.New("session replaced by a newer stream")

// ErrWriteFailed indicates an event could not be written to the stream.
var ErrWriteFailed = errors.New("write event failed")
