// Package client implements a demo client of the event stream.
//
// The client performs the following steps:
//	1. Connect to the server, with insecure or TLS credentials.
//	2. Open a StreamEvent call carrying its client id, a random UUID unless one is configured.
//	3. Receive events, checking each one is addressed to this client and that the event
//	   counter increases, and log them.
//	4. Return when the server ends the stream, when the configured number of events has
//	   been received, or when the context is done.
//
// A killswitch duration can be set to drop the connection on purpose, which exercises the
// server side cancellation path. In that case Run returns ErrClientDisconnected and the
// reconnection must be performed by the caller. The server does not buffer missed events.
package client
