// Package server implements the gRPC side of the event stream.
//
// The server performs the following steps:
// 	1. Sets up a gRPC server, with insecure or TLS credentials, to handle incoming stream calls.
// 	2. On a StreamEvent call it checks the session limit, then hands the call to a handler
// 	   which validates the client id and registers the session.
// 	3. The broadcaster, running independently, queues events for every registered session
// 	   and the handler writes them to the stream in order.
// 	4. When the client disconnects, the call context is cancelled and the handler removes the
// 	   session from the registry.
// 	5. On shutdown, every session is ended from the server side before the gRPC server stops.
//
// Handler errors are translated to gRPC status codes: a missing client id is InvalidArgument,
// a replaced session is Aborted, a failed write is Unavailable and a full server is ResourceExhausted.
package server
