// Package transport builds the gRPC transport credentials for the event stream.
package transport

import (
	"net"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// Security selects the channel security of the transport.
type Security string

// Supported transport security modes.
const (
	SecurityInsecure Security = "insecure"
	SecurityTLS      Security = "tls"
)

// ErrCertificateLoad indicates TLS certificate material could not be loaded.
var ErrCertificateLoad = errors.New("load certificate failed")

// ErrBind indicates the server could not listen on its address.
var ErrBind = errors.New("bind listener failed")

// ErrUnknownSecurity indicates an unsupported transport security mode.
var ErrUnknownSecurity = errors.New("unknown transport security")

// Config describes the transport security of one side of the channel.
//
// The server needs CertFile and KeyFile in TLS mode; the client needs CAFile.
type Config struct {
	Security   Security
	CAFile     string
	CertFile   string
	KeyFile    string
	ServerName string
}

// ServerOption returns the grpc.ServerOption carrying the server credentials.
func (c Config) ServerOption() (grpc.ServerOption, error) {
	switch c.Security {
	case SecurityInsecure, "":
		return grpc.Creds(insecure.NewCredentials()), nil
	case SecurityTLS:
		if c.CertFile == "" || c.KeyFile == "" {
			return nil, errors.Wrap(ErrCertificateLoad, "tls requires a certificate and a private key")
		}
		creds, err := credentials.NewServerTLSFromFile(c.CertFile, c.KeyFile)
		if err != nil {
			return nil, errors.Wrapf(ErrCertificateLoad, "%s, %s: %v", c.CertFile, c.KeyFile, err)
		}
		return grpc.Creds(creds), nil
	}
	return nil, errors.Wrapf(ErrUnknownSecurity, "%q", c.Security)
}

// DialOption returns the grpc.DialOption carrying the client credentials.
func (c Config) DialOption() (grpc.DialOption, error) {
	switch c.Security {
	case SecurityInsecure, "":
		return grpc.WithTransportCredentials(insecure.NewCredentials()), nil
	case SecurityTLS:
		if c.CAFile == "" {
			return nil, errors.Wrap(ErrCertificateLoad, "tls requires a CA certificate")
		}
		creds, err := credentials.NewClientTLSFromFile(c.CAFile, c.ServerName)
		if err != nil {
			return nil, errors.Wrapf(ErrCertificateLoad, "%s: %v", c.CAFile, err)
		}
		return grpc.WithTransportCredentials(creds), nil
	}
	return nil, errors.Wrapf(ErrUnknownSecurity, "%q", c.Security)
}

// Listen binds a TCP listener on addr.
func Listen(addr string) (net.Listener, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(ErrBind, "%s: %v", addr, err)
	}
	return lis, nil
}
