package internal

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variable of every flag.
const EnvPrefix = "EVSTREAM"

// Flag describes a command line flag that can also be set from the
// environment or the config file.
type Flag struct {
	Name    string
	Usage   string
	Default any
}

// EnvVar returns the environment variable that sets the flag.
func (f *Flag) EnvVar() string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
}

// Flags shared by every command.
var (
	ConfigFlag = Flag{
		Name:    "config",
		Usage:   "path to a YAML config file",
		Default: "",
	}
	EnvFlag = Flag{
		Name:    "env",
		Usage:   "deployment environment (development, test, production)",
		Default: "development",
	}
	LogLevelFlag = Flag{
		Name:    "log-level",
		Usage:   "log level (trace, debug, info, warn, error)",
		Default: "info",
	}
	LogFileFlag = Flag{
		Name:    "log-file",
		Usage:   "also write logs to this file, rotated",
		Default: "",
	}
	PortFlag = Flag{
		Name:    "port",
		Usage:   "gRPC port",
		Default: uint(50051),
	}
	TransportFlag = Flag{
		Name:    "transport",
		Usage:   "transport security (insecure, tls)",
		Default: "insecure",
	}
	CACertFlag = Flag{
		Name:    "ca-cert",
		Usage:   "CA certificate used by the client in tls mode",
		Default: "",
	}
)

// Server flags.
var (
	HostFlag = Flag{
		Name:    "host",
		Usage:   "address the gRPC server listens on",
		Default: "0.0.0.0",
	}
	HealthPortFlag = Flag{
		Name:    "health-port",
		Usage:   "port serving /healthz and /metrics, 0 disables it",
		Default: uint(8080),
	}
	MaxGoroutinesFlag = Flag{
		Name:    "max-goroutines",
		Usage:   "maximum concurrent stream calls, 0 for unbounded",
		Default: uint(0),
	}
	CertFlag = Flag{
		Name:    "cert",
		Usage:   "server certificate in tls mode",
		Default: "",
	}
	KeyFlag = Flag{
		Name:    "key",
		Usage:   "server private key in tls mode",
		Default: "",
	}
	ServerTickerMSFlag = Flag{
		Name:    "server-ticker-ms",
		Usage:   "broadcast interval in milliseconds",
		Default: uint(2000),
	}
	MaxTicksFlag = Flag{
		Name:    "max-ticks",
		Usage:   "stop broadcasting and end every stream after this many ticks, 0 for unbounded",
		Default: uint(0),
	}
	RecipientsFlag = Flag{
		Name:    "recipients",
		Usage:   "which sessions receive each tick (all, single)",
		Default: "all",
	}
	MaxEventsFlag = Flag{
		Name:    "max-events",
		Usage:   "end each stream after this many events, 0 for unbounded",
		Default: uint(0),
	}
	QueueSizeFlag = Flag{
		Name:    "queue-size",
		Usage:   "events buffered per session before it is evicted as too slow",
		Default: uint(16),
	}
)

// Client flags.
var (
	ServerAddrFlag = Flag{
		Name:    "server-addr",
		Usage:   "server address, defaults to localhost:<port>",
		Default: "",
	}
	ServerNameFlag = Flag{
		Name:    "server-name",
		Usage:   "override the server name verified in tls mode",
		Default: "",
	}
	ClientIDFlag = Flag{
		Name:    "client-id",
		Usage:   "client id to register with, random if empty",
		Default: "",
	}
	ClientKillswitchMSFlag = Flag{
		Name:    "client-killswitch-ms",
		Usage:   "drop the connection after this many milliseconds, 0 disables it",
		Default: uint(0),
	}
)

var allFlags = []*Flag{
	&ConfigFlag, &EnvFlag, &LogLevelFlag, &LogFileFlag, &PortFlag, &TransportFlag, &CACertFlag,
	&HostFlag, &HealthPortFlag, &MaxGoroutinesFlag, &CertFlag, &KeyFlag,
	&ServerTickerMSFlag, &MaxTicksFlag, &RecipientsFlag, &MaxEventsFlag, &QueueSizeFlag,
	&ServerAddrFlag, &ServerNameFlag, &ClientIDFlag, &ClientKillswitchMSFlag,
}

// Defaults apply to flags a command does not register, so every value is
// always resolvable.
func init() {
	for _, f := range allFlags {
		viper.SetDefault(f.Name, f.Default)
	}
}

// RegisterCommandFlags adds flags to cmd and binds them to viper and the environment.
// Flags registered on a root command are inherited by its subcommands.
func RegisterCommandFlags(cmd *cobra.Command, flags []*Flag) error {
	fs := cmd.Flags()
	if !cmd.HasParent() {
		fs = cmd.PersistentFlags()
	}
	for _, f := range flags {
		if fs.Lookup(f.Name) != nil {
			return errors.Errorf("flag %s already registered", f.Name)
		}
		usage := fmt.Sprintf("%s [%s]", f.Usage, f.EnvVar())
		switch d := f.Default.(type) {
		case string:
			fs.String(f.Name, d, usage)
		case uint:
			fs.Uint(f.Name, d, usage)
		case bool:
			fs.Bool(f.Name, d, usage)
		default:
			return errors.Errorf("unsupported default %T for flag %s", f.Default, f.Name)
		}
		if err := viper.BindPFlag(f.Name, fs.Lookup(f.Name)); err != nil {
			return errors.Wrapf(err, "bind flag %s failed", f.Name)
		}
		if err := viper.BindEnv(f.Name, f.EnvVar()); err != nil {
			return errors.Wrapf(err, "bind env %s failed", f.EnvVar())
		}
	}
	return nil
}
