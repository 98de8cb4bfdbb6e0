// Package internal holds the process configuration shared by the apps.
//
// Each value is resolved, in order of precedence, from its command line flag,
// its EVSTREAM_* environment variable, the config file and its default. The
// values are fixed once ValidateEnv succeeds.
package internal

import (
	"evstream/internal/pkg/validate"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Process configuration, populated by ValidateEnv.
var (
	Env      string
	LogLevel string
	LogFile  string

	Host          string
	Port          uint
	HealthPort    uint
	MaxGoroutines uint

	Transport  string
	CACert     string
	Cert       string
	Key        string
	ServerName string

	ServerTickerMS uint
	MaxTicks       uint
	Recipients     string
	MaxEvents      uint
	QueueSize      uint

	ServerAddr         string
	ClientID           string
	ClientKillswitchMS uint
)

type environment struct {
	Env        string `validate:"oneof=development test production"`
	LogLevel   string `validate:"oneof=trace debug info warn error"`
	Port       uint   `validate:"required,max=65535"`
	HealthPort uint   `validate:"max=65535"`
	Transport  string `validate:"oneof=insecure tls"`

	ServerTickerMS uint   `validate:"gt=0"`
	Recipients     string `validate:"oneof=all single"`
	QueueSize      uint   `validate:"gt=0"`
}

// ValidateEnv reads the configuration and validates it.
func ValidateEnv() error {
	if path := viper.GetString(ConfigFlag.Name); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config file %s failed", path)
		}
	}

	Env = viper.GetString(EnvFlag.Name)
	LogLevel = viper.GetString(LogLevelFlag.Name)
	LogFile = viper.GetString(LogFileFlag.Name)

	Host = viper.GetString(HostFlag.Name)
	Port = viper.GetUint(PortFlag.Name)
	HealthPort = viper.GetUint(HealthPortFlag.Name)
	MaxGoroutines = viper.GetUint(MaxGoroutinesFlag.Name)

	Transport = viper.GetString(TransportFlag.Name)
	CACert = viper.GetString(CACertFlag.Name)
	Cert = viper.GetString(CertFlag.Name)
	Key = viper.GetString(KeyFlag.Name)
	ServerName = viper.GetString(ServerNameFlag.Name)

	ServerTickerMS = viper.GetUint(ServerTickerMSFlag.Name)
	MaxTicks = viper.GetUint(MaxTicksFlag.Name)
	Recipients = viper.GetString(RecipientsFlag.Name)
	MaxEvents = viper.GetUint(MaxEventsFlag.Name)
	QueueSize = viper.GetUint(QueueSizeFlag.Name)

	ServerAddr = viper.GetString(ServerAddrFlag.Name)
	ClientID = viper.GetString(ClientIDFlag.Name)
	ClientKillswitchMS = viper.GetUint(ClientKillswitchMSFlag.Name)

	env := environment{
		Env:            Env,
		LogLevel:       LogLevel,
		Port:           Port,
		HealthPort:     HealthPort,
		Transport:      Transport,
		ServerTickerMS: ServerTickerMS,
		Recipients:     Recipients,
		QueueSize:      QueueSize,
	}
	if err := validate.Validate().Struct(env); err != nil {
		return errors.Wrap(err, "validate environment failed")
	}
	return nil
}
