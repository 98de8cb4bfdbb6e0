// Package main is the evstream application entrypoint.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"evstream/internal"
	"evstream/internal/app/apps"
	"evstream/internal/app/cfg"
	"evstream/internal/pkg/log"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CLI command definitions.
var (
	logger logrus.FieldLogger = logrus.StandardLogger()

	logOutput io.Closer

	rootCmd = &cobra.Command{
		Use:          "evstream",
		Short:        "Streams server-generated events to registered gRPC clients.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	clientCmd = &cobra.Command{
		Use:   "client [max_events]",
		Short: "Starts a demo client.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return err
			}
			if len(args) == 0 {
				return nil
			}
			_, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "parse max events argument failed")
			}
			return nil
		},
		RunE: runCmd,
	}

	serverCmd = &cobra.Command{
		Use:   "server",
		Short: "Starts the event stream server.",
		Args:  cobra.NoArgs,
		RunE:  runCmd,
	}
)

func newApp(_ context.Context, cmd *cobra.Command, args []string) (apps.App, []string, error) {
	var err error
	var app apps.App
	switch cmd.Name() {
	case "client":
		var maxEvents uint64
		if len(args) > 0 {
			maxEvents, err = strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return nil, nil, errors.Wrap(err, "parse max events argument failed")
			}
			args = args[1:]
		}
		app, err = apps.NewClientApp(
			cfg.PortFromEnv(),
			cfg.TransportFromEnv(),
			cfg.ClientFromEnv(maxEvents),
		)
		if err != nil {
			return nil, nil, errors.Wrap(err, "new client app failed")
		}
		return app, args, nil
	case "server":
		app, err = apps.NewServerApp(
			cfg.PortFromEnv(),
			cfg.TransportFromEnv(),
			cfg.BroadcastFromEnv(),
			cfg.SessionFromEnv(),
			cfg.HealthFromEnv(),
		)
		if err != nil {
			return nil, nil, errors.Wrap(err, "new server app failed")
		}
		return app, args, nil
	default:
		return nil, nil, errors.Errorf("unknown command: %s", cmd.Name())
	}
}

func runCmd(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := chainedCheck(
		ctx,
		envCheck,
	); err != nil {
		return errors.Wrap(err, "chained check failed")
	}
	app, args, err := newApp(ctx, cmd, args)
	if err != nil {
		return errors.Wrapf(err, "new %s app failed", cmd.Name())
	}
	return errors.Wrap(app.Run(ctx, args), "run app failed")
}

func envCheck(_ context.Context) error {
	err := internal.ValidateEnv()
	if err != nil {
		return errors.Wrap(err, "validate env failed")
	}
	log.SetLogger(internal.LogLevel)
	logOutput = log.SetOutput(internal.LogFile)
	return nil
}

func chainedCheck(ctx context.Context, checks ...func(context.Context) error) error {
	for _, check := range checks {
		err := check(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

func init() {
	err := internal.RegisterCommandFlags(rootCmd, []*internal.Flag{
		&internal.ConfigFlag,
		&internal.EnvFlag,
		&internal.LogLevelFlag,
		&internal.LogFileFlag,

		&internal.PortFlag,
		&internal.TransportFlag,
		&internal.CACertFlag,
	})
	if err != nil {
		logger.Fatalln(err)
	}

	err = internal.RegisterCommandFlags(clientCmd, []*internal.Flag{
		&internal.ServerAddrFlag,
		&internal.ServerNameFlag,
		&internal.ClientIDFlag,
		&internal.ClientKillswitchMSFlag,
	})
	if err != nil {
		logger.Fatalln(err)
	}

	err = internal.RegisterCommandFlags(serverCmd, []*internal.Flag{
		&internal.HostFlag,
		&internal.HealthPortFlag,
		&internal.MaxGoroutinesFlag,
		&internal.CertFlag,
		&internal.KeyFlag,

		&internal.ServerTickerMSFlag,
		&internal.MaxTicksFlag,
		&internal.RecipientsFlag,
		&internal.MaxEventsFlag,
		&internal.QueueSizeFlag,
	})
	if err != nil {
		logger.Fatalln(err)
	}

	rootCmd.AddCommand(
		clientCmd,
		serverCmd,
	)
}

func main() {
	err := rootCmd.Execute()
	if logOutput != nil {
		_ = logOutput.Close()
	}
	if err != nil {
		logger.Fatal(errors.Wrap(err, "execute root command failed"))
	}
}
