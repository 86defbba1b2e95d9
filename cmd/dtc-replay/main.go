package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/commands"
	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/util"
	"github.com/lolocompany/dtc-replay/pkg/kafka"
	"github.com/lolocompany/dtc-replay/pkg/metrics"
	"github.com/lolocompany/dtc-replay/pkg/stream"
)

const (
	exitError        = 1
	exitConnectivity = 3
)

func main() {
	app := &cli.Command{
		Name:        "dtc-replay",
		Usage:       "Record, inspect and replay DTC protocol message streams",
		Description: "Record DTC messages from a server or a Kafka topic into capture files, decode them, and replay them to Kafka or a DTC endpoint.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Config file path (default: ./dtc-replay.yaml or $XDG_CONFIG_HOME/dtc-replay/config.yaml)",
			},
			&cli.StringFlag{
				Name:  "profile",
				Usage: "Config profile to use",
			},
			&cli.StringSliceFlag{
				Name:    "brokers",
				Aliases: []string{"b"},
				Usage:   "Kafka broker addresses (repeatable); falls back to the profile and KAFKA_BROKERS",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"F"},
				Usage:   "Output format: table, json, cbor or raw (default: table on a terminal, json otherwise)",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress progress and informational logging",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: trace, debug, info, warn or error",
				Sources: cli.EnvVars("DTC_REPLAY_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "Serve Prometheus metrics on this address (e.g. :9090)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger, err := util.InitLogger(cmd.String("log-level"), cmd.Bool("quiet"))
			if err != nil {
				return ctx, err
			}
			if addr := cmd.String("metrics-addr"); addr != "" {
				if err := metrics.Serve(ctx, addr, logger); err != nil {
					return ctx, err
				}
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			commands.RecordCommand(),
			commands.ReplayCommand(),
			commands.CatCommand(),
			commands.InfoCommand(),
			commands.CatalogCommand(),
			commands.ConfigCommand(),
			commands.VersionCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("dtc-replay failed")
		os.Exit(exitCode(err))
	}
}

// exitCode maps connection failures to a distinct status so scripts can retry them
func exitCode(err error) int {
	var opErr *net.OpError
	if errors.Is(err, kafka.ErrConnect) || errors.Is(err, stream.ErrDial) || errors.As(err, &opErr) {
		return exitConnectivity
	}
	return exitError
}
