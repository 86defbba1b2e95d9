package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/util"
	"github.com/lolocompany/dtc-replay/pkg"
	"github.com/lolocompany/dtc-replay/pkg/kafka"
	"github.com/lolocompany/dtc-replay/pkg/stream"
	"github.com/lolocompany/dtc-replay/pkg/transcoder"
)

func RecordCommand() *cli.Command {
	return &cli.Command{
		Name:        "record",
		Usage:       "Record DTC messages from a server or a Kafka topic",
		Description: "Log on to a DTC server, or consume a Kafka topic, and write every message to a capture file.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "DTC server address (host:port); falls back to the profile and DTC_SERVER",
			},
			&cli.StringFlag{
				Name:    "topic",
				Aliases: []string{"t"},
				Usage:   "Kafka topic to record from instead of a DTC server",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output capture file",
				Value:   "capture.dtc",
			},
			&cli.StringFlag{
				Name:  "compression",
				Usage: "Compress the capture: none, lz4 or zstd",
				Value: "none",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "Maximum number of messages to record (0 for unlimited)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Stop recording after this long (e.g., 5m, 30s). 0 means no timeout",
			},
			typeFlag("Only record messages of these types"),
			&cli.IntFlag{
				Name:  "max-message-size",
				Usage: "Reject messages declaring more than this many bytes (0 for the protocol maximum)",
			},
			&cli.StringFlag{
				Name:  "username",
				Usage: "Logon username",
			},
			&cli.StringFlag{
				Name:    "password",
				Usage:   "Logon password",
				Sources: cli.EnvVars("DTC_PASSWORD"),
			},
			&cli.StringFlag{
				Name:  "client-name",
				Usage: "Client name sent at logon",
				Value: "dtc-replay",
			},
			&cli.DurationFlag{
				Name:  "heartbeat",
				Usage: "Heartbeat interval announced at logon and used by the client",
				Value: 10 * time.Second,
			},
			&cli.StringSliceFlag{
				Name:  "symbol",
				Usage: "Subscribe to market data for SYMBOL or SYMBOL@EXCHANGE (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "depth",
				Usage: "Also request market depth for every subscribed symbol",
			},
			&cli.StringFlag{
				Name:    "group",
				Aliases: []string{"g"},
				Usage:   "Kafka consumer group ID. Cannot be used together with --offset.",
			},
			&cli.IntFlag{
				Name:    "partition",
				Aliases: []string{"p"},
				Usage:   "Kafka partition to record from",
			},
			&cli.Int64Flag{
				Name:    "offset",
				Aliases: []string{"O"},
				Usage:   "Kafka offset to start from (-1 for the current position). Cannot be used together with --group.",
				Value:   -1,
			},
		},
		Action: runRecord,
	}
}

func runRecord(ctx context.Context, cmd *cli.Command) error {
	output := cmd.String("output")
	limit := cmd.Int("limit")
	timeout := cmd.Duration("timeout")
	topic := cmd.String("topic")
	logger := util.Logger()

	compression, err := transcoder.ParseCompression(cmd.String("compression"))
	if err != nil {
		return err
	}
	types, err := pkg.ParseTypeFilter(cmd.StringSlice("type"))
	if err != nil {
		return err
	}
	maxSize, err := util.MaxMessageSize(cmd, cmd.Int("max-message-size"))
	if err != nil {
		return err
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var source pkg.Source
	if topic != "" {
		source, err = kafkaRecordSource(ctx, cmd, topic)
	} else {
		source, err = sessionRecordSource(ctx, cmd, maxSize)
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := source.Close(); err != nil {
			logger.Debug().Err(err).Msg("failed to close source")
		}
	}()

	file, err := os.Create(output)
	if err != nil {
		return err
	}

	quiet := util.Quiet(cmd)
	var spinner *util.ProgressSpinner
	if !quiet {
		spinner = util.NewProgressSpinner("Recording messages")
	}

	logger.Info().
		Str("output", output).
		Stringer("compression", compression).
		Int("limit", limit).
		Dur("timeout", timeout).
		Msg("recording")

	stats, err := pkg.Record(ctx, pkg.RecordConfig{
		Source:      source,
		Output:      spinner.Writer(file),
		Compression: compression,
		Limit:       limit,
		Types:       types,
		MaxSize:     maxSize,
		Logger:      logger,
	})
	_ = spinner.Close()
	if err != nil && !util.Interrupted(err) {
		return err
	}

	logger.Info().
		Int64("messages", stats.Messages).
		Int64("bytes", stats.Bytes).
		Int64("unknown", stats.Unknown).
		Int64("skipped", stats.Skipped).
		Msg("recorded")
	return nil
}

func kafkaRecordSource(ctx context.Context, cmd *cli.Command, topic string) (pkg.Source, error) {
	brokers, err := util.ResolveBrokers(cmd)
	if err != nil {
		return nil, err
	}
	groupID := cmd.String("group")
	offsetFlag := cmd.Int64("offset")
	if groupID != "" && offsetFlag >= 0 {
		return nil, errors.New("--group and --offset cannot be used together: consumer groups manage offsets automatically, while --offset requires direct partition access")
	}
	var offset *int64
	if offsetFlag >= 0 {
		offset = &offsetFlag
	}

	logger := util.Logger()
	logger.Info().Strs("brokers", brokers).Str("topic", topic).Str("group", groupID).Msg("consuming")
	consumer, err := kafka.NewConsumer(ctx, brokers, topic, cmd.Int("partition"), groupID)
	if err != nil {
		return nil, err
	}
	source, err := pkg.NewKafkaSource(consumer, offset)
	if err != nil {
		consumer.Close()
		return nil, err
	}
	return source, nil
}

func sessionRecordSource(ctx context.Context, cmd *cli.Command, maxSize int) (pkg.Source, error) {
	server, err := util.ResolveServer(cmd, cmd.String("server"))
	if err != nil {
		return nil, err
	}
	subs, err := parseSubscriptions(cmd.StringSlice("symbol"), cmd.Bool("depth"))
	if err != nil {
		return nil, err
	}

	logger := util.Logger()
	logger.Info().Str("server", server).Int("subscriptions", len(subs)).Msg("connecting")
	conn, err := stream.Dial(ctx, server, 10*time.Second)
	if err != nil {
		return nil, err
	}
	source, err := pkg.NewSessionSource(ctx, conn, stream.LogonOptions{
		Username:          cmd.String("username"),
		Password:          cmd.String("password"),
		ClientName:        cmd.String("client-name"),
		HeartbeatInterval: cmd.Duration("heartbeat"),
		Subscriptions:     subs,
	}, maxSize, logger)
	if err != nil {
		return nil, err
	}
	return source, nil
}

// parseSubscriptions parses SYMBOL or SYMBOL@EXCHANGE values
func parseSubscriptions(values []string, depth bool) ([]stream.Subscription, error) {
	var subs []stream.Subscription
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			symbol, exchange, _ := strings.Cut(part, "@")
			if symbol == "" {
				return nil, fmt.Errorf("invalid symbol %q", part)
			}
			subs = append(subs, stream.Subscription{Symbol: symbol, Exchange: exchange, Depth: depth})
		}
	}
	return subs, nil
}
