package commands

import (
	"context"
	"errors"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/util"
	"github.com/lolocompany/dtc-replay/pkg"
	"github.com/lolocompany/dtc-replay/pkg/kafka"
	"github.com/lolocompany/dtc-replay/pkg/stream"
)

func ReplayCommand() *cli.Command {
	return &cli.Command{
		Name:        "replay",
		Usage:       "Replay a capture to a Kafka topic or a DTC endpoint",
		Description: "Send the messages of a capture file, unchanged, to a Kafka topic or over a TCP connection to a DTC peer.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Input capture file",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "topic",
				Aliases: []string{"t"},
				Usage:   "Kafka topic to replay messages to",
			},
			&cli.StringFlag{
				Name:  "target",
				Usage: "DTC endpoint (host:port) to replay messages to",
			},
			&cli.IntFlag{
				Name:  "rate",
				Usage: "Messages per second to replay (0 for maximum speed)",
			},
			&cli.BoolFlag{
				Name:  "loop",
				Usage: "Replay the capture continuously until interrupted",
			},
			&cli.BoolFlag{
				Name:  "preserve-timestamps",
				Usage: "Keep the captured timestamps on Kafka records instead of the replay time",
			},
			&cli.BoolFlag{
				Name:  "create-topic",
				Usage: "Create the topic if it doesn't exist",
			},
			&cli.IntFlag{
				Name:    "partition",
				Aliases: []string{"p"},
				Usage:   "Target partition to write messages to (default: hash by message type)",
				Value:   -1,
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Decode and validate every message without sending anything",
			},
			&cli.BoolFlag{
				Name:  "no-ack",
				Usage: "Don't wait for broker acknowledgment (faster but less reliable)",
			},
			typeFlag("Only replay messages of these types"),
			directionFlag("Only replay messages sent by this side"),
		},
		Action: runReplay,
	}
}

func runReplay(ctx context.Context, cmd *cli.Command) error {
	input := cmd.String("input")
	topic := cmd.String("topic")
	target := cmd.String("target")
	dryRun := cmd.Bool("dry-run")
	logger := util.Logger()

	if topic != "" && target != "" {
		return errors.New("--topic and --target cannot be used together")
	}
	if topic == "" && target == "" && !dryRun {
		return errors.New("one of --topic or --target is required")
	}

	var spinner *util.ProgressSpinner
	if !util.Quiet(cmd) {
		spinner = util.NewProgressSpinner("Replaying messages")
	}
	reader, err := openCapture(cmd, input, cmd.Bool("preserve-timestamps"), spinner)
	if err != nil {
		return err
	}
	defer closeQuietly(reader)

	var sink pkg.Sink
	if !dryRun {
		sink, err = replaySink(ctx, cmd, topic, target)
		if err != nil {
			return err
		}
		defer func() {
			if err := sink.Close(); err != nil {
				logger.Warn().Err(err).Msg("failed to close sink")
			}
		}()
	}

	logger.Info().
		Str("input", input).
		Str("topic", topic).
		Str("target", target).
		Int("rate", cmd.Int("rate")).
		Bool("loop", cmd.Bool("loop")).
		Bool("dry_run", dryRun).
		Msg("replaying")

	count, err := pkg.Replay(ctx, pkg.ReplayConfig{
		Sink:   sink,
		Reader: reader,
		Rate:   cmd.Int("rate"),
		Loop:   cmd.Bool("loop"),
		DryRun: dryRun,
		Logger: logger,
	})
	_ = spinner.Close()
	if err != nil && !util.Interrupted(err) {
		return err
	}

	if dryRun {
		logger.Info().Int64("messages", count).Int64("skipped", reader.Skipped()).Msg("dry run completed, nothing was sent")
	} else {
		logger.Info().Int64("messages", count).Int64("skipped", reader.Skipped()).Msg("replayed")
	}
	return nil
}

func replaySink(ctx context.Context, cmd *cli.Command, topic, target string) (pkg.Sink, error) {
	if target != "" {
		conn, err := stream.Dial(ctx, target, 10*time.Second)
		if err != nil {
			return nil, err
		}
		return pkg.NewStreamSink(conn), nil
	}

	brokers, err := util.ResolveBrokers(cmd)
	if err != nil {
		return nil, err
	}
	var partition *int
	if p := cmd.Int("partition"); p >= 0 {
		partition = &p
	}
	producer := kafka.NewProducer(brokers, topic, kafka.ProducerOptions{
		CreateTopic: cmd.Bool("create-topic"),
		NoAck:       cmd.Bool("no-ack"),
		Partition:   partition,
	})
	return pkg.NewKafkaSink(producer), nil
}
