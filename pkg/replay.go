package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
	"github.com/lolocompany/dtc-replay/pkg/metrics"
	"github.com/lolocompany/dtc-replay/pkg/transcoder"
)

const (
	// DefaultBatchSize is the default number of messages to batch before sending
	DefaultBatchSize = 100
	// DefaultBatchBytes is the default maximum bytes to batch before sending (10MB)
	DefaultBatchBytes = 10 * 1024 * 1024
	// FinalFlushTimeout bounds the flush of the last batch once ctx is done
	FinalFlushTimeout = 5 * time.Second
)

// ErrFlush is returned when messages already read could not be handed to the sink
var ErrFlush = errors.New("failed to flush replayed messages")

// MessageReader is the capture side of a replay
type MessageReader interface {
	ReadNextMessage(ctx context.Context) (transcoder.Entry, error)
	Reset() error
}

// ReplayConfig holds configuration for the Replay function
type ReplayConfig struct {
	Sink   Sink
	Reader MessageReader
	// Rate is the number of messages per second; zero replays at full speed
	Rate int
	// Loop rewinds the capture at its end until ctx is done
	Loop bool
	// DryRun decodes every message without sending anything
	DryRun    bool
	BatchSize int
	Logger    zerolog.Logger
}

// Replay sends the messages of a capture to the sink and returns how many the
// sink accepted (or, in a dry run, how many were validated).
func Replay(ctx context.Context, cfg ReplayConfig) (int64, error) {
	if cfg.Reader == nil {
		return 0, errors.New("reader is required")
	}
	if cfg.Sink == nil && !cfg.DryRun {
		return 0, errors.New("sink is required")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}

	// Rate limiting setup
	var rateLimiter *time.Ticker
	if cfg.Rate > 0 {
		interval := time.Second / time.Duration(cfg.Rate)
		rateLimiter = time.NewTicker(interval)
		defer rateLimiter.Stop()
	}

	var messageCount, read int64
	batch := make([]transcoder.Entry, 0, cfg.BatchSize)
	var batchBytes int64

	flushBatch := func(ctx context.Context) error {
		if len(batch) == 0 {
			return nil
		}
		if !cfg.DryRun {
			if err := cfg.Sink.Send(ctx, batch); err != nil {
				return err
			}
		}
		for _, e := range batch {
			if h, err := e.Header(); err == nil {
				metrics.RecordMessage(metrics.OpReplay, e.Direction, h.Type, len(e.Message))
			}
		}
		messageCount += int64(len(batch))
		batch = batch[:0]
		batchBytes = 0
		return nil
	}

	// stop flushes what is batched and reports why the replay ended. The last
	// batch is sent even when ctx is already done.
	stop := func(cause error) (int64, error) {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), FinalFlushTimeout)
		defer cancel()
		pending := len(batch)
		if err := flushBatch(flushCtx); err != nil {
			if cause == nil {
				return messageCount, err
			}
			return messageCount, fmt.Errorf("%w (%d messages) after %v: %w", ErrFlush, pending, cause, err)
		}
		return messageCount, cause
	}

	for {
		select {
		case <-ctx.Done():
			return stop(ctx.Err())
		default:
		}

		entry, err := cfg.Reader.ReadNextMessage(ctx)
		if err != nil {
			if err == io.EOF {
				if cfg.Loop && read > 0 {
					if err := cfg.Reader.Reset(); err != nil {
						return stop(fmt.Errorf("failed to rewind capture: %w", err))
					}
					cfg.Logger.Debug().Int64("messages", read).Msg("capture rewound")
					continue
				}
				return stop(nil)
			}
			if ctx.Err() != nil {
				return stop(ctx.Err())
			}
			return stop(err)
		}

		if cfg.DryRun {
			if _, err := dtc.DecodeMessage(entry.Direction, entry.Message); err != nil && !errors.Is(err, dtc.ErrUnknownType) {
				metrics.RecordDecodeError(metrics.OpReplay, err)
				return stop(fmt.Errorf("message %d: %w", read+1, err))
			}
		}

		// Rate limiting - if enabled, wait before adding to batch
		if rateLimiter != nil {
			select {
			case <-ctx.Done():
				return stop(ctx.Err())
			case <-rateLimiter.C:
			}
		}

		batch = append(batch, entry)
		batchBytes += int64(len(entry.Message))
		read++

		// Flush batch if it reaches size or byte limit, or each message when rate limited
		if len(batch) >= cfg.BatchSize || batchBytes >= DefaultBatchBytes || rateLimiter != nil {
			if err := flushBatch(ctx); err != nil {
				if ctx.Err() != nil {
					return stop(ctx.Err())
				}
				return messageCount, err
			}
		}

		if read%1000 == 0 {
			cfg.Logger.Info().Int64("messages", messageCount).Msg("replaying")
		}
	}
}
