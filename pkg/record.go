package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
	"github.com/lolocompany/dtc-replay/pkg/metrics"
	"github.com/lolocompany/dtc-replay/pkg/transcoder"
)

// RecordConfig holds configuration for the Record function
type RecordConfig struct {
	Source       Source
	Output       io.Writer
	Compression  transcoder.Compression
	Limit        int
	Types        TypeFilter
	MaxSize      int
	TimeProvider TimeProvider
	Logger       zerolog.Logger
}

// RecordStats summarizes a recording
type RecordStats struct {
	Messages int64
	Bytes    int64
	// Unknown counts recorded messages whose type has no layout for their direction
	Unknown int64
	// Skipped counts messages dropped by the type filter
	Skipped int64
}

// Record copies messages from the source into a capture written to Output
// until the limit is reached, the source ends or ctx is done. The capture is
// finished in every case so that what was recorded stays readable.
func Record(ctx context.Context, cfg RecordConfig) (stats RecordStats, err error) {
	if cfg.Source == nil {
		return stats, errors.New("source is required")
	}
	if cfg.Output == nil {
		return stats, errors.New("output is required")
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = RealTimeProvider{}
	}

	encoder, err := transcoder.NewCompressedEncodeWriter(cfg.Output, cfg.Compression)
	if err != nil {
		return stats, err
	}
	defer func() {
		if cerr := encoder.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	write := func(entry transcoder.Entry) error {
		h, err := checkFrame(entry.Message, cfg.MaxSize)
		if err != nil {
			metrics.RecordDecodeError(metrics.OpRecord, err)
			return fmt.Errorf("message %d from %s: %w", stats.Messages+stats.Skipped+1, entry.Direction, err)
		}

		if !cfg.Types.Match(h.Type) {
			stats.Skipped++
			return nil
		}

		if _, err := dtc.DecodeMessage(entry.Direction, entry.Message); err != nil {
			if !errors.Is(err, dtc.ErrUnknownType) {
				metrics.RecordDecodeError(metrics.OpRecord, err)
				return fmt.Errorf("message %d from %s: %w", stats.Messages+stats.Skipped+1, entry.Direction, err)
			}
			stats.Unknown++
			cfg.Logger.Debug().Stringer("type", h.Type).Stringer("direction", entry.Direction).Msg("recording message of unknown type")
		}

		if entry.Timestamp.IsZero() {
			entry.Timestamp = cfg.TimeProvider.Now()
		}

		n, err := encoder.Write(entry)
		if err != nil {
			return err
		}
		stats.Bytes += n
		stats.Messages++
		metrics.RecordMessage(metrics.OpRecord, entry.Direction, h.Type, len(entry.Message))

		if stats.Messages%1000 == 0 {
			cfg.Logger.Info().Int64("messages", stats.Messages).Msg("recording")
		}
		return nil
	}

	// finish records what a draining source still holds, within the limit
	finish := func(cause error) (RecordStats, error) {
		d, ok := cfg.Source.(Drainer)
		if !ok {
			return stats, cause
		}
		for _, entry := range d.Drain() {
			if cfg.Limit > 0 && stats.Messages >= int64(cfg.Limit) {
				break
			}
			if err := write(entry); err != nil {
				return stats, err
			}
		}
		return stats, cause
	}

	for {
		// Check if we've reached the message limit
		if cfg.Limit > 0 && stats.Messages >= int64(cfg.Limit) {
			return finish(nil)
		}

		select {
		case <-ctx.Done():
			return finish(ctx.Err())
		default:
		}

		entry, err := cfg.Source.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return finish(nil)
			}
			if ctx.Err() != nil {
				return finish(ctx.Err())
			}
			return stats, err
		}

		if err := write(entry); err != nil {
			return stats, err
		}
	}
}

// checkFrame validates that msg is exactly one message as its header declares
func checkFrame(msg []byte, maxSize int) (dtc.Header, error) {
	h, err := dtc.ParseHeader(msg)
	if err != nil {
		return h, err
	}
	if err := h.Validate(maxSize); err != nil {
		return h, err
	}
	if int(h.Size) != len(msg) {
		return h, fmt.Errorf("%w: header declares %d bytes, frame has %d", dtc.ErrMalformedLength, h.Size, len(msg))
	}
	return h, nil
}
