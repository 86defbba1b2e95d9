package pkg

import (
	"context"
	"fmt"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
	"github.com/lolocompany/dtc-replay/pkg/transcoder"
)

// MessageFileReader reads captured DTC messages from a capture file,
// skipping the ones that do not pass its filters
type MessageFileReader struct {
	decoder   *transcoder.DecodeReader
	types     TypeFilter
	direction dtc.Direction
	skipped   int64
}

// NewMessageFileReader wraps a capture decoder. A zero direction matches
// both sides.
func NewMessageFileReader(decoder *transcoder.DecodeReader, types TypeFilter, direction dtc.Direction) *MessageFileReader {
	return &MessageFileReader{
		decoder:   decoder,
		types:     types,
		direction: direction,
	}
}

// ReadNextMessage returns the next message passing the filters, or io.EOF
func (r *MessageFileReader) ReadNextMessage(ctx context.Context) (transcoder.Entry, error) {
	for {
		select {
		case <-ctx.Done():
			return transcoder.Entry{}, ctx.Err()
		default:
		}

		entry, err := r.decoder.Read()
		if err != nil {
			return transcoder.Entry{}, err
		}

		if r.direction != 0 && entry.Direction != r.direction {
			r.skipped++
			continue
		}
		h, err := entry.Header()
		if err != nil {
			return transcoder.Entry{}, fmt.Errorf("corrupt capture entry: %w", err)
		}
		if !r.types.Match(h.Type) {
			r.skipped++
			continue
		}
		return entry, nil
	}
}

// Skipped returns the number of messages the filters dropped
func (r *MessageFileReader) Skipped() int64 { return r.skipped }

// Close closes the underlying decoder
func (r *MessageFileReader) Close() error {
	return r.decoder.Close()
}

// Reset seeks back to the first captured message
func (r *MessageFileReader) Reset() error {
	return r.decoder.Reset()
}
