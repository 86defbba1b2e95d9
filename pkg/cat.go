package pkg

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
	"github.com/lolocompany/dtc-replay/pkg/metrics"
	"github.com/lolocompany/dtc-replay/pkg/transcoder"
)

// DecodedMessage is one captured message as shown by cat
type DecodedMessage struct {
	Timestamp time.Time `json:"timestamp" cbor:"timestamp"`
	Direction string    `json:"direction" cbor:"direction"`
	Type      string    `json:"type" cbor:"type"`
	TypeID    uint16    `json:"type_id" cbor:"type_id"`
	// Size is the length the sender declared
	Size int `json:"size" cbor:"size"`
	// Canonical is the size of the message in this protocol version; zero for unknown types
	Canonical int              `json:"canonical,omitempty" cbor:"canonical,omitempty"`
	Fields    []dtc.FieldValue `json:"fields,omitempty" cbor:"fields,omitempty"`
	Error     string           `json:"error,omitempty" cbor:"error,omitempty"`
	// Raw is the message as captured
	Raw []byte `json:"-" cbor:"-"`
}

// DecodeEntry decodes a captured message for display. Decoding problems are
// reported in the Error field rather than failing.
func DecodeEntry(e transcoder.Entry) DecodedMessage {
	out, _ := decodeEntry(e)
	return out
}

func decodeEntry(e transcoder.Entry) (DecodedMessage, error) {
	out := DecodedMessage{
		Timestamp: e.Timestamp,
		Direction: e.Direction.String(),
		Raw:       e.Message,
	}

	h, err := e.Header()
	if err != nil {
		out.Error = err.Error()
		return out, err
	}
	out.Type = h.Type.String()
	out.TypeID = uint16(h.Type)
	out.Size = int(h.Size)

	if n, err := dtc.CanonicalSize(e.Direction, h.Type); err == nil {
		out.Canonical = n
	}

	rec, err := dtc.DecodeMessage(e.Direction, e.Message)
	if err != nil {
		out.Error = err.Error()
		return out, err
	}
	out.Fields = rec.Fields()
	return out, nil
}

// CatConfig holds configuration for the Cat function
type CatConfig struct {
	Reader *MessageFileReader
	// Emit receives every decoded message unless CountOnly is set
	Emit      func(DecodedMessage) error
	CountOnly bool
	// Limit stops after this many messages; zero reads everything
	Limit  int
	Logger zerolog.Logger
}

// Cat decodes the messages of a capture and returns how many passed the filters
func Cat(ctx context.Context, cfg CatConfig) (int64, error) {
	if cfg.Reader == nil {
		return 0, errors.New("reader is required")
	}
	if cfg.Emit == nil && !cfg.CountOnly {
		return 0, errors.New("emit is required")
	}

	var messageCount int64
	for {
		if cfg.Limit > 0 && messageCount >= int64(cfg.Limit) {
			return messageCount, nil
		}

		entry, err := cfg.Reader.ReadNextMessage(ctx)
		if err != nil {
			if err == io.EOF {
				return messageCount, nil
			}
			return messageCount, err
		}
		messageCount++

		if cfg.CountOnly {
			continue
		}

		msg, err := decodeEntry(entry)
		if err != nil {
			cfg.Logger.Debug().Str("type", msg.Type).Err(err).Msg("message did not decode")
			metrics.RecordDecodeError(metrics.OpCat, err)
		} else {
			metrics.RecordMessage(metrics.OpCat, entry.Direction, dtc.MessageType(msg.TypeID), len(entry.Message))
		}
		if err := cfg.Emit(msg); err != nil {
			return messageCount, err
		}
	}
}
