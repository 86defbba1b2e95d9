package pkg

import (
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
	"github.com/lolocompany/dtc-replay/pkg/transcoder"
)

// TypeCount is the number of captured messages of one type from one side
type TypeCount struct {
	Type      string `json:"type" cbor:"type"`
	TypeID    uint16 `json:"type_id" cbor:"type_id"`
	Direction string `json:"direction" cbor:"direction"`
	Count     int64  `json:"count" cbor:"count"`
	Bytes     int64  `json:"bytes" cbor:"bytes"`
}

// CaptureInfo summarizes a capture file
type CaptureInfo struct {
	Version     int32       `json:"version" cbor:"version"`
	Compression string      `json:"compression" cbor:"compression"`
	Messages    int64       `json:"messages" cbor:"messages"`
	Bytes       int64       `json:"bytes" cbor:"bytes"`
	First       time.Time   `json:"first,omitzero" cbor:"first,omitempty"`
	Last        time.Time   `json:"last,omitzero" cbor:"last,omitempty"`
	Unknown     int64       `json:"unknown" cbor:"unknown"`
	Invalid     int64       `json:"invalid" cbor:"invalid"`
	Types       []TypeCount `json:"types" cbor:"types"`
}

// InfoConfig contains configuration for summarizing a capture
type InfoConfig struct {
	Decoder *transcoder.DecodeReader
}

// CollectInfo reads a whole capture and counts its messages per type and direction
func CollectInfo(ctx context.Context, cfg InfoConfig) (*CaptureInfo, error) {
	if cfg.Decoder == nil {
		return nil, errors.New("decoder is required")
	}

	info := &CaptureInfo{
		Version:     cfg.Decoder.ProtocolVersion(),
		Compression: cfg.Decoder.Compression().String(),
	}

	type key struct {
		t   dtc.MessageType
		dir dtc.Direction
	}
	counts := map[key]*TypeCount{}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		entry, err := cfg.Decoder.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		info.Messages++
		info.Bytes += int64(len(entry.Message))
		if info.First.IsZero() || entry.Timestamp.Before(info.First) {
			info.First = entry.Timestamp
		}
		if entry.Timestamp.After(info.Last) {
			info.Last = entry.Timestamp
		}

		h, err := entry.Header()
		if err != nil {
			info.Invalid++
			continue
		}
		if _, err := dtc.DecodeMessage(entry.Direction, entry.Message); err != nil {
			if errors.Is(err, dtc.ErrUnknownType) {
				info.Unknown++
			} else {
				info.Invalid++
			}
		}

		k := key{h.Type, entry.Direction}
		c := counts[k]
		if c == nil {
			c = &TypeCount{
				Type:      h.Type.String(),
				TypeID:    uint16(h.Type),
				Direction: entry.Direction.String(),
			}
			counts[k] = c
		}
		c.Count++
		c.Bytes += int64(len(entry.Message))
	}

	info.Types = make([]TypeCount, 0, len(counts))
	for _, c := range counts {
		info.Types = append(info.Types, *c)
	}
	sort.Slice(info.Types, func(i, j int) bool {
		a, b := info.Types[i], info.Types[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.TypeID != b.TypeID {
			return a.TypeID < b.TypeID
		}
		return a.Direction < b.Direction
	})
	return info, nil
}
