// Package legacy reads entries of version 1 capture files.
package legacy

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
)

// V1SizeFieldSize is the size of the message size field of a version 1 entry (int64 = 8 bytes)
const V1SizeFieldSize = 8

// V1ReadMessage reads the remainder of a version 1 entry:
// message size (8 bytes) + message (variable)
// The second-precision timestamp has already been read by the caller into timestampBuf
// Version 1 files carry no direction; every message was received from the server
func V1ReadMessage(reader io.Reader, timestampBuf []byte, sizeBuf []byte, preserveTimestamps bool) (time.Time, []byte, error) {
	if _, err := io.ReadFull(reader, sizeBuf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return time.Time{}, nil, io.EOF
		}
		return time.Time{}, nil, fmt.Errorf("failed to read message size: %w", err)
	}

	messageSize := int64(binary.BigEndian.Uint64(sizeBuf))
	if messageSize < dtc.HeaderSize || messageSize > dtc.MaxMessageSize {
		return time.Time{}, nil, fmt.Errorf("invalid message size: %d bytes", messageSize)
	}

	message := make([]byte, messageSize)
	if _, err := io.ReadFull(reader, message); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return time.Time{}, nil, io.EOF
		}
		return time.Time{}, nil, fmt.Errorf("failed to read message data: %w", err)
	}

	var ts time.Time
	if preserveTimestamps {
		ts = time.Unix(int64(binary.BigEndian.Uint64(timestampBuf)), 0).UTC()
	} else {
		ts = time.Now().UTC()
	}

	return ts, message, nil
}
