// Package transcoder reads and writes capture files: a file header followed
// by timestamped DTC messages tagged with the side that sent them.
package transcoder

import "github.com/lolocompany/dtc-replay/pkg/dtc"

const (
	// ProtocolVersion is the current capture format version
	ProtocolVersion = 2
	// ProtocolVersion1 is the legacy format (second precision, no direction)
	ProtocolVersion1 = 1
	// HeaderVersionSize is the size of the version field in the header (int32 = 4 bytes)
	HeaderVersionSize = 4
	// HeaderReservedSize is the size of reserved space in the header; the first
	// reserved byte holds the compression tag
	HeaderReservedSize = 16
	// HeaderSize is the total size of the file header
	HeaderSize = HeaderVersionSize + HeaderReservedSize // 20 bytes total
	// TimestampSize is the size of the timestamp field (int64 Unix nanoseconds = 8 bytes)
	TimestampSize = 8
	// DirectionSize is the size of the direction field (1 byte)
	DirectionSize = 1
	// SizeFieldSize is the size of the message size field (uint32 = 4 bytes)
	SizeFieldSize = 4
	// EntryHeaderSize is the fixed part of every entry
	EntryHeaderSize = TimestampSize + DirectionSize + SizeFieldSize // 13 bytes
	// MaxEntrySize bounds the message stored in one entry
	MaxEntrySize = dtc.MaxMessageSize
)
