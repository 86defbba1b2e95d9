package dtc

import "errors"

var (
	// ErrTruncated is returned when fewer bytes are available than the
	// header or the header's declared length requires.
	ErrTruncated = errors.New("dtc: truncated message")
	// ErrUnknownType is returned when a type tag has no layout in the
	// catalog consulted.
	ErrUnknownType = errors.New("dtc: unknown message type")
	// ErrTypeMismatch is returned when the header type differs from the
	// type requested for decoding.
	ErrTypeMismatch = errors.New("dtc: message type mismatch")
	// ErrMalformedLength is returned when the declared length is smaller
	// than the header or larger than the configured maximum.
	ErrMalformedLength = errors.New("dtc: malformed message length")
)
