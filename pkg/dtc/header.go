package dtc

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	// HeaderSize is the size of the message header (uint16 size + uint16 type)
	HeaderSize = 4
	// MaxMessageSize is the largest length a uint16 size field can declare
	MaxMessageSize = math.MaxUint16
)

// Header is the common prefix of every message.
type Header struct {
	// Size is the total message length in bytes, header included.
	Size uint16
	Type MessageType
}

// ParseHeader reads the header from the first four bytes of b. It performs
// no validation beyond the length check.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: need %d header bytes, have %d", ErrTruncated, HeaderSize, len(b))
	}
	return Header{
		Size: binary.LittleEndian.Uint16(b[0:2]),
		Type: MessageType(binary.LittleEndian.Uint16(b[2:4])),
	}, nil
}

// Put writes the header into the first four bytes of b.
func (h Header) Put(b []byte) {
	binary.LittleEndian.PutUint16(b[0:2], h.Size)
	binary.LittleEndian.PutUint16(b[2:4], uint16(h.Type))
}

// Bytes returns the encoded header.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.Put(b)
	return b
}

// Validate checks the declared size against the header size and max.
// A max of zero or less means MaxMessageSize.
func (h Header) Validate(max int) error {
	if max <= 0 {
		max = MaxMessageSize
	}
	if h.Size < HeaderSize {
		return fmt.Errorf("%w: %s declares %d bytes, smaller than the %d byte header", ErrMalformedLength, h.Type, h.Size, HeaderSize)
	}
	if int(h.Size) > max {
		return fmt.Errorf("%w: %s declares %d bytes, maximum is %d", ErrMalformedLength, h.Type, h.Size, max)
	}
	return nil
}

func (h Header) String() string {
	return fmt.Sprintf("%s(size=%d)", h.Type, h.Size)
}
