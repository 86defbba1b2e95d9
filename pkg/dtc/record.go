package dtc

import (
	"fmt"
	"math"
)

// Record is one message held in its canonical layout. The backing buffer
// always spans the full canonical size; bytes the sender did not transmit
// are zero.
type Record struct {
	layout *Layout
	data   []byte
	// received is the length declared by the sender.
	received int
}

// New returns an initialized outbound record of type t.
func New(t MessageType) (*Record, error) {
	l, ok := registry[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	return l.New(), nil
}

// Layout returns the layout the record is held in.
func (r *Record) Layout() *Layout { return r.layout }

// Type returns the message type.
func (r *Record) Type() MessageType { return r.layout.typ }

// Received returns the message length declared by the sender. For records
// built with New it is the canonical size.
func (r *Record) Received() int { return r.received }

// Header returns the header as it will be encoded.
func (r *Record) Header() Header {
	return Header{Size: uint16(r.wireLen()), Type: r.layout.typ}
}

// Bytes returns the canonical-size buffer backing the record.
func (r *Record) Bytes() []byte { return r.data }

// Encode returns the wire form of the record: the bytes held, with the size
// field set to their count.
func (r *Record) Encode() []byte {
	n := r.wireLen()
	out := make([]byte, n)
	copy(out, r.data[:n])
	Header{Size: uint16(n), Type: r.layout.typ}.Put(out)
	return out
}

func (r *Record) wireLen() int {
	return min(r.received, len(r.data))
}

// holds reports whether the sender transmitted every byte of d.
func (r *Record) holds(d *descriptor) bool {
	return r != nil && r.layout == d.layout && d.end() <= r.received
}

// FieldValue is a field name with its decoded value.
type FieldValue struct {
	Name  string `json:"name" cbor:"name"`
	Value any    `json:"value" cbor:"value"`
}

// Fields returns the transmitted fields in wire order. Sentinel values are
// omitted, enumerations are rendered by name.
func (r *Record) Fields() []FieldValue {
	out := make([]FieldValue, 0, len(r.layout.fields))
	for _, d := range r.layout.fields {
		if v, ok := r.value(d); ok {
			out = append(out, FieldValue{Name: d.name, Value: v})
		}
	}
	return out
}

func (r *Record) value(d *descriptor) (any, bool) {
	if d.kind == KindDepthLevels {
		levels := DepthLevelsField{d}.Levels(r)
		return levels, len(levels) > 0
	}
	if !r.holds(d) {
		return nil, false
	}
	if d.kind == KindText {
		return text(r.data[d.offset : d.end()-1]), true
	}
	bits := getBits(r.data[d.offset:], d.size)
	if d.hasSentinel && bits == d.sentinelBits {
		return nil, false
	}
	switch d.kind {
	case KindFloat:
		if d.size == 4 {
			return float64(math.Float32frombits(uint32(bits))), true
		}
		return math.Float64frombits(bits), true
	case KindSigned:
		v := fromBits[int64](d, bits)
		if d.format != nil {
			return d.format(v), true
		}
		return v, true
	default:
		return bits, true
	}
}

// Codec decodes messages against a maximum message size.
type Codec struct {
	// MaxSize bounds the declared length of a message; zero means
	// MaxMessageSize.
	MaxSize int
}

// Decode builds a record of type t from buf, whose header h was parsed by
// the caller. Only min(h.Size, canonical size) bytes are copied; a longer
// message has its suffix ignored and a shorter one leaves the remaining
// fields zero and absent.
func (c Codec) Decode(t MessageType, buf []byte, h Header) (*Record, error) {
	if err := h.Validate(c.MaxSize); err != nil {
		return nil, err
	}
	if h.Type != t {
		return nil, fmt.Errorf("%w: header carries %s, decoding %s", ErrTypeMismatch, h.Type, t)
	}
	l, ok := registry[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	if len(buf) < int(h.Size) {
		return nil, fmt.Errorf("%w: %s declares %d bytes, buffer holds %d", ErrTruncated, t, h.Size, len(buf))
	}
	r := &Record{
		layout:   l,
		data:     make([]byte, l.size),
		received: int(h.Size),
	}
	copy(r.data, buf[:min(int(h.Size), l.size)])
	return r, nil
}

// DecodeMessage parses the header of buf, checks its type against the
// catalog for dir and decodes it.
func (c Codec) DecodeMessage(dir Direction, buf []byte) (*Record, error) {
	h, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}
	if _, err := LookupLayout(dir, h.Type); err != nil {
		return nil, err
	}
	return c.Decode(h.Type, buf, h)
}

var defaultCodec Codec

// Decode decodes buf as a message of type t using the default maximum size.
func Decode(t MessageType, buf []byte, h Header) (*Record, error) {
	return defaultCodec.Decode(t, buf, h)
}

// DecodeMessage decodes the message at the start of buf using the default
// maximum size.
func DecodeMessage(dir Direction, buf []byte) (*Record, error) {
	return defaultCodec.DecodeMessage(dir, buf)
}
