package dtc

import (
	"bytes"
	"math"
)

// Sentinel values marking a numeric field as not supplied. Zero is a valid
// price or quantity and cannot serve that purpose.
const (
	UnsetFloat64 = math.MaxFloat64
	UnsetFloat32 = math.MaxFloat32
)

// Number is the set of numeric field types.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Field is a numeric field of one message layout.
type Field[T Number] struct {
	d *descriptor
}

// Default makes New initialize the field to v. Only used while layouts are
// being declared.
func (f Field[T]) Default(v T) Field[T] {
	f.d.hasDefault = true
	f.d.defaultBits = toBits(f.d, v)
	return f
}

// Unset declares v as the value that marks the field as not supplied. The
// field also defaults to it.
func (f Field[T]) Unset(v T) Field[T] {
	f.d.hasSentinel = true
	f.d.sentinelBits = toBits(f.d, v)
	return f.Default(v)
}

// Name returns the field name.
func (f Field[T]) Name() string { return f.d.name }

// Offset returns the byte offset of the field in the canonical record.
func (f Field[T]) Offset() int { return f.d.offset }

// Get returns the field value. It reports false when the sender's message
// ended before the field, when the record belongs to another message type,
// or when the value is the field's sentinel.
func (f Field[T]) Get(r *Record) (T, bool) {
	var zero T
	if !r.holds(f.d) {
		return zero, false
	}
	bits := getBits(r.data[f.d.offset:], f.d.size)
	if f.d.hasSentinel && bits == f.d.sentinelBits {
		return zero, false
	}
	return fromBits[T](f.d, bits), true
}

// Set writes v into an outbound record. Records of another message type are
// left untouched.
func (f Field[T]) Set(r *Record, v T) {
	if r == nil || r.layout != f.d.layout {
		return
	}
	putBits(r.data[f.d.offset:], f.d.size, toBits(f.d, v))
}

// Clear stores the sentinel, or zero when the field has none.
func (f Field[T]) Clear(r *Record) {
	if r == nil || r.layout != f.d.layout {
		return
	}
	var bits uint64
	if f.d.hasSentinel {
		bits = f.d.sentinelBits
	}
	putBits(r.data[f.d.offset:], f.d.size, bits)
}

func toBits[T Number](d *descriptor, v T) uint64 {
	switch d.kind {
	case KindFloat:
		if d.size == 4 {
			return uint64(math.Float32bits(float32(v)))
		}
		return math.Float64bits(float64(v))
	case KindSigned:
		return uint64(int64(v))
	default:
		return uint64(v)
	}
}

func fromBits[T Number](d *descriptor, bits uint64) T {
	switch d.kind {
	case KindFloat:
		if d.size == 4 {
			return T(math.Float32frombits(uint32(bits)))
		}
		return T(math.Float64frombits(bits))
	case KindSigned:
		shift := 64 - 8*d.size
		return T(int64(bits<<shift) >> shift)
	default:
		return T(bits)
	}
}

// TextField is a fixed-capacity character buffer. The sender is not trusted
// to terminate it.
type TextField struct {
	d *descriptor
}

// Name returns the field name.
func (f TextField) Name() string { return f.d.name }

// Capacity returns the buffer size in bytes, terminator included.
func (f TextField) Capacity() int { return f.d.size }

// Get returns the text up to the first NUL, never more than Capacity()-1
// bytes. It reports false when the sender's message ended before the field.
func (f TextField) Get(r *Record) (string, bool) {
	if !r.holds(f.d) {
		return "", false
	}
	return text(r.data[f.d.offset : f.d.end()-1]), true
}

// Set copies at most Capacity()-1 bytes of s and zero-fills the rest.
func (f TextField) Set(r *Record, s string) {
	if r == nil || r.layout != f.d.layout {
		return
	}
	buf := r.data[f.d.offset:f.d.end()]
	n := copy(buf[:len(buf)-1], s)
	clear(buf[n:])
}

func text(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

const depthLevelSize = 16

// DepthLevel is one price level of a full depth update.
type DepthLevel struct {
	Price  float64 `json:"price" cbor:"price"`
	Volume float32 `json:"volume" cbor:"volume"`
}

// DepthLevelsField is a fixed array of depth levels.
type DepthLevelsField struct {
	d *descriptor
}

// Name returns the field name.
func (f DepthLevelsField) Name() string { return f.d.name }

// Len returns the number of levels in the array.
func (f DepthLevelsField) Len() int { return f.d.count }

// At returns level i. It reports false when i is out of range or the
// sender's message ended before that level.
func (f DepthLevelsField) At(r *Record, i int) (DepthLevel, bool) {
	if i < 0 || i >= f.d.count || r == nil || r.layout != f.d.layout {
		return DepthLevel{}, false
	}
	off := f.d.offset + i*depthLevelSize
	if off+depthLevelSize > r.received {
		return DepthLevel{}, false
	}
	return readDepthLevel(r.data[off:]), true
}

// SetAt writes level i of an outbound record.
func (f DepthLevelsField) SetAt(r *Record, i int, lvl DepthLevel) {
	if i < 0 || i >= f.d.count || r == nil || r.layout != f.d.layout {
		return
	}
	off := f.d.offset + i*depthLevelSize
	putBits(r.data[off:], 8, math.Float64bits(lvl.Price))
	putBits(r.data[off+8:], 4, uint64(math.Float32bits(lvl.Volume)))
}

// Levels returns every level the sender transmitted.
func (f DepthLevelsField) Levels(r *Record) []DepthLevel {
	var out []DepthLevel
	for i := 0; i < f.d.count; i++ {
		lvl, ok := f.At(r, i)
		if !ok {
			break
		}
		out = append(out, lvl)
	}
	return out
}

func readDepthLevel(b []byte) DepthLevel {
	return DepthLevel{
		Price:  math.Float64frombits(getBits(b, 8)),
		Volume: math.Float32frombits(uint32(getBits(b[8:], 4))),
	}
}
