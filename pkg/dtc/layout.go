package dtc

import (
	"encoding/binary"
	"fmt"
)

// Kind is the storage class of a field.
type Kind uint8

const (
	KindSigned Kind = iota + 1
	KindUnsigned
	KindFloat
	KindText
	KindDepthLevels
)

func (k Kind) String() string {
	switch k {
	case KindSigned:
		return "int"
	case KindUnsigned:
		return "uint"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindDepthLevels:
		return "depth"
	default:
		return "unknown"
	}
}

// packAlign is the maximum alignment applied to any field (#pragma pack(8)).
const packAlign = 8

// descriptor locates one field inside the canonical record of a layout.
type descriptor struct {
	layout *Layout
	name   string
	offset int
	size   int
	kind   Kind

	// count is the number of elements for KindDepthLevels.
	count int

	hasDefault  bool
	defaultBits uint64

	hasSentinel  bool
	sentinelBits uint64

	// format renders enumerated values by name.
	format func(int64) string
}

// end is the first byte past the field.
func (d *descriptor) end() int { return d.offset + d.size }

// Layout is the canonical record description of one message type.
// Layouts are built during package initialization and never change.
type Layout struct {
	typ    MessageType
	fields []*descriptor
	end    int
	align  int
	size   int
}

// Type returns the message type described by the layout.
func (l *Layout) Type() MessageType { return l.typ }

// Size returns the canonical size in bytes, trailing padding included.
func (l *Layout) Size() int { return l.size }

// New returns a zero-filled record with the header and the per-field
// defaults applied.
func (l *Layout) New() *Record {
	r := &Record{
		layout:   l,
		data:     make([]byte, l.size),
		received: l.size,
	}
	Header{Size: uint16(l.size), Type: l.typ}.Put(r.data)
	for _, d := range l.fields {
		if d.hasDefault {
			putBits(r.data[d.offset:], d.size, d.defaultBits)
		}
	}
	return r
}

// FieldInfo describes a field of a layout.
type FieldInfo struct {
	Name   string
	Offset int
	Size   int
	Kind   Kind
	// Sentinel reports whether a reserved value marks the field as unset.
	Sentinel bool
}

// Fields lists the body fields in wire order. Union members are listed once,
// under their first name.
func (l *Layout) Fields() []FieldInfo {
	out := make([]FieldInfo, 0, len(l.fields))
	for _, d := range l.fields {
		out = append(out, FieldInfo{
			Name:     d.name,
			Offset:   d.offset,
			Size:     d.size,
			Kind:     d.kind,
			Sentinel: d.hasSentinel,
		})
	}
	return out
}

func (l *Layout) String() string {
	return fmt.Sprintf("%s(%d bytes)", l.typ, l.size)
}

// registry holds every layout by type, regardless of direction.
var registry = map[MessageType]*Layout{}

// builder appends fields to a layout in declaration order.
type builder struct {
	layout *Layout
}

func newBuilder(t MessageType) *builder {
	if _, dup := registry[t]; dup {
		panic(fmt.Sprintf("dtc: layout for %s declared twice", t))
	}
	l := &Layout{typ: t, end: HeaderSize, align: 2, size: HeaderSize}
	registry[t] = l
	return &builder{layout: l}
}

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}

func (b *builder) add(name string, kind Kind, size, align int) *descriptor {
	if align > packAlign {
		align = packAlign
	}
	l := b.layout
	d := &descriptor{
		layout: l,
		name:   name,
		offset: alignUp(l.end, align),
		size:   size,
		kind:   kind,
	}
	l.end = d.end()
	if align > l.align {
		l.align = align
	}
	l.size = alignUp(l.end, l.align)
	l.fields = append(l.fields, d)
	return d
}

func (b *builder) int32(name string) Field[int32] {
	return Field[int32]{b.add(name, KindSigned, 4, 4)}
}

func (b *builder) int64(name string) Field[int64] {
	return Field[int64]{b.add(name, KindSigned, 8, 8)}
}

func (b *builder) uint8(name string) Field[uint8] {
	return Field[uint8]{b.add(name, KindUnsigned, 1, 1)}
}

func (b *builder) uint16(name string) Field[uint16] {
	return Field[uint16]{b.add(name, KindUnsigned, 2, 2)}
}

func (b *builder) uint32(name string) Field[uint32] {
	return Field[uint32]{b.add(name, KindUnsigned, 4, 4)}
}

func (b *builder) float32(name string) Field[float32] {
	return Field[float32]{b.add(name, KindFloat, 4, 4)}
}

func (b *builder) float64(name string) Field[float64] {
	return Field[float64]{b.add(name, KindFloat, 8, 8)}
}

func (b *builder) text(name string, capacity int) TextField {
	return TextField{b.add(name, KindText, capacity, 1)}
}

// depth adds an array of {double Price; float Volume} elements, 16 bytes each.
func (b *builder) depth(name string, count int) DepthLevelsField {
	d := b.add(name, KindDepthLevels, count*depthLevelSize, 8)
	d.count = count
	return DepthLevelsField{d}
}

// enumField adds a 32-bit enumeration whose values print by name.
func enumField[E interface {
	~int32
	fmt.Stringer
}](b *builder, name string) Field[E] {
	d := b.add(name, KindSigned, 4, 4)
	d.format = func(v int64) string { return E(v).String() }
	return Field[E]{d}
}

func getBits(b []byte, size int) uint64 {
	switch size {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	default:
		return binary.LittleEndian.Uint64(b)
	}
}

func putBits(b []byte, size int, v uint64) {
	switch size {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v))
	default:
		binary.LittleEndian.PutUint64(b, v)
	}
}
