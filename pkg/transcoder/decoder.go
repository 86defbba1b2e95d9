package transcoder

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
	"github.com/lolocompany/dtc-replay/pkg/transcoder/legacy"
)

// Entry is one captured message.
type Entry struct {
	Timestamp time.Time
	Direction dtc.Direction
	// Message is the raw message as it was received, header included.
	Message []byte
}

// Header returns the DTC header of the captured message.
func (e Entry) Header() (dtc.Header, error) {
	return dtc.ParseHeader(e.Message)
}

// DecodeReader decodes entries from a capture file
type DecodeReader struct {
	reader             io.ReadSeeker
	body               *decompressor
	entryBuf           []byte
	legacySizeBuf      []byte
	preserveTimestamps bool
	dataStartOffset    int64 // Offset after the header where entries start
	protocolVersion    int32
	compression        Compression
}

// NewDecodeReader creates a new decoder for capture files
// It reads and validates the file header, then positions the reader at the first entry
func NewDecodeReader(reader io.ReadSeeker, preserveTimestamps bool) (*DecodeReader, error) {
	d := &DecodeReader{
		reader:             reader,
		entryBuf:           make([]byte, EntryHeaderSize),
		legacySizeBuf:      make([]byte, legacy.V1SizeFieldSize),
		preserveTimestamps: preserveTimestamps,
	}

	if err := d.readFileHeader(); err != nil {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	d.dataStartOffset = HeaderSize

	body, err := newDecompressor(reader, d.compression)
	if err != nil {
		return nil, err
	}
	d.body = body

	return d, nil
}

// ProtocolVersion returns the format version of the file being read
func (d *DecodeReader) ProtocolVersion() int32 { return d.protocolVersion }

// Compression returns the compression of the file being read
func (d *DecodeReader) Compression() Compression { return d.compression }

// Read reads the next entry
// Returns io.EOF when no complete entry is left
func (d *DecodeReader) Read() (Entry, error) {
	if d.protocolVersion == ProtocolVersion1 {
		return d.readV1()
	}

	if _, err := io.ReadFull(d.body, d.entryBuf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Entry{}, io.EOF
		}
		return Entry{}, fmt.Errorf("failed to read entry header: %w", err)
	}

	nanos := int64(binary.BigEndian.Uint64(d.entryBuf[0:TimestampSize]))
	dir := dtc.Direction(d.entryBuf[TimestampSize])
	if dir != dtc.FromClient && dir != dtc.FromServer {
		return Entry{}, fmt.Errorf("invalid direction: %d", dir)
	}

	messageSize := binary.BigEndian.Uint32(d.entryBuf[TimestampSize+DirectionSize:])
	if messageSize < dtc.HeaderSize || messageSize > MaxEntrySize {
		return Entry{}, fmt.Errorf("invalid message size: %d bytes", messageSize)
	}

	message := make([]byte, messageSize)
	if _, err := io.ReadFull(d.body, message); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Entry{}, io.EOF
		}
		return Entry{}, fmt.Errorf("failed to read message data: %w", err)
	}

	var ts time.Time
	if d.preserveTimestamps {
		ts = time.Unix(0, nanos).UTC()
	} else {
		ts = time.Now().UTC()
	}

	return Entry{Timestamp: ts, Direction: dir, Message: message}, nil
}

func (d *DecodeReader) readV1() (Entry, error) {
	timestampBuf := d.entryBuf[:TimestampSize]
	if _, err := io.ReadFull(d.body, timestampBuf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Entry{}, io.EOF
		}
		return Entry{}, fmt.Errorf("failed to read timestamp: %w", err)
	}

	ts, message, err := legacy.V1ReadMessage(d.body, timestampBuf, d.legacySizeBuf, d.preserveTimestamps)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Timestamp: ts, Direction: dtc.FromServer, Message: message}, nil
}

// Close closes the underlying reader if it implements io.Closer
func (d *DecodeReader) Close() error {
	d.body.Close()
	if closer, ok := d.reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Reset seeks back to the first entry
func (d *DecodeReader) Reset() error {
	if _, err := d.reader.Seek(d.dataStartOffset, io.SeekStart); err != nil {
		return err
	}
	return d.body.Reset(d.reader)
}

// readFileHeader reads and validates the file header
func (d *DecodeReader) readFileHeader() error {
	headerBuf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(d.reader, headerBuf); err != nil {
		return err
	}

	d.protocolVersion = int32(binary.BigEndian.Uint32(headerBuf[0:HeaderVersionSize]))
	if d.protocolVersion != ProtocolVersion && d.protocolVersion != ProtocolVersion1 {
		return fmt.Errorf("unsupported protocol version: %d (expected %d or %d)", d.protocolVersion, ProtocolVersion1, ProtocolVersion)
	}

	d.compression = Compression(headerBuf[HeaderVersionSize])
	if d.protocolVersion == ProtocolVersion1 && d.compression != CompressionNone {
		return fmt.Errorf("version %d files cannot be compressed", ProtocolVersion1)
	}
	if d.compression > CompressionZstd {
		return fmt.Errorf("unsupported compression: %s", d.compression)
	}

	return nil
}
