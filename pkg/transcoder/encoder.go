package transcoder

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
)

// EncodeWriter encodes entries to a capture file
type EncodeWriter struct {
	writer      io.Writer
	body        compressor
	entryBuf    []byte
	totalBytes  int64
	compression Compression
}

// NewEncodeWriter creates a new uncompressed capture writer
// It writes the file header and positions the writer ready for entries
func NewEncodeWriter(writer io.Writer) (*EncodeWriter, error) {
	return NewCompressedEncodeWriter(writer, CompressionNone)
}

// NewCompressedEncodeWriter creates a capture writer whose entries are
// compressed with c. Files are always written in the current version.
func NewCompressedEncodeWriter(writer io.Writer, c Compression) (*EncodeWriter, error) {
	e := &EncodeWriter{
		writer:      writer,
		entryBuf:    make([]byte, EntryHeaderSize),
		compression: c,
	}

	if err := e.writeFileHeader(); err != nil {
		return nil, fmt.Errorf("failed to write file header: %w", err)
	}

	body, err := newCompressor(writer, c)
	if err != nil {
		return nil, err
	}
	e.body = body
	e.totalBytes = HeaderSize

	return e, nil
}

// Write writes an entry:
// timestamp (8 bytes) + direction (1 byte) + message size (4 bytes) + message (variable)
// The message must start with a DTC header; it is stored as received
func (e *EncodeWriter) Write(entry Entry) (int64, error) {
	if entry.Direction != dtc.FromClient && entry.Direction != dtc.FromServer {
		return 0, fmt.Errorf("invalid direction: %d", entry.Direction)
	}
	messageSize := len(entry.Message)
	if messageSize < dtc.HeaderSize || messageSize > MaxEntrySize {
		return 0, fmt.Errorf("invalid message size: %d bytes", messageSize)
	}

	binary.BigEndian.PutUint64(e.entryBuf[0:TimestampSize], uint64(entry.Timestamp.UnixNano()))
	e.entryBuf[TimestampSize] = byte(entry.Direction)
	binary.BigEndian.PutUint32(e.entryBuf[TimestampSize+DirectionSize:], uint32(messageSize))
	if _, err := e.body.Write(e.entryBuf); err != nil {
		return 0, err
	}

	if _, err := e.body.Write(entry.Message); err != nil {
		return EntryHeaderSize, err
	}

	bytesWritten := int64(EntryHeaderSize + messageSize)
	e.totalBytes += bytesWritten

	return bytesWritten, nil
}

// TotalBytes returns the number of uncompressed bytes written so far (including header)
func (e *EncodeWriter) TotalBytes() int64 {
	return e.totalBytes
}

// Flush pushes buffered compressed data to the underlying writer
func (e *EncodeWriter) Flush() error {
	return e.body.Flush()
}

// Close finishes the compressed stream, then closes the underlying writer
// if it implements io.Closer
func (e *EncodeWriter) Close() error {
	if err := e.body.Close(); err != nil {
		return fmt.Errorf("failed to finish %s stream: %w", e.compression, err)
	}
	if closer, ok := e.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// writeFileHeader writes the version, then the compression tag in the
// first reserved byte
func (e *EncodeWriter) writeFileHeader() error {
	headerBuf := make([]byte, HeaderSize)
	binary.BigEndian.PutUint32(headerBuf[0:HeaderVersionSize], uint32(ProtocolVersion))
	headerBuf[HeaderVersionSize] = byte(e.compression)

	if _, err := e.writer.Write(headerBuf); err != nil {
		return err
	}

	return nil
}
