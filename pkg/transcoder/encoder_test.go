package transcoder

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
)

func TestNewEncodeWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	encoder, err := NewEncodeWriter(buf)
	if err != nil {
		t.Fatalf("NewEncodeWriter failed: %v", err)
	}

	// Verify header was written
	if encoder.TotalBytes() != HeaderSize {
		t.Errorf("Expected total bytes to be %d, got %d", HeaderSize, encoder.TotalBytes())
	}

	header := buf.Bytes()
	if len(header) != HeaderSize {
		t.Fatalf("Header size mismatch: expected %d, got %d", HeaderSize, len(header))
	}

	version := binary.BigEndian.Uint32(header[0:HeaderVersionSize])
	if version != ProtocolVersion {
		t.Errorf("Protocol version mismatch: expected %d, got %d", ProtocolVersion, version)
	}

	// Uncompressed files leave every reserved byte zero
	for i := HeaderVersionSize; i < HeaderSize; i++ {
		if header[i] != 0 {
			t.Errorf("Reserved byte at offset %d should be 0, got %d", i, header[i])
		}
	}
}

func TestNewCompressedEncodeWriter_Header(t *testing.T) {
	for _, c := range []Compression{CompressionLZ4, CompressionZstd} {
		buf := &bytes.Buffer{}
		encoder, err := NewCompressedEncodeWriter(buf, c)
		if err != nil {
			t.Fatalf("%s: NewCompressedEncodeWriter failed: %v", c, err)
		}
		if err := encoder.Close(); err != nil {
			t.Fatalf("%s: Close failed: %v", c, err)
		}

		if got := Compression(buf.Bytes()[HeaderVersionSize]); got != c {
			t.Errorf("Compression tag mismatch: expected %s, got %s", c, got)
		}
	}
}

func TestNewCompressedEncodeWriter_Unknown(t *testing.T) {
	if _, err := NewCompressedEncodeWriter(&bytes.Buffer{}, Compression(42)); err == nil {
		t.Fatal("Expected error for unknown compression, got nil")
	}
}

func TestEncodeWriter_Write(t *testing.T) {
	buf := &bytes.Buffer{}
	encoder, err := NewEncodeWriter(buf)
	if err != nil {
		t.Fatalf("NewEncodeWriter failed: %v", err)
	}

	testTime := time.Date(2024, 2, 2, 10, 15, 30, 500, time.UTC)
	testData := logoff("Hello, World!")

	bytesWritten, err := encoder.Write(Entry{Timestamp: testTime, Direction: dtc.FromClient, Message: testData})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	expectedBytes := int64(EntryHeaderSize + len(testData))
	if bytesWritten != expectedBytes {
		t.Errorf("Expected %d bytes written, got %d", expectedBytes, bytesWritten)
	}

	expectedTotal := HeaderSize + expectedBytes
	if encoder.TotalBytes() != expectedTotal {
		t.Errorf("Expected total bytes %d, got %d", expectedTotal, encoder.TotalBytes())
	}

	allData := buf.Bytes()
	offset := HeaderSize

	nanos := int64(binary.BigEndian.Uint64(allData[offset : offset+TimestampSize]))
	if nanos != testTime.UnixNano() {
		t.Errorf("Timestamp mismatch: expected %d, got %d", testTime.UnixNano(), nanos)
	}
	offset += TimestampSize

	if dir := dtc.Direction(allData[offset]); dir != dtc.FromClient {
		t.Errorf("Direction mismatch: expected %s, got %s", dtc.FromClient, dir)
	}
	offset += DirectionSize

	size := binary.BigEndian.Uint32(allData[offset : offset+SizeFieldSize])
	if int(size) != len(testData) {
		t.Errorf("Size mismatch: expected %d, got %d", len(testData), size)
	}
	offset += SizeFieldSize

	dataBytes := allData[offset : offset+len(testData)]
	if !bytes.Equal(dataBytes, testData) {
		t.Errorf("Data mismatch: expected %x, got %x", testData, dataBytes)
	}
}

func TestEncodeWriter_MultipleWrites(t *testing.T) {
	buf := &bytes.Buffer{}
	encoder, err := NewEncodeWriter(buf)
	if err != nil {
		t.Fatalf("NewEncodeWriter failed: %v", err)
	}

	messages := [][]byte{heartbeat(1), logoff("bye"), heartbeat(2)}
	var expectedTotal int64 = HeaderSize
	for i, msg := range messages {
		n, err := encoder.Write(Entry{Timestamp: time.Unix(int64(i), 0), Direction: dtc.FromServer, Message: msg})
		if err != nil {
			t.Fatalf("Write %d failed: %v", i, err)
		}
		expectedTotal += n
	}

	if encoder.TotalBytes() != expectedTotal {
		t.Errorf("Expected total bytes %d, got %d", expectedTotal, encoder.TotalBytes())
	}
	if int64(buf.Len()) != expectedTotal {
		t.Errorf("Expected %d bytes in buffer, got %d", expectedTotal, buf.Len())
	}
}

func TestEncodeWriter_RejectsInvalidEntries(t *testing.T) {
	encoder, err := NewEncodeWriter(&bytes.Buffer{})
	if err != nil {
		t.Fatalf("NewEncodeWriter failed: %v", err)
	}

	tests := []struct {
		name  string
		entry Entry
	}{
		{"shorter than a header", Entry{Direction: dtc.FromServer, Message: []byte{1, 2}}},
		{"larger than a message", Entry{Direction: dtc.FromServer, Message: make([]byte, MaxEntrySize+1)}},
		{"missing direction", Entry{Message: heartbeat(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := encoder.Write(tt.entry); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}

	if encoder.TotalBytes() != HeaderSize {
		t.Errorf("Rejected entries must not be counted, total bytes %d", encoder.TotalBytes())
	}
}

func TestEncodeWriter_LargestMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	encoder, err := NewEncodeWriter(buf)
	if err != nil {
		t.Fatalf("NewEncodeWriter failed: %v", err)
	}

	msg := make([]byte, MaxEntrySize)
	dtc.Header{Size: dtc.MaxMessageSize, Type: dtc.TypeHeartbeat}.Put(msg)

	n, err := encoder.Write(Entry{Timestamp: time.Now(), Direction: dtc.FromServer, Message: msg})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n != int64(EntryHeaderSize+MaxEntrySize) {
		t.Errorf("Expected %d bytes written, got %d", EntryHeaderSize+MaxEntrySize, n)
	}
}
