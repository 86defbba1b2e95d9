// Package stream delimits DTC messages on a byte stream transport using
// the length carried in each message header.
package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
)

// Reader reads whole DTC messages from an io.Reader.
type Reader struct {
	reader    *bufio.Reader
	headerBuf []byte
	maxSize   int
	count     int64
	bytes     int64
}

// NewReader creates a message reader. maxSize bounds the declared length of
// a message; zero or less means dtc.MaxMessageSize.
func NewReader(r io.Reader, maxSize int) *Reader {
	if maxSize <= 0 {
		maxSize = dtc.MaxMessageSize
	}
	return &Reader{
		reader:    bufio.NewReader(r),
		headerBuf: make([]byte, dtc.HeaderSize),
		maxSize:   maxSize,
	}
}

// Next returns the next message, header included. It returns io.EOF when the
// stream ends on a message boundary and an error wrapping dtc.ErrTruncated
// when it ends inside a message. A malformed length is reported with
// dtc.ErrMalformedLength; the stream cannot be resynchronized after it.
func (r *Reader) Next() ([]byte, dtc.Header, error) {
	if _, err := io.ReadFull(r.reader, r.headerBuf); err != nil {
		if err == io.EOF {
			return nil, dtc.Header{}, io.EOF
		}
		if err == io.ErrUnexpectedEOF {
			return nil, dtc.Header{}, fmt.Errorf("%w: stream ended inside a header", dtc.ErrTruncated)
		}
		return nil, dtc.Header{}, fmt.Errorf("failed to read message header: %w", err)
	}

	h, err := dtc.ParseHeader(r.headerBuf)
	if err != nil {
		return nil, dtc.Header{}, err
	}
	if err := h.Validate(r.maxSize); err != nil {
		return nil, h, err
	}

	msg := make([]byte, h.Size)
	copy(msg, r.headerBuf)
	if _, err := io.ReadFull(r.reader, msg[dtc.HeaderSize:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, h, fmt.Errorf("%w: stream ended inside %s", dtc.ErrTruncated, h)
		}
		return nil, h, fmt.Errorf("failed to read message body: %w", err)
	}

	r.count++
	r.bytes += int64(h.Size)
	return msg, h, nil
}

// Count returns the number of messages read so far.
func (r *Reader) Count() int64 { return r.count }

// Bytes returns the number of message bytes read so far.
func (r *Reader) Bytes() int64 { return r.bytes }

// Writer writes DTC messages to an io.Writer.
type Writer struct {
	writer io.Writer
	count  int64
	bytes  int64
}

// NewWriter creates a message writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{writer: w}
}

// WriteRecord encodes and writes a record.
func (w *Writer) WriteRecord(r *dtc.Record) error {
	return w.Write(r.Encode())
}

// Write writes one already encoded message. The header must describe msg
// exactly.
func (w *Writer) Write(msg []byte) error {
	h, err := dtc.ParseHeader(msg)
	if err != nil {
		return err
	}
	if int(h.Size) != len(msg) {
		return fmt.Errorf("%w: header declares %d bytes, message has %d", dtc.ErrMalformedLength, h.Size, len(msg))
	}
	if _, err := w.writer.Write(msg); err != nil {
		return fmt.Errorf("failed to write %s: %w", h, err)
	}
	w.count++
	w.bytes += int64(len(msg))
	return nil
}

// Count returns the number of messages written so far.
func (w *Writer) Count() int64 { return w.count }

// Bytes returns the number of bytes written so far.
func (w *Writer) Bytes() int64 { return w.bytes }

// ErrDial is wrapped by every connection failure returned from Dial.
var ErrDial = errors.New("failed to connect to DTC server")

// Dial opens a TCP connection to a DTC peer. The timeout applies to
// connection establishment only.
func Dial(ctx context.Context, address string, timeout time.Duration) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDial, address, err)
	}
	return conn, nil
}
