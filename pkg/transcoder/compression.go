package transcoder

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies how the entries following the file header are
// compressed. It is stored in the first reserved header byte.
type Compression uint8

const (
	// CompressionNone stores entries as is.
	CompressionNone Compression = 0
	// CompressionLZ4 wraps the entry stream in an LZ4 frame.
	CompressionLZ4 Compression = 1
	// CompressionZstd wraps the entry stream in a zstd frame.
	CompressionZstd Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", c)
	}
}

// ParseCompression parses a compression name.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("unknown compression: %q (expected none, lz4 or zstd)", name)
	}
}

// compressor is the write side of the entry stream.
type compressor interface {
	io.Writer
	Flush() error
	Close() error
}

type plainWriter struct{ io.Writer }

func (plainWriter) Flush() error { return nil }
func (plainWriter) Close() error { return nil }

func newCompressor(w io.Writer, c Compression) (compressor, error) {
	switch c {
	case CompressionNone:
		return plainWriter{w}, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd encoder: %w", err)
		}
		return enc, nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}
}

// decompressor is the read side of the entry stream. Reset points it at a
// new source positioned at the first entry.
type decompressor struct {
	compression Compression
	source      io.Reader
	lz4         *lz4.Reader
	zstd        *zstd.Decoder
}

func newDecompressor(r io.Reader, c Compression) (*decompressor, error) {
	d := &decompressor{compression: c, source: r}
	switch c {
	case CompressionNone:
	case CompressionLZ4:
		d.lz4 = lz4.NewReader(r)
	case CompressionZstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("zstd decoder: %w", err)
		}
		d.zstd = dec
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}
	return d, nil
}

func (d *decompressor) Read(p []byte) (int, error) {
	switch d.compression {
	case CompressionLZ4:
		return d.lz4.Read(p)
	case CompressionZstd:
		return d.zstd.Read(p)
	default:
		return d.source.Read(p)
	}
}

func (d *decompressor) Reset(r io.Reader) error {
	d.source = r
	switch d.compression {
	case CompressionLZ4:
		d.lz4.Reset(r)
	case CompressionZstd:
		return d.zstd.Reset(r)
	}
	return nil
}

func (d *decompressor) Close() {
	if d.zstd != nil {
		d.zstd.Close()
	}
}
