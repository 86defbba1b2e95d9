// Package output renders command results as a table, JSON lines, CBOR or
// raw bytes.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/term"
)

// Format selects how results are written
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCBOR  Format = "cbor"
	FormatRaw   Format = "raw"
)

// ParseFormat parses the --format value. An empty value means table on a
// terminal and JSON otherwise.
func ParseFormat(s string, tty bool) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		if tty {
			return FormatTable, nil
		}
		return FormatJSON, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "cbor":
		return FormatCBOR, nil
	case "raw":
		return FormatRaw, nil
	default:
		return "", fmt.Errorf("invalid format %q (expected table, json, cbor or raw)", s)
	}
}

// IsTTY reports whether f is a terminal
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Encoder writes values in one format
type Encoder struct {
	format Format
	w      io.Writer
	json   *json.Encoder
	cbor   *cbor.Encoder
	table  *tabwriter.Writer
}

func NewEncoder(format Format, w io.Writer) *Encoder {
	e := &Encoder{format: format, w: w}
	switch format {
	case FormatJSON:
		e.json = json.NewEncoder(w)
	case FormatCBOR:
		e.cbor = cbor.NewEncoder(w)
	case FormatTable:
		e.table = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	}
	return e
}

// Format returns the encoder's format
func (e *Encoder) Format() Format { return e.format }

// Encode writes one value: a JSON line or a CBOR data item
func (e *Encoder) Encode(v any) error {
	switch e.format {
	case FormatJSON:
		return e.json.Encode(v)
	case FormatCBOR:
		return e.cbor.Encode(v)
	default:
		return fmt.Errorf("format %q cannot encode values", e.format)
	}
}

// WriteRaw writes bytes unchanged
func (e *Encoder) WriteRaw(b []byte) error {
	_, err := e.w.Write(b)
	return err
}

// Header starts a table with the given column names
func (e *Encoder) Header(columns ...string) error {
	return e.Row(columns...)
}

// Row writes one table row. Call Flush when done.
func (e *Encoder) Row(cells ...string) error {
	if e.table == nil {
		return fmt.Errorf("format %q has no rows", e.format)
	}
	_, err := fmt.Fprintln(e.table, strings.Join(cells, "\t"))
	return err
}

// Flush writes buffered table rows
func (e *Encoder) Flush() error {
	if e.table != nil {
		return e.table.Flush()
	}
	return nil
}

// EncodeTable writes a whole table
func (e *Encoder) EncodeTable(headers []string, rows [][]string) error {
	if err := e.Header(headers...); err != nil {
		return err
	}
	for _, r := range rows {
		if err := e.Row(r...); err != nil {
			return err
		}
	}
	return e.Flush()
}

// EncodeSlice encodes each item in turn
func EncodeSlice[T any](enc *Encoder, items []T) error {
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}
