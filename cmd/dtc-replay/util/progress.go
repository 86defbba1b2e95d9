package util

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// ProgressSpinner wraps a progressbar spinner. A nil spinner does nothing.
type ProgressSpinner struct {
	bar *progressbar.ProgressBar
}

// NewProgressSpinner creates an indeterminate progress spinner
func NewProgressSpinner(description string) *ProgressSpinner {
	return &ProgressSpinner{
		bar: progressbar.DefaultBytes(-1, description),
	}
}

// AddBytes adds bytes to the spinner for speed/total display
func (p *ProgressSpinner) AddBytes(delta int64) {
	if p != nil && p.bar != nil {
		_ = p.bar.Add64(delta)
	}
}

// Describe replaces the spinner description
func (p *ProgressSpinner) Describe(description string) {
	if p != nil && p.bar != nil {
		p.bar.Describe(description)
	}
}

// Close closes the spinner
func (p *ProgressSpinner) Close() error {
	if p != nil && p.bar != nil {
		return p.bar.Close()
	}
	return nil
}

// Writer counts bytes written through w. Closing the result closes w when
// it is a Closer.
func (p *ProgressSpinner) Writer(w io.Writer) io.WriteCloser {
	if p == nil {
		return &writeCloser{Writer: w, closer: w}
	}
	return &writeCloser{
		Writer: io.MultiWriter(w, &byteCounter{spinner: p}),
		closer: w,
	}
}

// ReadSeeker counts bytes read through rs, including after seeks.
func (p *ProgressSpinner) ReadSeeker(rs io.ReadSeeker) io.ReadSeeker {
	if p == nil {
		return rs
	}
	counter := &byteCounter{spinner: p}
	return &readSeeker{
		reader:  io.TeeReader(rs, counter),
		seeker:  rs,
		counter: counter,
	}
}

type byteCounter struct {
	spinner *ProgressSpinner
}

func (bc *byteCounter) Write(p []byte) (int, error) {
	bc.spinner.AddBytes(int64(len(p)))
	return len(p), nil
}

type writeCloser struct {
	io.Writer
	closer io.Writer
}

func (wc *writeCloser) Close() error {
	if closer, ok := wc.closer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

type readSeeker struct {
	reader  io.Reader
	seeker  io.ReadSeeker
	counter io.Writer
}

func (rs *readSeeker) Read(p []byte) (int, error) {
	return rs.reader.Read(p)
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	pos, err := rs.seeker.Seek(offset, whence)
	if err != nil {
		return pos, err
	}
	rs.reader = io.TeeReader(rs.seeker, rs.counter)
	return pos, nil
}

// Close closes the wrapped reader when it is a Closer
func (rs *readSeeker) Close() error {
	if closer, ok := rs.seeker.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
