package pkg

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
	"github.com/lolocompany/dtc-replay/pkg/transcoder"
)

var testBase = time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)

type fixedTimeProvider struct{ t time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.t }

// sliceSource yields a fixed list of entries, then io.EOF
type sliceSource struct {
	entries []transcoder.Entry
	closed  bool
}

func (s *sliceSource) Next(ctx context.Context) (transcoder.Entry, error) {
	if err := ctx.Err(); err != nil {
		return transcoder.Entry{}, err
	}
	if len(s.entries) == 0 {
		return transcoder.Entry{}, io.EOF
	}
	e := s.entries[0]
	s.entries = s.entries[1:]
	return e, nil
}

func (s *sliceSource) Close() error {
	s.closed = true
	return nil
}

// drainingSource is a sliceSource that hands back extra entries when stopped
type drainingSource struct {
	sliceSource
	tail    []transcoder.Entry
	drained bool
}

func (s *drainingSource) Drain() []transcoder.Entry {
	s.drained = true
	return s.tail
}

// memorySink keeps everything it is sent
type memorySink struct {
	batches [][]transcoder.Entry
	err     error
}

func (s *memorySink) Send(_ context.Context, batch []transcoder.Entry) error {
	if s.err != nil {
		return s.err
	}
	s.batches = append(s.batches, append([]transcoder.Entry(nil), batch...))
	return nil
}

func (s *memorySink) Close() error { return nil }

// strictSink refuses batches once the context it is given is done
type strictSink struct {
	memorySink
}

func (s *strictSink) Send(ctx context.Context, batch []transcoder.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.memorySink.Send(ctx, batch)
}

// cancellingReader cancels the replay once it has handed out n entries
type cancellingReader struct {
	MessageReader
	n      int
	cancel context.CancelFunc
}

func (r *cancellingReader) ReadNextMessage(ctx context.Context) (transcoder.Entry, error) {
	e, err := r.MessageReader.ReadNextMessage(ctx)
	if err == nil {
		r.n--
		if r.n == 0 {
			r.cancel()
		}
	}
	return e, err
}

func (s *memorySink) entries() []transcoder.Entry {
	var out []transcoder.Entry
	for _, b := range s.batches {
		out = append(out, b...)
	}
	return out
}

func heartbeatMsg(dropped uint32) []byte {
	r := dtc.Heartbeat.New()
	dtc.Heartbeat.DroppedMessages.Set(r, dropped)
	return r.Encode()
}

func tradeMsg(price float64, volume float64) []byte {
	r := dtc.TradeIncrementalUpdate.New()
	dtc.TradeIncrementalUpdate.MarketDataSymbolID.Set(r, 1)
	dtc.TradeIncrementalUpdate.Price.Set(r, price)
	dtc.TradeIncrementalUpdate.TradeVolume.Set(r, volume)
	return r.Encode()
}

func logonMsg(user string) []byte {
	r := dtc.LogonRequest.New()
	dtc.LogonRequest.Username.Set(r, user)
	return r.Encode()
}

func logoffMsg(reason string) []byte {
	r := dtc.LogoffRequest.New()
	dtc.LogoffRequest.Reason.Set(r, reason)
	return r.Encode()
}

// sampleCapture is a client logon followed by server traffic
func sampleCapture() []transcoder.Entry {
	return []transcoder.Entry{
		{Timestamp: testBase, Direction: dtc.FromClient, Message: logonMsg("trader")},
		{Timestamp: testBase.Add(time.Millisecond), Direction: dtc.FromServer, Message: heartbeatMsg(0)},
		{Timestamp: testBase.Add(2 * time.Millisecond), Direction: dtc.FromServer, Message: tradeMsg(4321.25, 3)},
		{Timestamp: testBase.Add(3 * time.Millisecond), Direction: dtc.FromServer, Message: tradeMsg(4321.5, 1)},
	}
}

func writeCapture(t *testing.T, entries []transcoder.Entry) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	enc, err := transcoder.NewEncodeWriter(buf)
	if err != nil {
		t.Fatalf("NewEncodeWriter failed: %v", err)
	}
	for _, e := range entries {
		if _, err := enc.Write(e); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return buf.Bytes()
}

func openCapture(t *testing.T, data []byte, types TypeFilter, dir dtc.Direction) *MessageFileReader {
	t.Helper()
	dec, err := transcoder.NewDecodeReader(bytes.NewReader(data), true)
	if err != nil {
		t.Fatalf("NewDecodeReader failed: %v", err)
	}
	return NewMessageFileReader(dec, types, dir)
}
