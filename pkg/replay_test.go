package pkg

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
)

func TestReplay(t *testing.T) {
	sink := &memorySink{}
	n, err := Replay(context.Background(), ReplayConfig{
		Sink:   sink,
		Reader: openCapture(t, writeCapture(t, sampleCapture()), nil, 0),
		Logger: zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if n != 4 {
		t.Errorf("Expected 4 messages replayed, got %d", n)
	}

	got := sink.entries()
	want := sampleCapture()
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries at the sink, got %d", len(want), len(got))
	}
	for i := range want {
		if !bytes.Equal(got[i].Message, want[i].Message) || got[i].Direction != want[i].Direction {
			t.Errorf("Entry %d mismatch", i)
		}
	}
}

func TestReplay_Batches(t *testing.T) {
	sink := &memorySink{}
	if _, err := Replay(context.Background(), ReplayConfig{
		Sink:      sink,
		Reader:    openCapture(t, writeCapture(t, sampleCapture()), nil, 0),
		BatchSize: 3,
	}); err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if len(sink.batches) != 2 || len(sink.batches[0]) != 3 || len(sink.batches[1]) != 1 {
		t.Errorf("Expected batches of 3 and 1, got %d batches", len(sink.batches))
	}
}

func TestReplay_DirectionAndTypeFilter(t *testing.T) {
	types, err := ParseTypeFilter([]string{"HEARTBEAT,LOGON_REQUEST"})
	if err != nil {
		t.Fatalf("ParseTypeFilter failed: %v", err)
	}

	sink := &memorySink{}
	n, err := Replay(context.Background(), ReplayConfig{
		Sink:   sink,
		Reader: openCapture(t, writeCapture(t, sampleCapture()), types, dtc.FromServer),
	})
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("Expected only the server heartbeat, got %d messages", n)
	}
	if h, _ := sink.entries()[0].Header(); h.Type != dtc.TypeHeartbeat {
		t.Errorf("Expected HEARTBEAT, got %s", h.Type)
	}
}

func TestReplay_DryRun(t *testing.T) {
	n, err := Replay(context.Background(), ReplayConfig{
		Reader: openCapture(t, writeCapture(t, sampleCapture()), nil, 0),
		DryRun: true,
	})
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if n != 4 {
		t.Errorf("Expected 4 messages validated, got %d", n)
	}
}

func TestReplay_Loop(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	sink := &memorySink{}
	n, err := Replay(ctx, ReplayConfig{
		Sink:   sink,
		Reader: openCapture(t, writeCapture(t, sampleCapture()), nil, 0),
		Loop:   true,
		Rate:   100,
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected deadline exceeded, got %v", err)
	}
	if n <= 4 {
		t.Errorf("Expected the capture to be replayed more than once, got %d messages", n)
	}
	if int64(len(sink.entries())) != n {
		t.Errorf("Expected %d messages at the sink, got %d", n, len(sink.entries()))
	}
}

func TestReplay_SinkError(t *testing.T) {
	boom := errors.New("broker down")
	_, err := Replay(context.Background(), ReplayConfig{
		Sink:   &memorySink{err: boom},
		Reader: openCapture(t, writeCapture(t, sampleCapture()), nil, 0),
	})
	if !errors.Is(err, boom) {
		t.Errorf("Expected sink error, got %v", err)
	}
}

func TestReplay_FlushesBatchAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := &strictSink{}
	n, err := Replay(ctx, ReplayConfig{
		Sink:   sink,
		Reader: &cancellingReader{
			MessageReader: openCapture(t, writeCapture(t, sampleCapture()), nil, 0),
			n:             2,
			cancel:        cancel,
		},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context canceled, got %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 messages replayed, got %d", n)
	}
	if got := len(sink.entries()); got != 2 {
		t.Errorf("Expected 2 messages at the sink, got %d", got)
	}
}

func TestReplay_FinalFlushFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	boom := errors.New("broker down")
	n, err := Replay(ctx, ReplayConfig{
		Sink:   &memorySink{err: boom},
		Reader: &cancellingReader{
			MessageReader: openCapture(t, writeCapture(t, sampleCapture()), nil, 0),
			n:             3,
			cancel:        cancel,
		},
	})
	if !errors.Is(err, ErrFlush) {
		t.Fatalf("Expected flush error, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("Expected sink error to be kept, got %v", err)
	}
	if n != 0 {
		t.Errorf("Expected no messages counted, got %d", n)
	}
}

func TestReplay_CountsOnlyAcceptedMessages(t *testing.T) {
	boom := errors.New("broker down")
	n, err := Replay(context.Background(), ReplayConfig{
		Sink:      &memorySink{err: boom},
		Reader:    openCapture(t, writeCapture(t, sampleCapture()), nil, 0),
		BatchSize: 2,
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected sink error, got %v", err)
	}
	if n != 0 {
		t.Errorf("Expected no messages counted, got %d", n)
	}
}

func TestReplay_RequiresSink(t *testing.T) {
	_, err := Replay(context.Background(), ReplayConfig{
		Reader: openCapture(t, writeCapture(t, sampleCapture()), nil, 0),
	})
	if err == nil {
		t.Error("Expected error without sink")
	}
}
