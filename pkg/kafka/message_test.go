package kafka

import (
	"bytes"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
)

func TestNewMessage(t *testing.T) {
	r := dtc.Heartbeat.New()
	dtc.Heartbeat.DroppedMessages.Set(r, 5)
	value := r.Encode()
	ts := time.Date(2024, 2, 2, 10, 15, 30, 0, time.UTC)

	msg, err := NewMessage(dtc.FromServer, value, ts)
	if err != nil {
		t.Fatalf("NewMessage failed: %v", err)
	}
	if string(msg.Key) != "HEARTBEAT" {
		t.Errorf("expected key HEARTBEAT, got %q", msg.Key)
	}
	if !msg.Time.Equal(ts) {
		t.Errorf("expected time %v, got %v", ts, msg.Time)
	}
	if len(msg.Headers) != 1 || msg.Headers[0].Key != DirectionHeader || string(msg.Headers[0].Value) != "server" {
		t.Errorf("unexpected headers %+v", msg.Headers)
	}

	back, err := fromKafka(msg)
	if err != nil {
		t.Fatalf("fromKafka failed: %v", err)
	}
	if back.Direction != dtc.FromServer {
		t.Errorf("expected direction server, got %s", back.Direction)
	}
	if !bytes.Equal(back.Value, value) {
		t.Errorf("value mismatch")
	}
}

func TestNewMessage_ShortValue(t *testing.T) {
	if _, err := NewMessage(dtc.FromClient, []byte{1}, time.Now()); err == nil {
		t.Fatal("expected error for value shorter than a header")
	}
}

func TestFromKafka_DefaultsToServer(t *testing.T) {
	m, err := fromKafka(kafka.Message{Value: []byte{4, 0, 3, 0}})
	if err != nil {
		t.Fatalf("fromKafka failed: %v", err)
	}
	if m.Direction != dtc.FromServer {
		t.Errorf("expected server direction, got %s", m.Direction)
	}
}

func TestFromKafka_ClientHeader(t *testing.T) {
	m, err := fromKafka(kafka.Message{
		Value:   []byte{4, 0, 3, 0},
		Headers: []kafka.Header{{Key: DirectionHeader, Value: []byte("client")}},
	})
	if err != nil {
		t.Fatalf("fromKafka failed: %v", err)
	}
	if m.Direction != dtc.FromClient {
		t.Errorf("expected client direction, got %s", m.Direction)
	}

	if _, err := fromKafka(kafka.Message{
		Headers: []kafka.Header{{Key: DirectionHeader, Value: []byte("sideways")}},
	}); err == nil {
		t.Error("expected error for an unknown direction header")
	}
}

func TestFixedPartition(t *testing.T) {
	p := fixedPartition(2)
	if got := p.Balance(kafka.Message{}, 0, 1, 2, 3); got != 2 {
		t.Errorf("expected partition 2, got %d", got)
	}
	if got := p.Balance(kafka.Message{}, 0, 1); got != 0 {
		t.Errorf("expected fallback to first partition, got %d", got)
	}
}
