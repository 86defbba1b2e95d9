package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
)

func TestRegisterMetricsIsIdempotent(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordSend("kafka", 12*time.Millisecond)
}

func TestRecordMessage(t *testing.T) {
	counter := messages.WithLabelValues(OpCat, "server", "HEARTBEAT")
	before := testutil.ToFloat64(counter)

	RecordMessage(OpCat, dtc.FromServer, dtc.TypeHeartbeat, 16)
	RecordMessage(OpCat, dtc.FromServer, dtc.TypeHeartbeat, 16)

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("expected 2 heartbeats counted, got %v", got)
	}
}

func TestRecordMessage_UnknownTypesShareLabel(t *testing.T) {
	counter := messages.WithLabelValues(OpRecord, "client", "unknown")
	before := testutil.ToFloat64(counter)
	series := testutil.CollectAndCount(messages)

	RecordMessage(OpRecord, dtc.FromClient, dtc.MessageType(9999), 4)
	RecordMessage(OpRecord, dtc.FromClient, dtc.MessageType(9998), 4)
	RecordMessage(OpRecord, dtc.FromClient, dtc.MessageType(65535), 4)

	if got := testutil.ToFloat64(counter) - before; got != 3 {
		t.Errorf("expected 3 unknown types counted together, got %v", got)
	}
	if got := testutil.CollectAndCount(messages); got != series {
		t.Errorf("expected no new series for unknown types, got %d (was %d)", got, series)
	}
}

func TestReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("wrap: %w", dtc.ErrUnknownType), "unknown_type"},
		{dtc.ErrMalformedLength, "malformed_length"},
		{dtc.ErrTruncated, "truncated"},
		{dtc.ErrTypeMismatch, "type_mismatch"},
		{fmt.Errorf("boom"), "other"},
	}
	for _, tt := range tests {
		if got := Reason(tt.err); got != tt.want {
			t.Errorf("Reason(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestRecordDecodeError(t *testing.T) {
	counter := decodeErrors.WithLabelValues(OpReplay, "truncated")
	before := testutil.ToFloat64(counter)

	RecordDecodeError(OpReplay, dtc.ErrTruncated)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("expected one truncated decode error, got %v", got)
	}
}
