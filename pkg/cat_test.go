package pkg

import (
	"context"
	"testing"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
	"github.com/lolocompany/dtc-replay/pkg/transcoder"
)

func TestCat(t *testing.T) {
	var got []DecodedMessage
	n, err := Cat(context.Background(), CatConfig{
		Reader: openCapture(t, writeCapture(t, sampleCapture()), nil, 0),
		Emit: func(m DecodedMessage) error {
			got = append(got, m)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("Cat failed: %v", err)
	}
	if n != 4 || len(got) != 4 {
		t.Fatalf("Expected 4 messages, got %d (%d emitted)", n, len(got))
	}

	logon := got[0]
	if logon.Type != "LOGON_REQUEST" || logon.Direction != "client" {
		t.Errorf("Unexpected first message %s from %s", logon.Type, logon.Direction)
	}
	if logon.Canonical != dtc.LogonRequest.Size() || logon.Size != dtc.LogonRequest.Size() {
		t.Errorf("Expected size and canonical %d, got %d and %d", dtc.LogonRequest.Size(), logon.Size, logon.Canonical)
	}
	if !hasField(logon.Fields, "Username", "trader") {
		t.Errorf("Expected Username field, got %+v", logon.Fields)
	}

	trade := got[2]
	if trade.Error != "" {
		t.Fatalf("Unexpected decode error %q", trade.Error)
	}
	if !hasField(trade.Fields, "Price", 4321.25) {
		t.Errorf("Expected Price field, got %+v", trade.Fields)
	}
}

func hasField(fields []dtc.FieldValue, name string, value any) bool {
	for _, f := range fields {
		if f.Name == name {
			return f.Value == value
		}
	}
	return false
}

func TestCat_CountOnlyAndLimit(t *testing.T) {
	data := writeCapture(t, sampleCapture())

	n, err := Cat(context.Background(), CatConfig{
		Reader:    openCapture(t, data, nil, dtc.FromServer),
		CountOnly: true,
	})
	if err != nil {
		t.Fatalf("Cat failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 server messages, got %d", n)
	}

	n, err = Cat(context.Background(), CatConfig{
		Reader:    openCapture(t, data, nil, 0),
		CountOnly: true,
		Limit:     2,
	})
	if err != nil {
		t.Fatalf("Cat failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected limit of 2, got %d", n)
	}
}

func TestDecodeEntry_ReportsErrors(t *testing.T) {
	unknown := append(dtc.Header{Size: 6, Type: 4242}.Bytes(), 0, 0)
	m := DecodeEntry(transcoder.Entry{Direction: dtc.FromServer, Message: unknown})
	if m.Error == "" {
		t.Error("Expected an error for an unknown type")
	}
	if m.TypeID != 4242 || m.Size != 6 || m.Canonical != 0 {
		t.Errorf("Unexpected header fields %+v", m)
	}

	// An older, shorter heartbeat still decodes
	short := heartbeatMsg(9)[:8]
	dtc.Header{Size: 8, Type: dtc.TypeHeartbeat}.Put(short)
	m = DecodeEntry(transcoder.Entry{Direction: dtc.FromServer, Message: short})
	if m.Error != "" {
		t.Fatalf("Unexpected error %q", m.Error)
	}
	if m.Canonical != 16 || m.Size != 8 {
		t.Errorf("Expected size 8 against canonical 16, got %d and %d", m.Size, m.Canonical)
	}
	if !hasField(m.Fields, "DroppedMessages", uint64(9)) {
		t.Errorf("Expected DroppedMessages 9, got %+v", m.Fields)
	}
}
