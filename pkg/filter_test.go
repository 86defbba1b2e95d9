package pkg

import (
	"errors"
	"testing"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
)

func TestParseTypeFilter(t *testing.T) {
	f, err := ParseTypeFilter([]string{"heartbeat, 107", "", "LOGON_RESPONSE"})
	if err != nil {
		t.Fatalf("ParseTypeFilter failed: %v", err)
	}
	for _, typ := range []dtc.MessageType{dtc.TypeHeartbeat, dtc.TypeTradeIncrementalUpdate, dtc.TypeLogonResponse} {
		if !f.Match(typ) {
			t.Errorf("Expected %s to match", typ)
		}
	}
	if f.Match(dtc.TypeLogonRequest) {
		t.Error("Expected LOGON_REQUEST not to match")
	}
}

func TestParseTypeFilter_Unknown(t *testing.T) {
	_, err := ParseTypeFilter([]string{"NOT_A_MESSAGE"})
	if !errors.Is(err, dtc.ErrUnknownType) {
		t.Errorf("Expected ErrUnknownType, got %v", err)
	}
}

func TestTypeFilter_EmptyMatchesAll(t *testing.T) {
	var f TypeFilter
	if !f.Match(dtc.MessageType(9999)) {
		t.Error("Expected an empty filter to match everything")
	}
}

func TestDescribeCatalog(t *testing.T) {
	client := DescribeCatalog(dtc.FromClient)
	server := DescribeCatalog(dtc.FromServer)
	all := DescribeCatalog(0)

	if len(all) != len(client)+len(server) {
		t.Errorf("Expected %d rows, got %d", len(client)+len(server), len(all))
	}
	for _, e := range client {
		if e.Direction != "client" {
			t.Errorf("Unexpected direction %q in client catalog", e.Direction)
		}
		if e.Size < dtc.HeaderSize {
			t.Errorf("%s: size %d below header size", e.Name, e.Size)
		}
	}
	for _, e := range server {
		if e.Name == "LOGON_RESPONSE" && e.Size != 252 {
			t.Errorf("Expected LOGON_RESPONSE size 252, got %d", e.Size)
		}
	}
}
