package pkg

import (
	"strings"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
)

// TypeFilter selects messages by type. An empty filter matches everything.
type TypeFilter map[dtc.MessageType]struct{}

// ParseTypeFilter parses message type names or numbers. Each value may hold
// a comma separated list.
func ParseTypeFilter(values []string) (TypeFilter, error) {
	f := TypeFilter{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			t, err := dtc.ParseMessageType(part)
			if err != nil {
				return nil, err
			}
			f[t] = struct{}{}
		}
	}
	return f, nil
}

// Match reports whether messages of type t pass the filter
func (f TypeFilter) Match(t dtc.MessageType) bool {
	if len(f) == 0 {
		return true
	}
	_, ok := f[t]
	return ok
}
