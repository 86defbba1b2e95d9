package pkg

import "github.com/lolocompany/dtc-replay/pkg/dtc"

// CatalogEntry describes one message type in one direction
type CatalogEntry struct {
	Type      uint16 `json:"type" cbor:"type"`
	Name      string `json:"name" cbor:"name"`
	Direction string `json:"direction" cbor:"direction"`
	Size      int    `json:"size" cbor:"size"`
	Fields    int    `json:"fields" cbor:"fields"`
}

// DescribeCatalog lists the message types known for dir. A zero dir lists
// client messages followed by server messages.
func DescribeCatalog(dir dtc.Direction) []CatalogEntry {
	dirs := []dtc.Direction{dir}
	if dir == 0 {
		dirs = []dtc.Direction{dtc.FromClient, dtc.FromServer}
	}

	var out []CatalogEntry
	for _, d := range dirs {
		for _, t := range dtc.Types(d) {
			l, err := dtc.LookupLayout(d, t)
			if err != nil {
				continue
			}
			out = append(out, CatalogEntry{
				Type:      uint16(t),
				Name:      t.String(),
				Direction: d.String(),
				Size:      l.Size(),
				Fields:    len(l.Fields()),
			})
		}
	}
	return out
}
