// Package resolve matches extracted PDID occurrences against the
// device catalog.
package resolve

import (
	"github.com/smartplan/pdid/pkg/pdid/catalog"
	"github.com/smartplan/pdid/pkg/pdid/label"
)

// Status classifies one resolution outcome.
type Status string

const (
	StatusResolved Status = "resolved"
	StatusUnknown  Status = "unknown"

	// StatusAmbiguous is reserved for catalogs with colliding keys.
	// catalog.Build rejects those at load time, so resolution never
	// produces it; it exists so serialized reports have a stable name
	// for the state should the invariant ever be relaxed.
	StatusAmbiguous Status = "ambiguous"
)

// Entry is one resolved occurrence. Device is meaningful only when
// Status is StatusResolved.
type Entry struct {
	Occurrence label.Occurrence `json:"occurrence"`
	Status     Status           `json:"status"`
	Device     catalog.Record   `json:"device,omitempty"`
}

// Resolve looks up every occurrence in the catalog. Resolution is
// total: each input yields exactly one entry, in input order, and
// unknown PDIDs are recorded rather than rejected (prototypes and
// typos are expected in real decks).
func Resolve(occs []label.Occurrence, cat *catalog.Catalog) []Entry {
	if len(occs) == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(occs))
	for _, occ := range occs {
		if rec, ok := cat.Lookup(occ.PDID); ok {
			entries = append(entries, Entry{Occurrence: occ, Status: StatusResolved, Device: rec})
		} else {
			entries = append(entries, Entry{Occurrence: occ, Status: StatusUnknown})
		}
	}
	return entries
}
