// Package catalog holds the device catalog: an immutable-at-runtime
// mapping from normalized PDID to device metadata, loaded once per run
// from a persisted source.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smartplan/pdid/pkg/pdid/internalerr"
	"github.com/smartplan/pdid/pkg/pdid/label"
)

// Category classifies a device record.
type Category string

const (
	CategorySwitch     Category = "switch"
	CategorySensor     Category = "sensor"
	CategoryController Category = "controller"
	CategoryOther      Category = "other"
)

// ParseCategory maps a stored category string to a Category.
// Unrecognized or empty values map to CategoryOther.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategorySwitch:
		return CategorySwitch
	case CategorySensor:
		return CategorySensor
	case CategoryController:
		return CategoryController
	default:
		return CategoryOther
	}
}

// Record is one catalog entry. Read-only to every downstream stage.
type Record struct {
	PDID      string            `json:"pdid"`
	Name      string            `json:"name"`
	Category  Category          `json:"category"`
	UnitPrice decimal.Decimal   `json:"unit_price"`
	Specs     map[string]string `json:"specs,omitempty"`
}

// Source supplies catalog records from a persisted store.
// Identity names the store (used as the catalog cache key);
// Close releases the underlying handle.
type Source interface {
	Identity() string
	Load(ctx context.Context) ([]Record, error)
	Close() error
}

// Catalog is the built, normalized-key lookup table. It is never
// mutated after Build, so sharing across runs needs no locking.
type Catalog struct {
	records map[string]Record
}

// Build constructs a catalog from loaded records, normalizing every key
// with the same rule the extractor uses. Two records normalizing to the
// same PDID violate the one-to-one invariant and abort the build: a
// silent collision would corrupt every downstream lookup.
func Build(records []Record) (*Catalog, error) {
	byKey := make(map[string]Record, len(records))
	for _, rec := range records {
		key := label.Normalize(rec.PDID)
		if key == "" {
			return nil, fmt.Errorf("%w: record %q has empty pdid", internalerr.ErrCatalogIntegrity, rec.Name)
		}
		if prev, ok := byKey[key]; ok {
			return nil, fmt.Errorf("%w: %q and %q both normalize to %q",
				internalerr.ErrCatalogIntegrity, prev.PDID, rec.PDID, key)
		}
		rec.PDID = key
		byKey[key] = rec
	}
	return &Catalog{records: byKey}, nil
}

// Lookup returns the record for a PDID, normalizing the argument first,
// so lookups are case and whitespace insensitive.
func (c *Catalog) Lookup(pdid string) (Record, bool) {
	rec, ok := c.records[label.Normalize(pdid)]
	return rec, ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.records)
}
