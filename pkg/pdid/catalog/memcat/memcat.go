// Package memcat provides an in-memory catalog.Source for tests and
// embedding callers that already hold their records.
package memcat

import (
	"context"

	"github.com/smartplan/pdid/pkg/pdid/catalog"
)

// Source serves a fixed record set from memory.
type Source struct {
	name    string
	records []catalog.Record
}

// New creates an in-memory source. The name becomes the source identity.
func New(name string, records ...catalog.Record) *Source {
	return &Source{name: name, records: records}
}

// Identity implements catalog.Source.
func (s *Source) Identity() string { return "mem:" + s.name }

// Load returns a copy of the record set; callers may not reach the
// source's own slice.
func (s *Source) Load(ctx context.Context) ([]catalog.Record, error) {
	out := make([]catalog.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Close implements catalog.Source.
func (s *Source) Close() error { return nil }
