package resolve

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/smartplan/pdid/pkg/pdid/catalog"
	"github.com/smartplan/pdid/pkg/pdid/label"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Build([]catalog.Record{
		{PDID: "SW-001", Name: "1-Key Switch", Category: catalog.CategorySwitch, UnitPrice: decimal.NewFromFloat(25.0)},
		{PDID: "SN-042", Name: "Door Sensor", Category: catalog.CategorySensor, UnitPrice: decimal.NewFromFloat(18.5)},
	})
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func TestResolveIsTotal(t *testing.T) {
	cat := testCatalog(t)
	occs := []label.Occurrence{
		{PDID: "SW-001", Source: label.SourceRef{Slide: 0, Shape: 0}},
		{PDID: "XX-999", Source: label.SourceRef{Slide: 0, Shape: 2}},
		{PDID: "SN-042", Source: label.SourceRef{Slide: 1, Shape: 0}},
	}

	entries := Resolve(occs, cat)
	if len(entries) != len(occs) {
		t.Fatalf("resolution must be total: %d in, %d out", len(occs), len(entries))
	}
	for i, e := range entries {
		if e.Occurrence != occs[i] {
			t.Errorf("entry %d lost its occurrence: %+v", i, e.Occurrence)
		}
	}

	if entries[0].Status != StatusResolved || entries[0].Device.Name != "1-Key Switch" {
		t.Errorf("SW-001 should resolve: %+v", entries[0])
	}
	if entries[1].Status != StatusUnknown {
		t.Errorf("XX-999 should be unknown: %+v", entries[1])
	}
	if entries[1].Device.PDID != "" {
		t.Errorf("unknown entry must carry no device: %+v", entries[1].Device)
	}
	if entries[2].Status != StatusResolved {
		t.Errorf("SN-042 should resolve: %+v", entries[2])
	}
}

func TestResolveDuplicateOccurrences(t *testing.T) {
	cat := testCatalog(t)
	entries := Resolve([]label.Occurrence{
		{PDID: "SW-001"},
		{PDID: "SW-001"},
	}, cat)

	if len(entries) != 2 {
		t.Fatalf("each placement counts once, got %d entries", len(entries))
	}
	for _, e := range entries {
		if e.Status != StatusResolved {
			t.Errorf("expected resolved, got %s", e.Status)
		}
	}
}

func TestResolveEmpty(t *testing.T) {
	if entries := Resolve(nil, testCatalog(t)); entries != nil {
		t.Errorf("empty input should yield nil, got %v", entries)
	}
}
