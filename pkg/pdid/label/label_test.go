package label

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  sw-001 ": "SW-001",
		"SW_001":    "SW-001",
		"sw_001_b":  "SW-001-B",
		"CTRL-042":  "CTRL-042",
		"sw-_001":   "SW-001",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFindAllBasic(t *testing.T) {
	ids := FindAll("Device SW-001 here")
	if len(ids) != 1 || ids[0] != "SW-001" {
		t.Fatalf("expected [SW-001], got %v", ids)
	}
}

func TestFindAllNoMatch(t *testing.T) {
	for _, text := range []string{"no tag", "", "deep-learning is great", "room layout"} {
		if ids := FindAll(text); ids != nil {
			t.Errorf("FindAll(%q) = %v, want nil", text, ids)
		}
	}
}

func TestFindAllMultipleInOrder(t *testing.T) {
	ids := FindAll("first SW-001 then sn_042 then CTRL-007-B")
	want := []string{"SW-001", "SN-042", "CTRL-007-B"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d matches, got %v", len(want), ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("match %d: got %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestExtractPreservesTraversalOrder(t *testing.T) {
	e := NewExtractor()
	labels := []RawLabel{
		{Text: "Device SW-001 here", Source: SourceRef{Slide: 0, Shape: 0}},
		{Text: "no tag", Source: SourceRef{Slide: 0, Shape: 1}},
		{Text: "SW-001 again", Source: SourceRef{Slide: 1, Shape: 0}},
	}

	occs := e.Extract(labels)
	if len(occs) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(occs))
	}
	if occs[0].PDID != "SW-001" || occs[0].Source.Slide != 0 {
		t.Errorf("first occurrence wrong: %+v", occs[0])
	}
	if occs[1].PDID != "SW-001" || occs[1].Source.Slide != 1 {
		t.Errorf("second occurrence wrong: %+v", occs[1])
	}
}

func TestExtractDuplicatesRetained(t *testing.T) {
	e := NewExtractor()
	occs := e.Extract([]RawLabel{
		{Text: "SW-001 and SW-001 twice"},
	})
	if len(occs) != 2 {
		t.Fatalf("duplicates within one label must both be emitted, got %d", len(occs))
	}
}

func TestExtractAlias(t *testing.T) {
	e := NewExtractor()
	e.AddAlias("switch_1_yl", "SW-001")

	occs := e.Extract([]RawLabel{
		{Text: "  Switch_1_YL "},
		{Text: "switch_2_yl"},
	})
	if len(occs) != 1 {
		t.Fatalf("expected 1 occurrence from alias, got %d", len(occs))
	}
	if occs[0].PDID != "SW-001" {
		t.Errorf("alias should map to SW-001, got %q", occs[0].PDID)
	}
}

func TestExtractAliasOnlyWhenNoPatternMatch(t *testing.T) {
	e := NewExtractor()
	e.AddAlias("SW-001", "SW-999")

	occs := e.Extract([]RawLabel{{Text: "SW-001"}})
	if len(occs) != 1 || occs[0].PDID != "SW-001" {
		t.Fatalf("pattern match must win over alias, got %v", occs)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	e := NewExtractor()
	if occs := e.Extract(nil); occs != nil {
		t.Errorf("nil input should yield nil, got %v", occs)
	}
}
