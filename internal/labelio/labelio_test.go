package labelio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartplan/pdid/pkg/pdid/label"
)

func TestRoundTrip(t *testing.T) {
	labels := []label.RawLabel{
		{Text: "Device SW-001 here", Source: label.SourceRef{Slide: 0, Shape: 0, ShapeName: "textbox-3"}},
		{Text: "no tag", Source: label.SourceRef{Slide: 1, Shape: 2}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, labels); err != nil {
		t.Fatalf("Write: %v", err)
	}

	path := filepath.Join(t.TempDir(), "labels.jsonl")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFromJSONL(path)
	if err != nil {
		t.Fatalf("LoadFromJSONL: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(loaded))
	}
	if loaded[0] != labels[0] || loaded[1] != labels[1] {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.jsonl")
	content := `{"text":"SW-001","source":{"slide":0,"shape":0}}
not json
{"text":"SN-042","source":{"slide":1,"shape":0}}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	labels, err := LoadFromJSONL(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 2 {
		t.Errorf("expected malformed line to be skipped, got %d labels", len(labels))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadFromJSONL(filepath.Join(t.TempDir(), "nope.jsonl")); err == nil {
		t.Error("missing file should fail")
	}
}
