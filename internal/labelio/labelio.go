// Package labelio reads and writes raw labels as JSONL, the exchange
// format between the ingestion tools and the report CLI.
package labelio

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/smartplan/pdid/pkg/pdid/label"
)

// LoadFromJSONL loads raw labels from a JSONL file, skipping malformed
// lines with a warning.
func LoadFromJSONL(path string) ([]label.RawLabel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var labels []label.RawLabel
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var l label.RawLabel
		if err := json.Unmarshal([]byte(line), &l); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		labels = append(labels, l)
	}
	return labels, nil
}

// Write encodes labels as JSONL.
func Write(w io.Writer, labels []label.RawLabel) error {
	enc := json.NewEncoder(w)
	for _, l := range labels {
		if err := enc.Encode(l); err != nil {
			return err
		}
	}
	return nil
}
