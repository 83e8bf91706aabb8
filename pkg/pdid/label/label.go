package label

import (
	"regexp"
	"strings"
)

// Pattern is the PDID lexical pattern: a short letter prefix, a separator,
// a numeric body, and optional trailing alphanumeric segments.
// "SW-001", "sw_001" and "CTRL-042-B" all match; plain words and
// hyphenated prose ("deep-learning") do not.
const Pattern = `(?i)\b[A-Z]{2,4}[-_][0-9]{2,6}(?:[-_][A-Z0-9]+)*\b`

var pattern = regexp.MustCompile(Pattern)

// SourceRef locates a label within the source document:
// slide index, then shape index, in traversal order.
type SourceRef struct {
	Slide     int    `json:"slide"`
	Shape     int    `json:"shape"`
	ShapeName string `json:"shape_name,omitempty"`
}

// RawLabel is one text fragment read from a document shape.
type RawLabel struct {
	Text   string    `json:"text"`
	Source SourceRef `json:"source"`
}

// Occurrence is one detected device instance: a normalized PDID plus
// where it was found. Duplicates are meaningful (one per placement).
type Occurrence struct {
	PDID   string    `json:"pdid"`
	Source SourceRef `json:"source"`
}

// Normalize canonicalizes a PDID candidate: surrounding whitespace is
// trimmed, letters are upper-cased, and underscore separators collapse
// to single dashes. Extractor output and catalog keys both pass through
// here, so the two sides compare without re-derivation.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "_", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}

// FindAll returns every normalized PDID in text, preserving order of
// appearance. Text with no match returns nil.
func FindAll(text string) []string {
	matches := pattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = Normalize(m)
	}
	return out
}

// Extractor scans raw labels for PDIDs. An optional alias table maps
// legacy whole-label texts (template shape names that predate the PDID
// convention) to canonical identifiers.
type Extractor struct {
	aliases map[string]string
}

// NewExtractor creates an extractor with no aliases.
func NewExtractor() *Extractor {
	return &Extractor{aliases: make(map[string]string)}
}

// AddAlias maps a legacy label text to a canonical PDID. The alias key
// is matched against the whole trimmed label text, case-insensitively.
func (e *Extractor) AddAlias(text, pdid string) {
	key := strings.ToLower(strings.TrimSpace(text))
	if key == "" {
		return
	}
	e.aliases[key] = Normalize(pdid)
}

// Extract scans each label's text for PDID matches and emits one
// occurrence per match, preserving in-text order, then label order.
// A label whose text contains no match is consulted against the alias
// table; labels that still yield nothing are skipped. Pure function:
// the input is never modified.
func (e *Extractor) Extract(labels []RawLabel) []Occurrence {
	var out []Occurrence
	for _, l := range labels {
		ids := FindAll(l.Text)
		if ids == nil {
			if alias, ok := e.aliases[strings.ToLower(strings.TrimSpace(l.Text))]; ok {
				ids = []string{alias}
			}
		}
		for _, id := range ids {
			out = append(out, Occurrence{PDID: id, Source: l.Source})
		}
	}
	return out
}
