// Package pdid recovers structured device records from presentation
// label text: extraction, catalog resolution, aggregation, and report
// assembly behind one facade.
package pdid

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/smartplan/pdid/pkg/pdid/cache"
	"github.com/smartplan/pdid/pkg/pdid/catalog"
	"github.com/smartplan/pdid/pkg/pdid/internalerr"
	"github.com/smartplan/pdid/pkg/pdid/label"
	"github.com/smartplan/pdid/pkg/pdid/report"
	"github.com/smartplan/pdid/pkg/pdid/resolve"
	"github.com/smartplan/pdid/pkg/pdid/stats"
)

// Analyzer is the device-identification pipeline facade.
type Analyzer struct {
	source     catalog.Source
	extractor  *label.Extractor
	classifier *catalog.Classifier
	cache      *cache.CatalogCache
	entropy    *ulid.MonotonicEntropy
}

// Options configures an Analyzer. Source is required; Extractor
// defaults to one with no aliases; Classifier and Cache are optional
// (no classification, no cross-run catalog reuse).
type Options struct {
	Source     catalog.Source
	Extractor  *label.Extractor
	Classifier *catalog.Classifier
	Cache      *cache.CatalogCache
}

// New creates an Analyzer with the given dependencies.
func New(opts Options) *Analyzer {
	ex := opts.Extractor
	if ex == nil {
		ex = label.NewExtractor()
	}
	return &Analyzer{
		source:     opts.Source,
		extractor:  ex,
		classifier: opts.Classifier,
		cache:      opts.Cache,
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}
}

// Close releases the catalog source handle.
func (a *Analyzer) Close() error {
	return a.source.Close()
}

// Result is the outcome of one pipeline run. Diagnostics carries one
// line per anomaly (unknown PDIDs, reconciliation failure) plus the
// per-slide extraction log.
type Result struct {
	RunID       string
	Brief       report.Brief
	Inventory   report.Inventory
	Diagnostics []string
}

// Run executes the pipeline once: catalog acquisition, extraction,
// resolution, aggregation, reconciliation, report assembly. Stages run
// strictly in sequence; every stage returns a fresh value, and nothing
// is retried (the pipeline is deterministic, so a failure signals bad
// input, not a transient condition).
//
// On reconciliation failure the returned Result carries the diagnostic
// lines gathered so far but no reports; the error wraps
// internalerr.ErrReconciliation.
func (a *Analyzer) Run(ctx context.Context, labels []label.RawLabel) (Result, error) {
	res := Result{RunID: ulid.MustNew(ulid.Now(), a.entropy).String()}

	cat, err := a.acquireCatalog(ctx)
	if err != nil {
		return res, err
	}

	occs := a.extractor.Extract(labels)
	res.Diagnostics = append(res.Diagnostics, extractionLog(occs)...)

	entries := resolve.Resolve(occs, cat)
	for _, e := range entries {
		if e.Status == resolve.StatusUnknown {
			res.Diagnostics = append(res.Diagnostics, fmt.Sprintf(
				"unknown pdid %q (slide %d, shape %d)",
				e.Occurrence.PDID, e.Occurrence.Source.Slide, e.Occurrence.Source.Shape))
		}
	}

	sum := stats.Aggregate(entries)
	if sum.TotalCount != len(occs) || !sum.Consistent() {
		res.Diagnostics = append(res.Diagnostics, fmt.Sprintf(
			"reconciliation failed: total=%d unknown=%d extracted=%d",
			sum.TotalCount, sum.UnknownCount, len(occs)))
		return res, fmt.Errorf("%w: aggregate stage: total=%d extracted=%d",
			internalerr.ErrReconciliation, sum.TotalCount, len(occs))
	}

	res.Brief = report.AssembleBrief(entries, sum)
	res.Inventory = report.AssembleInventory(entries, sum)
	return res, nil
}

// acquireCatalog returns the cached catalog for the source identity,
// or loads, classifies, and builds a fresh one. Built catalogs are
// read-only, so cached sharing across runs needs no locking.
func (a *Analyzer) acquireCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if a.cache != nil {
		if cat, ok := a.cache.Get(a.source.Identity()); ok {
			return cat, nil
		}
	}

	records, err := a.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog stage: %w", err)
	}
	if a.classifier != nil {
		records = a.classifier.Apply(records)
	}
	cat, err := catalog.Build(records)
	if err != nil {
		return nil, fmt.Errorf("catalog stage: %w", err)
	}

	if a.cache != nil {
		a.cache.Put(a.source.Identity(), cat)
	}
	return cat, nil
}

// extractionLog summarizes occurrences per slide, in traversal order.
func extractionLog(occs []label.Occurrence) []string {
	if len(occs) == 0 {
		return []string{"extracted 0 labels"}
	}

	perSlide := make(map[int]int)
	var slides []int
	for _, occ := range occs {
		if _, seen := perSlide[occ.Source.Slide]; !seen {
			slides = append(slides, occ.Source.Slide)
		}
		perSlide[occ.Source.Slide]++
	}

	lines := []string{fmt.Sprintf("extracted %d labels across %d slides", len(occs), len(slides))}
	for _, slide := range slides {
		lines = append(lines, fmt.Sprintf("slide %d: %d label(s)", slide, perSlide[slide]))
	}
	return lines
}
