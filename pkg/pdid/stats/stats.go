// Package stats aggregates resolved device entries into the summary
// numbers every report shares.
package stats

import (
	"github.com/shopspring/decimal"

	"github.com/smartplan/pdid/pkg/pdid/catalog"
	"github.com/smartplan/pdid/pkg/pdid/resolve"
)

// Summary holds the aggregate numbers for one pipeline run.
// CategoryOrder lists ByCategory's keys in first-seen order so report
// rendering is stable run to run.
type Summary struct {
	TotalCount    int                      `json:"total_count"`
	ByCategory    map[catalog.Category]int `json:"by_category"`
	CategoryOrder []catalog.Category       `json:"category_order"`
	TotalCost     decimal.Decimal          `json:"total_cost"`
	UnknownCount  int                      `json:"unknown_count"`
}

// Aggregate computes the summary over resolved entries. Each entry is
// one physical placement, so occurrences count, not distinct devices.
// Unknown entries contribute zero cost; prices are never imputed.
func Aggregate(entries []resolve.Entry) Summary {
	sum := Summary{
		TotalCount: len(entries),
		ByCategory: make(map[catalog.Category]int),
		TotalCost:  decimal.Zero,
	}

	for _, e := range entries {
		if e.Status != resolve.StatusResolved {
			sum.UnknownCount++
			continue
		}
		cat := e.Device.Category
		if _, seen := sum.ByCategory[cat]; !seen {
			sum.CategoryOrder = append(sum.CategoryOrder, cat)
		}
		sum.ByCategory[cat]++
		sum.TotalCost = sum.TotalCost.Add(e.Device.UnitPrice)
	}
	return sum
}

// Consistent reports whether the category counts reconcile with the
// total: sum(ByCategory) + UnknownCount == TotalCount.
func (s Summary) Consistent() bool {
	resolved := 0
	for _, n := range s.ByCategory {
		resolved += n
	}
	return resolved+s.UnknownCount == s.TotalCount
}
