// Package report assembles the brief and inventory report variants.
// Both are pure projections of one shared entries+summary pair, so the
// two can never disagree on totals.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/smartplan/pdid/pkg/pdid/resolve"
	"github.com/smartplan/pdid/pkg/pdid/stats"
)

// CategoryCount is one ranked category line in a brief report.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Brief is the condensed, category-ranked summary report.
type Brief struct {
	Summary       stats.Summary   `json:"summary"`
	TopCategories []CategoryCount `json:"top_categories"`
}

// Inventory is the full itemized report: every detected device
// instance in traversal order, Unknown ones included.
type Inventory struct {
	Summary stats.Summary   `json:"summary"`
	Items   []resolve.Entry `json:"items"`
}

// AssembleBrief ranks categories by count descending, ties broken by
// first-seen order, and keeps only non-zero categories.
func AssembleBrief(entries []resolve.Entry, sum stats.Summary) Brief {
	ranked := make([]CategoryCount, 0, len(sum.CategoryOrder))
	for _, cat := range sum.CategoryOrder {
		if sum.ByCategory[cat] == 0 {
			continue
		}
		ranked = append(ranked, CategoryCount{Category: string(cat), Count: sum.ByCategory[cat]})
	}
	// stable sort keeps first-seen order for equal counts
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return Brief{Summary: sum, TopCategories: ranked}
}

// AssembleInventory retains the full ordered entry sequence verbatim,
// annotated with the summary.
func AssembleInventory(entries []resolve.Entry, sum stats.Summary) Inventory {
	items := make([]resolve.Entry, len(entries))
	copy(items, entries)
	return Inventory{Summary: sum, Items: items}
}

// RenderBrief produces the human-readable form of a brief report.
func RenderBrief(b Brief) string {
	var out strings.Builder
	out.WriteString("Device summary\n")
	fmt.Fprintf(&out, "  total devices:   %d\n", b.Summary.TotalCount)
	fmt.Fprintf(&out, "  unknown labels:  %d\n", b.Summary.UnknownCount)
	fmt.Fprintf(&out, "  total cost:      %s\n", b.Summary.TotalCost.StringFixed(2))
	if len(b.TopCategories) > 0 {
		out.WriteString("  by category:\n")
		for _, cc := range b.TopCategories {
			fmt.Fprintf(&out, "    %-12s %d\n", cc.Category, cc.Count)
		}
	}
	return out.String()
}

// RenderInventory produces the human-readable itemized listing.
func RenderInventory(inv Inventory) string {
	var out strings.Builder
	out.WriteString("Device inventory\n")
	for i, item := range inv.Items {
		ref := item.Occurrence.Source
		switch item.Status {
		case resolve.StatusResolved:
			fmt.Fprintf(&out, "  %3d. %-12s %-24s %-10s %10s  (slide %d, shape %d)\n",
				i+1, item.Occurrence.PDID, item.Device.Name, item.Device.Category,
				item.Device.UnitPrice.StringFixed(2), ref.Slide, ref.Shape)
		default:
			fmt.Fprintf(&out, "  %3d. %-12s %-24s %-10s %10s  (slide %d, shape %d)\n",
				i+1, item.Occurrence.PDID, "(unknown)", "-", "-", ref.Slide, ref.Shape)
		}
	}
	fmt.Fprintf(&out, "  devices: %d, unknown: %d, cost: %s\n",
		inv.Summary.TotalCount, inv.Summary.UnknownCount, inv.Summary.TotalCost.StringFixed(2))
	return out.String()
}
