package billing

import "github.com/google/uuid"

// CatalogEntry carries the tax configuration a line item inherits from the
// menu: the owning item's own attributes and those of its category.
type CatalogEntry struct {
	Item     TaxAttrs `json:"item"`
	Category TaxAttrs `json:"category"`
}

// Catalog maps menu item ids to their inheritable tax attributes. Lines whose
// item is no longer in the catalog (deleted after the order was placed)
// resolve from their own stored attributes alone.
type Catalog map[uuid.UUID]CatalogEntry

// Breakdown is the complete, display-ready result of one computation pass:
// per-line breakdowns, reconciled order totals and the statutory CGST/SGST
// grouping. It is rebuilt from scratch on every pass — receipt print, invoice
// regeneration, KOT reprint, order submission preview — and never persisted
// by the engine itself.
type Breakdown struct {
	Lines     []LineBreakdown `json:"lines"`
	Totals    OrderTotals     `json:"totals"`
	RateSlabs []RateSlab      `json:"rate_slabs"`
	Inclusive InclusiveSplit  `json:"inclusive"`
}

// Compute runs the full pipeline: resolve tax per line, totalize, aggregate
// against the authoritative order total, and build the statutory breakdown.
// It never fails; malformed inputs degrade to zero amounts per field.
func Compute(items []LineInput, catalog Catalog, orderTotal interface{}) *Breakdown {
	lines := make([]LineBreakdown, 0, len(items))
	for i := range items {
		in := &items[i]
		entry := catalog[in.ItemID]
		tax := ResolveTax(in.TaxOverride(), entry.Item, entry.Category)
		lines = append(lines, ComputeLine(*in, tax))
	}

	totals, rateTax := AggregateLines(lines, orderTotal)

	return &Breakdown{
		Lines:     lines,
		Totals:    totals,
		RateSlabs: BuildRateSlabs(rateTax),
		Inclusive: SplitInclusive(totals.GSTIncluded),
	}
}
