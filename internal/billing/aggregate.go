package billing

import "math"

// OrderTotals is the order-level fold of all line breakdowns, reconciled
// against the authoritative order total.
type OrderTotals struct {
	Subtotal      float64 `json:"subtotal"`
	TotalGST      float64 `json:"total_gst"`
	GSTIncluded   float64 `json:"gst_included"`
	GSTSeparate   float64 `json:"gst_separate"`
	ComputedTotal float64 `json:"computed_total"`
	FinalTotal    float64 `json:"final_total"`
	RoundOff      float64 `json:"round_off"`
}

// HasRoundOff reports whether the round-off is material enough to print as
// its own line. Deltas under a paisa are treated as exact equality.
func (t OrderTotals) HasRoundOff() bool {
	return math.Abs(t.RoundOff) >= 0.01
}

// AggregateLines folds line breakdowns into order totals and reconciles them
// against the authoritative order total (set at order creation or payment
// capture, possibly before a later menu edit). The authoritative figure is
// what must appear as TOTAL on any financial document; the computed total is
// the honest sum of current line math, and their difference surfaces as an
// explicit round-off instead of silently dropping money.
//
// The returned rate map accumulates exclusive-mode tax per resolved rate and
// feeds the statutory CGST/SGST breakdown.
func AggregateLines(lines []LineBreakdown, orderTotal interface{}) (OrderTotals, map[float64]float64) {
	var totals OrderTotals
	rateTax := make(map[float64]float64)

	for _, ln := range lines {
		totals.Subtotal += ln.Subtotal
		totals.TotalGST += ln.GSTAmount
		if ln.GSTMode == ModeInclude {
			totals.GSTIncluded += ln.GSTAmount
		} else {
			totals.GSTSeparate += ln.GSTAmount
			if ln.GSTRate > 0 && ln.GSTAmount > 0 {
				rateTax[ln.GSTRate] += ln.GSTAmount
			}
		}
		totals.ComputedTotal += ln.Total
	}

	totals.Subtotal = Round2(totals.Subtotal)
	totals.TotalGST = Round2(totals.TotalGST)
	totals.GSTIncluded = Round2(totals.GSTIncluded)
	totals.GSTSeparate = Round2(totals.GSTSeparate)
	totals.ComputedTotal = Round2(totals.ComputedTotal)

	authoritative := ParseAmount(orderTotal)
	if authoritative > 0 {
		totals.FinalTotal = Round2(authoritative)
	} else {
		totals.FinalTotal = totals.ComputedTotal
	}
	totals.RoundOff = Round2(totals.FinalTotal - totals.ComputedTotal)

	return totals, rateTax
}
