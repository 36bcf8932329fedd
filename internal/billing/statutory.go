package billing

import "sort"

// RateSlab is the statutory CGST/SGST split of exclusive-mode tax collected
// at one GST rate. CGST and SGST are each exactly half of the combined rate
// and amount.
type RateSlab struct {
	Rate       float64 `json:"rate"`
	Amount     float64 `json:"amount"`
	CGSTRate   float64 `json:"cgst_rate"`
	CGSTAmount float64 `json:"cgst_amount"`
	SGSTRate   float64 `json:"sgst_rate"`
	SGSTAmount float64 `json:"sgst_amount"`
}

// InclusiveSplit is the single ungrouped CGST/SGST split of tax that was
// already contained in quoted prices. Inclusive-mode lines are not tracked
// per rate once merged, so one blended split suffices for statutory display.
type InclusiveSplit struct {
	CGST float64 `json:"cgst"`
	SGST float64 `json:"sgst"`
}

// BuildRateSlabs turns the per-rate exclusive tax map from AggregateLines
// into display-ready slabs, sorted ascending by rate.
func BuildRateSlabs(rateTax map[float64]float64) []RateSlab {
	if len(rateTax) == 0 {
		return nil
	}

	rates := make([]float64, 0, len(rateTax))
	for rate := range rateTax {
		rates = append(rates, rate)
	}
	sort.Float64s(rates)

	slabs := make([]RateSlab, 0, len(rates))
	for _, rate := range rates {
		amount := Round2(rateTax[rate])
		slabs = append(slabs, RateSlab{
			Rate:       rate,
			Amount:     amount,
			CGSTRate:   Round2(rate / 2),
			CGSTAmount: Round2(amount / 2),
			SGSTRate:   Round2(rate / 2),
			SGSTAmount: Round2(amount / 2),
		})
	}
	return slabs
}

// SplitInclusive halves the inclusive-mode tax bucket into its CGST/SGST
// components.
func SplitInclusive(gstIncluded float64) InclusiveSplit {
	half := Round2(gstIncluded / 2)
	return InclusiveSplit{CGST: half, SGST: half}
}
