package billing

import (
	"math"

	"github.com/google/uuid"
)

// LineInput is one raw order line as read back from persistence or submitted
// by a client. Every monetary field beyond quantity and price is optional and
// only partially trusted: it may be stale, absent, or inconsistent with its
// siblings, and the totalizer reconciles rather than echoes it.
//
// Optional fields are pointers so "absent" and "present" stay distinguishable
// after JSON decoding. A supplied amount of exactly 0 is treated the same as
// absent (see ComputeLine).
type LineInput struct {
	ItemID   uuid.UUID `json:"item_id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`

	UnitPrice *float64 `json:"unit_price,omitempty"`
	BasePrice *float64 `json:"base_price,omitempty"`
	Price     *float64 `json:"price,omitempty"`

	Subtotal  *float64 `json:"subtotal,omitempty"`
	Total     *float64 `json:"total,omitempty"`
	GSTAmount *float64 `json:"gst_amount,omitempty"`

	GSTRate *float64 `json:"gst_rate,omitempty"`
	GSTMode string   `json:"gst_mode,omitempty"`
}

// TaxOverride exposes the line's own tax attributes for resolution against
// the menu item and category levels.
func (in *LineInput) TaxOverride() TaxAttrs {
	return TaxAttrs{Rate: in.GSTRate, Mode: in.GSTMode}
}

// LineBreakdown is the fully reconciled set of derived fields for one line.
// Every field is re-derivable from quantity, unit price, rate and mode; no
// derived field is ever the sole source of truth.
type LineBreakdown struct {
	ItemID           uuid.UUID `json:"item_id"`
	Name             string    `json:"name"`
	Quantity         int       `json:"quantity"`
	UnitPrice        float64   `json:"unit_price"`
	UnitPriceWithGST float64   `json:"unit_price_with_gst"`
	Subtotal         float64   `json:"subtotal"`
	GSTRate          float64   `json:"gst_rate"`
	GSTMode          TaxMode   `json:"gst_mode"`
	GSTAmount        float64   `json:"gst_amount"`
	Total            float64   `json:"total"`
}

// totalDecision tags which path produced the line total, so the derive and
// reconcile paths can be tested against the same invariants independently.
type totalDecision int

const (
	deriveTotal totalDecision = iota
	reconcileToSupplied
)

// supplied reports whether an optional monetary field is usable: present,
// finite and strictly positive. Legacy persisted lines carry zero-initialized
// fields that do not mean "zero tax", so an explicit 0 counts as absent.
func supplied(p *float64) bool {
	return p != nil && isFinite(*p) && *p > 0
}

// firstPrice picks the unit price from the first usable candidate among the
// price aliases different client generations have written.
func firstPrice(candidates ...*float64) float64 {
	for _, p := range candidates {
		if p != nil && isFinite(*p) {
			return Round2(*p)
		}
	}
	return 0
}

// inclusiveGST extracts the tax portion of a tax-inclusive amount.
func inclusiveGST(total, rate float64) float64 {
	return Round2(total * rate / (100 + rate))
}

// ComputeLine produces one internally-consistent breakdown for a line item
// given its resolved tax attributes. It is a pure function: the same inputs
// always yield the same breakdown, and feeding a breakdown's own fields back
// in as the supplied values reproduces it unchanged. That idempotence is what
// makes receipt reprints and invoice regeneration safe.
//
// A supplied line total is a hint to reconcile toward, not ground truth: the
// menu may have been edited after the order was placed, so the totalizer
// re-derives what it can and only trusts the supplied total when the freshly
// derived figure disagrees beyond a paisa.
func ComputeLine(in LineInput, tax ResolvedTax) LineBreakdown {
	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}

	unitPrice := firstPrice(in.UnitPrice, in.BasePrice, in.Price)

	base := Round2(unitPrice * float64(qty))
	if in.Subtotal != nil && isFinite(*in.Subtotal) {
		base = Round2(*in.Subtotal)
	}
	if base < 0 {
		base = 0
	}

	var gst float64
	gstSupplied := supplied(in.GSTAmount)
	if gstSupplied {
		gst = Round2(*in.GSTAmount)
	}

	var total float64
	decision := deriveTotal
	if supplied(in.Total) {
		decision = reconcileToSupplied
	}

	switch decision {
	case deriveTotal:
		switch {
		case tax.Rate == 0:
			gst = 0
			total = base
		case tax.Mode == ModeInclude:
			// The quoted price already contains tax.
			total = Round2(unitPrice * float64(qty))
			if gstSupplied && gst > total {
				// A stored tax amount larger than the line total cannot be
				// reconciled; re-derive from the rate instead.
				gstSupplied = false
			}
			if !gstSupplied {
				gst = inclusiveGST(total, tax.Rate)
			}
			base = Round2(total - gst)
		default:
			if !gstSupplied {
				gst = Round2(base * tax.Rate / 100)
			}
			total = Round2(base + gst)
		}

	case reconcileToSupplied:
		total = Round2(*in.Total)
		if gstSupplied && gst > total {
			// A stored tax amount larger than the stored total cannot be
			// reconciled; re-derive from the rate instead.
			gstSupplied = false
			gst = 0
		}
		if !gstSupplied && tax.Rate > 0 {
			if tax.Mode == ModeInclude {
				gst = inclusiveGST(total, tax.Rate)
			} else {
				gst = Round2(base * tax.Rate / 100)
				if math.Abs(total-Round2(base+gst)) > 0.01 {
					// The stored total outranks a possibly-stale subtotal.
					base = Round2(total - gst)
				}
				if base < 0 {
					// The subtotal is stale beyond repair; back the tax out
					// of the total instead.
					gst = inclusiveGST(total, tax.Rate)
					base = Round2(total - gst)
				}
			}
		}
		if tax.Mode == ModeInclude {
			base = Round2(total - gst)
		}
	}

	// A zero rate can never coexist with positive tax, whatever was supplied.
	if tax.Rate == 0 {
		gst = 0
		total = base
	}

	unitWithGST := unitPrice
	if tax.Mode == ModeInclude {
		if qty > 0 {
			unitWithGST = Round2(total / float64(qty))
		} else {
			unitWithGST = total
		}
	}

	return LineBreakdown{
		ItemID:           in.ItemID,
		Name:             in.Name,
		Quantity:         qty,
		UnitPrice:        unitPrice,
		UnitPriceWithGST: unitWithGST,
		Subtotal:         base,
		GSTRate:          tax.Rate,
		GSTMode:          tax.Mode,
		GSTAmount:        gst,
		Total:            total,
	}
}
