package billing

// TaxMode says whether GST is baked into the quoted price or added on top.
type TaxMode string

const (
	ModeInclude TaxMode = "include"
	ModeExclude TaxMode = "exclude"
)

// TaxAttrs carries the optional GST configuration of one level of the menu
// hierarchy (line item override, menu item, category). A nil Rate means the
// level does not configure a rate; Mode is meaningful only when it is
// literally "include" or "exclude".
type TaxAttrs struct {
	Rate *float64 `json:"rate,omitempty"`
	Mode string   `json:"mode,omitempty"`
}

// ResolvedTax is the effective rate and mode for one line item.
type ResolvedTax struct {
	Rate float64 `json:"rate"`
	Mode TaxMode `json:"mode"`
}

// NormalizeRate clamps a GST rate into [0, 100] rounded to 2 decimals.
// Non-finite and negative values normalize to 0.
func NormalizeRate(v float64) float64 {
	if !isFinite(v) || v <= 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return Round2(v)
}

// ResolveTax walks an ordered chain of tax attribute providers, highest
// precedence first, and returns the effective rate and mode. Rate and mode
// resolve independently: an item may override only its rate and still inherit
// its category's mode, because menus are configured incrementally and rarely
// set every field at every level.
//
// A rate counts as present only when it normalizes to a value above 0; a mode
// counts as present only when it is literally include/exclude. When the whole
// chain is silent the result is {0, exclude} — fail open to zero tax rather
// than refuse to bill.
func ResolveTax(chain ...TaxAttrs) ResolvedTax {
	resolved := ResolvedTax{Rate: 0, Mode: ModeExclude}

	for _, attrs := range chain {
		if attrs.Rate == nil {
			continue
		}
		if rate := NormalizeRate(*attrs.Rate); rate > 0 {
			resolved.Rate = rate
			break
		}
	}

	for _, attrs := range chain {
		switch TaxMode(attrs.Mode) {
		case ModeInclude, ModeExclude:
			resolved.Mode = TaxMode(attrs.Mode)
			return resolved
		}
	}

	return resolved
}
