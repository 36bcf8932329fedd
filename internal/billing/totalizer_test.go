package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(v float64) *float64 { return &v }

func TestComputeLine_ExclusiveTax(t *testing.T) {
	// unit price 100.00, qty 2, rate 5 exclude
	got := ComputeLine(LineInput{Quantity: 2, UnitPrice: amt(100)}, ResolvedTax{Rate: 5, Mode: ModeExclude})

	assert.Equal(t, 200.0, got.Subtotal)
	assert.Equal(t, 10.0, got.GSTAmount)
	assert.Equal(t, 210.0, got.Total)
	assert.Equal(t, 100.0, got.UnitPrice)
	assert.Equal(t, 100.0, got.UnitPriceWithGST)
}

func TestComputeLine_InclusiveTax(t *testing.T) {
	// unit price 105.00, qty 1, rate 5 include
	got := ComputeLine(LineInput{Quantity: 1, UnitPrice: amt(105)}, ResolvedTax{Rate: 5, Mode: ModeInclude})

	assert.Equal(t, 105.0, got.Total)
	assert.Equal(t, 5.0, got.GSTAmount)
	assert.Equal(t, 100.0, got.Subtotal)
	assert.Equal(t, 105.0, got.UnitPriceWithGST)
}

func TestComputeLine_ZeroRateClosesStaleFields(t *testing.T) {
	// Supplied totals from a previous computation under a since-removed rate
	// must be discarded entirely once the rate resolves to 0.
	got := ComputeLine(LineInput{
		Quantity:  3,
		UnitPrice: amt(15),
		Total:     amt(50),
		GSTAmount: amt(5),
	}, ResolvedTax{Rate: 0, Mode: ModeExclude})

	assert.Equal(t, 0.0, got.GSTAmount)
	assert.Equal(t, 45.0, got.Subtotal)
	assert.Equal(t, 45.0, got.Total)
}

func TestComputeLine_QuantityFloor(t *testing.T) {
	got := ComputeLine(LineInput{Quantity: 0, UnitPrice: amt(80)}, ResolvedTax{Rate: 0, Mode: ModeExclude})
	assert.Equal(t, 1, got.Quantity)
	assert.Equal(t, 80.0, got.Subtotal)
}

func TestComputeLine_PriceFallbackChain(t *testing.T) {
	t.Run("base_price", func(t *testing.T) {
		got := ComputeLine(LineInput{Quantity: 2, BasePrice: amt(40)}, ResolvedTax{Mode: ModeExclude})
		assert.Equal(t, 80.0, got.Subtotal)
	})
	t.Run("generic_price", func(t *testing.T) {
		got := ComputeLine(LineInput{Quantity: 2, Price: amt(30)}, ResolvedTax{Mode: ModeExclude})
		assert.Equal(t, 60.0, got.Subtotal)
	})
	t.Run("no_price", func(t *testing.T) {
		got := ComputeLine(LineInput{Quantity: 2}, ResolvedTax{Mode: ModeExclude})
		assert.Equal(t, 0.0, got.Subtotal)
		assert.Equal(t, 0.0, got.Total)
	})
}

func TestComputeLine_SuppliedGSTIsKept(t *testing.T) {
	// A positive supplied tax amount is reconciled toward, not recomputed.
	got := ComputeLine(LineInput{
		Quantity:  2,
		UnitPrice: amt(100),
		GSTAmount: amt(9.5),
	}, ResolvedTax{Rate: 5, Mode: ModeExclude})

	assert.Equal(t, 9.5, got.GSTAmount)
	assert.Equal(t, 209.5, got.Total)
}

func TestComputeLine_ReconcileToSuppliedTotal(t *testing.T) {
	// The stored line total disagrees with subtotal+gst beyond tolerance:
	// the explicit total wins and the subtotal is recomputed from it.
	got := ComputeLine(LineInput{
		Quantity:  2,
		UnitPrice: amt(100),
		Subtotal:  amt(190), // stale
		Total:     amt(210),
	}, ResolvedTax{Rate: 5, Mode: ModeExclude})

	assert.Equal(t, 210.0, got.Total)
	assert.Equal(t, 9.5, got.GSTAmount) // derived from the stale subtotal first
	assert.Equal(t, 200.5, got.Subtotal)
	assert.Equal(t, Round2(got.Subtotal+got.GSTAmount), got.Total)
}

func TestComputeLine_SuppliedTotalWithinTolerance(t *testing.T) {
	got := ComputeLine(LineInput{
		Quantity:  2,
		UnitPrice: amt(100),
		Total:     amt(210),
	}, ResolvedTax{Rate: 5, Mode: ModeExclude})

	assert.Equal(t, 210.0, got.Total)
	assert.Equal(t, 10.0, got.GSTAmount)
	assert.Equal(t, 200.0, got.Subtotal)
}

func TestComputeLine_SuppliedTotalInclusive(t *testing.T) {
	got := ComputeLine(LineInput{
		Quantity: 1,
		Price:    amt(105),
		Total:    amt(105),
	}, ResolvedTax{Rate: 5, Mode: ModeInclude})

	assert.Equal(t, 105.0, got.Total)
	assert.Equal(t, 5.0, got.GSTAmount)
	assert.Equal(t, 100.0, got.Subtotal)
}

func TestComputeLine_SuppliedGSTInclusiveRecomputesSubtotal(t *testing.T) {
	got := ComputeLine(LineInput{
		Quantity:  1,
		UnitPrice: amt(105),
		Subtotal:  amt(105), // stale, still tax-inclusive
		Total:     amt(105),
		GSTAmount: amt(5),
	}, ResolvedTax{Rate: 5, Mode: ModeInclude})

	assert.Equal(t, 100.0, got.Subtotal)
	assert.Equal(t, 105.0, got.Total)
}

func TestComputeLine_OversizedGSTIsRederived(t *testing.T) {
	// A persisted tax amount larger than the line total cannot be reconciled
	// with the rest of the line; the total wins and the tax is re-derived.
	t.Run("with_supplied_total", func(t *testing.T) {
		got := ComputeLine(LineInput{
			Quantity:  1,
			UnitPrice: amt(50),
			Total:     amt(50),
			GSTAmount: amt(60),
		}, ResolvedTax{Rate: 5, Mode: ModeExclude})

		assert.Equal(t, 50.0, got.Total)
		assert.Equal(t, 2.5, got.GSTAmount)
		assert.Equal(t, 47.5, got.Subtotal)
		assert.LessOrEqual(t, got.GSTAmount, got.Total)
	})

	t.Run("inclusive_price", func(t *testing.T) {
		got := ComputeLine(LineInput{
			Quantity:  1,
			UnitPrice: amt(50),
			GSTAmount: amt(60),
		}, ResolvedTax{Rate: 5, Mode: ModeInclude})

		assert.Equal(t, 50.0, got.Total)
		assert.Equal(t, 2.38, got.GSTAmount)
		assert.Equal(t, 47.62, got.Subtotal)
		assert.GreaterOrEqual(t, got.Subtotal, 0.0)
	})
}

func TestComputeLine_ExplicitZeroGSTIsRederived(t *testing.T) {
	// Zero-initialized persisted fields do not mean tax exempt.
	got := ComputeLine(LineInput{
		Quantity:  2,
		UnitPrice: amt(100),
		GSTAmount: amt(0),
	}, ResolvedTax{Rate: 5, Mode: ModeExclude})

	assert.Equal(t, 10.0, got.GSTAmount)
}

func TestComputeLine_Idempotence(t *testing.T) {
	cases := []struct {
		name string
		in   LineInput
		tax  ResolvedTax
	}{
		{"exclusive", LineInput{Quantity: 2, UnitPrice: amt(100)}, ResolvedTax{Rate: 5, Mode: ModeExclude}},
		{"inclusive", LineInput{Quantity: 3, UnitPrice: amt(66.67)}, ResolvedTax{Rate: 18, Mode: ModeInclude}},
		{"zero_rate", LineInput{Quantity: 1, UnitPrice: amt(49.99)}, ResolvedTax{Rate: 0, Mode: ModeExclude}},
		{"fractional", LineInput{Quantity: 7, UnitPrice: amt(13.33)}, ResolvedTax{Rate: 2.5, Mode: ModeExclude}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first := ComputeLine(tc.in, tc.tax)

			// Feed the breakdown's own fields back in as the supplied values.
			again := tc.in
			again.Subtotal = amt(first.Subtotal)
			again.Total = amt(first.Total)
			again.GSTAmount = amt(first.GSTAmount)

			second := ComputeLine(again, tc.tax)
			assert.Equal(t, first, second)
		})
	}
}

func TestComputeLine_Invariants(t *testing.T) {
	inputs := []LineInput{
		{Quantity: 2, UnitPrice: amt(100)},
		{Quantity: 1, UnitPrice: amt(105), GSTAmount: amt(3)},
		{Quantity: 5, Price: amt(0.99)},
		{Quantity: 4, UnitPrice: amt(25), Total: amt(103), Subtotal: amt(95)},
		{Quantity: 1, UnitPrice: amt(50), Total: amt(50), GSTAmount: amt(60)},
		{Quantity: 1, UnitPrice: amt(50), GSTAmount: amt(60)},
		{Quantity: 2, UnitPrice: amt(30), Subtotal: amt(-12)},
		{Quantity: 1},
	}
	taxes := []ResolvedTax{
		{Rate: 0, Mode: ModeExclude},
		{Rate: 5, Mode: ModeExclude},
		{Rate: 18, Mode: ModeInclude},
		{Rate: 100, Mode: ModeExclude},
	}

	for _, in := range inputs {
		for _, tax := range taxes {
			got := ComputeLine(in, tax)

			require.GreaterOrEqual(t, got.GSTAmount, 0.0)
			require.LessOrEqual(t, got.GSTAmount, got.Total)
			require.GreaterOrEqual(t, got.Subtotal, 0.0)
			require.GreaterOrEqual(t, got.Total, 0.0)
			if tax.Rate == 0 {
				require.Zero(t, got.GSTAmount)
				require.Equal(t, got.Subtotal, got.Total)
			}
		}
	}
}
