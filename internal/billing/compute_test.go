package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_FullPipeline(t *testing.T) {
	thaliID := uuid.New()
	chaiID := uuid.New()
	lassiID := uuid.New()

	catalog := Catalog{
		// Rate on the item, mode inherited from the category.
		thaliID: {
			Item:     TaxAttrs{Rate: ratePtr(5)},
			Category: TaxAttrs{Mode: "exclude"},
		},
		// Everything from the category.
		chaiID: {
			Category: TaxAttrs{Rate: ratePtr(5), Mode: "include"},
		},
		// No tax configured anywhere.
		lassiID: {},
	}

	items := []LineInput{
		{ItemID: thaliID, Name: "Veg Thali", Quantity: 2, UnitPrice: amt(100)},
		{ItemID: chaiID, Name: "Masala Chai", Quantity: 1, UnitPrice: amt(105)},
		{ItemID: lassiID, Name: "Sweet Lassi", Quantity: 1, UnitPrice: amt(60)},
	}

	bd := Compute(items, catalog, 375.00)
	require.Len(t, bd.Lines, 3)

	thali := bd.Lines[0]
	assert.Equal(t, 200.0, thali.Subtotal)
	assert.Equal(t, 10.0, thali.GSTAmount)
	assert.Equal(t, 210.0, thali.Total)
	assert.Equal(t, ModeExclude, thali.GSTMode)

	chai := bd.Lines[1]
	assert.Equal(t, 105.0, chai.Total)
	assert.Equal(t, 5.0, chai.GSTAmount)
	assert.Equal(t, 100.0, chai.Subtotal)
	assert.Equal(t, ModeInclude, chai.GSTMode)

	lassi := bd.Lines[2]
	assert.Equal(t, 60.0, lassi.Total)
	assert.Zero(t, lassi.GSTAmount)

	assert.Equal(t, 375.0, bd.Totals.ComputedTotal)
	assert.Equal(t, 375.0, bd.Totals.FinalTotal)
	assert.False(t, bd.Totals.HasRoundOff())
	assert.Equal(t, 10.0, bd.Totals.GSTSeparate)
	assert.Equal(t, 5.0, bd.Totals.GSTIncluded)

	require.Len(t, bd.RateSlabs, 1)
	assert.Equal(t, 5.0, bd.RateSlabs[0].Rate)
	assert.Equal(t, 10.0, bd.RateSlabs[0].Amount)
	assert.Equal(t, 5.0, bd.RateSlabs[0].CGSTAmount)
	assert.Equal(t, 5.0, bd.RateSlabs[0].SGSTAmount)

	assert.Equal(t, 2.5, bd.Inclusive.CGST)
	assert.Equal(t, 2.5, bd.Inclusive.SGST)
}

func TestCompute_UnknownItemFallsBackToLineAttrs(t *testing.T) {
	items := []LineInput{
		{ItemID: uuid.New(), Quantity: 1, UnitPrice: amt(50), GSTRate: ratePtr(12), GSTMode: "exclude"},
	}

	bd := Compute(items, Catalog{}, nil)
	require.Len(t, bd.Lines, 1)
	assert.Equal(t, 12.0, bd.Lines[0].GSTRate)
	assert.Equal(t, 6.0, bd.Lines[0].GSTAmount)
	assert.Equal(t, 56.0, bd.Totals.FinalTotal)
}

func TestCompute_ReprintIsStable(t *testing.T) {
	id := uuid.New()
	catalog := Catalog{id: {Item: TaxAttrs{Rate: ratePtr(18), Mode: "exclude"}}}
	items := []LineInput{
		{ItemID: id, Quantity: 3, UnitPrice: amt(83.33)},
		{ItemID: id, Quantity: 1, UnitPrice: amt(19.99)},
	}

	first := Compute(items, catalog, nil)

	// Simulate a reprint: the previously computed fields come back as the
	// supplied values, alongside the order total captured at billing time.
	reprint := make([]LineInput, len(items))
	for i, in := range items {
		reprint[i] = in
		reprint[i].Subtotal = amt(first.Lines[i].Subtotal)
		reprint[i].Total = amt(first.Lines[i].Total)
		reprint[i].GSTAmount = amt(first.Lines[i].GSTAmount)
		reprint[i].GSTRate = ratePtr(first.Lines[i].GSTRate)
		reprint[i].GSTMode = string(first.Lines[i].GSTMode)
	}

	second := Compute(reprint, catalog, first.Totals.FinalTotal)

	assert.Equal(t, first.Lines, second.Lines)
	assert.Equal(t, first.Totals, second.Totals)
	assert.Equal(t, first.RateSlabs, second.RateSlabs)
	assert.Equal(t, first.Inclusive, second.Inclusive)
}
