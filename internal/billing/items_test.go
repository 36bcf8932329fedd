package billing

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItems_Array(t *testing.T) {
	id := uuid.New()
	raw := json.RawMessage(`[
		{"item_id": "` + id.String() + `", "name": "Paneer Tikka", "quantity": 2,
		 "unit_price": 240, "subtotal": 480, "gst_rate": 5, "gst_mode": "exclude"}
	]`)

	items, err := ParseItems(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)

	in := items[0]
	assert.Equal(t, id, in.ItemID)
	assert.Equal(t, "Paneer Tikka", in.Name)
	assert.Equal(t, 2, in.Quantity)
	require.NotNil(t, in.UnitPrice)
	assert.Equal(t, 240.0, *in.UnitPrice)
	require.NotNil(t, in.Subtotal)
	assert.Equal(t, 480.0, *in.Subtotal)
	require.NotNil(t, in.GSTRate)
	assert.Equal(t, 5.0, *in.GSTRate)
	assert.Equal(t, "exclude", in.GSTMode)
	assert.Nil(t, in.Total)
	assert.Nil(t, in.GSTAmount)
}

func TestParseItems_DoubleEncodedString(t *testing.T) {
	inner := `[{"name":"Masala Chai","quantity":1,"price":"20.50"}]`
	raw, err := json.Marshal(inner)
	require.NoError(t, err)

	items, err := ParseItems(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Price)
	assert.Equal(t, 20.5, *items[0].Price)
}

func TestParseItems_TotalAliases(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{"total", `{"total": 105}`},
		{"line_total", `{"line_total": 105}`},
		{"subtotal_with_gst", `{"subtotal_with_gst": 105}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := ParseItems(json.RawMessage("[" + tc.row + "]"))
			require.NoError(t, err)
			require.Len(t, items, 1)
			require.NotNil(t, items[0].Total)
			assert.Equal(t, 105.0, *items[0].Total)
		})
	}
}

func TestParseItems_NumericStringsAndStringQuantity(t *testing.T) {
	raw := json.RawMessage(`[{"quantity": "3", "unit_price": "99.99", "gst_amount": "junk"}]`)

	items, err := ParseItems(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	require.NotNil(t, items[0].UnitPrice)
	assert.Equal(t, 99.99, *items[0].UnitPrice)
	// Present but unparsable coerces to 0, which the totalizer treats as absent.
	require.NotNil(t, items[0].GSTAmount)
	assert.Equal(t, 0.0, *items[0].GSTAmount)
}

func TestParseItems_Empty(t *testing.T) {
	items, err := ParseItems(nil)
	require.NoError(t, err)
	assert.Nil(t, items)

	items, err = ParseItems(json.RawMessage(`[]`))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParseItems_Malformed(t *testing.T) {
	_, err := ParseItems(json.RawMessage(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestParseItems_BadItemID(t *testing.T) {
	items, err := ParseItems(json.RawMessage(`[{"item_id": 42, "quantity": 1}]`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uuid.Nil, items[0].ItemID)
}
