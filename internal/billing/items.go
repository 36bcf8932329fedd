package billing

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ParseItems decodes an order's persisted items column into line inputs.
// Orders written by different client generations store items either as a
// JSONB array of objects or as a JSON-encoded string of the same array, and
// monetary fields inside may be numbers or numeric strings. Field aliases
// (total / line_total / subtotal_with_gst) collapse onto LineInput.Total.
//
// Only structurally unreadable payloads return an error; individual bad
// fields degrade to absent, matching the engine's coercion policy.
func ParseItems(raw json.RawMessage) ([]LineInput, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	payload := raw
	// Double-encoded: a JSON string wrapping the array.
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte(`"`)) {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, fmt.Errorf("billing.ParseItems: unwrapping items string: %w", err)
		}
		payload = json.RawMessage(inner)
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var rows []map[string]interface{}
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("billing.ParseItems: decoding items array: %w", err)
	}

	items := make([]LineInput, 0, len(rows))
	for _, row := range rows {
		items = append(items, lineFromRow(row))
	}
	return items, nil
}

func lineFromRow(row map[string]interface{}) LineInput {
	in := LineInput{
		Name:     stringField(row, "name"),
		Quantity: intField(row, "quantity"),
	}

	if id, err := uuid.Parse(stringField(row, "item_id")); err == nil {
		in.ItemID = id
	}

	in.UnitPrice = amountField(row, "unit_price")
	in.BasePrice = amountField(row, "base_price")
	in.Price = amountField(row, "price")
	in.Subtotal = amountField(row, "subtotal")
	in.GSTAmount = amountField(row, "gst_amount")
	in.GSTRate = amountField(row, "gst_rate")
	in.GSTMode = stringField(row, "gst_mode")

	for _, key := range []string{"total", "line_total", "subtotal_with_gst"} {
		if in.Total = amountField(row, key); in.Total != nil {
			break
		}
	}

	return in
}

func amountField(row map[string]interface{}, key string) *float64 {
	v, ok := row[key]
	if !ok || v == nil {
		return nil
	}
	amount := ParseAmount(v)
	return &amount
}

func stringField(row map[string]interface{}, key string) string {
	if s, ok := row[key].(string); ok {
		return s
	}
	return ""
}

func intField(row map[string]interface{}, key string) int {
	v, ok := row[key]
	if !ok {
		return 0
	}
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n)
		}
		if f, err := x.Float64(); err == nil {
			return int(f)
		}
	case float64:
		return int(x)
	case string:
		var n int
		if _, err := fmt.Sscanf(x, "%d", &n); err == nil {
			return n
		}
	}
	return 0
}
