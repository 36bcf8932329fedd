package billing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Round2 rounds a monetary value to 2 decimal places using half-up rounding.
// Non-finite inputs collapse to 0 so a single bad field can never poison a
// printed total.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return -math.Floor(-v*100+0.5) / 100
	}
	return math.Floor(v*100+0.5) / 100
}

// ParseAmount coerces a loosely-typed monetary value into a rounded float64.
// Orders persisted by older clients carry amounts as numbers, numeric strings
// or nothing at all; anything unparsable is 0.
func ParseAmount(v interface{}) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return Round2(x)
	case float32:
		return Round2(float64(x))
	case int:
		return Round2(float64(x))
	case int64:
		return Round2(float64(x))
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		return Round2(f)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return Round2(f)
	case *float64:
		if x == nil {
			return 0
		}
		return Round2(*x)
	default:
		return 0
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
