package mcp

import (
	"fmt"
	"math"
)

// Tool arguments arrive as generic JSON; these coercions keep the
// handlers free of type assertions.

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func asInt(v interface{}) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// asQuantities coerces the orders argument into SKU -> quantity. A
// fractional quantity is rejected rather than rounded.
func asQuantities(v interface{}) (map[string]int, error) {
	raw, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("orders must be a map of SKU to quantity")
	}

	out := make(map[string]int, len(raw))
	for sku, qv := range raw {
		f, ok := qv.(float64)
		if !ok {
			return nil, fmt.Errorf("%s: quantity must be a number", sku)
		}
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("%s: quantity must be a whole number, got %v", sku, f)
		}
		out[sku] = int(f)
	}
	return out, nil
}
