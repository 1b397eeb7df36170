package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CoerceAmount converts a decoded JSON value into an int64 amount.
//
// The transaction form historically submitted amounts as either a JSON
// number or a numeric string, and anything non-numeric was silently
// treated as zero. That behavior is preserved here and pinned by tests:
// rejecting malformed amounts at the boundary is an open question, not
// something this layer decides.
func CoerceAmount(v interface{}) int64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return int64(math.Round(n))
	case json.Number:
		return coerceAmountString(n.String())
	case string:
		return coerceAmountString(n)
	case int:
		return int64(n)
	case int64:
		return n
	default:
		return 0
	}
}

func coerceAmountString(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(math.Round(f))
}
