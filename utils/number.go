// utils/number.go
package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CoerceNumber converts a decoded JSON value into a finite float64. It
// accepts JSON numbers, numeric strings, and json.Number, so clients that
// quote their prices still get through.
func CoerceNumber(v any) (float64, bool) {
	var n float64

	switch value := v.(type) {
	case float64:
		n = value
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0, false
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// CoerceID is CoerceNumber restricted to non-negative integral values, for
// numeric identifiers carried in JSON bodies.
func CoerceID(v any) (uint, bool) {
	n, ok := CoerceNumber(v)
	if !ok || n < 0 || n != math.Trunc(n) || n > math.MaxUint32 {
		return 0, false
	}
	return uint(n), true
}
