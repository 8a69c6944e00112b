package forms

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

var numberCleaner = strings.NewReplacer("$", "", ",", "", "%", "", " ", "", "_", "")

// ParseNumber coerces user input into a float. Anything that is not a finite
// number, including the empty string, becomes 0.
func ParseNumber(v any) float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case int32:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint64:
		f = float64(x)
	case json.Number:
		return ParseNumber(string(x))
	case string:
		s := numberCleaner.Replace(strings.TrimSpace(x))
		if s == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
