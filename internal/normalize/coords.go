package normalize

import (
	"math"
	"strconv"
	"strings"
)

// Coordinate parses a latitude/longitude cell. ok is false for empty,
// non-numeric, NaN or infinite values; callers drop such rows entirely.
func Coordinate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
