package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseFormFloat reads a numeric form field. Blank, unparseable and
// non-finite values come back as 0 so range checks treat them as missing.
func ParseFormFloat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseFormInt reads an integer form field, truncating any fractional part.
func ParseFormInt(raw string) int {
	v := ParseFormFloat(raw)
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0
	}
	return int(v)
}

// RoundHalfUp rounds to the nearest integer with ties going toward +Inf,
// so 2.5 -> 3 and -2.5 -> -2. math.Round would give -3 for the latter.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
