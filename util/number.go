package util

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPrefix matches the longest leading decimal literal of a token.
var numberPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// ParseNumber reads the leading decimal number of s, ignoring whatever follows it.
// "5abc" yields 5, "abc" yields false. Hex literals and NaN are not numbers here.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	literal := numberPrefix.FindString(s)
	if literal == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	if math.IsNaN(value) {
		return 0, false
	}

	return value, true
}

// FormatNumber renders a number in its shortest round-trip form, e.g. 0.01 or 1000.
// Infinities are written the way ParseNumber reads them.
func FormatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// FormatNumbers joins numbers the way the denominations field expects them
func FormatNumbers(numbers []float64) string {
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		parts = append(parts, FormatNumber(n))
	}
	return strings.Join(parts, ",")
}
