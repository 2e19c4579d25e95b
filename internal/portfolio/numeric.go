package portfolio

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseInt converts a slot value to an integer carried as float64. Input
// that is not an integer yields NaN instead of an error. Values outside the
// int64 range saturate to its bounds.
func ParseInt(s string) float64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return float64(n)
		}
		return math.NaN()
	}
	return float64(n)
}

// ParseFloat converts a slot value to float64. Input that is not a number
// yields NaN. Values too large to represent become +/-Inf.
func ParseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}
