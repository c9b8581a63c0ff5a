package model

import (
	"math"
	"strconv"
	"strings"
)

// ParseInput reads a numeric input field the way a number input with integer
// parsing does: the value is truncated toward zero and anything that is not a
// finite number yields NaN.
func ParseInput(text string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return math.NaN()
	}
	return math.Trunc(value)
}

// FormatInput renders a configuration value for display in an input field.
func FormatInput(value float64) string {
	if math.IsNaN(value) {
		return ""
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
