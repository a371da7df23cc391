package numbers

import (
	"math"
	"strconv"
)

// Round rounds half up, i.e. towards positive infinity on ties (-2.5 becomes
// -2). NaN becomes 0.
func Round(f float64) int {
	if math.IsNaN(f) {
		return 0
	}
	return int(math.Floor(f + 0.5))
}

// Itoa formats Round(f).
func Itoa(f float64) string {
	return strconv.Itoa(Round(f))
}

// Fixed formats f with the given number of decimals.
func Fixed(f float64, decimals int) string {
	if math.IsNaN(f) {
		f = 0
	}
	return strconv.FormatFloat(f, 'f', decimals, 64)
}

// At returns s[i], or 0 if i is out of range.
func At(s []float64, i int) float64 {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}
