package panels

import "math"

const (
	// sizeTolerance is the absolute distance within which two sizes are
	// considered equal. Percentages survive many rounds of normalization
	// and subtraction during a drag, so exact comparison is never safe.
	sizeTolerance = 1e-10

	// totalTolerance bounds how far a size vector's sum may drift from 100
	// before the layout is reported as unsatisfiable.
	totalTolerance = 1e-3

	// comparePrecision is the number of significant digits kept when
	// ordering accumulated deltas. Rounding both operands to a fixed
	// precision absorbs the noise of repeated addition in the
	// redistribution walks.
	comparePrecision = 10
)

// fuzzyEqual reports whether a and b are equal within sizeTolerance.
func fuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) <= sizeTolerance
}

// roundPrecision rounds v to comparePrecision significant digits.
func roundPrecision(v float64) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	digits := float64(comparePrecision-1) - math.Floor(math.Log10(math.Abs(v)))
	scale := math.Pow(10, digits)
	return math.Round(v*scale) / scale
}

// fuzzyCompare orders a and b after rounding each to a fixed number of
// significant digits. It returns -1, 0, or 1.
func fuzzyCompare(a, b float64) int {
	ra, rb := roundPrecision(a), roundPrecision(b)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}
