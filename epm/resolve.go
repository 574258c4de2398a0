// Package epm implements the EPM uncertainty rounding convention.
package epm

import "math"

// Resolve determines how many digits of a standard deviation are significant
// and to which power of ten it must be rounded.
//
// The convention keeps one significant digit, or two when the leading digit
// is a 1 (mantissa at most 1.9), and always rounds the uncertainty up:
// understating an uncertainty is worse than overstating it.
//
// Resolve returns the significant digit count, the base-10 exponent of the
// least-significant kept digit, and the rounded standard deviation. A
// standard deviation of 0 is exact and yields (0, 0, 0). stdDev must not be
// negative.
func Resolve(stdDev float64) (digits, exponent int, rounded float64) {
	if stdDev == 0 {
		return 0, 0, 0
	}

	// Order of magnitude of the leading digit.
	exponent = int(math.Floor(math.Log10(math.Abs(stdDev))))

	// Round the mantissa to 3 decimals to suppress machine epsilon before
	// the threshold comparison below.
	mantissa := math.Round(stdDev*math.Pow(10, float64(-exponent))*1e3) / 1e3

	digits = 1
	if mantissa <= 1.9 {
		digits++
		exponent--
		mantissa *= 10
	}

	rounded = math.Ceil(mantissa) * math.Pow(10, float64(exponent))

	return digits, exponent, rounded
}
