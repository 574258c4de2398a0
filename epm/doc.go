// Package epm provides significant-digit resolution and uncertain values
// under the EPM rounding convention.
//
// The convention comes from "Einfuehrung in die physikalischen Messmethoden"
// (EPM), scriptum version 7: an uncertainty keeps one significant digit, or
// two when its leading digit is a 1, and is always rounded up. The nominal
// value is then rounded to the decimal position of the uncertainty's
// least-significant digit.
//
// # Resolving an uncertainty
//
// Resolve applies the convention to a bare standard deviation:
//
//	digits, exponent, rounded := epm.Resolve(0.0123)
//	// digits = 2, exponent = -3, rounded = 0.013
//
// # Uncertain values
//
// Value pairs a nominal value with its uncertainty. FromRounded applies the
// convention to both sides at once:
//
//	v := epm.FromRounded(28.8934, 0.0123)
//	fmt.Println(v) // 28.893 +/- 0.013
//
// New builds a Value without rounding, for quantities whose uncertainty is
// already settled (e.g. fit parameters before rounding):
//
//	raw := epm.New(2.07134, 0.00821)
//
// # Plotting interface
//
// Separate splits a slice of Values into parallel nominal and uncertainty
// slices, the shape plotting front ends consume for error bands:
//
//	n, s := epm.Separate(values)
package epm
