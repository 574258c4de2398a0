// Package student aggregates repeated measurements into best estimates with
// Student-t confidence-scaled uncertainties.
//
// The best estimate of a measurement series is its arithmetic mean; its
// uncertainty is the standard error of the mean scaled by a Student-t
// correction factor for the sample size and the chosen confidence level
// (1, 2 or 3 standard deviations). The factors for sample sizes 2 through
// 50 come from "Einfuehrung in die physikalischen Messmethoden", table 2;
// outside that range the factor degenerates to the plain sigma multiplier.
//
// # Single series
//
//	res, err := student.Estimate(readings, 1)
//	fmt.Println(res.Mean)     // rounded, e.g. 28.893 +/- 0.008
//	fmt.Println(res.RawMean)  // unrounded mean
//	fmt.Println(res.RawSEM)   // unrounded standard error
//
// # Parallel series
//
// EstimateColumns aggregates each column of a rectangular table
// independently; EstimateSeries assembles loose series into such a table
// first:
//
//	arr, err := student.EstimateSeries(1, run1, run2, run3)
//	// arr.Estimates[i] is the aggregation of series i;
//	// arr.Nominals and arr.Uncertainties are plot-ready parallel slices.
//
// # Errors
//
// A confidence level outside {1, 2, 3} fails with ErrInvalidSigma; series
// of unequal length fail with dataset.ErrShapeMismatch; a series without
// samples fails with ErrEmptySeries. A single-sample series is not an
// error: its standard error is defined as 0.
package student
