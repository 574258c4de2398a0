// Package labtool provides tools for evaluating physical measurement data.
//
// Labtool covers the everyday needs of a measurement lab course: rounding a
// quantity and its uncertainty to a fixed convention, aggregating repeated
// measurements into a best estimate with a confidence-scaled uncertainty,
// fitting and interpolating curves, and exporting results as LaTeX tables.
// The rounding convention follows "Einfuehrung in die physikalischen
// Messmethoden" (EPM), scriptum version 7.
//
// # Quick Start
//
// Round a value to its uncertainty:
//
//	v := epm.FromRounded(28.8934, 0.0123)
//	fmt.Println(v) // 28.893 +/- 0.013
//
// Aggregate a series of repeated measurements:
//
//	res, _ := student.Estimate(readings, 1)
//	fmt.Println(res.Mean)
//
// Aggregate parallel series column by column:
//
//	arr, _ := student.EstimateSeries(1, run1, run2, run3)
//	// arr.Nominals and arr.Uncertainties are plot-ready parallel slices
//
// Fit a model and export the parameters:
//
//	linear := func(x float64, p []float64) float64 { return p[0]*x + p[1] }
//	f, _ := fit.Curve(linear, xs, ys, []float64{1, 0}, 0)
//	tex, _ := latex.FormatValues([][]epm.Value{f.Params}, latex.DefaultOptions())
//
// # Packages
//
// The library is organized into the following packages:
//
//   - epm: significant-digit resolution and uncertain values under the EPM
//     rounding convention
//   - student: Student-t aggregation of measurement series, single and
//     column-wise
//   - dataset: rectangular tables of parallel series, CSV input/output, and
//     descriptive summaries
//   - fit: least-squares curve fitting, interpolation, and numeric
//     integration
//   - latex: tabularray/tabular table serialization
package labtool
