// Package fit provides least-squares curve fitting, interpolation, and
// numeric integration for measurement data.
//
// # Curve fitting
//
// Curve fits an arbitrary model function by least squares and reports the
// parameters with uncertainties, rounded per the EPM convention:
//
//	linear := func(x float64, p []float64) float64 { return p[0]*x + p[1] }
//	f, err := fit.Curve(linear, xs, ys, []float64{1, 0}, 0)
//	fmt.Println(f.Params[0]) // e.g. 2.07 +/- 0.04
//
// The Fit result also carries a dense evaluation of the model over the x
// range (XOut, YOut) for plotting.
//
// # Interpolation
//
// Interpolate connects data points with a piecewise-linear, natural-cubic,
// or Akima interpolant:
//
//	f, err := fit.Interpolate(xs, ys, fit.Akima, 0)
//
// # Integration
//
// Trapezoid integrates sampled data over an index range:
//
//	area, err := fit.Trapezoid(xs, ys, 0, -1)
package fit
