// Package fit provides least-squares curve fitting, interpolation, and
// numeric integration for measurement data.
package fit

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/zandivx/labtool/epm"
)

// Func is a model function evaluated at x with the parameter vector p.
type Func func(x float64, p []float64) float64

// DefaultDivisions is the dense-output grid size used when none is given.
const DefaultDivisions = 3000

// ErrInputLength reports x and y slices of different length.
var ErrInputLength = errors.New("x and y must have the same length")

// Fit holds the input data, a dense evaluation of the fitted model, and the
// fitted parameters.
type Fit struct {
	XIn, YIn []float64
	// XOut is a dense grid over [min x, max x]; YOut the model evaluated
	// on it.
	XOut, YOut []float64
	// Params are the fitted parameters rounded per the EPM convention.
	// Interpolations have no parameters.
	Params []epm.Value
	// RawParams and RawErrors are the unrounded parameters and their
	// one-sigma uncertainties.
	RawParams []float64
	RawErrors []float64
	// Residual is the sum of squared residuals at the optimum.
	Residual float64
}

// Curve fits f to (x, y) by least squares starting from the initial
// parameter vector p0. Parameter uncertainties are estimated from the
// residual variance and the model's Jacobian at the optimum, the same
// quantities a covariance matrix of the fit would provide.
//
// divisions sets the dense-output grid size; 0 selects DefaultDivisions.
func Curve(f Func, x, y, p0 []float64, divisions int) (*Fit, error) {
	if len(x) != len(y) {
		return nil, errors.Wrapf(ErrInputLength, "len(x)=%d, len(y)=%d", len(x), len(y))
	}
	if len(p0) == 0 {
		return nil, errors.New("at least one parameter required")
	}
	if len(x) <= len(p0) {
		return nil, errors.Newf("need more data points (%d) than parameters (%d)", len(x), len(p0))
	}

	ssr := func(p []float64) float64 {
		sum := 0.0
		for i := range x {
			r := y[i] - f(x[i], p)
			sum += r * r
		}
		return sum
	}

	problem := optimize.Problem{Func: ssr}
	result, err := optimize.Minimize(problem, append([]float64(nil), p0...), nil, &optimize.NelderMead{})
	if err != nil {
		return nil, errors.Wrap(err, "least squares minimization")
	}

	params := result.X
	sigmas, err := paramErrors(f, x, y, params, result.F)
	if err != nil {
		return nil, err
	}

	rounded := make([]epm.Value, len(params))
	for i := range params {
		rounded[i] = epm.FromRounded(params[i], sigmas[i])
	}

	xOut, yOut := dense(func(xi float64) float64 { return f(xi, params) }, x, divisions)

	return &Fit{
		XIn:       append([]float64(nil), x...),
		YIn:       append([]float64(nil), y...),
		XOut:      xOut,
		YOut:      yOut,
		Params:    rounded,
		RawParams: params,
		RawErrors: sigmas,
		Residual:  result.F,
	}, nil
}

// paramErrors estimates one-sigma parameter uncertainties as the square
// roots of the diagonal of s^2 (J^T J)^-1, with J the forward-difference
// Jacobian of the model at the optimum and s^2 the residual variance.
func paramErrors(f Func, x, y, p []float64, ssr float64) ([]float64, error) {
	n, m := len(x), len(p)

	jac := mat.NewDense(n, m, nil)
	for j := 0; j < m; j++ {
		h := 1e-6 * math.Max(math.Abs(p[j]), 1)
		pj := append([]float64(nil), p...)
		pj[j] += h
		for i := 0; i < n; i++ {
			jac.Set(i, j, (f(x[i], pj)-f(x[i], p))/h)
		}
	}

	var normal mat.Dense
	normal.Mul(jac.T(), jac)

	var inv mat.Dense
	if err := inv.Inverse(&normal); err != nil {
		return nil, errors.Wrap(err, "singular normal equations")
	}

	s2 := ssr / float64(n-m)

	sigmas := make([]float64, m)
	for j := range sigmas {
		v := s2 * inv.At(j, j)
		if v < 0 {
			// Numerical noise around a perfect fit.
			v = 0
		}
		sigmas[j] = math.Sqrt(v)
	}
	return sigmas, nil
}

// dense evaluates g on an evenly spaced grid spanning the x input.
func dense(g func(float64) float64, x []float64, divisions int) (xOut, yOut []float64) {
	if divisions < 2 {
		divisions = DefaultDivisions
	}

	xOut = make([]float64, divisions)
	floats.Span(xOut, floats.Min(x), floats.Max(x))

	yOut = make([]float64, divisions)
	for i, xi := range xOut {
		yOut[i] = g(xi)
	}
	return xOut, yOut
}
