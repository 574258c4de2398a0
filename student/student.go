// Package student aggregates repeated measurements into best estimates with
// Student-t confidence-scaled uncertainties.
package student

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/zandivx/labtool/epm"
)

// ErrInvalidSigma reports a confidence level outside {1, 2, 3}.
var ErrInvalidSigma = errors.New("sigma must be 1, 2 or 3")

// ErrEmptySeries reports a series without any sample.
var ErrEmptySeries = errors.New("series must contain at least one sample")

// Result holds the aggregation of one measurement series.
type Result struct {
	// Series is the raw input.
	Series []float64
	// TFactor is the Student-t correction applied to the standard error.
	TFactor float64
	// Mean is the best estimate, rounded per the EPM convention.
	Mean epm.Value
	// RawMean and RawSEM are the unrounded mean and standard error of the
	// mean.
	RawMean float64
	RawSEM  float64
	// TFactorApplied is true when the rounded, t-scaled uncertainty differs
	// from what rounding the raw standard error alone would give.
	// Informational only.
	TFactorApplied bool
}

// Estimate aggregates series into a best estimate of its mean with an
// uncertainty at the given confidence level (sigma standard deviations).
//
// The uncertainty is the standard error of the mean, i.e. the unbiased
// sample standard deviation over sqrt(n), scaled by the t-factor for n and
// sigma and rounded per the EPM convention. A single-sample series carries
// no spread information; its standard error is defined as 0.
func Estimate(series []float64, sigma int) (*Result, error) {
	if sigma < 1 || sigma > 3 {
		return nil, errors.Wrapf(ErrInvalidSigma, "got %d", sigma)
	}
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}

	rawMean := stat.Mean(series, nil)

	rawSEM := 0.0
	if len(series) > 1 {
		rawSEM = stat.StdDev(series, nil) / math.Sqrt(float64(len(series)))
	}

	t := lookup(len(series), sigma)
	mean := epm.FromRounded(rawMean, t*rawSEM)

	_, _, plainRounded := epm.Resolve(rawSEM)

	raw := make([]float64, len(series))
	copy(raw, series)

	return &Result{
		Series:         raw,
		TFactor:        t,
		Mean:           mean,
		RawMean:        rawMean,
		RawSEM:         rawSEM,
		TFactorApplied: mean.Uncertainty != plainRounded,
	}, nil
}

// String renders the aggregation in a report-friendly form.
func (r *Result) String() string {
	t := "unused"
	if r.TFactorApplied {
		t = strconv.FormatFloat(r.TFactor, 'g', -1, 64)
	}
	return fmt.Sprintf("Student-t aggregation\n\tt-factor:\t%s\n\trounded:\t%s\n\tprecisely:\t%g +/- %g",
		t, r.Mean, r.RawMean, r.RawSEM)
}

// Len returns the number of samples aggregated.
func (r *Result) Len() int {
	return len(r.Series)
}
