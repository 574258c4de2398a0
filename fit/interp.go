package fit

import (
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/interp"
)

// Kind selects the interpolation scheme.
type Kind string

const (
	// Linear connects neighboring points with straight segments.
	Linear Kind = "linear"
	// Cubic fits a natural cubic spline.
	Cubic Kind = "cubic"
	// Akima fits an Akima spline, which stays calm around outliers.
	Akima Kind = "akima"
)

// Interpolate fits an interpolant of the given kind through (x, y) and
// evaluates it on a dense grid. x must be strictly increasing; unsorted
// input is sorted together with y first.
//
// divisions sets the dense-output grid size; 0 selects DefaultDivisions.
func Interpolate(x, y []float64, kind Kind, divisions int) (*Fit, error) {
	if len(x) != len(y) {
		return nil, errors.Wrapf(ErrInputLength, "len(x)=%d, len(y)=%d", len(x), len(y))
	}
	if len(x) < 2 {
		return nil, errors.New("at least two points required")
	}

	xs, ys := sortedCopy(x, y)

	var predictor interp.FittablePredictor
	switch kind {
	case Linear, "":
		predictor = &interp.PiecewiseLinear{}
	case Cubic:
		predictor = &interp.NaturalCubic{}
	case Akima:
		predictor = &interp.AkimaSpline{}
	default:
		return nil, errors.Newf("unknown interpolation kind %q", kind)
	}

	if err := predictor.Fit(xs, ys); err != nil {
		return nil, errors.Wrapf(err, "fit %s interpolant", kind)
	}

	xOut, yOut := dense(predictor.Predict, xs, divisions)

	return &Fit{
		XIn:  xs,
		YIn:  ys,
		XOut: xOut,
		YOut: yOut,
	}, nil
}

// sortedCopy returns copies of x and y sorted by ascending x.
func sortedCopy(x, y []float64) ([]float64, []float64) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	xs := make([]float64, len(x))
	ys := make([]float64, len(y))
	for i, k := range idx {
		xs[i] = x[k]
		ys[i] = y[k]
	}
	return xs, ys
}
