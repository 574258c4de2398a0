package fit

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/integrate"
)

// Trapezoid numerically integrates y over x with the trapezoid rule between
// the given sample indices, stop exclusive. A stop of -1 selects the end of
// the series. x must be sorted in increasing order.
func Trapezoid(x, y []float64, start, stop int) (float64, error) {
	if len(x) != len(y) {
		return 0, errors.Wrapf(ErrInputLength, "len(x)=%d, len(y)=%d", len(x), len(y))
	}
	if stop == -1 {
		stop = len(x)
	}
	if start < 0 || stop > len(x) || stop-start < 2 {
		return 0, errors.Newf("invalid integration bounds [%d, %d) for %d points", start, stop, len(x))
	}

	return integrate.Trapezoidal(x[start:stop], y[start:stop]), nil
}
