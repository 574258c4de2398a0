package student

import (
	"github.com/cockroachdb/errors"

	"github.com/zandivx/labtool/dataset"
	"github.com/zandivx/labtool/epm"
)

// ArrayResult holds the column-wise aggregation of parallel measurement
// series.
type ArrayResult struct {
	// Raw is the rectangular input table: rows are samples, columns are
	// parallel series.
	Raw *dataset.Table
	// Estimates holds one rounded best estimate per column, in column
	// order.
	Estimates []epm.Value
	// Nominals and Uncertainties are the separated parts of Estimates,
	// ready for plotting.
	Nominals      []float64
	Uncertainties []float64
}

// EstimateColumns aggregates every column of tab independently with the
// shared confidence level. Columns share no state, so estimate i depends on
// column i only.
func EstimateColumns(tab *dataset.Table, sigma int) (*ArrayResult, error) {
	if sigma < 1 || sigma > 3 {
		return nil, errors.Wrapf(ErrInvalidSigma, "got %d", sigma)
	}

	estimates := make([]epm.Value, tab.Cols())
	for j := 0; j < tab.Cols(); j++ {
		res, err := Estimate(tab.Col(j), sigma)
		if err != nil {
			return nil, errors.Wrapf(err, "column %d", j)
		}
		estimates[j] = res.Mean
	}

	nominals, uncertainties := epm.Separate(estimates)

	return &ArrayResult{
		Raw:           tab,
		Estimates:     estimates,
		Nominals:      nominals,
		Uncertainties: uncertainties,
	}, nil
}

// EstimateSeries assembles the given equal-length series as the columns of
// a rectangular table and aggregates each column. Unequal lengths fail with
// dataset.ErrShapeMismatch before any column is processed.
func EstimateSeries(sigma int, series ...[]float64) (*ArrayResult, error) {
	tab, err := dataset.FromColumns(series...)
	if err != nil {
		return nil, err
	}
	return EstimateColumns(tab, sigma)
}

// Len returns the number of column estimates.
func (a *ArrayResult) Len() int {
	return len(a.Estimates)
}
