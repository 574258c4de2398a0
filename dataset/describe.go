package dataset

import "github.com/aclements/go-moremath/stats"

// Summary holds descriptive statistics of a single series.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64 // unbiased sample standard deviation
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe computes descriptive statistics for xs. An empty series yields
// the zero Summary.
func Describe(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}

	samp := stats.Sample{Xs: append([]float64(nil), xs...)}
	// Speed up order statistics.
	samp.Sort()

	return Summary{
		N:      len(xs),
		Mean:   samp.Mean(),
		StdDev: samp.StdDev(),
		Min:    samp.Quantile(0),
		Q1:     samp.Quantile(0.25),
		Median: samp.Quantile(0.5),
		Q3:     samp.Quantile(0.75),
		Max:    samp.Quantile(1),
	}
}

// DescribeColumns computes a Summary per column of the table, in column
// order.
func DescribeColumns(t *Table) []Summary {
	out := make([]Summary, t.Cols())
	for j := range out {
		out[j] = Describe(t.Col(j))
	}
	return out
}
