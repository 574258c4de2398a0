package dataset

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromColumns(t *testing.T) {
	tab, err := FromColumns([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, 3, tab.Rows())
	assert.Equal(t, 2, tab.Cols())
	assert.Equal(t, []float64{1, 2, 3}, tab.Col(0))
	assert.Equal(t, []float64{4, 5, 6}, tab.Col(1))
	assert.Equal(t, []float64{2, 5}, tab.Row(1))
	assert.Equal(t, 6.0, tab.At(2, 1))
}

func TestFromColumnsRagged(t *testing.T) {
	_, err := FromColumns([]float64{1, 2, 3}, []float64{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestFromRows(t *testing.T) {
	tab, err := FromRows([]float64{1, 4}, []float64{2, 5}, []float64{3, 6})
	require.NoError(t, err)

	assert.Equal(t, 3, tab.Rows())
	assert.Equal(t, 2, tab.Cols())
	assert.Equal(t, []float64{1, 2, 3}, tab.Col(0))
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows([]float64{1, 2}, []float64{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestFromFlat(t *testing.T) {
	tab, err := FromFlat(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, tab.Row(0))
	assert.Equal(t, []float64{2, 5}, tab.Col(1))

	_, err = FromFlat(2, 3, []float64{1, 2, 3})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestEmptyInput(t *testing.T) {
	_, err := FromColumns()
	assert.Error(t, err)

	_, err = FromColumns([]float64{})
	assert.Error(t, err)

	_, err = FromRows()
	assert.Error(t, err)
}

func TestWithNames(t *testing.T) {
	tab, err := FromColumns([]float64{1}, []float64{2})
	require.NoError(t, err)

	named, err := tab.WithNames("x", "y")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, named.Names())

	_, err = tab.WithNames("x")
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	assert.Equal(t, []string{"", ""}, tab.Names(), "unnamed table yields empty names")
}

func TestTranspose(t *testing.T) {
	tab, err := FromColumns([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)

	tr := tab.Transpose()
	assert.Equal(t, 2, tr.Rows())
	assert.Equal(t, 3, tr.Cols())
	assert.Equal(t, []float64{1, 4}, tr.Col(0))
	assert.Equal(t, []float64{3, 6}, tr.Col(2))
}

func TestDescribe(t *testing.T) {
	sum := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	assert.Equal(t, 8, sum.N)
	assert.InDelta(t, 5.0, sum.Mean, 1e-12)
	assert.InDelta(t, 2.138, sum.StdDev, 1e-3)
	assert.Equal(t, 2.0, sum.Min)
	assert.Equal(t, 9.0, sum.Max)
	assert.InDelta(t, 4.5, sum.Median, 1e-12)
}

func TestDescribeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Describe(nil))
}

func TestDescribeColumns(t *testing.T) {
	tab, err := FromColumns([]float64{1, 1, 1}, []float64{1, 2, 3})
	require.NoError(t, err)

	sums := DescribeColumns(tab)
	require.Len(t, sums, 2)
	assert.Equal(t, 0.0, sums[0].StdDev)
	assert.InDelta(t, 2.0, sums[1].Mean, 1e-12)
}
