// Package dataset provides rectangular tables of parallel measurement series.
package dataset

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrShapeMismatch reports input series that do not form a rectangular table.
var ErrShapeMismatch = errors.New("series must have equal length")

// Table is a rows x cols matrix of measurements: rows are samples, columns
// are parallel series. Tables are rectangular by construction and immutable
// once created.
type Table struct {
	data  *mat.Dense
	names []string
}

// FromColumns builds a table with each series as one column, in argument
// order.
func FromColumns(columns ...[]float64) (*Table, error) {
	if len(columns) == 0 {
		return nil, errors.New("at least one column required")
	}
	rows := len(columns[0])
	if rows == 0 {
		return nil, errors.New("columns must contain at least one sample")
	}
	for j, c := range columns {
		if len(c) != rows {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"column %d has length %d, want %d", j, len(c), rows)
		}
	}

	data := mat.NewDense(rows, len(columns), nil)
	for j, c := range columns {
		data.SetCol(j, c)
	}
	return &Table{data: data}, nil
}

// FromRows builds a table with each slice as one sample row.
func FromRows(rows ...[]float64) (*Table, error) {
	if len(rows) == 0 {
		return nil, errors.New("at least one row required")
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, errors.New("rows must contain at least one value")
	}
	for i, r := range rows {
		if len(r) != cols {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"row %d has length %d, want %d", i, len(r), cols)
		}
	}

	data := mat.NewDense(len(rows), cols, nil)
	for i, r := range rows {
		data.SetRow(i, r)
	}
	return &Table{data: data}, nil
}

// FromFlat builds a table from a row-major flat slice.
func FromFlat(rows, cols int, values []float64) (*Table, error) {
	if rows <= 0 || cols <= 0 || len(values) != rows*cols {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"%d values cannot fill a %dx%d table", len(values), rows, cols)
	}
	return &Table{data: mat.NewDense(rows, cols, append([]float64(nil), values...))}, nil
}

// WithNames attaches column names. The name count must match the column
// count.
func (t *Table) WithNames(names ...string) (*Table, error) {
	if len(names) != t.Cols() {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"%d names for %d columns", len(names), t.Cols())
	}
	return &Table{data: t.data, names: append([]string(nil), names...)}, nil
}

// Rows returns the number of samples.
func (t *Table) Rows() int {
	r, _ := t.data.Dims()
	return r
}

// Cols returns the number of parallel series.
func (t *Table) Cols() int {
	_, c := t.data.Dims()
	return c
}

// At returns the value of sample i in series j.
func (t *Table) At(i, j int) float64 {
	return t.data.At(i, j)
}

// Col returns a copy of series j.
func (t *Table) Col(j int) []float64 {
	return mat.Col(nil, j, t.data)
}

// Row returns a copy of sample row i.
func (t *Table) Row(i int) []float64 {
	return mat.Row(nil, i, t.data)
}

// Names returns the column names, or empty strings if none were attached.
func (t *Table) Names() []string {
	if t.names == nil {
		return make([]string, t.Cols())
	}
	return append([]string(nil), t.names...)
}

// Transpose returns a new table with rows and columns swapped, e.g. to
// aggregate per sample point instead of per series.
func (t *Table) Transpose() *Table {
	r, c := t.data.Dims()
	data := mat.NewDense(c, r, nil)
	data.Copy(t.data.T())
	return &Table{data: data}
}
