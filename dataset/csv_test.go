package dataset

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVFromReader(t *testing.T) {
	input := "x,y\n1.0,4.0\n2.0,5.0\n3.0,6.0\n"

	tab, err := LoadCSVFromReader(strings.NewReader(input), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, tab.Rows())
	assert.Equal(t, 2, tab.Cols())
	assert.Equal(t, []string{"x", "y"}, tab.Names())
	assert.Equal(t, []float64{1, 2, 3}, tab.Col(0))
	assert.Equal(t, []float64{4, 5, 6}, tab.Col(1))
}

func TestLoadCSVSkipsInvalidRows(t *testing.T) {
	input := "x,y\n1.0,4.0\nNA,5.0\n2.0,\n3.0,6.0\n"

	tab, err := LoadCSVFromReader(strings.NewReader(input), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, tab.Rows())
	assert.Equal(t, []float64{1, 3}, tab.Col(0))
}

func TestLoadCSVOptions(t *testing.T) {
	input := "# measurement log\n1.0;4.0\n2.0;5.0\n"
	opts := &CSVOptions{Delimiter: ';', SkipRows: 1}

	tab, err := LoadCSVFromReader(strings.NewReader(input), opts)
	require.NoError(t, err)

	assert.Equal(t, 2, tab.Rows())
	assert.Equal(t, []float64{4, 5}, tab.Col(1))
}

func TestLoadCSVEmpty(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader("x,y\n"), nil)
	assert.Error(t, err)
}

func TestCSVRoundTrip(t *testing.T) {
	tab, err := FromColumns([]float64{1.5, 2.5}, []float64{3.25, 4.25})
	require.NoError(t, err)
	tab, err = tab.WithNames("a", "b")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, SaveCSV(tab, path))

	loaded, err := LoadCSV(path, nil)
	require.NoError(t, err)

	assert.Equal(t, tab.Names(), loaded.Names())
	assert.Equal(t, tab.Col(0), loaded.Col(0))
	assert.Equal(t, tab.Col(1), loaded.Col(1))
}

func TestWriteCSV(t *testing.T) {
	tab, err := FromRows([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(tab, &buf))
	assert.Equal(t, "1,2\n3,4\n", buf.String())
}
