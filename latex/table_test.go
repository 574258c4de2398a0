package latex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zandivx/labtool/dataset"
	"github.com/zandivx/labtool/epm"
)

func TestFormatFloatsBare(t *testing.T) {
	src, err := FormatFloats([][]float64{{1, 2}, {3, 4}}, nil)
	require.NoError(t, err)

	want := "\\begin{tblr}{}\n" +
		"1&2\\\\\n" +
		"3&4\\\\\n" +
		"\\end{tblr}"
	assert.Equal(t, want, src)
}

func TestFormatFloatsFull(t *testing.T) {
	opts := &Options{
		Environ:    "tblr",
		ColSpec:    "S S",
		Columns:    []string{"U / V", "I / mA"},
		FormatSpec: "%.2f",
		SISetup:    []string{"table-format=2.2"},
	}

	src, err := FormatFloats([][]float64{{1.234, 2.346}}, opts)
	require.NoError(t, err)

	want := "\\sisetup{table-format=2.2}\n\n" +
		"\\begin{tblr}{colspec={S S}}\n" +
		"{{{U / V}}}&{{{I / mA}}}\\\\\n" +
		"1.23&2.35\\\\\n" +
		"\\end{tblr}"
	assert.Equal(t, want, src)
}

func TestFormatFloatsTabularHLines(t *testing.T) {
	opts := &Options{Environ: "tabular", InnerSettings: []string{"cc"}, HLines: true}

	src, err := FormatFloats([][]float64{{1, 2}}, opts)
	require.NoError(t, err)

	want := "\\begin{tabular}{cc}\\hline\n" +
		"1&2\\\\\\hline\n" +
		"\\end{tabular}"
	assert.Equal(t, want, src)
}

func TestFormatFloatsIndex(t *testing.T) {
	opts := &Options{Index: true, Columns: []string{"y"}}

	src, err := FormatFloats([][]float64{{5}, {6}}, opts)
	require.NoError(t, err)

	want := "\\begin{tblr}{}\n" +
		"{{{}}}&{{{y}}}\\\\\n" +
		"0&5\\\\\n" +
		"1&6\\\\\n" +
		"\\end{tblr}"
	assert.Equal(t, want, src)
}

func TestFormatValues(t *testing.T) {
	rows := [][]epm.Value{
		{epm.FromRounded(28.8934, 0.0123), epm.FromRounded(5.4321, 0)},
	}

	src, err := FormatValues(rows, nil)
	require.NoError(t, err)

	want := "\\begin{tblr}{}\n" +
		"28.893 +- 0.013&5.4321\\\\\n" +
		"\\end{tblr}"
	assert.Equal(t, want, src)
}

func TestFormatTableUsesNames(t *testing.T) {
	tab, err := dataset.FromColumns([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	tab, err = tab.WithNames("x", "y")
	require.NoError(t, err)

	src, err := FormatTable(tab, nil)
	require.NoError(t, err)
	assert.Contains(t, src, "{{{x}}}&{{{y}}}")
	assert.Contains(t, src, "1&3")
}

func TestHeaderMismatch(t *testing.T) {
	opts := &Options{Columns: []string{"only one"}}
	_, err := FormatFloats([][]float64{{1, 2}}, opts)
	assert.True(t, errors.Is(err, ErrColumnCount))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.tex")
	require.NoError(t, WriteFile(path, "\\begin{tblr}{}\n\\end{tblr}"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tblr")
}
