// Package latex serializes measurement tables as LaTeX tabularray or
// tabular source.
package latex

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/zandivx/labtool/dataset"
	"github.com/zandivx/labtool/epm"
)

// ErrColumnCount reports a header whose length does not match the data.
var ErrColumnCount = errors.New("header length does not match column count")

// Options controls table generation. The zero value produces a bare
// tabularray environment without header or rules.
type Options struct {
	// Environ is the table environment, "tblr" (tabularray, default) or
	// "tabular".
	Environ string
	// ColSpec is the column specifier, folded into the inner settings.
	ColSpec string
	// InnerSettings are additional settings for the environment's first
	// argument.
	InnerSettings []string
	// Columns is the header row; empty means no header. Header cells are
	// wrapped in braces to guard them against siunitx S columns.
	Columns []string
	// Index emits a leading column with 0-based row indices.
	Index bool
	// FormatSpec is the fmt verb for float cells, e.g. "%.3f"; empty
	// renders at full precision.
	FormatSpec string
	// SISetup holds options emitted as a \sisetup preamble before the
	// table.
	SISetup []string
	// HLines draws \hline rules after every row (plain tabular tables).
	HLines bool
}

// DefaultOptions returns options for a tabularray table.
func DefaultOptions() *Options {
	return &Options{Environ: "tblr"}
}

// FormatFloats renders rows of floats as a LaTeX table.
func FormatFloats(rows [][]float64, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = formatFloat(v, opts.FormatSpec)
		}
	}
	return render(cells, opts)
}

// FormatValues renders rows of uncertain values as a LaTeX table. Cells
// carry both sides at matching precision, separated by "+-" as siunitx
// expects.
func FormatValues(rows [][]epm.Value, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = valueCell(v)
		}
	}
	return render(cells, opts)
}

// FormatTable renders a dataset table. Column names attached to the table
// are used as the header when the options carry none.
func FormatTable(t *dataset.Table, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if len(opts.Columns) == 0 {
		names := t.Names()
		for _, n := range names {
			if n != "" {
				withHeader := *opts
				withHeader.Columns = names
				opts = &withHeader
				break
			}
		}
	}

	rows := make([][]float64, t.Rows())
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return FormatFloats(rows, opts)
}

// WriteFile writes rendered table source to a file.
func WriteFile(path, content string) error {
	return errors.Wrapf(os.WriteFile(path, []byte(content), 0o644), "write %s", path)
}

func formatFloat(v float64, spec string) string {
	if spec == "" {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf(spec, v)
}

// valueCell renders an uncertain value with both sides at the decimal
// precision of the uncertainty's least-significant digit.
func valueCell(v epm.Value) string {
	if v.Uncertainty == 0 {
		return strconv.FormatFloat(v.Nominal, 'g', -1, 64)
	}
	_, exponent, _ := epm.Resolve(v.Uncertainty)
	prec := 0
	if exponent < 0 {
		prec = -exponent
	}
	return fmt.Sprintf("%.*f +- %.*f", prec, v.Nominal, prec, v.Uncertainty)
}

func render(cells [][]string, opts *Options) (string, error) {
	cols := 0
	for _, row := range cells {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if len(opts.Columns) > 0 && len(opts.Columns) != cols {
		return "", errors.Wrapf(ErrColumnCount, "%d names for %d columns", len(opts.Columns), cols)
	}

	environ := opts.Environ
	if environ == "" {
		environ = "tblr"
	}

	inner := append([]string(nil), opts.InnerSettings...)
	if opts.ColSpec != "" {
		inner = append(inner, fmt.Sprintf("colspec={%s}", opts.ColSpec))
	}

	hline := ""
	if opts.HLines {
		hline = `\hline`
	}

	var b strings.Builder

	if len(opts.SISetup) > 0 {
		fmt.Fprintf(&b, "\\sisetup{%s}\n\n", strings.Join(opts.SISetup, ", "))
	}

	fmt.Fprintf(&b, "\\begin{%s}{%s}%s\n", environ, strings.Join(inner, ",\n"), hline)

	if len(opts.Columns) > 0 {
		header := make([]string, 0, cols+1)
		if opts.Index {
			header = append(header, "{{{}}}")
		}
		for _, c := range opts.Columns {
			// Triple braces keep siunitx S columns from parsing the label.
			header = append(header, fmt.Sprintf("{{{%s}}}", c))
		}
		b.WriteString(strings.Join(header, "&"))
		b.WriteString(`\\`)
		b.WriteString(hline)
		b.WriteString("\n")
	}

	for i, row := range cells {
		line := make([]string, 0, cols+1)
		if opts.Index {
			line = append(line, strconv.Itoa(i))
		}
		line = append(line, row...)
		b.WriteString(strings.Join(line, "&"))
		b.WriteString(`\\`)
		b.WriteString(hline)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\\end{%s}", environ)

	return b.String(), nil
}
