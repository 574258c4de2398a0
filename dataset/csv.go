package dataset

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	HasHeader bool // whether the file starts with a header row (default: true)
	Delimiter rune // field delimiter (default: ',')
	SkipRows  int  // number of rows to skip at the start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads a rectangular table of parallel series from a CSV file.
// Every column must be numeric; rows containing an empty or NA field are
// skipped entirely to keep the table rectangular.
func LoadCSV(filename string, opts *CSVOptions) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", filename)
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a table from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrap(err, "skip rows")
		}
	}

	var names []string
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, errors.Wrap(err, "read header")
		}
		names = make([]string, len(header))
		for i, h := range header {
			names[i] = strings.TrimSpace(strings.Trim(h, "\""))
		}
	}

	var rows [][]float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read record")
		}

		row := make([]float64, len(record))
		valid := true
		for i, field := range record {
			s := strings.TrimSpace(strings.Trim(field, "\""))
			if s == "" || s == "NA" || s == "NaN" || s == "null" {
				valid = false
				break
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				valid = false
				break
			}
			row[i] = v
		}
		if valid {
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	tab, err := FromRows(rows...)
	if err != nil {
		return nil, err
	}
	if names != nil {
		return tab.WithNames(names...)
	}
	return tab, nil
}

// SaveCSV writes the table to a CSV file. Column names are written as a
// header row when the table carries them.
func SaveCSV(t *Table, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "create %s", filename)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	return WriteCSV(t, writer)
}

// WriteCSV writes the table to w in CSV form.
func WriteCSV(t *Table, w io.Writer) error {
	writer := csv.NewWriter(w)

	if t.names != nil {
		if err := writer.Write(t.names); err != nil {
			return errors.Wrap(err, "write header")
		}
	}

	record := make([]string, t.Cols())
	for i := 0; i < t.Rows(); i++ {
		for j := range record {
			record[j] = strconv.FormatFloat(t.At(i, j), 'f', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "write row %d", i)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "flush")
}
