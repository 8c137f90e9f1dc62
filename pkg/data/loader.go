package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"polyreg/pkg/core"
)

var (
	ErrNoRows         = errors.New("data: no data rows")
	ErrColumnNotFound = errors.New("data: column not found")
	ErrNotNumeric     = errors.New("data: value is not numeric")
)

// Options controls how a delimited file is parsed.
type Options struct {
	Comma   rune // field delimiter, ',' when zero
	Comment rune // lines starting with this rune are skipped, none when zero
}

// Table is an in-memory delimited file: a header and its records.
type Table struct {
	Header []string
	Rows   [][]string

	index map[string]int
}

// ReadCSV loads the delimited file at path. The first record is the header.
func ReadCSV(path string, opts Options) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	t, err := ReadTable(bufio.NewReader(file), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadTable loads a delimited table from r. The first record is the header.
func ReadTable(r io.Reader, opts Options) (*Table, error) {
	reader := csv.NewReader(r)
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	reader.Comment = opts.Comment
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, ErrNoRows
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		header[i] = h
		// first occurrence wins on duplicate names
		if _, ok := index[h]; !ok {
			index[h] = i
		}
	}
	return &Table{Header: header, Rows: records[1:], index: index}, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Column returns the raw values of the named column.
func (t *Table) Column(name string) ([]string, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	col := make([]string, len(t.Rows))
	for i, rec := range t.Rows {
		col[i] = rec[j]
	}
	return col, nil
}

// Floats parses the named column as float64 values.
func (t *Table) Floats(name string) ([]float64, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	return ParseFloats(name, col)
}

// Matrix builds a rows×len(names) matrix from the named numeric columns.
func (t *Table) Matrix(names ...string) (*core.Matrix, error) {
	cols := make([][]float64, len(names))
	for j, name := range names {
		col, err := t.Floats(name)
		if err != nil {
			return nil, err
		}
		cols[j] = col
	}
	return core.FromColumns(cols...)
}

// ParseFloats converts a string column to float64, reporting the first
// cell that does not parse to a finite value.
func ParseFloats(name string, col []string) ([]float64, error) {
	out := make([]float64, len(col))
	for i, s := range col {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: column %q row %d: %q", ErrNotNumeric, name, i+1, s)
		}
		out[i] = v
	}
	return out, nil
}
