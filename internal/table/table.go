// SPDX-License-Identifier: MPL-2.0

// Package table loads delimited tabular files into a dataframe and runs one
// of the sort, filter, or stats operations on them.
package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/toolbelt/toolbelt/internal/fsutil"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/spf13/afero"
)

var (
	// ErrEmptyInput is returned when the input has no bytes or no header row.
	ErrEmptyInput = errors.New("The CSV file is empty")
	// ErrUnparseable is wrapped when the input cannot be read as CSV.
	ErrUnparseable = errors.New("Error reading CSV file")
	// ErrNoColumns is returned when an operation is given no column names.
	ErrNoColumns = errors.New("No columns specified")
	// ErrColumnsNotFound is the sentinel error wrapped by ColumnsNotFoundError.
	ErrColumnsNotFound = errors.New("columns not found")
	// ErrValueRequired is returned when filter is called without a value.
	ErrValueRequired = errors.New("Please specify a value for filtering")
	// ErrSingleColumn is returned when filter is given more than one column.
	ErrSingleColumn = errors.New("filter requires exactly one column")
)

// ColumnsNotFoundError lists requested columns that are absent from the header.
type ColumnsNotFoundError struct {
	// Missing holds the absent names in request order.
	Missing []string
}

// Error implements the error interface.
func (e *ColumnsNotFoundError) Error() string {
	return "Columns not found: " + strings.Join(e.Missing, ", ")
}

// Unwrap returns ErrColumnsNotFound for errors.Is() compatibility.
func (e *ColumnsNotFoundError) Unwrap() error { return ErrColumnsNotFound }

type (
	// LoadOptions controls CSV parsing.
	LoadOptions struct {
		// Delimiter separates fields. Zero means ','.
		Delimiter rune
		// NullValues are cell values treated as missing.
		NullValues []string
	}

	// Table is a loaded CSV file. header and rows keep every cell exactly as
	// written so that sort and filter output reproduces the input text.
	// keys are the unique names columns are looked up by, and typed carries
	// the inferred column types used for ordering and statistics.
	Table struct {
		header []string
		keys   []string
		index  map[string]int
		rows   [][]string
		typed  dataframe.DataFrame
	}
)

// Load reads and parses the CSV file at path.
func Load(fs afero.Fs, path string, opts LoadOptions) (*Table, error) {
	if err := fsutil.RequireFile(fs, path); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data, opts)
}

// Parse builds a Table from CSV bytes with a header row. A header with no
// data rows yields an empty Table.
func Parse(data []byte, opts LoadOptions) (*Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}

	r := csv.NewReader(bytes.NewReader(data))
	if opts.Delimiter != 0 {
		r.Comma = opts.Delimiter
	}
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, ErrEmptyInput
	}

	t := &Table{header: records[0], rows: records[1:]}
	t.keys = columnKeys(t.header)
	t.index = make(map[string]int, len(t.keys))
	for i, k := range t.keys {
		t.index[k] = i
	}

	t.typed, err = inferTypes(t.keys, t.rows, opts.NullValues)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}
	return t, nil
}

// columnKeys makes header names unique and non-empty: a blank name becomes
// "Unnamed: <index>", the first occurrence of a name keeps it, and later
// ones become name.1, name.2, and so on.
func columnKeys(header []string) []string {
	base := make([]string, len(header))
	taken := make(map[string]bool, len(header))
	for i, h := range header {
		if h == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		base[i] = h
		taken[h] = true
	}

	keys := make([]string, len(base))
	seen := make(map[string]int, len(base))
	for i, h := range base {
		n := seen[h]
		if n == 0 {
			keys[i] = h
			seen[h] = 1
			continue
		}
		key := h + "." + strconv.Itoa(n)
		for taken[key] {
			n++
			key = h + "." + strconv.Itoa(n)
		}
		seen[h] = n + 1
		taken[key] = true
		keys[i] = key
	}
	return keys
}

// inferTypes loads rows into a typed dataframe. gota rejects a frame with no
// records, so zero rows become empty string columns.
func inferTypes(keys []string, rows [][]string, nulls []string) (dataframe.DataFrame, error) {
	if len(rows) == 0 {
		df := emptyFrame(keys)
		return df, df.Err
	}
	records := make([][]string, 0, len(rows)+1)
	records = append(records, keys)
	records = append(records, rows...)
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.NaNValues(nulls),
	)
	return df, df.Err
}

func emptyFrame(keys []string) dataframe.DataFrame {
	cols := make([]series.Series, len(keys))
	for i, k := range keys {
		cols[i] = series.New([]string{}, series.String, k)
	}
	return dataframe.New(cols...)
}

// Names returns the column lookup names in header order. They equal the
// header except where a name repeats.
func (t *Table) Names() []string { return slices.Clone(t.keys) }

// Header returns the header row as written in the input.
func (t *Table) Header() []string { return slices.Clone(t.header) }

// Nrow returns the number of data rows.
func (t *Table) Nrow() int { return len(t.rows) }

// Ncol returns the number of columns.
func (t *Table) Ncol() int { return len(t.keys) }

// ValidateColumns splits the comma-separated columns and checks that every
// name is a column. A repeated header name is addressed as name, name.1, and
// so on. Duplicates in the request are checked independently.
func (t *Table) ValidateColumns(columns string) ([]string, error) {
	if columns == "" {
		return nil, ErrNoColumns
	}

	names := strings.Split(columns, ",")
	var missing []string
	for _, n := range names {
		if _, ok := t.index[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return nil, &ColumnsNotFoundError{Missing: missing}
	}
	return names, nil
}
