// SPDX-License-Identifier: MPL-2.0

package table

import (
	"errors"
	"fmt"
	"io"

	"github.com/toolbelt/toolbelt/internal/fsutil"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

const (
	OpSort   Operation = "sort"
	OpFilter Operation = "filter"
	OpStats  Operation = "stats"
)

// ErrUnknownOperation is wrapped when an operation name is not recognized.
var ErrUnknownOperation = errors.New("unknown operation")

type (
	// Operation names one of the table operations.
	Operation string

	// Request describes one invocation of Run.
	Request struct {
		Input     string
		Output    string
		Operation Operation
		// Columns is a comma-separated list of column names.
		Columns string
		// Value is the filter value. Nil means no value was given.
		Value *string
		Load  LoadOptions
		// Logger receives debug output. Nil discards it.
		Logger *log.Logger
	}

	// Result reports what Run did.
	Result struct {
		Operation Operation
		// Rows is the number of data rows written (sort, filter) or
		// analysed (stats).
		Rows int
		// NoMatches is set when a filter kept no rows.
		NoMatches bool
		// Stats is set for the stats operation.
		Stats *Stats
	}
)

// String returns the string representation of the Operation.
func (o Operation) String() string { return string(o) }

// ParseOperation validates s as an Operation.
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(s); op {
	case OpSort, OpFilter, OpStats:
		return op, nil
	default:
		return "", fmt.Errorf("%w %q (valid: sort, filter, stats)", ErrUnknownOperation, s)
	}
}

// Run loads req.Input, applies the operation and writes the result to
// req.Output. Validation happens before anything is written, and the output
// replaces its target atomically, so a failed run leaves no output file.
func Run(fs afero.Fs, req Request) (Result, error) {
	logger := req.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if _, err := ParseOperation(string(req.Operation)); err != nil {
		return Result{}, err
	}

	t, err := Load(fs, req.Input, req.Load)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("loaded table", "path", req.Input, "rows", t.Nrow(), "columns", t.Ncol())

	res := Result{Operation: req.Operation}
	switch req.Operation {
	case OpSort:
		columns, err := t.ValidateColumns(req.Columns)
		if err != nil {
			return Result{}, err
		}
		if t, err = t.Sort(columns); err != nil {
			return Result{}, err
		}

	case OpFilter:
		columns, err := t.ValidateColumns(req.Columns)
		if err != nil {
			return Result{}, err
		}
		if req.Value == nil {
			return Result{}, ErrValueRequired
		}
		if len(columns) != 1 {
			return Result{}, fmt.Errorf("%w, got %d", ErrSingleColumn, len(columns))
		}
		if t, err = t.Filter(columns[0], *req.Value); err != nil {
			return Result{}, err
		}
		res.NoMatches = t.Nrow() == 0

	case OpStats:
		st := t.Stats()
		res.Rows = st.Rows
		res.Stats = &st
		if req.Output == "" {
			return res, nil
		}
		return res, fsutil.WriteAtomic(fs, req.Output, st.WriteReport)
	}

	res.Rows = t.Nrow()
	if err := fsutil.WriteAtomic(fs, req.Output, t.WriteCSV); err != nil {
		return Result{}, err
	}
	logger.Debug("wrote table", "path", req.Output, "rows", res.Rows)
	return res, nil
}
