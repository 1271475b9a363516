// SPDX-License-Identifier: MPL-2.0

package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/go-gota/gota/series"
)

// Sort returns a new Table with rows stably ordered ascending by the given
// columns. Missing values sort last; rows with equal keys keep their input
// order.
func (t *Table) Sort(columns []string) (*Table, error) {
	keys := make([]series.Series, len(columns))
	for i, c := range columns {
		keys[i] = t.typed.Col(c)
	}

	order := make([]int, t.Nrow())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		for _, key := range keys {
			if c := compareElements(key.Elem(order[a]), key.Elem(order[b])); c != 0 {
				return c < 0
			}
		}
		return false
	})

	return t.subset(order)
}

func compareElements(a, b series.Element) int {
	switch {
	case a.IsNA() && b.IsNA():
		return 0
	case a.IsNA():
		return 1
	case b.IsNA():
		return -1
	case a.Less(b):
		return -1
	case a.Greater(b):
		return 1
	default:
		return 0
	}
}

// subset keeps the given rows, in the given order.
func (t *Table) subset(rows []int) (*Table, error) {
	out := &Table{header: t.header, keys: t.keys, index: t.index, rows: make([][]string, len(rows))}
	for i, r := range rows {
		out.rows[i] = t.rows[r]
	}
	if len(rows) == 0 {
		out.typed = emptyFrame(t.keys)
	} else {
		out.typed = t.typed.Subset(rows)
	}
	if out.typed.Err != nil {
		return nil, fmt.Errorf("select rows: %w", out.typed.Err)
	}
	return out, nil
}

// Filter returns a new Table holding the rows whose column cell is exactly
// value as written in the input. Null tokens get no special treatment.
func (t *Table) Filter(column, value string) (*Table, error) {
	ci, ok := t.index[column]
	if !ok {
		return nil, &ColumnsNotFoundError{Missing: []string{column}}
	}
	var keep []int
	for i, row := range t.rows {
		if row[ci] == value {
			keep = append(keep, i)
		}
	}
	return t.subset(keep)
}

// WriteCSV writes the header and rows exactly as they appeared in the input,
// comma separated.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.rows); err != nil {
		return err
	}
	return cw.Error()
}
