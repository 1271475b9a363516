// SPDX-License-Identifier: MPL-2.0

package table

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	TypeInt64   = "int64"
	TypeFloat64 = "float64"
	TypeBool    = "bool"
	TypeObject  = "object"
)

type (
	// ColumnInfo describes one column.
	ColumnInfo struct {
		Name  string
		Type  string
		Nulls int
	}

	// Summary holds descriptive statistics for a numeric column. Nulls are
	// excluded. With Count 0 every other field is NaN; with Count 1 Std is NaN.
	Summary struct {
		Column string
		Count  int
		Mean   float64
		Std    float64
		Min    float64
		Q25    float64
		Q50    float64
		Q75    float64
		Max    float64
	}

	// Stats is the result of the stats operation.
	Stats struct {
		Rows    int
		Columns []ColumnInfo
		Numeric []Summary
	}
)

// Stats computes per-column types and null counts and summaries of every
// numeric column.
func (t *Table) Stats() Stats {
	st := Stats{Rows: t.Nrow()}
	for _, name := range t.Names() {
		col := t.typed.Col(name)
		nulls := countNulls(col)
		st.Columns = append(st.Columns, ColumnInfo{Name: name, Type: typeName(col.Type(), nulls), Nulls: nulls})

		if col.Type() == series.Int || col.Type() == series.Float {
			st.Numeric = append(st.Numeric, summarize(name, col.Float()))
		}
	}
	return st
}

func countNulls(col series.Series) int {
	n := 0
	for _, na := range col.IsNaN() {
		if na {
			n++
		}
	}
	return n
}

// typeName reports an integer column holding nulls as float64, since a
// missing value cannot be stored as an int64.
func typeName(t series.Type, nulls int) string {
	switch t {
	case series.Int:
		if nulls > 0 {
			return TypeFloat64
		}
		return TypeInt64
	case series.Float:
		return TypeFloat64
	case series.Bool:
		return TypeBool
	default:
		return TypeObject
	}
}

func summarize(name string, values []float64) Summary {
	x := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			x = append(x, v)
		}
	}

	s := Summary{Column: name, Count: len(x)}
	nan := math.NaN()
	if len(x) == 0 {
		s.Mean, s.Std, s.Min, s.Q25, s.Q50, s.Q75, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}

	sort.Float64s(x)
	s.Mean = stat.Mean(x, nil)
	s.Std = nan
	if len(x) > 1 {
		s.Std = stat.StdDev(x, nil)
	}
	s.Min = floats.Min(x)
	s.Max = floats.Max(x)
	s.Q25 = quantile(x, 0.25)
	s.Q50 = quantile(x, 0.50)
	s.Q75 = quantile(x, 0.75)
	return s
}

// quantile interpolates linearly between the closest ranks of sorted x.
func quantile(x []float64, p float64) float64 {
	pos := p * float64(len(x)-1)
	lo := math.Floor(pos)
	hi := math.Ceil(pos)
	frac := pos - lo
	return x[int(lo)] + (x[int(hi)]-x[int(lo)])*frac
}

// WriteReport writes the statistics as a plain-text report.
func (s Stats) WriteReport(w io.Writer) error {
	var b strings.Builder
	b.WriteString("Dataset Statistics\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	fmt.Fprintf(&b, "Total Rows: %d\n", s.Rows)
	fmt.Fprintf(&b, "Total Columns: %d\n\n", len(s.Columns))
	b.WriteString("Columns:\n")
	for _, c := range s.Columns {
		fmt.Fprintf(&b, "- %s: %s (Null values: %d)\n", c.Name, c.Type, c.Nulls)
	}
	b.WriteString("\nNumerical Columns Summary:\n")
	b.WriteString(s.SummaryTable())

	_, err := io.WriteString(w, b.String())
	return err
}

// SummaryTable renders the numeric summaries with one row per statistic and
// one right-aligned column per numeric column.
func (s Stats) SummaryTable() string {
	if len(s.Numeric) == 0 {
		return "(no numerical columns)\n"
	}

	labels := []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}
	cells := make([][]string, len(s.Numeric))
	widths := make([]int, len(s.Numeric))
	for i, sum := range s.Numeric {
		vals := []float64{float64(sum.Count), sum.Mean, sum.Std, sum.Min, sum.Q25, sum.Q50, sum.Q75, sum.Max}
		cells[i] = make([]string, len(vals))
		widths[i] = len(sum.Column)
		for j, v := range vals {
			cells[i][j] = formatStat(v)
			widths[i] = max(widths[i], len(cells[i][j]))
		}
	}

	labelWidth := len("count")
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	for i, sum := range s.Numeric {
		fmt.Fprintf(&b, "  %*s", widths[i], sum.Column)
	}
	b.WriteString("\n")
	for j, label := range labels {
		fmt.Fprintf(&b, "%-*s", labelWidth, label)
		for i := range s.Numeric {
			fmt.Fprintf(&b, "  %*s", widths[i], cells[i][j])
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
