package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary describes one feature column.
type ColumnSummary struct {
	Name     string
	Numeric  bool // every non-empty cell parses as a float
	Distinct int
	Missing  int
	Mean     float64 // numeric columns only
	StdDev   float64 // numeric columns only
}

// Describe summarises every feature column in order.
func (t *Table) Describe() []ColumnSummary {
	m, missing, text := t.parse()
	summaries := make([]ColumnSummary, len(t.featIdx))
	col := make([]float64, len(t.rows))
	for j, idx := range t.featIdx {
		s := ColumnSummary{
			Name:     t.Features[j],
			Distinct: t.distinct(idx),
			Missing:  missing[j],
		}
		if m != nil && text[j] == 0 {
			mat.Col(col, j, m)
			values := col[:0]
			for _, x := range col {
				if !math.IsNaN(x) {
					values = append(values, x)
				}
			}
			if len(values) > 0 {
				s.Numeric = true
				s.Mean, s.StdDev = stat.PopMeanStdDev(values, nil)
			}
		}
		summaries[j] = s
	}
	return summaries
}

// Matrix returns the feature columns as a rows×features dense matrix.
// It fails when any feature cell is empty or non-numeric.
func (t *Table) Matrix() (*mat.Dense, error) {
	m, missing, text := t.parse()
	if m == nil {
		return nil, fmt.Errorf("table has no numeric data")
	}
	for j, name := range t.Features {
		if missing[j] > 0 || text[j] > 0 {
			return nil, fmt.Errorf("column %q has %d empty and %d non-numeric cells", name, missing[j], text[j])
		}
	}
	return m, nil
}

// parse converts the feature cells into a dense matrix. Empty and non-numeric
// cells become NaN and are counted per column in missing and text.
func (t *Table) parse() (m *mat.Dense, missing, text []int) {
	missing = make([]int, len(t.featIdx))
	text = make([]int, len(t.featIdx))
	if len(t.rows) == 0 || len(t.featIdx) == 0 {
		return nil, missing, text
	}

	m = mat.NewDense(len(t.rows), len(t.featIdx), nil)
	for i, row := range t.rows {
		for j, idx := range t.featIdx {
			cell := strings.TrimSpace(row[idx])
			if cell == "" {
				missing[j]++
				m.Set(i, j, math.NaN())
				continue
			}
			x, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				text[j]++
				m.Set(i, j, math.NaN())
				continue
			}
			m.Set(i, j, x)
		}
	}
	return m, missing, text
}

func (t *Table) distinct(idx int) int {
	seen := make(map[string]struct{})
	for _, row := range t.rows {
		if cell := strings.TrimSpace(row[idx]); cell != "" {
			seen[cell] = struct{}{}
		}
	}
	return len(seen)
}

// WriteSummary writes summaries as CSV with a header row.
func WriteSummary(w io.Writer, summaries []ColumnSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"column", "numeric", "distinct", "missing", "mean", "stddev"}); err != nil {
		return err
	}
	for _, s := range summaries {
		record := []string{
			s.Name,
			strconv.FormatBool(s.Numeric),
			strconv.Itoa(s.Distinct),
			strconv.Itoa(s.Missing),
			"",
			"",
		}
		if s.Numeric {
			record[4] = strconv.FormatFloat(s.Mean, 'g', -1, 64)
			record[5] = strconv.FormatFloat(s.StdDev, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
