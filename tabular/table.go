// Package tabular reads CSV training tables and reports the counts a
// hidden-layer estimate needs: feature columns, distinct targets and rows.
package tabular

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNoTarget      = errors.New("tabular: no target column given")
	ErrUnknownColumn = errors.New("tabular: unknown column")
	ErrEmpty         = errors.New("tabular: no header row")
)

// Options selects the target and feature columns of a table.
type Options struct {
	Target   string   // column holding the label
	Features []string // explicit feature columns; empty means every other column
	Exclude  []string // columns dropped from the default feature set, e.g. ids
}

// Table is a CSV table split into feature columns and a target column.
type Table struct {
	Name     string
	Header   []string
	Target   string
	Features []string

	rows      [][]string
	targetIdx int
	featIdx   []int
}

// Load opens path and reads it with Read. The table is named after the file.
func Load(path string, opts Options) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	t, err := Read(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.Name = datasetName(path)
	return t, nil
}

// Read parses a CSV stream whose first row is the header.
func Read(reader io.Reader, opts Options) (*Table, error) {
	if opts.Target == "" {
		return nil, ErrNoTarget
	}

	r := csv.NewReader(bufio.NewReader(reader))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := &Table{Header: header, Target: opts.Target}
	if t.targetIdx, err = columnIndex(header, opts.Target); err != nil {
		return nil, err
	}
	if err := t.selectFeatures(opts); err != nil {
		return nil, err
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing rows: %w", err)
		}
		if len(record) != len(header) {
			lineNum, _ := r.FieldPos(0)
			return nil, errInvalidLine{
				lineNum:  lineNum,
				splits:   len(record),
				expected: len(header),
			}
		}
		t.rows = append(t.rows, record)
	}
	return t, nil
}

func (t *Table) selectFeatures(opts Options) error {
	if len(opts.Features) > 0 {
		for _, name := range opts.Features {
			idx, err := columnIndex(t.Header, name)
			if err != nil {
				return err
			}
			if idx == t.targetIdx {
				return fmt.Errorf("target %q cannot also be a feature", name)
			}
			t.featIdx = append(t.featIdx, idx)
			t.Features = append(t.Features, name)
		}
		return nil
	}

	excluded := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		if _, err := columnIndex(t.Header, name); err != nil {
			return err
		}
		excluded[name] = true
	}
	for i, name := range t.Header {
		if i == t.targetIdx || excluded[name] {
			continue
		}
		t.featIdx = append(t.featIdx, i)
		t.Features = append(t.Features, name)
	}
	return nil
}

// InputCount is the number of feature columns.
func (t *Table) InputCount() int { return len(t.Features) }

// OutputCount is the number of distinct non-empty target values.
func (t *Table) OutputCount() int { return t.distinct(t.targetIdx) }

// SampleCount is the number of data rows.
func (t *Table) SampleCount() int { return len(t.rows) }

// Split shuffles rows with the given seed and holds out validFraction of them.
// A zero fraction returns every row in train and an empty valid table.
func (t *Table) Split(validFraction float64, seed uint64) (train, valid *Table, err error) {
	if validFraction < 0 || validFraction >= 1 {
		return nil, nil, fmt.Errorf("valid fraction must be in [0, 1), got %g", validFraction)
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	perm := rng.Perm(len(t.rows))
	cut := int(float64(len(t.rows)) * validFraction)

	valid = t.withRows(make([][]string, 0, cut))
	train = t.withRows(make([][]string, 0, len(t.rows)-cut))
	for i, idx := range perm {
		if i < cut {
			valid.rows = append(valid.rows, t.rows[idx])
		} else {
			train.rows = append(train.rows, t.rows[idx])
		}
	}
	return train, valid, nil
}

func (t *Table) withRows(rows [][]string) *Table {
	return &Table{
		Name:      t.Name,
		Header:    t.Header,
		Target:    t.Target,
		Features:  t.Features,
		rows:      rows,
		targetIdx: t.targetIdx,
		featIdx:   t.featIdx,
	}
}

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

func datasetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

type errInvalidLine struct {
	lineNum  int
	splits   int
	expected int
}

func (e errInvalidLine) Error() string {
	return fmt.Sprintf("at line %d, expected %d values, got %d",
		e.lineNum, e.expected, e.splits)
}
