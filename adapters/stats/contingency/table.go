// Package contingency builds two-way count tables from categorical columns
// and runs the chi-square test of independence over them.
package contingency

import (
	"fmt"

	"statlab/domain/core"
	"statlab/domain/dataset"
)

// Table is a two-dimensional table of non-negative counts. Rows are levels
// of variable A, columns levels of variable B, both in first-appearance
// order unless the caller pinned an explicit order.
type Table struct {
	RowLevels []string `json:"row_levels"`
	ColLevels []string `json:"col_levels"`
	Counts    [][]int  `json:"counts"`
}

// BuildTable cross-tabulates two categorical columns of a view. Level order
// is the order each label first appears in the data, which makes repeated
// builds over identical input identical.
func BuildTable(v *dataset.View, columnA, columnB string) (*Table, error) {
	rowLevels, err := v.Levels(columnA)
	if err != nil {
		return nil, err
	}
	colLevels, err := v.Levels(columnB)
	if err != nil {
		return nil, err
	}
	return buildWithLevels(v, columnA, columnB, rowLevels, colLevels, false)
}

// BuildTableWithLevels cross-tabulates with a caller-pinned level order so
// tests can fix the table layout. A label in the data that is missing from
// the supplied levels is an error; a supplied level absent from the data
// yields a zero row or column.
func BuildTableWithLevels(v *dataset.View, columnA, columnB string, rowLevels, colLevels []string) (*Table, error) {
	if len(rowLevels) == 0 || len(colLevels) == 0 {
		return nil, core.NewConfigError("levels", "must not be empty")
	}
	return buildWithLevels(v, columnA, columnB, rowLevels, colLevels, true)
}

func buildWithLevels(v *dataset.View, columnA, columnB string, rowLevels, colLevels []string, strict bool) (*Table, error) {
	labelsA, err := v.LabelColumn(columnA)
	if err != nil {
		return nil, err
	}
	labelsB, err := v.LabelColumn(columnB)
	if err != nil {
		return nil, err
	}

	rowIdx := indexLevels(rowLevels)
	colIdx := indexLevels(colLevels)
	if rowIdx == nil || colIdx == nil {
		return nil, core.NewConfigError("levels", "contain duplicates")
	}

	counts := make([][]int, len(rowLevels))
	for i := range counts {
		counts[i] = make([]int, len(colLevels))
	}
	for i := range labelsA {
		r, okR := rowIdx[labelsA[i]]
		c, okC := colIdx[labelsB[i]]
		if !okR || !okC {
			if strict {
				return nil, core.NewConfigError("levels",
					fmt.Sprintf("row %d has label outside the pinned levels (%q, %q)", i, labelsA[i], labelsB[i]))
			}
			continue
		}
		counts[r][c]++
	}

	return &Table{RowLevels: rowLevels, ColLevels: colLevels, Counts: counts}, nil
}

func indexLevels(levels []string) map[string]int {
	idx := make(map[string]int, len(levels))
	for i, l := range levels {
		if _, dup := idx[l]; dup {
			return nil
		}
		idx[l] = i
	}
	return idx
}

// NewTable wraps pre-built counts, validating shape and non-negativity.
func NewTable(rowLevels, colLevels []string, counts [][]int) (*Table, error) {
	if len(counts) != len(rowLevels) {
		return nil, core.NewConfigError("counts", "row count does not match row levels")
	}
	for i, row := range counts {
		if len(row) != len(colLevels) {
			return nil, core.NewConfigError("counts", fmt.Sprintf("row %d width does not match col levels", i))
		}
		for j, c := range row {
			if c < 0 {
				return nil, core.NewConfigError("counts", fmt.Sprintf("cell (%d,%d) is negative", i, j))
			}
		}
	}
	return &Table{RowLevels: rowLevels, ColLevels: colLevels, Counts: counts}, nil
}

// Rows returns the number of row levels
func (t *Table) Rows() int { return len(t.RowLevels) }

// Cols returns the number of column levels
func (t *Table) Cols() int { return len(t.ColLevels) }

// Marginals returns row totals, column totals and the grand total
func (t *Table) Marginals() (rows []int, cols []int, grand int) {
	rows = make([]int, t.Rows())
	cols = make([]int, t.Cols())
	for i, row := range t.Counts {
		for j, c := range row {
			rows[i] += c
			cols[j] += c
			grand += c
		}
	}
	return rows, cols, grand
}
