package dataset

import (
	"fmt"
	"sort"

	"statlab/domain/core"
)

// View is an immutable, column-oriented collection of rows of scalar values.
// It is constructed once by a loader, read by every statistical component,
// and never mutated. Row order is insertion order.
type View struct {
	columns  []string
	colIndex map[string]int
	rows     [][]core.Value
}

// NewView builds a view from a column list and rows. Every row must have
// exactly one value per column; duplicate column names are rejected.
func NewView(columns []string, rows [][]core.Value) (*View, error) {
	if len(columns) == 0 {
		return nil, core.NewConfigError("columns", "must not be empty")
	}
	colIndex := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, dup := colIndex[name]; dup {
			return nil, core.NewConfigError("columns", fmt.Sprintf("duplicate column %q", name))
		}
		colIndex[name] = i
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values, view has %d columns",
				core.ErrRaggedRows, i, len(row), len(columns))
		}
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &View{columns: cols, colIndex: colIndex, rows: rows}, nil
}

// Len returns the number of rows
func (v *View) Len() int { return len(v.rows) }

// Columns returns the column names in declaration order
func (v *View) Columns() []string {
	out := make([]string, len(v.columns))
	copy(out, v.columns)
	return out
}

// HasColumn reports whether the view contains the named column
func (v *View) HasColumn(name string) bool {
	_, ok := v.colIndex[name]
	return ok
}

// Value returns the cell at (row, column)
func (v *View) Value(row int, column string) (core.Value, error) {
	idx, ok := v.colIndex[column]
	if !ok {
		return core.Value{}, core.NewColumnNotFoundError(column)
	}
	if row < 0 || row >= len(v.rows) {
		return core.Value{}, fmt.Errorf("row %d out of range [0,%d)", row, len(v.rows))
	}
	return v.rows[row][idx], nil
}

// Float64Column extracts a numeric column in row order. A non-numeric cell
// fails the whole extraction; the toolkit never coerces silently.
func (v *View) Float64Column(column string) ([]float64, error) {
	idx, ok := v.colIndex[column]
	if !ok {
		return nil, core.NewColumnNotFoundError(column)
	}
	out := make([]float64, len(v.rows))
	for i, row := range v.rows {
		f, ok := row[idx].Float64()
		if !ok {
			return nil, fmt.Errorf("%w: %q row %d holds %q",
				core.ErrColumnNotNumeric, column, i, row[idx].Label())
		}
		out[i] = f
	}
	return out, nil
}

// LabelColumn extracts a column as canonical level labels in row order
func (v *View) LabelColumn(column string) ([]string, error) {
	idx, ok := v.colIndex[column]
	if !ok {
		return nil, core.NewColumnNotFoundError(column)
	}
	out := make([]string, len(v.rows))
	for i, row := range v.rows {
		out[i] = row[idx].Label()
	}
	return out, nil
}

// Levels returns the distinct labels of a column in first-appearance order.
// Contingency tables depend on this order being reproducible.
func (v *View) Levels(column string) ([]string, error) {
	labels, err := v.LabelColumn(column)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, 8)
	var levels []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			levels = append(levels, l)
		}
	}
	return levels, nil
}

// GroupKey identifies one partition of rows: one value per grouping column.
type GroupKey []core.Value

// Label renders the key as a single label ("a" or "a|b" for compound keys)
func (k GroupKey) Label() string {
	switch len(k) {
	case 0:
		return ""
	case 1:
		return k[0].Label()
	}
	s := k[0].Label()
	for _, v := range k[1:] {
		s += "|" + v.Label()
	}
	return s
}

// Compare orders keys element-wise using the Value total order
func (k GroupKey) Compare(o GroupKey) int {
	for i := range k {
		if i >= len(o) {
			return 1
		}
		if c := k[i].Compare(o[i]); c != 0 {
			return c
		}
	}
	if len(k) < len(o) {
		return -1
	}
	return 0
}

// Group is one partition of a view's rows, identified by its key.
// Rows holds row indices into the parent view, in insertion order.
type Group struct {
	Key  GroupKey
	Rows []int
}

// GroupBy partitions the rows by the given columns. Groups are returned in
// the stable total order over keys so repeated runs over identical input
// produce identical orderings. With no columns the whole view is one group
// with an empty key.
func (v *View) GroupBy(columns ...string) ([]Group, error) {
	if len(columns) == 0 {
		rows := make([]int, len(v.rows))
		for i := range rows {
			rows[i] = i
		}
		return []Group{{Key: nil, Rows: rows}}, nil
	}

	idxs := make([]int, len(columns))
	for i, name := range columns {
		idx, ok := v.colIndex[name]
		if !ok {
			return nil, core.NewColumnNotFoundError(name)
		}
		idxs[i] = idx
	}

	byLabel := make(map[string]int) // key label -> position in groups
	var groups []Group
	for rowIdx, row := range v.rows {
		key := make(GroupKey, len(idxs))
		for i, ci := range idxs {
			key[i] = row[ci]
		}
		label := key.Label()
		pos, ok := byLabel[label]
		if !ok {
			pos = len(groups)
			byLabel[label] = pos
			groups = append(groups, Group{Key: key})
		}
		groups[pos].Rows = append(groups[pos].Rows, rowIdx)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Key.Compare(groups[j].Key) < 0
	})
	return groups, nil
}
