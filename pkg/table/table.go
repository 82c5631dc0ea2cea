// Package table provides the in-memory tabular representation shared by
// all stages of the validator: an ordered header and rows of string cells.
//
// An empty string denotes a null or empty cell. Every row of a Table
// created with New has exactly len(Header) cells.
package table

import (
	"fmt"
	"slices"
)

// Table is a fully materialised grid of text cells with named columns.
type Table struct {
	// Header holds column names in output order.
	Header []string

	// Rows holds cell values; Rows[i][j] belongs to Header[j].
	Rows [][]string
}

// New creates a Table from a header and rows. Rows are copied and
// padded with empty cells (or truncated) to the width of the header, so
// callers can pass ragged spreadsheet rows.
func New(header []string, rows [][]string) *Table {
	res := &Table{
		Header: slices.Clone(header),
		Rows:   make([][]string, len(rows)),
	}
	w := len(header)
	for i, row := range rows {
		r := make([]string, w)
		copy(r, row)
		res.Rows[i] = r
	}
	return res
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.Header)
}

// Index returns position of the column or -1 if the column is absent.
func (t *Table) Index(col string) int {
	return slices.Index(t.Header, col)
}

// Has reports whether the column exists.
func (t *Table) Has(col string) bool {
	return t.Index(col) >= 0
}

// Missing returns the columns from cols that are absent from the table,
// in the order they were given.
func (t *Table) Missing(cols ...string) []string {
	var res []string
	for _, c := range cols {
		if !t.Has(c) {
			res = append(res, c)
		}
	}
	return res
}

// Column returns a copy of all values of a column, or nil if the column
// does not exist.
func (t *Table) Column(col string) []string {
	idx := t.Index(col)
	if idx < 0 {
		return nil
	}
	res := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		res[i] = row[idx]
	}
	return res
}

// SetColumn replaces values of an existing column or appends a new one.
// The length of vals must match the number of rows.
func (t *Table) SetColumn(col string, vals []string) error {
	if len(vals) != len(t.Rows) {
		return fmt.Errorf(
			"column %q has %d values, table has %d rows",
			col, len(vals), len(t.Rows),
		)
	}
	idx := t.Index(col)
	if idx < 0 {
		t.Header = append(t.Header, col)
		for i := range t.Rows {
			t.Rows[i] = append(t.Rows[i], vals[i])
		}
		return nil
	}
	for i := range t.Rows {
		t.Rows[i][idx] = vals[i]
	}
	return nil
}

// Drop removes a column if it exists.
func (t *Table) Drop(col string) {
	idx := t.Index(col)
	if idx < 0 {
		return
	}
	t.Header = slices.Delete(t.Header, idx, idx+1)
	for i := range t.Rows {
		t.Rows[i] = slices.Delete(t.Rows[i], idx, idx+1)
	}
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	return New(t.Header, t.Rows)
}

// Reorder returns a new table whose columns follow order. Columns from
// order that are absent in the table are skipped; columns of the table
// that are not mentioned in order are appended keeping their relative
// position.
func (t *Table) Reorder(order []string) *Table {
	seen := make(map[string]struct{}, len(order))
	idxs := make([]int, 0, len(t.Header))
	for _, col := range order {
		if _, ok := seen[col]; ok {
			continue
		}
		seen[col] = struct{}{}
		if idx := t.Index(col); idx >= 0 {
			idxs = append(idxs, idx)
		}
	}
	for i, col := range t.Header {
		if _, ok := seen[col]; !ok {
			idxs = append(idxs, i)
		}
	}

	res := &Table{
		Header: make([]string, len(idxs)),
		Rows:   make([][]string, len(t.Rows)),
	}
	for j, idx := range idxs {
		res.Header[j] = t.Header[idx]
	}
	for i, row := range t.Rows {
		r := make([]string, len(idxs))
		for j, idx := range idxs {
			r[j] = row[idx]
		}
		res.Rows[i] = r
	}
	return res
}

// Duplicates returns header names that occur more than once, each name
// reported once in order of its second occurrence.
func (t *Table) Duplicates() []string {
	var res []string
	count := make(map[string]int, len(t.Header))
	for _, col := range t.Header {
		count[col]++
		if count[col] == 2 {
			res = append(res, col)
		}
	}
	return res
}

// Map applies fn to every cell of the table in place.
func (t *Table) Map(fn func(string) string) {
	for _, row := range t.Rows {
		for j := range row {
			row[j] = fn(row[j])
		}
	}
}
