// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Cell is a single table value: a string or null. The zero value is null.
type Cell struct {
	Value string
	Valid bool
}

// Text returns a non-null cell holding s.
func Text(s string) Cell {
	return Cell{Value: s, Valid: true}
}

// Null returns a null cell.
func Null() Cell {
	return Cell{}
}

// IsNull reports whether the cell holds no value.
func (c Cell) IsNull() bool {
	return !c.Valid
}

// Row is one data record. Cells are aligned with Table.Columns.
type Row struct {
	// Line is the physical 1-based line the row starts on, counting the header as line 1.
	Line int

	Cells []Cell
}

// Table is the in-memory dataset: column names plus rows in input order.
type Table struct {
	Columns []string
	Rows    []Row
}

// ColumnIndex returns the position of name in Columns, or -1.
func (t *Table) ColumnIndex(name string) int {
	if name == "" {
		return -1
	}
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Get returns the cell of row r in column name. ok is false when the column does not exist.
func (t *Table) Get(r int, name string) (cell Cell, ok bool) {
	i := t.ColumnIndex(name)
	if i < 0 {
		return Cell{}, false
	}
	return t.Rows[r].Cells[i], true
}
