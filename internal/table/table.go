package table

import (
	"fmt"
	"strings"
)

// Table is a rectangular, all-text view of the source data. Typed
// interpretation of cells happens downstream in internal/derive; the
// loader never guesses at numbers or dates.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// New builds a Table from a header row and data rows. Header names are
// trimmed of surrounding whitespace; short rows are padded so every row
// has one cell per column.
func New(columns []string, rows [][]string) *Table {
	cols := make([]string, len(columns))
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		cols[i] = strings.TrimSpace(c)
		if _, dup := index[cols[i]]; !dup {
			index[cols[i]] = i
		}
	}
	for i, row := range rows {
		if len(row) < len(cols) {
			padded := make([]string, len(cols))
			copy(padded, row)
			rows[i] = padded
		}
	}
	return &Table{Columns: cols, Rows: rows, index: index}
}

// HasColumn reports whether the table carries the given header.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Cell returns the value at (row, header), or "" when the header is
// unknown or the row index is out of range.
func (t *Table) Cell(row int, column string) string {
	i, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][i]
}

// Select returns a new Table containing only the given row indices, in
// the order supplied, sharing the underlying row slices.
func (t *Table) Select(rows []int) *Table {
	out := make([][]string, 0, len(rows))
	for _, i := range rows {
		out = append(out, t.Rows[i])
	}
	return New(t.Columns, out)
}

// SchemaError reports required columns absent from the input.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// RequireColumns checks that every named header is present, returning a
// SchemaError listing exactly the missing ones otherwise.
func (t *Table) RequireColumns(names ...string) error {
	var missing []string
	for _, n := range names {
		if !t.HasColumn(n) {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
