// Package filter evaluates user-supplied boolean row filters. The table
// is loaded into an in-memory SQLite database, one TEXT column per source
// column, and the expression runs as a WHERE clause, so the full SQL
// expression grammar (comparisons, LIKE, IN, AND/OR) is available over
// column values.
package filter

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"nqsmap/internal/table"
)

// FilterError reports a filter expression that failed to parse or
// evaluate, carrying the underlying SQLite cause.
type FilterError struct {
	Expr string
	Err  error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("invalid filter %q: %s", e.Expr, e.Err)
}

func (e *FilterError) Unwrap() error { return e.Err }

// rowColumn tags each staged row with its source position so survivors
// come back in input order.
const rowColumn = "__rownum"

// Apply evaluates expr over the table and returns the surviving rows, in
// their original order and with the original columns. An empty result is
// not an error; a malformed expression is.
func Apply(t *table.Table, expr string) (*table.Table, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open filter db: %w", err)
	}
	defer db.Close()

	names := stageNames(t.Columns)
	if err := stage(db, names, t.Rows); err != nil {
		return nil, fmt.Errorf("stage rows for filter: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM rows WHERE (%s) ORDER BY %s",
		rowColumn, expr, rowColumn)
	result, err := db.Query(query)
	if err != nil {
		return nil, &FilterError{Expr: expr, Err: err}
	}
	defer result.Close()

	var keep []int
	for result.Next() {
		var n int
		if err := result.Scan(&n); err != nil {
			return nil, &FilterError{Expr: expr, Err: err}
		}
		keep = append(keep, n)
	}
	if err := result.Err(); err != nil {
		return nil, &FilterError{Expr: expr, Err: err}
	}

	return t.Select(keep), nil
}

func stage(db *sql.DB, names []string, rows [][]string) error {
	defs := make([]string, 0, len(names)+1)
	defs = append(defs, rowColumn+" INTEGER")
	for _, n := range names {
		defs = append(defs, quote(n)+" TEXT")
	}
	if _, err := db.Exec("CREATE TABLE rows (" + strings.Join(defs, ", ") + ")"); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	placeholders := "?" + strings.Repeat(", ?", len(names))
	stmt, err := tx.Prepare("INSERT INTO rows VALUES (" + placeholders + ")")
	if err != nil {
		tx.Rollback()
		return err
	}
	for i, row := range rows {
		args := make([]any, 0, len(names)+1)
		args = append(args, i)
		for c := range names {
			args = append(args, row[c])
		}
		if _, err := stmt.Exec(args...); err != nil {
			stmt.Close()
			tx.Rollback()
			return err
		}
	}
	stmt.Close()
	return tx.Commit()
}

// stageNames dedupes column names for the staging schema; duplicates get
// a positional suffix visible only to the filter expression.
func stageNames(columns []string) []string {
	seen := make(map[string]bool, len(columns))
	names := make([]string, len(columns))
	for i, c := range columns {
		name := c
		if name == "" || name == rowColumn || seen[name] {
			name = fmt.Sprintf("%s_%d", name, i+1)
		}
		seen[name] = true
		names[i] = name
	}
	return names
}

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
