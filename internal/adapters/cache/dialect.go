package cache

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Dialect selects placeholder and set-membership syntax.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) String() string {
	if d == SQLite {
		return "sqlite"
	}
	return "postgres"
}

// placeholder returns the n-th (1-based) bind parameter.
func (d Dialect) placeholder(n int) string {
	if d == SQLite {
		return "?"
	}
	return fmt.Sprintf("$%d", n)
}

// inSet renders "col matches any key", starting at bind parameter start.
// Postgres binds the slice as one array; SQLite cannot bind slices, so only
// the placeholder list is interpolated and every value stays parameterized.
func (d Dialect) inSet(col string, start int, keys []string) (string, []any) {
	if d == Postgres {
		return fmt.Sprintf("%s = ANY(%s::text[])", col, d.placeholder(start)), []any{keys}
	}

	ph := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))
	for _, k := range keys {
		ph = append(ph, "?")
		args = append(args, k)
	}
	return fmt.Sprintf("%s IN (%s)", col, strings.Join(ph, ",")), args
}

// upsert renders an INSERT that overwrites the non-key columns on a key
// conflict. Both dialects accept the ON CONFLICT ... excluded form.
func (d Dialect) upsert(table string, keyCols, valueCols []string) string {
	cols := append(append([]string{}, keyCols...), valueCols...)

	ph := make([]string, len(cols))
	for i := range cols {
		ph[i] = d.placeholder(i + 1)
	}

	set := make([]string, len(valueCols))
	for i, c := range valueCols {
		set[i] = c + " = excluded." + c
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		table,
		strings.Join(cols, ", "),
		strings.Join(ph, ", "),
		strings.Join(keyCols, ", "),
		strings.Join(set, ", "),
	)
}

// execBatch runs query once per argument row inside a single transaction.
func execBatch(ctx context.Context, db *sql.DB, query string, rows [][]any) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, args := range rows {
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("exec key=%v: %w", args[0], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
