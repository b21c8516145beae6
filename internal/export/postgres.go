package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultTable receives snapshots when no table is named.
const DefaultTable = "entry_fees_snapshot"

// PostgresSink replaces the contents of Table with the snapshot in one
// transaction, creating the table when missing.
type PostgresSink struct {
	Pool  *pgxpool.Pool
	Table string
}

// Identifier parses "schema.table" or "table" into a pgx identifier.
func Identifier(name string) (pgx.Identifier, error) {
	if name == "" {
		name = DefaultTable
	}
	parts := strings.Split(name, ".")
	if len(parts) > 2 {
		return nil, fmt.Errorf("invalid table name %q", name)
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("invalid table name %q", name)
		}
	}
	return pgx.Identifier(parts), nil
}

// CreateTableSQL returns the DDL for the snapshot table.
func CreateTableSQL(ident pgx.Identifier) string {
	return `CREATE TABLE IF NOT EXISTS ` + ident.Sanitize() + ` (
	record_id    text PRIMARY KEY,
	race         text NOT NULL,
	slug         text NOT NULL,
	country      text NOT NULL,
	region       text NOT NULL,
	distance_km  double precision,
	currency     text NOT NULL,
	fee          double precision,
	eur_per_km   double precision,
	band         text NOT NULL,
	bucket       text NOT NULL,
	start_date   timestamptz,
	is_primary   boolean NOT NULL,
	last_checked text NOT NULL
)`
}

// Write loads rows into the table. Existing rows are removed first.
func (s PostgresSink) Write(ctx context.Context, rows []Row) error {
	ident, err := Identifier(s.Table)
	if err != nil {
		return err
	}

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, CreateTableSQL(ident)); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	if _, err := tx.Exec(ctx, "DELETE FROM "+ident.Sanitize()); err != nil {
		return fmt.Errorf("clear table: %w", err)
	}

	src := make([][]any, len(rows))
	for i, r := range rows {
		src[i] = r.Values()
	}
	n, err := tx.CopyFrom(ctx, ident, Columns, pgx.CopyFromRows(src))
	if err != nil {
		return fmt.Errorf("copy rows: %w", err)
	}
	if n != int64(len(rows)) {
		return fmt.Errorf("copied %d of %d rows", n, len(rows))
	}
	return tx.Commit(ctx)
}
