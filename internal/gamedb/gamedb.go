// Package gamedb loads the property and item-base tables from a sqlite
// database extracted from the game's data files.
package gamedb

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joshuapare/d2ikit/item/itembase"
	"github.com/joshuapare/d2ikit/item/props"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS props (
  code       INTEGER PRIMARY KEY,
  name       TEXT    NOT NULL,
  addv       INTEGER NOT NULL DEFAULT 0,
  bits       INTEGER NOT NULL,
  paramBits  INTEGER NOT NULL DEFAULT 0,
  repeatable INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS items (
  code      TEXT    PRIMARY KEY,
  name      TEXT    NOT NULL,
  type      TEXT    NOT NULL,
  stackable INTEGER NOT NULL DEFAULT 0
);
`

// DB is an open game database.
type DB struct {
	sqlDB *sql.DB
}

// Open opens an existing database. The tables are created if missing so an
// empty file can be seeded with Import.
func Open(path string) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("gamedb: path is required")
	}
	sqlDB, err := sql.Open("sqlite", filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &DB{sqlDB: sqlDB}, nil
}

// Close closes the sqlite handle.
func (d *DB) Close() error {
	if d == nil || d.sqlDB == nil {
		return nil
	}
	return d.sqlDB.Close()
}

// Props builds a property table from the props relation.
func (d *DB) Props(ctx context.Context) (*props.Table, error) {
	rows, err := d.sqlDB.QueryContext(ctx,
		`SELECT code, name, addv, bits, paramBits, repeatable FROM props ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("query props: %w", err)
	}
	defer rows.Close()

	var defs []props.Definition
	for rows.Next() {
		var (
			def        props.Definition
			repeatable int
		)
		if err := rows.Scan(&def.ID, &def.Name, &def.AddBias, &def.ValueBits, &def.ParamBits, &repeatable); err != nil {
			return nil, fmt.Errorf("scan props: %w", err)
		}
		def.Repeatable = repeatable != 0
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate props: %w", err)
	}
	return props.NewTable(defs)
}

// Bases builds an item-base table from the items relation. The type column
// holds comma-separated type codes, most specific first.
func (d *DB) Bases(ctx context.Context) (*itembase.Table, error) {
	rows, err := d.sqlDB.QueryContext(ctx,
		`SELECT code, name, type, stackable FROM items ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var bases []itembase.Base
	for rows.Next() {
		var (
			b         itembase.Base
			types     string
			stackable int
		)
		if err := rows.Scan(&b.Code, &b.Name, &types, &stackable); err != nil {
			return nil, fmt.Errorf("scan items: %w", err)
		}
		b.Types = itembase.SplitTypes(types)
		b.Stackable = stackable != 0
		bases = append(bases, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return itembase.NewTable(bases)
}

// Import replaces both relations with the given tables in one transaction.
func (d *DB) Import(ctx context.Context, pt *props.Table, bt *itembase.Table) (err error) {
	tx, err := d.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range []string{`DELETE FROM props`, `DELETE FROM items`} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear tables: %w", err)
		}
	}
	for _, def := range pt.Definitions() {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO props (code, name, addv, bits, paramBits, repeatable) VALUES (?, ?, ?, ?, ?, ?)`,
			def.ID, def.Name, def.AddBias, def.ValueBits, def.ParamBits, boolInt(def.Repeatable),
		); err != nil {
			return fmt.Errorf("insert prop %d: %w", def.ID, err)
		}
	}
	for _, b := range bt.Bases() {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO items (code, name, type, stackable) VALUES (?, ?, ?, ?)`,
			b.Code, b.Name, strings.Join(b.Types, ","), boolInt(b.Stackable),
		); err != nil {
			return fmt.Errorf("insert item %q: %w", b.Code, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
