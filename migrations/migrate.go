// Package migrations embeds the goose migrations of the SQL workbook schema.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var dialects = map[string]goose.Dialect{
	"sqlite3":  goose.DialectSQLite3,
	"postgres": goose.DialectPostgres,
}

// Migrate applies every pending migration to db. dialect is "sqlite3" or
// "postgres".
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseDialect, ok := dialects[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	provider, err := goose.NewProvider(gooseDialect, db, embedMigrations)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
