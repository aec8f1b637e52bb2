package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/migrations"
)

// Dialect identifies the SQL database behind a [DB].
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a database handle together with its dialect.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the workbook schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, string(db.dialect))
}

// builder returns a squirrel statement builder with the placeholder format of
// the dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx runs fn in a transaction that is committed when fn returns nil and
// rolled back otherwise. PostgreSQL transactions are serializable; SQLite
// serialises writers by itself.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var opts *sql.TxOptions
	if db.dialect == DialectPostgres {
		opts = &sql.TxOptions{Isolation: sql.LevelSerializable}
	}

	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.withTx").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			db.logger.Err(rbErr).Str("func", "*DB.withTx").Msg("error rolling back transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		db.logger.Err(err).Str("func", "*DB.withTx").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func exec(ctx context.Context, q querier, stmt sq.Sqlizer) error {
	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func queryRow(ctx context.Context, q querier, stmt sq.Sqlizer, dest ...any) error {
	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return q.QueryRowContext(ctx, query, args...).Scan(dest...)
}

// queryCells runs a select of (row_idx, col_idx, value) triples.
func queryCells(ctx context.Context, q querier, stmt sq.Sqlizer) ([]cellRecord, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var cells []cellRecord
	for rows.Next() {
		var c cellRecord
		if err := rows.Scan(&c.row, &c.col, &c.value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		cells = append(cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cells, nil
}
