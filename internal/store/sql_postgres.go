package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
)

const postgresApplicationName = "card-portfolio"

// NewConnectPostgres opens a workbook shared by every client connected to the
// same PostgreSQL database. Guarded batches rely on serializable transactions,
// so a lost race surfaces as a serialization failure.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	connConfig, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("invalid postgres dsn")
		return nil, fmt.Errorf("error parsing postgres dsn: %w", err)
	}
	if _, ok := connConfig.RuntimeParams["application_name"]; !ok {
		connConfig.RuntimeParams["application_name"] = postgresApplicationName
	}

	conn := stdlib.OpenDB(*connConfig)
	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(2)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().
		Str("func", "NewConnectPostgres").
		Str("host", connConfig.Host).
		Str("database", connConfig.Database).
		Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            DialectPostgres,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}
