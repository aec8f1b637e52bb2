package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-card-portfolio/internal/catalog"
	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
)

// Storages groups the repositories built over one workbook so they can be
// passed to the service layer as a single value.
type Storages struct {
	// Credentials reads and writes the credential worksheet.
	Credentials CredentialRepository
	// Ownership reads and writes user columns of the ownership worksheet.
	Ownership OwnershipRepository
	// Allocator hands out ownership columns to new accounts.
	Allocator ColumnAllocator
}

// LayoutFromConfig returns the worksheet titles configured in cfg.
func LayoutFromConfig(cfg config.Worksheets) Layout {
	return Layout{Credentials: cfg.Credentials, Ownership: cfg.Ownership}
}

// NewStorages initialises the storage layer over book. It performs the
// following steps:
//  1. When cfg.Bootstrap is set, creates missing worksheets and seeds the
//     ownership worksheet with the card catalog.
//  2. Opens the credential and ownership worksheets.
//  3. Constructs the repositories and the column allocator.
//
// Returns an error if a worksheet cannot be created or opened.
func NewStorages(ctx context.Context, book sheet.Spreadsheet, cfg config.Storage, allocation config.Allocation, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	layout := LayoutFromConfig(cfg.Worksheets)

	if cfg.Bootstrap {
		cards, err := catalog.BaseSet()
		if err != nil {
			return nil, fmt.Errorf("error loading card catalog: %w", err)
		}
		if err := Bootstrap(ctx, book, layout, cards, logger); err != nil {
			return nil, fmt.Errorf("bootstrap failed: %w", err)
		}
	}

	credentials, err := book.Worksheet(ctx, layout.Credentials)
	if err != nil {
		return nil, fmt.Errorf("error opening credential worksheet: %w", err)
	}

	ownership, err := book.Worksheet(ctx, layout.Ownership)
	if err != nil {
		return nil, fmt.Errorf("error opening ownership worksheet: %w", err)
	}

	return &Storages{
		Credentials: NewCredentialRepository(credentials, logger),
		Ownership:   NewOwnershipRepository(ownership, logger),
		Allocator:   NewColumnAllocator(ownership, allocation, logger),
	}, nil
}

// OpenSQLWorkbook connects to the SQL database selected by driver, applies
// the schema migrations and returns the workbook stored in it.
func OpenSQLWorkbook(ctx context.Context, driver string, cfg config.DB, logger *logger.Logger) (*SQLWorkbook, error) {
	var (
		db  *DB
		err error
	)

	switch driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, logger)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", driver, err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLWorkbook(db), nil
}
