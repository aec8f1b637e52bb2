package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-card-portfolio/internal/adapter"
	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
	"github.com/MKhiriev/go-card-portfolio/internal/store"
)

// ErrUnknownDriver is returned for a storage driver no backend is registered for.
var ErrUnknownDriver = errors.New("unknown storage driver")

var (
	_ sheet.Spreadsheet = (*adapter.SheetsSpreadsheet)(nil)
	_ sheet.Spreadsheet = (*store.SQLWorkbook)(nil)
	_ sheet.Spreadsheet = (*sheet.Memory)(nil)
)

// OpenSpreadsheet opens the workbook backend selected by cfg.Driver.
func OpenSpreadsheet(ctx context.Context, cfg config.Storage, logger *logger.Logger) (sheet.Spreadsheet, error) {
	switch cfg.Driver {
	case config.DriverSheets:
		tokens, err := adapter.NewServiceAccountTokenSource(cfg.Sheets.CredentialsFile, cfg.Sheets.RequestTimeout, logger)
		if err != nil {
			return nil, fmt.Errorf("load service account: %w", err)
		}
		book, err := adapter.NewSheetsSpreadsheet(cfg.Sheets, tokens, logger)
		if err != nil {
			return nil, fmt.Errorf("open google sheets: %w", err)
		}
		return book, nil
	case config.DriverSQLite, config.DriverPostgres:
		book, err := store.OpenSQLWorkbook(ctx, cfg.Driver, cfg.DB, logger)
		if err != nil {
			return nil, err
		}
		return book, nil
	case config.DriverMemory:
		return sheet.NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
