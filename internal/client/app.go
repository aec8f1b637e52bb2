package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-card-portfolio/internal/catalog"
	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/crypto"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/service"
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
	"github.com/MKhiriev/go-card-portfolio/internal/store"
	"github.com/MKhiriev/go-card-portfolio/internal/tui"
	"github.com/MKhiriev/go-card-portfolio/models"
)

// UI is the part of the terminal interface App drives.
type UI interface {
	LoginFlow(ctx context.Context) (models.User, error)
	MainLoop(ctx context.Context, user models.User) (logout bool, err error)
}

type App struct {
	book     sheet.Spreadsheet
	services *service.Services
	ui       UI

	logger *logger.Logger
}

// NewApp opens the configured workbook and builds the services and the
// terminal UI over it.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storageCfg := cfg.Storage
	if storageCfg.Driver == config.DriverMemory {
		// an empty in-memory workbook is useless without its worksheets
		storageCfg.Bootstrap = true
	}

	book, err := OpenSpreadsheet(ctx, storageCfg, logger)
	if err != nil {
		return nil, err
	}

	services, err := newServices(ctx, book, storageCfg, cfg, logger)
	if err != nil {
		_ = book.Close()
		return nil, err
	}

	ui, err := tui.New(services, buildInfo, logger)
	if err != nil {
		_ = book.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{book: book, services: services, ui: ui, logger: logger}, nil
}

func newServices(ctx context.Context, book sheet.Spreadsheet, storageCfg config.Storage, cfg *config.StructuredConfig, logger *logger.Logger) (*service.Services, error) {
	storages, err := store.NewStorages(ctx, book, storageCfg, cfg.Allocation, logger)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	cards, err := catalog.BaseSet()
	if err != nil {
		return nil, fmt.Errorf("load card catalog: %w", err)
	}

	hasher, err := crypto.NewPasswordHasher(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("create password hasher: %w", err)
	}

	return service.NewServices(storages, cards, hasher, cfg.App, logger), nil
}

// Run shows the login flow and then the portfolio of the logged-in user.
// Logging out returns to the login flow. Quitting ends Run without error.
func (a *App) Run(ctx context.Context) error {
	// store code logs through the context logger; keep it off the terminal
	ctx = a.logger.WithContext(ctx)

	defer func() {
		if err := a.book.Close(); err != nil {
			a.logger.Error().Err(err).Msg("close workbook")
		}
	}()

	for {
		user, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("portfolio: %w", err)
		}
		if !logout {
			return nil
		}
		a.logger.WithSession(user.SessionID, user.Username).Info().Msg("logged out")
	}
}
