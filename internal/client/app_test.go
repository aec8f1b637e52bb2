package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
	"github.com/MKhiriev/go-card-portfolio/internal/tui"
	"github.com/MKhiriev/go-card-portfolio/models"
)

type scriptedUI struct {
	logins  []error
	logouts []bool
	mainErr error

	loginCalls int
	mainCalls  int
}

func (s *scriptedUI) LoginFlow(context.Context) (models.User, error) {
	err := s.logins[s.loginCalls]
	s.loginCalls++
	if err != nil {
		return models.User{}, err
	}
	return models.User{Username: "trainer1", Column: 6, ColumnLabel: "F"}, nil
}

func (s *scriptedUI) MainLoop(context.Context, models.User) (bool, error) {
	logout := s.logouts[s.mainCalls]
	s.mainCalls++
	return logout, s.mainErr
}

type closeCounter struct {
	sheet.Spreadsheet
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return nil
}

func newTestApp(ui UI) (*App, *closeCounter) {
	book := &closeCounter{Spreadsheet: sheet.NewMemory()}
	return &App{book: book, ui: ui, logger: logger.Nop()}, book
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name       string
		ui         *scriptedUI
		wantErr    bool
		wantLogins int
		wantMains  int
	}{
		{
			name:       "quit from menu",
			ui:         &scriptedUI{logins: []error{tui.ErrUserQuit}},
			wantLogins: 1,
		},
		{
			name:       "quit from portfolio",
			ui:         &scriptedUI{logins: []error{nil}, logouts: []bool{false}},
			wantLogins: 1,
			wantMains:  1,
		},
		{
			name:       "logout returns to login",
			ui:         &scriptedUI{logins: []error{nil, tui.ErrUserQuit}, logouts: []bool{true}},
			wantLogins: 2,
			wantMains:  1,
		},
		{
			name:       "login flow failure",
			ui:         &scriptedUI{logins: []error{errors.New("terminal gone")}},
			wantErr:    true,
			wantLogins: 1,
		},
		{
			name:       "portfolio failure",
			ui:         &scriptedUI{logins: []error{nil}, logouts: []bool{false}, mainErr: sheet.ErrOutOfRange},
			wantErr:    true,
			wantLogins: 1,
			wantMains:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, book := newTestApp(tt.ui)

			err := app.Run(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantLogins, tt.ui.loginCalls)
			assert.Equal(t, tt.wantMains, tt.ui.mainCalls)
			assert.Equal(t, 1, book.closed)
		})
	}
}

func TestOpenSpreadsheet(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		book, err := OpenSpreadsheet(ctx, config.Storage{Driver: config.DriverMemory}, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &sheet.Memory{}, book)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := config.Storage{
			Driver: config.DriverSQLite,
			DB:     config.DB{DSN: filepath.Join(t.TempDir(), "portfolio.db")},
		}
		book, err := OpenSpreadsheet(ctx, cfg, logger.Nop())
		require.NoError(t, err)
		assert.NoError(t, book.Close())
	})

	t.Run("sheets without key file", func(t *testing.T) {
		cfg := config.Storage{
			Driver: config.DriverSheets,
			Sheets: config.Sheets{
				CredentialsFile: filepath.Join(t.TempDir(), "missing.json"),
				SpreadsheetID:   "1AbC",
				BaseURL:         "http://localhost",
			},
		}
		_, err := OpenSpreadsheet(ctx, cfg, logger.Nop())
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := OpenSpreadsheet(ctx, config.Storage{Driver: "excel"}, logger.Nop())
		assert.ErrorIs(t, err, ErrUnknownDriver)
	})
}

func TestNewApp_MemoryDriver(t *testing.T) {
	cfg := &config.StructuredConfig{
		App: config.App{PasswordHasher: config.HasherBcrypt, BcryptCost: 4, Currency: "USD"},
		Storage: config.Storage{
			Driver:     config.DriverMemory,
			Worksheets: config.Worksheets{Credentials: "login", Ownership: "portfolio"},
		},
		Allocation: config.Allocation{Mode: config.AllocationSingleWriter, MaxAttempts: 5},
	}

	app, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("1.0.0", "2026-10-18", "abc"), logger.Nop())
	require.NoError(t, err)

	require.NotNil(t, app.services)

	for _, title := range []string{"login", "portfolio"} {
		_, err := app.book.Worksheet(context.Background(), title)
		assert.NoError(t, err, "worksheet %s is bootstrapped", title)
	}
	assert.NoError(t, app.book.Close())
}
