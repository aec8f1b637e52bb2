package admin

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/crypto"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
)

type harness struct {
	book *sheet.Memory
	cfg  *config.StructuredConfig
	out  bytes.Buffer
	err  bytes.Buffer
	in   string
}

func newHarness() *harness {
	return &harness{
		book: sheet.NewMemory(),
		cfg: &config.StructuredConfig{
			App: config.App{PasswordHasher: config.HasherBcrypt, BcryptCost: 4},
			Storage: config.Storage{
				Driver:     config.DriverMemory,
				Worksheets: config.Worksheets{Credentials: "login", Ownership: "portfolio"},
			},
		},
	}
}

func (h *harness) run(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()
	h.out.Reset()
	h.err.Reset()

	fs := flag.NewFlagSet("portfolio-admin", flag.ContinueOnError)
	cdr := subcommands.NewCommander(fs, "portfolio-admin")
	Register(cdr, &Env{
		Config: h.cfg,
		Open: func(context.Context, config.Storage, *logger.Logger) (sheet.Spreadsheet, error) {
			return h.book, nil
		},
		Logger: logger.Nop(),
		Out:    &h.out,
		Err:    &h.err,
		In:     strings.NewReader(h.in),
	})
	require.NoError(t, fs.Parse(args))

	return cdr.Execute(context.Background())
}

func TestInitThenVerify(t *testing.T) {
	h := newHarness()

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "init"))
	assert.Contains(t, h.out.String(), "Workbook ready: login, portfolio")

	assert.Equal(t, subcommands.ExitSuccess, h.run(t, "verify"))
	assert.Equal(t, "No issues found.\n", h.out.String())
}

func TestInit_IsIdempotent(t *testing.T) {
	h := newHarness()

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "init"))
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "init"))
	assert.Equal(t, subcommands.ExitSuccess, h.run(t, "verify"))
}

func TestVerify_ReportsIssues(t *testing.T) {
	h := newHarness()
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "init"))

	ws, err := h.book.Worksheet(context.Background(), "portfolio")
	require.NoError(t, err)
	// card 2 lives in row 3, its number in column D
	require.NoError(t, ws.UpdateCell(context.Background(), 3, 4, "99"))

	assert.Equal(t, subcommands.ExitFailure, h.run(t, "verify"))
	assert.Contains(t, h.out.String(), "portfolio!D3: card number")
	assert.Contains(t, h.out.String(), "1 issue(s) found.")
}

func TestVerify_MissingWorkbook(t *testing.T) {
	h := newHarness()

	assert.Equal(t, subcommands.ExitFailure, h.run(t, "verify"))
	assert.Contains(t, h.err.String(), "Error verifying workbook")
}

func TestHash(t *testing.T) {
	hasher, err := crypto.NewPasswordHasher(config.App{PasswordHasher: config.HasherBcrypt, BcryptCost: 4})
	require.NoError(t, err)

	t.Run("argument", func(t *testing.T) {
		h := newHarness()

		require.Equal(t, subcommands.ExitSuccess, h.run(t, "hash", "pass1"))
		assert.NoError(t, hasher.Verify(strings.TrimSpace(h.out.String()), "pass1"))
	})

	t.Run("stdin", func(t *testing.T) {
		h := newHarness()
		h.in = "pass2\n"

		require.Equal(t, subcommands.ExitSuccess, h.run(t, "hash"))
		assert.NoError(t, hasher.Verify(strings.TrimSpace(h.out.String()), "pass2"))
	})

	t.Run("argon2id", func(t *testing.T) {
		h := newHarness()
		h.cfg.App.PasswordHasher = config.HasherArgon2id

		require.Equal(t, subcommands.ExitSuccess, h.run(t, "hash", "pass3"))
		assert.True(t, strings.HasPrefix(h.out.String(), "$argon2id$"))
		assert.NoError(t, hasher.Verify(strings.TrimSpace(h.out.String()), "pass3"))
	})

	t.Run("empty", func(t *testing.T) {
		h := newHarness()

		assert.Equal(t, subcommands.ExitUsageError, h.run(t, "hash"))
		assert.Contains(t, h.err.String(), "a password is required")
	})
}
