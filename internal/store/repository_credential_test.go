package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
	"github.com/MKhiriev/go-card-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialRepository_AppendThenFind(t *testing.T) {
	ctx := context.Background()
	_, s := newTestStorages(t, config.Allocation{})

	ash := models.Credential{Username: "trainer1", PasswordHash: "$2a$hash1", Phone: "5551234567"}
	misty := models.Credential{Username: "misty_w", PasswordHash: "$2a$hash2", Phone: "5559876543"}
	require.NoError(t, s.Credentials.Append(ctx, ash))
	require.NoError(t, s.Credentials.Append(ctx, misty))

	got, row, err := s.Credentials.FindByUsername(ctx, "trainer1")
	require.NoError(t, err)
	assert.Equal(t, ash, got)
	assert.Equal(t, 2, row)

	got, row, err = s.Credentials.FindByPhone(ctx, "5559876543")
	require.NoError(t, err)
	assert.Equal(t, misty, got)
	assert.Equal(t, 3, row)
}

func TestCredentialRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	_, s := newTestStorages(t, config.Allocation{})

	require.NoError(t, s.Credentials.Append(ctx, models.Credential{Username: "trainer1", PasswordHash: "h", Phone: "5551234567"}))

	tests := []struct {
		name    string
		byPhone bool
		value   string
	}{
		{name: "unknown username", value: "trainer2"},
		{name: "case differs", value: "Trainer1"},
		{name: "header is not a record", value: "username"},
		{name: "unknown phone", byPhone: true, value: "5550000000"},
		{name: "phone prefix", byPhone: true, value: "555123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			find := s.Credentials.FindByUsername
			if tt.byPhone {
				find = s.Credentials.FindByPhone
			}

			_, _, err := find(ctx, tt.value)
			assert.ErrorIs(t, err, ErrCredentialNotFound)
		})
	}
}

func TestCredentialRepository_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	_, s := newTestStorages(t, config.Allocation{})

	require.NoError(t, s.Credentials.Append(ctx, models.Credential{Username: "trainer1", PasswordHash: "old", Phone: "5551234567"}))

	_, row, err := s.Credentials.FindByPhone(ctx, "5551234567")
	require.NoError(t, err)

	require.NoError(t, s.Credentials.UpdatePassword(ctx, row, "new"))
	require.NoError(t, s.Credentials.UpdatePassword(ctx, row, "newer"))

	got, _, err := s.Credentials.FindByUsername(ctx, "trainer1")
	require.NoError(t, err)
	assert.Equal(t, "newer", got.PasswordHash)
	assert.Equal(t, "5551234567", got.Phone)

	assert.ErrorIs(t, s.Credentials.UpdatePassword(ctx, 1, "x"), sheet.ErrOutOfRange)
}

// failingSheet wraps a worksheet and fails the selected operations.
type failingSheet struct {
	sheet.Worksheet
	failAppend bool
	failColumn bool
	failApply  bool
	err        error
}

func (f *failingSheet) AppendRow(ctx context.Context, values []string) error {
	if f.failAppend {
		return f.err
	}
	return f.Worksheet.AppendRow(ctx, values)
}

func (f *failingSheet) Column(ctx context.Context, col int) ([]string, error) {
	if f.failColumn {
		return nil, f.err
	}
	return f.Worksheet.Column(ctx, col)
}

func (f *failingSheet) Apply(ctx context.Context, batch sheet.Batch) error {
	if f.failApply {
		return f.err
	}
	return f.Worksheet.Apply(ctx, batch)
}

func TestCredentialRepository_TransportErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	book, _ := newTestStorages(t, config.Allocation{})
	transport := errors.New("quota exceeded")

	ws := &failingSheet{Worksheet: worksheet(t, book, "login"), failAppend: true, failColumn: true, err: transport}
	repo := NewCredentialRepository(ws, logger.Nop())

	err := repo.Append(ctx, models.Credential{Username: "trainer1"})
	assert.ErrorIs(t, err, transport)

	_, _, err = repo.FindByUsername(ctx, "trainer1")
	assert.ErrorIs(t, err, transport)
	assert.NotErrorIs(t, err, ErrCredentialNotFound)
}
