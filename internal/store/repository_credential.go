package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
	"github.com/MKhiriev/go-card-portfolio/models"
)

// credentialRepository is the worksheet-backed implementation of
// [CredentialRepository]. Every lookup is a scan of one column; uniqueness is
// checked by the caller before Append.
type credentialRepository struct {
	ws     sheet.Worksheet
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] over the
// credential worksheet ws.
func NewCredentialRepository(ws sheet.Worksheet, logger *logger.Logger) CredentialRepository {
	logger.Debug().Str("worksheet", ws.Title()).Msg("creating credential repository")
	return &credentialRepository{
		ws:     ws,
		logger: logger,
	}
}

func (r *credentialRepository) FindByUsername(ctx context.Context, username string) (models.Credential, int, error) {
	return r.findBy(ctx, usernameCol, username)
}

func (r *credentialRepository) FindByPhone(ctx context.Context, phone string) (models.Credential, int, error) {
	return r.findBy(ctx, phoneCol, phone)
}

// findBy scans the data rows of col for an exact match. The header row is
// skipped so that a username equal to a header label is still unique.
func (r *credentialRepository) findBy(ctx context.Context, col int, value string) (models.Credential, int, error) {
	log := logger.FromContextOr(ctx, r.logger)

	values, err := r.ws.Column(ctx, col)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.findBy").Int("col", col).Msg("error reading credential column")
		return models.Credential{}, 0, fmt.Errorf("error reading credential column %d: %w", col, err)
	}

	for i := credentialHeaderRow; i < len(values); i++ {
		if values[i] != value {
			continue
		}

		row := i + 1
		cells, err := r.ws.Row(ctx, row)
		if err != nil {
			log.Err(err).Str("func", "*credentialRepository.findBy").Int("row", row).Msg("error reading credential row")
			return models.Credential{}, 0, fmt.Errorf("error reading credential row %d: %w", row, err)
		}

		return credentialFromRow(cells), row, nil
	}

	return models.Credential{}, 0, ErrCredentialNotFound
}

func (r *credentialRepository) Append(ctx context.Context, credential models.Credential) error {
	err := r.ws.AppendRow(ctx, []string{credential.Username, credential.PasswordHash, credential.Phone})
	if err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).
			Str("func", "*credentialRepository.Append").
			Str("username", credential.Username).
			Msg("error appending credential")
		return fmt.Errorf("error appending credential: %w", err)
	}

	return nil
}

func (r *credentialRepository) UpdatePassword(ctx context.Context, row int, passwordHash string) error {
	if row <= credentialHeaderRow {
		return fmt.Errorf("%w: credential row %d", sheet.ErrOutOfRange, row)
	}

	if err := r.ws.UpdateCell(ctx, row, passwordCol, passwordHash); err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).
			Str("func", "*credentialRepository.UpdatePassword").
			Int("row", row).
			Msg("error updating password hash")
		return fmt.Errorf("error updating password hash: %w", err)
	}

	return nil
}

func credentialFromRow(cells []string) models.Credential {
	padded := make([]string, credentialCols)
	copy(padded, cells)

	return models.Credential{
		Username:     padded[usernameCol-1],
		PasswordHash: padded[passwordCol-1],
		Phone:        padded[phoneCol-1],
	}
}
