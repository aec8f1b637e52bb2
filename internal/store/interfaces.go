package store

import (
	"context"

	"github.com/MKhiriev/go-card-portfolio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialRepository reads and writes the credential worksheet.
type CredentialRepository interface {
	// FindByUsername returns the record whose username equals username
	// exactly, with its 1-based worksheet row.
	FindByUsername(ctx context.Context, username string) (models.Credential, int, error)
	// FindByPhone returns the record whose phone equals phone exactly.
	FindByPhone(ctx context.Context, phone string) (models.Credential, int, error)
	// Append adds one record after the last non-empty row.
	Append(ctx context.Context, credential models.Credential) error
	// UpdatePassword overwrites the password hash stored in row.
	UpdatePassword(ctx context.Context, row int, passwordHash string) error
}

// OwnershipRepository reads and writes user columns of the ownership worksheet.
type OwnershipRepository interface {
	ColumnForUsername(ctx context.Context, username string) (int, error)
	LabelForColumn(ctx context.Context, col int) (string, error)
	GetOwned(ctx context.Context, col, card int) (bool, error)
	SetOwned(ctx context.Context, col, card int, owned bool) error
	ResetAll(ctx context.Context, label string) error
	Snapshot(ctx context.Context, col int) ([]models.PortfolioEntry, error)
}

// ColumnAllocator hands every new account its own ownership column.
type ColumnAllocator interface {
	Allocate(ctx context.Context, username string) (col int, label string, err error)
}
