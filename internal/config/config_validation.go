// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}
	if err := cfg.Storage.validate(); err != nil {
		return err
	}
	if err := cfg.Allocation.validate(); err != nil {
		return err
	}
	return cfg.Log.validate()
}

func (l Log) validate() error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil || l.Level == "" {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidLogConfigs, l.Level)
	}
	return nil
}

func (a App) validate() error {
	switch a.PasswordHasher {
	case HasherBcrypt, HasherArgon2id:
	default:
		return fmt.Errorf("%w: unknown password hasher %q", ErrInvalidAppConfigs, a.PasswordHasher)
	}

	if a.PasswordHasher == HasherBcrypt && (a.BcryptCost < bcrypt.MinCost || a.BcryptCost > bcrypt.MaxCost) {
		return fmt.Errorf("%w: bcrypt cost %d", ErrInvalidAppConfigs, a.BcryptCost)
	}

	if money.GetCurrency(a.Currency) == nil {
		return fmt.Errorf("%w: unknown currency %q", ErrInvalidAppConfigs, a.Currency)
	}

	return nil
}

func (s Storage) validate() error {
	switch s.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver needs a DSN", ErrInvalidStorageConfigs, s.Driver)
		}
	case DriverSheets:
		if s.Sheets.CredentialsFile == "" || s.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("%w: sheets driver needs a credentials file and a spreadsheet id", ErrInvalidStorageConfigs)
		}
		if s.Sheets.RequestTimeout <= 0 {
			return fmt.Errorf("%w: sheets request timeout must be positive", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, s.Driver)
	}

	if s.Worksheets.Credentials == "" || s.Worksheets.Ownership == "" {
		return fmt.Errorf("%w: empty worksheet title", ErrInvalidStorageConfigs)
	}
	if s.Worksheets.Credentials == s.Worksheets.Ownership {
		return fmt.Errorf("%w: worksheets must have distinct titles", ErrInvalidStorageConfigs)
	}

	return nil
}

func (a Allocation) validate() error {
	switch a.Mode {
	case AllocationSingleWriter, AllocationCAS:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidAllocationConfigs, a.Mode)
	}

	if a.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be at least 1", ErrInvalidAllocationConfigs)
	}

	return nil
}
