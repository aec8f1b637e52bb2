// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// no expectations: every statement goose issues fails
	_ = mock

	err = Migrate(context.Background(), db, "postgres")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(context.Background(), db, "excel")
	if err == nil {
		t.Fatal("expected error for unknown dialect, got nil")
	}

	if !strings.Contains(err.Error(), "unsupported dialect") {
		t.Errorf("expected dialect error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, "sqlite3")
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	if err != nil {
		t.Fatalf("reading embedded migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no embedded migrations")
	}

	body, err := embedMigrations.ReadFile(entries[0].Name())
	if err != nil {
		t.Fatalf("reading %s: %v", entries[0].Name(), err)
	}
	for _, want := range []string{"-- +goose Up", "CREATE TABLE IF NOT EXISTS cells", "-- +goose Down"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("migration %s lacks %q", entries[0].Name(), want)
		}
	}
}
