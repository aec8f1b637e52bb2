package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("portfolio", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-driver", "postgres",
		"-d", "postgres://localhost/cards",
		"-spreadsheet-id", "1AbC",
		"-credentials-file", "key.json",
		"-sheets-url", "http://localhost:9999",
		"-request-timeout", "5s",
		"-bootstrap",
		"-hasher", "argon2id",
		"-bcrypt-cost", "11",
		"-currency", "GBP",
		"-allocation-mode", "cas",
		"-allocation-attempts", "3",
		"-log-file", "client.log",
		"-log-level", "warn",
		"-config", "cfg.json",
	}

	cfg, err := ParseFlags(newTestFlagSet(), args)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "postgres://localhost/cards", cfg.Storage.DB.DSN)
	assert.Equal(t, Sheets{
		CredentialsFile: "key.json",
		SpreadsheetID:   "1AbC",
		BaseURL:         "http://localhost:9999",
		RequestTimeout:  5 * time.Second,
	}, cfg.Storage.Sheets)
	assert.True(t, cfg.Storage.Bootstrap)
	assert.Equal(t, App{PasswordHasher: "argon2id", BcryptCost: 11, Currency: "GBP"}, cfg.App)
	assert.Equal(t, Allocation{Mode: "cas", MaxAttempts: 3}, cfg.Allocation)
	assert.Equal(t, Log{File: "client.log", Level: "warn"}, cfg.Log)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags(newTestFlagSet(), []string{"-c", "short.json"})
	require.NoError(t, err)
	assert.Equal(t, "short.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(newTestFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := map[string][]string{
		"unknown flag":  {"-unknown"},
		"bad duration":  {"-request-timeout", "later"},
		"bad int":       {"-bcrypt-cost", "high"},
		"missing value": {"-driver"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFlags(newTestFlagSet(), args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
