package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"password_hasher": "bcrypt",
			"bcrypt_cost": 10,
			"currency": "EUR"
		},
		"storage": {
			"driver": "sheets",
			"db": { "dsn": "cards.db" },
			"sheets": {
				"credentials_file": "key.json",
				"spreadsheet_id": "1AbC",
				"base_url": "http://localhost:9999",
				"request_timeout": "20s"
			},
			"worksheets": { "credentials": "users", "ownership": "cards" },
			"bootstrap": true
		},
		"allocation": { "mode": "cas", "max_attempts": 4 },
		"log": { "file": "client.log", "level": "error" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, App{PasswordHasher: "bcrypt", BcryptCost: 10, Currency: "EUR"}, cfg.App)
	assert.Equal(t, "sheets", cfg.Storage.Driver)
	assert.Equal(t, "cards.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 20*time.Second, cfg.Storage.Sheets.RequestTimeout)
	assert.Equal(t, "1AbC", cfg.Storage.Sheets.SpreadsheetID)
	assert.Equal(t, Worksheets{Credentials: "users", Ownership: "cards"}, cfg.Storage.Worksheets)
	assert.True(t, cfg.Storage.Bootstrap)
	assert.Equal(t, Allocation{Mode: "cas", MaxAttempts: 4}, cfg.Allocation)
	assert.Equal(t, Log{File: "client.log", Level: "error"}, cfg.Log)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"storage": `), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	jsonBody := `{
		"storage": { "sheets": { "request_timeout": "not-a-duration" } }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"string", `"1m30s"`, 90 * time.Second},
		{"number", `1000000000`, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, d.UnmarshalJSON([]byte(tt.input)))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}

	var d Duration
	assert.Error(t, d.UnmarshalJSON([]byte(`"nope"`)))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(2 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(b))
}
