package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		PasswordHasher string `json:"password_hasher"`
		BcryptCost     int    `json:"bcrypt_cost"`
		Currency       string `json:"currency"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Sheets struct {
			CredentialsFile string   `json:"credentials_file"`
			SpreadsheetID   string   `json:"spreadsheet_id"`
			BaseURL         string   `json:"base_url"`
			RequestTimeout  Duration `json:"request_timeout"`
		} `json:"sheets,omitempty"`

		Worksheets struct {
			Credentials string `json:"credentials"`
			Ownership   string `json:"ownership"`
		} `json:"worksheets,omitempty"`

		Bootstrap bool `json:"bootstrap"`
	} `json:"storage,omitempty"`

	Allocation struct {
		Mode        string `json:"mode"`
		MaxAttempts int    `json:"max_attempts"`
	} `json:"allocation,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PasswordHasher: jsonCfg.App.PasswordHasher,
			BcryptCost:     jsonCfg.App.BcryptCost,
			Currency:       jsonCfg.App.Currency,
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Sheets: Sheets{
				CredentialsFile: jsonCfg.Storage.Sheets.CredentialsFile,
				SpreadsheetID:   jsonCfg.Storage.Sheets.SpreadsheetID,
				BaseURL:         jsonCfg.Storage.Sheets.BaseURL,
				RequestTimeout:  time.Duration(jsonCfg.Storage.Sheets.RequestTimeout),
			},
			Worksheets: Worksheets{
				Credentials: jsonCfg.Storage.Worksheets.Credentials,
				Ownership:   jsonCfg.Storage.Worksheets.Ownership,
			},
			Bootstrap: jsonCfg.Storage.Bootstrap,
		},
		Allocation: Allocation{
			Mode:        jsonCfg.Allocation.Mode,
			MaxAttempts: jsonCfg.Allocation.MaxAttempts,
		},
		Log:          Log{File: jsonCfg.Log.File, Level: jsonCfg.Log.Level},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
