package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses all configuration flags from args into a fresh
// [StructuredConfig]. Flags are registered on fs.
//
// Flags:
//
//	-driver storage driver (sheets, sqlite, postgres, memory)
//	-d database DSN
//	-spreadsheet-id Google Sheets spreadsheet id
//	-credentials-file service-account key file
//	-sheets-url Google Sheets API base URL
//	-request-timeout Sheets request timeout (e.g., "10s")
//	-bootstrap create and seed missing worksheets
//	-hasher password hasher (bcrypt, argon2id)
//	-bcrypt-cost bcrypt work factor
//	-currency appraisal currency
//	-allocation-mode column allocation mode (single-writer, cas)
//	-allocation-attempts max allocation attempts in cas mode
//	-log-file log file path
//	-log-level minimum log level
//	-c/-config json file path with configs
func ParseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var driver, dsn string
	var spreadsheetID, credentialsFile, sheetsURL string
	var requestTimeout time.Duration
	var bootstrap bool
	var hasher string
	var bcryptCost int
	var currency string
	var allocationMode string
	var allocationAttempts int
	var logFile, logLevel string
	var jsonConfigPath string

	fs.StringVar(&driver, "driver", "", "Storage driver (sheets, sqlite, postgres, memory)")
	fs.StringVar(&dsn, "d", "", "Database DSN")
	fs.StringVar(&spreadsheetID, "spreadsheet-id", "", "Google Sheets spreadsheet id")
	fs.StringVar(&credentialsFile, "credentials-file", "", "Service account key file")
	fs.StringVar(&sheetsURL, "sheets-url", "", "Google Sheets API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Sheets request timeout (e.g., 10s)")
	fs.BoolVar(&bootstrap, "bootstrap", false, "Create and seed missing worksheets")
	fs.StringVar(&hasher, "hasher", "", "Password hasher (bcrypt, argon2id)")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	fs.StringVar(&currency, "currency", "", "Appraisal currency (ISO 4217)")
	fs.StringVar(&allocationMode, "allocation-mode", "", "Column allocation mode (single-writer, cas)")
	fs.IntVar(&allocationAttempts, "allocation-attempts", 0, "Max allocation attempts in cas mode")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHasher: hasher,
			BcryptCost:     bcryptCost,
			Currency:       currency,
		},
		Storage: Storage{
			Driver: driver,
			DB: DB{
				DSN: dsn,
			},
			Sheets: Sheets{
				CredentialsFile: credentialsFile,
				SpreadsheetID:   spreadsheetID,
				BaseURL:         sheetsURL,
				RequestTimeout:  requestTimeout,
			},
			Bootstrap: bootstrap,
		},
		Allocation: Allocation{
			Mode:        allocationMode,
			MaxAttempts: allocationAttempts,
		},
		Log:          Log{File: logFile, Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}
