package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHasher: HasherBcrypt,
			BcryptCost:     12,
			Currency:       "USD",
		},
		Storage: Storage{
			Driver: DriverSQLite,
			DB:     DB{DSN: "portfolio.db"},
			Sheets: Sheets{
				BaseURL:        "https://sheets.googleapis.com",
				RequestTimeout: 15 * time.Second,
			},
			Worksheets: Worksheets{
				Credentials: "login",
				Ownership:   "portfolio",
			},
		},
		Allocation: Allocation{
			Mode:        AllocationSingleWriter,
			MaxAttempts: 5,
		},
		Log: Log{File: "portfolio.log", Level: "info"},
	}
}
