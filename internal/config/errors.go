package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown driver or a missing DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown hasher or currency).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAllocationConfigs indicates invalid column allocation settings.
	ErrInvalidAllocationConfigs = errors.New("invalid allocation configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
