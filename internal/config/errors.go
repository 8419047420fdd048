package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidStorageConfigs indicates an empty DSN or an unsupported driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates unusable credential parameters
	// (token length, bcrypt cost).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
