// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const (
	minTokenBytes = 16

	// bounds accepted by golang.org/x/crypto/bcrypt
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the server.
func (cfg *StructuredConfig) validate() error {
	db := cfg.Storage.DB
	if db.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	if db.Driver != DriverPostgres && db.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenBytes < minTokenBytes {
		return fmt.Errorf("%w: token bytes must be at least %d", ErrInvalidAppConfigs, minTokenBytes)
	}
	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost out of range", ErrInvalidAppConfigs)
	}

	return nil
}
