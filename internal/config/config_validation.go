// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks a merged config with defaults applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SecretKey == "" || cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: secret key and token sign key are required", ErrInvalidAppConfigs)
	}
	if cfg.App.MinScore > cfg.App.MaxScore {
		return fmt.Errorf("%w: min score %d is greater than max score %d", ErrInvalidAppConfigs, cfg.App.MinScore, cfg.App.MaxScore)
	}
	if cfg.App.PageSize < 1 || cfg.App.CodeGraceWindows < 0 {
		return fmt.Errorf("%w: page size and code grace windows must not be negative", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
