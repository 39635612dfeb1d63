// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Default values applied to fields no source has set.
const (
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultTokenIssuer      = "go-yamdb"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultCodeWindow       = time.Hour
	DefaultCodeGraceWindows = 24
	DefaultMinScore         = 1
	DefaultMaxScore         = 10
	DefaultPageSize         = 10
	DefaultDBDriver         = DriverPostgres
	DefaultMailFrom         = "noreply@yamdb.local"
	DefaultMailTimeout      = 10 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.CodeWindow == 0 {
		cfg.App.CodeWindow = DefaultCodeWindow
	}
	if cfg.App.CodeGraceWindows == 0 {
		cfg.App.CodeGraceWindows = DefaultCodeGraceWindows
	}
	if cfg.App.MinScore == 0 && cfg.App.MaxScore == 0 {
		cfg.App.MinScore = DefaultMinScore
		cfg.App.MaxScore = DefaultMaxScore
	}
	if cfg.App.PageSize == 0 {
		cfg.App.PageSize = DefaultPageSize
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}
	if cfg.Mailer.From == "" {
		cfg.Mailer.From = DefaultMailFrom
	}
	if cfg.Mailer.Timeout == 0 {
		cfg.Mailer.Timeout = DefaultMailTimeout
	}
}
