// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the review
// service. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds secrets, token parameters and domain limits.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Mailer holds the settings of the confirmation code delivery channel.
	Mailer Mailer `envPrefix:"MAILER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SecretKey is the process-wide secret confirmation codes are derived
	// from.
	SecretKey string `env:"SECRET_KEY"`

	// TokenSignKey is the HMAC secret used to sign access tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued access token.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an access token stays valid.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// CodeWindow is the width of one confirmation code time bucket.
	CodeWindow time.Duration `env:"CODE_WINDOW"`

	// CodeGraceWindows is how many buckets before the current one a code is
	// still accepted in.
	CodeGraceWindows int `env:"CODE_GRACE_WINDOWS"`

	// MinScore and MaxScore bound the review score, both inclusive.
	MinScore int `env:"MIN_SCORE"`
	MaxScore int `env:"MAX_SCORE"`

	// PageSize is the number of items on one page of a list endpoint.
	PageSize int `env:"PAGE_SIZE"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// Driver is the database/sql driver name: "pgx" or "sqlite3".
	Driver string `env:"DRIVER"`

	// DSN is the connection string passed to the driver.
	DSN string `env:"DATABASE_URI"`
}

// Server holds the HTTP server settings.
type Server struct {
	HTTPAddress    string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Mailer holds the confirmation email settings. When APIURL is empty,
// messages are written to the log instead of being sent.
type Mailer struct {
	From    string        `env:"FROM"`
	APIURL  string        `env:"API_URL"`
	APIKey  string        `env:"API_KEY"`
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetStructuredConfig loads, merges and validates the service configuration.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetEnvConfig is GetStructuredConfig without command-line flags, for
// tools that parse their own.
func GetEnvConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		build()
}
