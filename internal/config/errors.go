// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidAppConfigs is returned when a secret is missing or a domain
	// limit is inconsistent (e.g. MinScore > MaxScore).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs is returned when the DSN is empty or the
	// driver is not supported.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs is returned when the HTTP address is missing.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
