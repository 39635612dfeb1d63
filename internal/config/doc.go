// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the review service.
//
// Configuration is assembled from multiple sources. Sources are merged in
// the following order, and a field already set by an earlier source is not
// overwritten by a later one:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left unset by every source receive the defaults from defaults.go.
// The main entry point is [GetStructuredConfig].
package config
