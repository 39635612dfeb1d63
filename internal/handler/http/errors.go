// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("JSON parse error")

	// ErrInvalidPathID is returned when a numeric path parameter is not a
	// positive integer. It is reported as not found, like an unknown id.
	ErrInvalidPathID = errors.New("Not found.")

	// ErrInvalidGzipBody is returned when a request declares gzip encoding
	// but its body is not valid gzip data.
	ErrInvalidGzipBody = errors.New("invalid gzip data")
)
