// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-yamdb/internal/config"
	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/internal/service"
)

const defaultPageSize = 10

type Handler struct {
	services *service.Services

	// pageSize is the number of items on one page of every list endpoint.
	pageSize int

	// requestTimeout cancels the context of slow requests; zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler constructs the HTTP [Handler] over the service layer.
//
// A page size below one falls back to the default, and a zero request
// timeout leaves the Timeout middleware out of the chain.
//
// Parameters:
//
//	services - service layer built by [service.NewServices]
//	cfg      - full configuration; App.PageSize and Server.RequestTimeout are read
//	logger   - base logger for middleware and handlers
//
// Returns:
//
//	*Handler - call [Handler.Init] to obtain the router
//
// Example usage:
//
//	h := http.NewHandler(services, cfg, log)
//	router := h.Init()
func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	pageSize := cfg.App.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	logger.Info().Int("page_size", pageSize).Dur("request_timeout", cfg.Server.RequestTimeout).Msg("http handler created")
	return &Handler{
		services:       services,
		pageSize:       pageSize,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
