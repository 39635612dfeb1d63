// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mailer delivers outgoing email, in practice the confirmation code
// sent at signup.
//
// Two implementations ship: [NewHTTPMailer] posts messages to a JSON mail
// gateway through resty, and [NewLogMailer] writes them to the log for local
// development. [New] picks one from the configuration.
//
// Gateway responses are mapped to the sentinels in errors.go so callers can
// use [errors.Is] regardless of the status code.
package mailer

import (
	"context"

	"github.com/MKhiriev/go-yamdb/internal/config"
	"github.com/MKhiriev/go-yamdb/internal/logger"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer sends a single plain-text message. Implementations do not retry.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New returns the gateway mailer when cfg.APIURL is set and the log mailer
// otherwise.
func New(cfg config.Mailer, log *logger.Logger) (Mailer, error) {
	if cfg.APIURL == "" {
		log.Warn().Str("func", "mailer.New").Msg("mail gateway is not configured, messages go to the log")
		return NewLogMailer(log), nil
	}
	return NewHTTPMailer(cfg, log)
}
