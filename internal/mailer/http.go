// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-yamdb/internal/config"
	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/internal/utils"
)

const sendPath = "/messages"

type httpMailer struct {
	client *utils.HTTPClient
	from   string
	apiKey string

	logger *logger.Logger
}

// NewHTTPMailer constructs a [Mailer] that POSTs every message as JSON to
// cfg.APIURL + "/messages", authenticated with cfg.APIKey as a bearer token
// when it is set.
func NewHTTPMailer(cfg config.Mailer, logger *logger.Logger) (Mailer, error) {
	baseURL, err := normalizeBaseURL(cfg.APIURL)
	if err != nil {
		return nil, err
	}

	return &httpMailer{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		from:   cfg.From,
		apiKey: cfg.APIKey,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyGatewayURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidGatewayURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidGatewayURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (m *httpMailer) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)

	if msg.To == "" {
		return ErrNoRecipient
	}
	if msg.From == "" {
		msg.From = m.from
	}

	req := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg)
	if m.apiKey != "" {
		req.SetAuthToken(m.apiKey)
	}

	resp, err := req.Post(sendPath)
	if err != nil {
		log.Err(err).Str("func", "*httpMailer.Send").Msg("mail gateway request failed")
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}
	if err = mapGatewayError(resp); err != nil {
		log.Err(err).Str("func", "*httpMailer.Send").Msg("mail gateway returned an error")
		return err
	}

	log.Debug().Str("func", "*httpMailer.Send").Str("to", msg.To).Msg("mail sent")
	return nil
}
