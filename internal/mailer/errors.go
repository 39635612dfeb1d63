// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import "errors"

var (
	ErrEmptyGatewayURL    = errors.New("mail gateway address is empty")
	ErrInvalidGatewayURL  = errors.New("invalid mail gateway address")
	ErrNoRecipient        = errors.New("message has no recipient")
	ErrSendingMail        = errors.New("error sending mail")
	ErrGatewayRejected    = errors.New("mail gateway rejected the message")
	ErrGatewayUnavailable = errors.New("mail gateway is unavailable")
)
