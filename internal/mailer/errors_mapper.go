// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapGatewayError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch {
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrGatewayUnavailable, code, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrGatewayRejected, code, body)
	}
}
