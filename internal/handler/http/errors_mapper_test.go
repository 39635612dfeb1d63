// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-yamdb/internal/policy"
	"github.com/MKhiriev/go-yamdb/internal/service"
	"github.com/MKhiriev/go-yamdb/internal/store"
	"github.com/MKhiriev/go-yamdb/internal/utils"
	"github.com/MKhiriev/go-yamdb/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"invalid confirmation code", service.ErrInvalidConfirmationCode, http.StatusBadRequest, service.ErrInvalidConfirmationCode.Error()},
		{"code resent", service.ErrConfirmationCodeResent, http.StatusBadRequest, service.ErrConfirmationCodeResent.Error()},
		{"wrapped json error", fmt.Errorf("%w: %w", ErrInvalidJSON, errors.New("unexpected EOF")), http.StatusBadRequest, ErrInvalidJSON.Error()},
		{"empty body", utils.ErrEmptyBody, http.StatusBadRequest, utils.ErrEmptyBody.Error()},
		{"anonymous", policy.ErrNotAuthenticated, http.StatusUnauthorized, policy.MsgNotAuthenticated},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, service.ErrTokenIsExpiredOrInvalid.Error()},
		{"bad header", utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, utils.ErrInvalidAuthorizationHeader.Error()},
		{"denied keeps its message", fmt.Errorf("delete review: %w", &policy.DeniedError{Message: "nope"}), http.StatusForbidden, "nope"},
		{"invalid page", service.ErrInvalidPage, http.StatusNotFound, "Invalid page."},
		{"missing user reads as not found", fmt.Errorf("lookup: %w", store.ErrNoUserWasFound), http.StatusNotFound, "Not found."},
		{"missing resource", store.ErrNotFound, http.StatusNotFound, "Not found."},
		{"bad path id", ErrInvalidPathID, http.StatusNotFound, "Not found."},
		{"slug taken", store.ErrSlugAlreadyExists, http.StatusBadRequest, store.ErrSlugAlreadyExists.Error()},
		{"duplicate review", store.ErrReviewAlreadyExists, http.StatusBadRequest, store.ErrReviewAlreadyExists.Error()},
		{"driver failure hides details", fmt.Errorf("%w: connection reset", store.ErrExecutingQuery), http.StatusInternalServerError, msgInternal},
		{"mail failure", service.ErrSendingConfirmationCode, http.StatusInternalServerError, msgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := classifyError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}

func TestWriteError_FieldError(t *testing.T) {
	fieldErr := validators.NewFieldError(validators.FieldUsername, store.ErrUsernameAlreadyExists.Error())
	err := errors.Join(fieldErr, store.ErrUsernameAlreadyExists)

	rr := httptest.NewRecorder()
	writeError(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup/", nil), err)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, map[string][]string{"username": {store.ErrUsernameAlreadyExists.Error()}}, body)
}

func TestWriteError_Message(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"Internal server error."}`, rr.Body.String())
}
