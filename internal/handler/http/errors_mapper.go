// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/internal/policy"
	"github.com/MKhiriev/go-yamdb/internal/service"
	"github.com/MKhiriev/go-yamdb/internal/store"
	"github.com/MKhiriev/go-yamdb/internal/utils"
	"github.com/MKhiriev/go-yamdb/internal/validators"
)

const msgInternal = "Internal server error."

// errorStatus maps a sentinel to its status. message overrides the text
// rendered to the client; empty means the sentinel's own text.
type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []errorStatus{
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
	{target: service.ErrInvalidConfirmationCode, status: http.StatusBadRequest},
	{target: service.ErrConfirmationCodeResent, status: http.StatusBadRequest},
	{target: validators.ErrValidation, status: http.StatusBadRequest},
	{target: ErrInvalidJSON, status: http.StatusBadRequest},
	{target: ErrInvalidGzipBody, status: http.StatusBadRequest},
	{target: utils.ErrEmptyBody, status: http.StatusBadRequest},

	{target: policy.ErrNotAuthenticated, status: http.StatusUnauthorized},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized},
	{target: utils.ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized},

	{target: policy.ErrPermissionDenied, status: http.StatusForbidden},

	{target: service.ErrInvalidPage, status: http.StatusNotFound},
	{target: store.ErrNoUserWasFound, status: http.StatusNotFound, message: store.ErrNotFound.Error()},
	{target: store.ErrNotFound, status: http.StatusNotFound},
	{target: ErrInvalidPathID, status: http.StatusNotFound},

	{target: store.ErrUsernameAlreadyExists, status: http.StatusBadRequest},
	{target: store.ErrEmailAlreadyExists, status: http.StatusBadRequest},
	{target: store.ErrSlugAlreadyExists, status: http.StatusBadRequest},
	{target: store.ErrReviewAlreadyExists, status: http.StatusBadRequest},
}

func statusFromError(err error) int {
	status, _ := classifyError(err)
	return status
}

// classifyError returns the status and client message of err.
func classifyError(err error) (int, string) {
	var denied *policy.DeniedError
	if errors.As(err, &denied) {
		return http.StatusForbidden, denied.Message
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			if e.message != "" {
				return e.status, e.message
			}
			return e.status, e.target.Error()
		}
	}
	return http.StatusInternalServerError, msgInternal
}

// writeError renders err. A field error becomes {"field": ["message"]},
// anything else {"message": "..."}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) && !fieldErr.Empty() {
		log.Debug().Err(err).Msg("request rejected by validation")
		utils.WriteJSON(w, fieldErr.Fields, http.StatusBadRequest)
		return
	}

	status, message := classifyError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, map[string]string{"message": message}, status)
}
