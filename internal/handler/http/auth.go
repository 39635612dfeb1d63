// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/internal/utils"
	"github.com/MKhiriev/go-yamdb/models"
)

// signup registers a user and mails the confirmation code. The request body
// is echoed back on success.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("func", "*Handler.signup").Int64("user_id", user.UserID).Msg("user signed up")
	utils.WriteJSON(w, models.SignupRequest{Username: user.Username, Email: user.Email}, http.StatusOK)
}

// token exchanges a confirmation code for an access token.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.ExchangeToken(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
