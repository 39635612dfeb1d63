// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/internal/policy"
	"github.com/MKhiriev/go-yamdb/internal/utils"
)

// identify resolves the optional bearer token to the acting user and stores
// it in the request context under [utils.ActorCtxKey].
//
// A request without an "Authorization" header proceeds anonymously. A
// header that is malformed, or carries an expired, forged or orphaned
// token, is rejected with 401 even on endpoints anonymous users may read.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		actor, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.identify").Msg("bearer token rejected")
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithActor(ctx, actor)))
	})
}

// authorize applies route-level rules. Rules that need the resource owner
// run in the services once the resource is loaded.
func (h *Handler) authorize(rules ...policy.Rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req := policy.Request{
				Method: r.Method,
				Actor:  utils.GetActorFromContext(r.Context()),
			}
			if err := policy.Evaluate(req, rules...); err != nil {
				writeError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
