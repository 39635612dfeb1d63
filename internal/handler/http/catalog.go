// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-yamdb/internal/service"
	"github.com/MKhiriev/go-yamdb/internal/store"
	"github.com/MKhiriev/go-yamdb/internal/utils"
	"github.com/go-chi/chi/v5"
)

const slugParam = "slug"

// slugRoutes mounts list, create and delete of categories or genres.
func slugRoutes[T store.Slugged](h *Handler, svc service.SlugService[T]) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/", listSlugs(h, svc))
		r.Post("/", createSlug(svc))
		r.Delete("/{slug}", deleteSlug(svc))
	}
}

func listSlugs[T store.Slugged](h *Handler, svc service.SlugService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := h.pageRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		page, err := svc.List(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, pageResponse(r, page, req), http.StatusOK)
	}
}

func createSlug[T store.Slugged](svc service.SlugService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item T
		if err := decodeBody(r, &item); err != nil {
			writeError(w, r, err)
			return
		}

		created, err := svc.Create(r.Context(), item)
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, created, http.StatusCreated)
	}
}

func deleteSlug[T store.Slugged](svc service.SlugService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, slugParam)); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
