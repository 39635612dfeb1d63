// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-yamdb/internal/utils"
	"github.com/MKhiriev/go-yamdb/internal/validators"
	"github.com/MKhiriev/go-yamdb/models"
)

const (
	titleIDParam = "titleID"

	msgEnterNumber = "Enter a number."
)

// titleFilter reads the category, genre, name and year query parameters.
func titleFilter(r *http.Request) (models.TitleFilter, error) {
	query := r.URL.Query()
	filter := models.TitleFilter{
		Category: query.Get(validators.FieldCategory),
		Genre:    query.Get(validators.FieldGenre),
		Name:     query.Get(validators.FieldName),
	}

	if raw := query.Get(validators.FieldYear); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return models.TitleFilter{}, validators.NewFieldError(validators.FieldYear, msgEnterNumber)
		}
		filter.Year = year
	}
	return filter, nil
}

func (h *Handler) listTitles(w http.ResponseWriter, r *http.Request) {
	filter, err := titleFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	req, err := h.pageRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.TitleService.List(r.Context(), filter, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, pageResponse(r, page, req), http.StatusOK)
}

func (h *Handler) createTitle(w http.ResponseWriter, r *http.Request) {
	var input models.TitleInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	title, err := h.services.TitleService.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, title, http.StatusCreated)
}

func (h *Handler) getTitle(w http.ResponseWriter, r *http.Request) {
	titleID, err := pathID(r, titleIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	title, err := h.services.TitleService.Get(r.Context(), titleID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, title, http.StatusOK)
}

func (h *Handler) updateTitle(w http.ResponseWriter, r *http.Request) {
	titleID, err := pathID(r, titleIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.TitleInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	title, err := h.services.TitleService.Update(r.Context(), titleID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, title, http.StatusOK)
}

func (h *Handler) deleteTitle(w http.ResponseWriter, r *http.Request) {
	titleID, err := pathID(r, titleIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.TitleService.Delete(r.Context(), titleID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
