// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-yamdb/internal/utils"
	"github.com/MKhiriev/go-yamdb/models"
)

const reviewIDParam = "reviewID"

// reviewPath holds the ids of /titles/{titleID}/reviews/{reviewID}. reviewID
// is zero on collection routes.
type reviewPath struct {
	titleID  int64
	reviewID int64
}

func parseReviewPath(r *http.Request, withReview bool) (reviewPath, error) {
	var (
		p   reviewPath
		err error
	)
	if p.titleID, err = pathID(r, titleIDParam); err != nil {
		return reviewPath{}, err
	}
	if withReview {
		if p.reviewID, err = pathID(r, reviewIDParam); err != nil {
			return reviewPath{}, err
		}
	}
	return p, nil
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	p, err := parseReviewPath(r, false)
	if err != nil {
		writeError(w, r, err)
		return
	}
	req, err := h.pageRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.ReviewService.List(r.Context(), p.titleID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, pageResponse(r, page, req), http.StatusOK)
}

// createReview stores a review by the caller. The title comes from the path
// and the author from the token, never from the body.
func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	p, err := parseReviewPath(r, false)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.ReviewInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	review, err := h.services.ReviewService.Create(ctx, utils.GetActorFromContext(ctx), p.titleID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, review, http.StatusCreated)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	p, err := parseReviewPath(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.Get(r.Context(), p.titleID, p.reviewID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, review, http.StatusOK)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	p, err := parseReviewPath(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.ReviewInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	review, err := h.services.ReviewService.Update(ctx, utils.GetActorFromContext(ctx), p.titleID, p.reviewID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, review, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	p, err := parseReviewPath(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	if err = h.services.ReviewService.Delete(ctx, utils.GetActorFromContext(ctx), p.titleID, p.reviewID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
