// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-yamdb/internal/utils"
	"github.com/MKhiriev/go-yamdb/models"
)

const commentIDParam = "commentID"

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	p, err := parseReviewPath(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}
	req, err := h.pageRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.CommentService.List(r.Context(), p.titleID, p.reviewID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, pageResponse(r, page, req), http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	p, err := parseReviewPath(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.CommentInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	comment, err := h.services.CommentService.Create(ctx, utils.GetActorFromContext(ctx), p.titleID, p.reviewID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) getComment(w http.ResponseWriter, r *http.Request) {
	p, commentID, err := parseCommentPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.Get(r.Context(), p.titleID, p.reviewID, commentID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	p, commentID, err := parseCommentPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.CommentInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	comment, err := h.services.CommentService.Update(ctx, utils.GetActorFromContext(ctx), p.titleID, p.reviewID, commentID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	p, commentID, err := parseCommentPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	if err = h.services.CommentService.Delete(ctx, utils.GetActorFromContext(ctx), p.titleID, p.reviewID, commentID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseCommentPath(r *http.Request) (reviewPath, int64, error) {
	p, err := parseReviewPath(r, true)
	if err != nil {
		return reviewPath{}, 0, err
	}
	commentID, err := pathID(r, commentIDParam)
	if err != nil {
		return reviewPath{}, 0, err
	}
	return p, commentID, nil
}
