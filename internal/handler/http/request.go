// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-yamdb/internal/service"
	"github.com/MKhiriev/go-yamdb/internal/utils"
	"github.com/MKhiriev/go-yamdb/models"
	"github.com/go-chi/chi/v5"
)

const (
	pageParam   = "page"
	searchParam = "search"
)

// decodeBody reads the JSON body of r into dst.
func decodeBody(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r, dst); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// pathID parses the positive integer path parameter name.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidPathID
	}
	return id, nil
}

// pageRequest reads ?page and ?search. A missing page means the first one;
// anything that is not a positive integer is an invalid page, and so is a
// page whose row offset does not fit in an int.
func (h *Handler) pageRequest(r *http.Request) (models.PageRequest, error) {
	query := r.URL.Query()
	req := models.PageRequest{Number: 1, Size: h.pageSize, Search: query.Get(searchParam)}

	if raw := query.Get(pageParam); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil || number < 1 || (h.pageSize > 0 && number-1 > math.MaxInt/h.pageSize) {
			return models.PageRequest{}, service.ErrInvalidPage
		}
		req.Number = number
	}
	return req, nil
}

// pageResponse wraps page in the list envelope with absolute links to the
// neighbouring pages.
func pageResponse[T any](r *http.Request, page models.Page[T], req models.PageRequest) models.PageResponse[T] {
	resp := models.PageResponse[T]{
		Count:   page.Count,
		Results: page.Results,
	}
	if resp.Results == nil {
		resp.Results = []T{}
	}

	if page.HasNext(req) {
		next := pageURL(r, req.Number+1)
		resp.Next = &next
	}
	if req.Number > 1 {
		previous := pageURL(r, req.Number-1)
		resp.Previous = &previous
	}
	return resp
}

// pageURL rebuilds the absolute request URL pointing at page number. The
// first page is addressed without the page parameter.
func pageURL(r *http.Request, number int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	query := r.URL.Query()
	if number <= 1 {
		query.Del(pageParam)
	} else {
		query.Set(pageParam, strconv.Itoa(number))
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: query.Encode(),
	}
	return u.String()
}
