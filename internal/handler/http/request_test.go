// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/internal/service"
	"github.com/MKhiriev/go-yamdb/internal/utils"
	"github.com/MKhiriev/go-yamdb/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest(t *testing.T) {
	h := &Handler{pageSize: 5, logger: logger.Nop()}

	tests := []struct {
		name    string
		query   string
		want    models.PageRequest
		wantErr error
	}{
		{"defaults to first page", "", models.PageRequest{Number: 1, Size: 5}, nil},
		{"explicit page and search", "?page=3&search=ann", models.PageRequest{Number: 3, Size: 5, Search: "ann"}, nil},
		{"zero", "?page=0", models.PageRequest{}, service.ErrInvalidPage},
		{"negative", "?page=-2", models.PageRequest{}, service.ErrInvalidPage},
		{"not a number", "?page=last", models.PageRequest{}, service.ErrInvalidPage},
		{"offset overflows int", "?page=9223372036854775807", models.PageRequest{}, service.ErrInvalidPage},
		{"beyond int range", "?page=99999999999999999999", models.PageRequest{}, service.ErrInvalidPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.pageRequest(httptest.NewRequest(http.MethodGet, "/api/v1/users/"+tt.query, nil))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageURL(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/titles/?genre=drama&page=2", nil)

	assert.Equal(t, "http://example.com/api/v1/titles/?genre=drama&page=3", pageURL(r, 3))
	assert.Equal(t, "http://example.com/api/v1/titles/?genre=drama", pageURL(r, 1))

	r.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://example.com/api/v1/titles/?genre=drama&page=3", pageURL(r, 3))

	r.TLS = nil
	r.Header.Set("X-Forwarded-Proto", "https")
	assert.True(t, strings.HasPrefix(pageURL(r, 3), "https://"))
}

func TestPageResponse(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/genres/?page=2", nil)
	req := models.PageRequest{Number: 2, Size: 2}

	middle := pageResponse(r, models.Page[models.Genre]{Count: 5, Results: []models.Genre{{Slug: "a"}, {Slug: "b"}}}, req)
	require.NotNil(t, middle.Next)
	require.NotNil(t, middle.Previous)
	assert.Equal(t, "http://example.com/api/v1/genres/?page=3", *middle.Next)
	assert.Equal(t, "http://example.com/api/v1/genres/", *middle.Previous)

	empty := pageResponse(httptest.NewRequest(http.MethodGet, "/api/v1/genres/", nil),
		models.Page[models.Genre]{}, models.PageRequest{Number: 1, Size: 2})
	assert.NotNil(t, empty.Results)
	assert.Empty(t, empty.Results)
	assert.Nil(t, empty.Next)
	assert.Nil(t, empty.Previous)
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("titleID", tt.raw)
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

			got, err := pathID(r, "titleID")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPathID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeBody(t *testing.T) {
	var dst models.SignupRequest

	err := decodeBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"ann","email":"a@b.c"}`)), &dst)
	require.NoError(t, err)
	assert.Equal(t, models.SignupRequest{Username: "ann", Email: "a@b.c"}, dst)

	err = decodeBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":`)), &dst)
	assert.ErrorIs(t, err, ErrInvalidJSON)

	err = decodeBody(httptest.NewRequest(http.MethodPost, "/", http.NoBody), &dst)
	assert.ErrorIs(t, err, utils.ErrEmptyBody)
}
