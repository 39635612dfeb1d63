// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-yamdb/internal/store"
	"github.com/MKhiriev/go-yamdb/internal/utils"
)

// methodNotAllowed answers a known path requested with an unsupported
// method. chi sets the Allow header before calling it.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"message": fmt.Sprintf("Method %q not allowed.", r.Method),
	}, http.StatusMethodNotAllowed)
}

// notFound answers unknown paths with the same body as a missing resource.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": store.ErrNotFound.Error()}, http.StatusNotFound)
}
