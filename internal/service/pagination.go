// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-yamdb/models"

// checkPage rejects a page past the end. The first page is valid even when
// the collection is empty.
func checkPage[T any](page models.Page[T], req models.PageRequest) (models.Page[T], error) {
	if req.Number < 1 || (req.Number > 1 && len(page.Results) == 0) {
		return models.Page[T]{}, ErrInvalidPage
	}
	return page, nil
}
