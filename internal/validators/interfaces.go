// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach storage.
//
// A Validator reports every problem it finds at once as a *FieldError so
// clients can fix all fields in one round trip. Checks that need the
// database (uniqueness, existence of referenced slugs) belong to the
// services, not here.
package validators

import "context"

// Validator validates a request payload.
//
// For partial payloads (pointer fields) the optional field names list the
// inputs that must be present; fields that are present are always checked.
// For full models the field names restrict validation to that subset, and
// no names means every field.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
