// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the review service.
//
// It wires chi routes under /api/v1, resolves the optional bearer token of
// every request to an actor, applies the route-level authorization rule and
// delegates to the service layer. Object-level rules that need the resource
// owner are applied by the services. Errors of every layer are mapped to a
// status code and a JSON body in errors_mapper.go.
package http
