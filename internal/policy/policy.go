// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package policy decides whether an actor may perform a request on a
// resource.
//
// A [Rule] is a pure function of the request method, the acting user and the
// optional owner of the target resource. Rules are evaluated in order by
// [Evaluate]; the first denial wins. Every rule checks the read-only case
// before authentication, so anonymous reads never need a token.
//
// Denials come in two classes that transports must keep apart:
//   - [ErrNotAuthenticated]: there is no actor; the request may succeed with
//     credentials.
//   - [ErrPermissionDenied] (carried by [*DeniedError]): the actor is known
//     but its rank or ownership is insufficient.
package policy

import (
	"net/http"

	"github.com/MKhiriev/go-yamdb/models"
)

// Request is the input of every rule.
type Request struct {
	// Method is the HTTP method (or an equivalent verb) of the request.
	Method string

	// Actor is the authenticated user, nil for anonymous requests.
	Actor *models.User

	// Owner is the author of the target resource, nil when the request is
	// not about a single owned object.
	Owner *int64
}

// Rule grants a request by returning nil or denies it with an error.
type Rule func(Request) error

// Evaluate runs rules in order and returns the first denial.
func Evaluate(req Request, rules ...Rule) error {
	for _, rule := range rules {
		if err := rule(req); err != nil {
			return err
		}
	}
	return nil
}

// IsSafeMethod reports whether method only reads state.
func IsSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// Authenticated requires an actor for every method.
func Authenticated(req Request) error {
	if req.Actor == nil {
		return ErrNotAuthenticated
	}
	return nil
}

// AuthenticatedOrReadOnly lets anyone read and requires an actor to write.
// It guards collections of owned resources (reviews, comments) where the
// owner is not known yet.
func AuthenticatedOrReadOnly(req Request) error {
	if IsSafeMethod(req.Method) {
		return nil
	}
	return Authenticated(req)
}

// SelfOrElevatedWrite lets anyone read and lets the owner, moderators and
// admins write. Used for reviews and comments.
func SelfOrElevatedWrite(req Request) error {
	if IsSafeMethod(req.Method) {
		return nil
	}
	if req.Actor == nil {
		return ErrNotAuthenticated
	}
	if req.Owner != nil && *req.Owner == req.Actor.UserID {
		return nil
	}
	if req.Actor.AtLeast(models.RoleModerator) {
		return nil
	}
	return deny(MsgNotYourContent)
}

// AdminGatedWrite lets anyone read and only admins write. Used for
// categories, genres and titles.
func AdminGatedWrite(req Request) error {
	if IsSafeMethod(req.Method) {
		return nil
	}
	if req.Actor == nil {
		return ErrNotAuthenticated
	}
	if req.Actor.AtLeast(models.RoleAdmin) {
		return nil
	}
	return deny(MsgNotYourContent)
}

// AdminOnly requires an admin actor for every method, reads included. Used
// for user administration.
func AdminOnly(req Request) error {
	if req.Actor == nil {
		return ErrNotAuthenticated
	}
	if req.Actor.AtLeast(models.RoleAdmin) {
		return nil
	}
	return deny(MsgAdminOnly)
}
