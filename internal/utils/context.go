// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the transport and
// service layers: typed context keys, JSON response writing, the outbound
// HTTP client, trace id generation, and JWT token issuing and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-yamdb/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// ActorCtxKey is the key the authenticated user of a request is stored
// under. Anonymous requests carry no value.
var ActorCtxKey = contextKey("actor")

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor *models.User) context.Context {
	return context.WithValue(ctx, ActorCtxKey, actor)
}

// GetActorFromContext returns the authenticated user stored in ctx, or nil
// for anonymous requests.
func GetActorFromContext(ctx context.Context) *models.User {
	actor, _ := ctx.Value(ActorCtxKey).(*models.User)
	return actor
}
