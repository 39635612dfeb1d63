// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-yamdb/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	plainUser = &models.User{UserID: 1, Role: models.RoleUser}
	otherUser = &models.User{UserID: 2, Role: models.RoleUser}
	moderator = &models.User{UserID: 3, Role: models.RoleModerator}
	admin     = &models.User{UserID: 4, Role: models.RoleAdmin}
	superuser = &models.User{UserID: 5, Role: models.RoleUser, IsSuperuser: true}
)

func owner(id int64) *int64 { return &id }

var (
	safeMethods   = []string{http.MethodGet, http.MethodHead, http.MethodOptions}
	unsafeMethods = []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}
)

// outcome is the expected class of a rule result.
type outcome int

const (
	granted outcome = iota
	unauthenticated
	forbidden
)

func assertOutcome(t *testing.T, want outcome, err error) {
	t.Helper()
	switch want {
	case granted:
		assert.NoError(t, err)
	case unauthenticated:
		assert.ErrorIs(t, err, ErrNotAuthenticated)
		assert.NotErrorIs(t, err, ErrPermissionDenied)
	case forbidden:
		assert.ErrorIs(t, err, ErrPermissionDenied)
		assert.NotErrorIs(t, err, ErrNotAuthenticated)
	}
}

func TestIsSafeMethod(t *testing.T) {
	for _, m := range safeMethods {
		assert.True(t, IsSafeMethod(m), m)
	}
	for _, m := range unsafeMethods {
		assert.False(t, IsSafeMethod(m), m)
	}
}

func TestRules_AnonymousReadsAlwaysPass(t *testing.T) {
	for _, rule := range []Rule{AuthenticatedOrReadOnly, SelfOrElevatedWrite, AdminGatedWrite} {
		for _, m := range safeMethods {
			assert.NoError(t, rule(Request{Method: m}))
		}
	}
}

func TestSelfOrElevatedWrite(t *testing.T) {
	tests := []struct {
		name   string
		method string
		actor  *models.User
		owner  *int64
		want   outcome
	}{
		{"anonymous read", http.MethodGet, nil, owner(1), granted},
		{"anonymous delete", http.MethodDelete, nil, owner(1), unauthenticated},
		{"owner patches own review", http.MethodPatch, plainUser, owner(1), granted},
		{"owner deletes own review", http.MethodDelete, plainUser, owner(1), granted},
		{"user deletes someone else's review", http.MethodDelete, otherUser, owner(1), forbidden},
		{"user patches without known owner", http.MethodPatch, plainUser, nil, forbidden},
		{"moderator deletes someone else's review", http.MethodDelete, moderator, owner(1), granted},
		{"admin patches someone else's review", http.MethodPatch, admin, owner(1), granted},
		{"superuser deletes someone else's review", http.MethodDelete, superuser, owner(1), granted},
		{"other user reads", http.MethodGet, otherUser, owner(1), granted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SelfOrElevatedWrite(Request{Method: tt.method, Actor: tt.actor, Owner: tt.owner})
			assertOutcome(t, tt.want, err)
		})
	}
}

func TestAdminGatedWrite(t *testing.T) {
	tests := []struct {
		name   string
		method string
		actor  *models.User
		want   outcome
	}{
		{"anonymous list", http.MethodGet, nil, granted},
		{"anonymous create", http.MethodPost, nil, unauthenticated},
		{"anonymous delete", http.MethodDelete, nil, unauthenticated},
		{"user create", http.MethodPost, plainUser, forbidden},
		{"moderator patch", http.MethodPatch, moderator, forbidden},
		{"admin create", http.MethodPost, admin, granted},
		{"superuser delete", http.MethodDelete, superuser, granted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertOutcome(t, tt.want, AdminGatedWrite(Request{Method: tt.method, Actor: tt.actor}))
		})
	}
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name   string
		method string
		actor  *models.User
		want   outcome
	}{
		{"anonymous read", http.MethodGet, nil, unauthenticated},
		{"user read", http.MethodGet, plainUser, forbidden},
		{"moderator read", http.MethodGet, moderator, forbidden},
		{"admin read", http.MethodGet, admin, granted},
		{"admin delete", http.MethodDelete, admin, granted},
		{"superuser create", http.MethodPost, superuser, granted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertOutcome(t, tt.want, AdminOnly(Request{Method: tt.method, Actor: tt.actor}))
		})
	}
}

func TestAuthenticated(t *testing.T) {
	assertOutcome(t, unauthenticated, Authenticated(Request{Method: http.MethodGet}))
	assertOutcome(t, granted, Authenticated(Request{Method: http.MethodPatch, Actor: plainUser}))
}

func TestAuthenticatedOrReadOnly(t *testing.T) {
	assertOutcome(t, granted, AuthenticatedOrReadOnly(Request{Method: http.MethodGet}))
	assertOutcome(t, unauthenticated, AuthenticatedOrReadOnly(Request{Method: http.MethodPost}))
	assertOutcome(t, granted, AuthenticatedOrReadOnly(Request{Method: http.MethodPost, Actor: plainUser}))
}

func TestEvaluate_FirstDenyWins(t *testing.T) {
	var calls []string
	grant := func(name string) Rule {
		return func(Request) error {
			calls = append(calls, name)
			return nil
		}
	}
	denyWith := func(name string, err error) Rule {
		return func(Request) error {
			calls = append(calls, name)
			return err
		}
	}

	first := errors.New("first")
	err := Evaluate(Request{},
		grant("a"),
		denyWith("b", first),
		denyWith("c", errors.New("second")),
	)

	require.ErrorIs(t, err, first)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestEvaluate_NoRulesGrants(t *testing.T) {
	assert.NoError(t, Evaluate(Request{Method: http.MethodDelete}))
}

func TestEvaluate_ReviewRulesPrecedence(t *testing.T) {
	// Collection guard followed by the object rule, as review handlers use them.
	rules := []Rule{AuthenticatedOrReadOnly, SelfOrElevatedWrite}

	assertOutcome(t, granted, Evaluate(Request{Method: http.MethodGet}, rules...))
	assertOutcome(t, unauthenticated, Evaluate(Request{Method: http.MethodDelete, Owner: owner(1)}, rules...))
	assertOutcome(t, forbidden, Evaluate(Request{Method: http.MethodDelete, Actor: otherUser, Owner: owner(1)}, rules...))
}

func TestDeniedError_Message(t *testing.T) {
	err := AdminGatedWrite(Request{Method: http.MethodPost, Actor: plainUser})

	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, MsgNotYourContent, denied.Message)
	assert.Equal(t, MsgNotYourContent, err.Error())

	err = AdminOnly(Request{Method: http.MethodGet, Actor: plainUser})
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, MsgAdminOnly, denied.Message)
}
