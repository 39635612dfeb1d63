// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// ReservedUsername is the path segment of the self-profile endpoint
// (/users/me). No account may be registered under it, in any letter case.
const ReservedUsername = "me"

// User represents an account of the review platform.
//
// There is no stored password: identity is proven by a confirmation code
// derived from the record (see the confirmation package) and then by a
// bearer token. LastLogin is part of the code derivation input and is
// bumped after every successful code exchange.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique, immutable lookup key of the account.
	Username string `json:"username"`

	// Email is the unique address confirmation codes are delivered to.
	Email string `json:"email"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`

	// Role is the stored access level. Defaults to RoleUser.
	Role Role `json:"role"`

	// IsSuperuser grants admin-level privilege regardless of Role.
	// It can only be set out of band (see cmd/createsuperuser).
	IsSuperuser bool `json:"-"`

	// LastLogin is the time of the last successful code exchange.
	// Nil until the user has logged in once.
	LastLogin *time.Time `json:"-"`

	// DateJoined is the timestamp when the user account was created.
	DateJoined time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Rank returns the effective privilege level of the user. The superuser
// flag collapses to RankAdmin whatever the stored role is.
func (u *User) Rank() Rank {
	if u == nil {
		return RankNone
	}
	if u.IsSuperuser {
		return RankAdmin
	}
	return u.Role.Rank()
}

// AtLeast reports whether the user's effective rank is at or above role.
// A nil user (anonymous actor) is never at least anything.
func (u *User) AtLeast(role Role) bool {
	if u == nil {
		return false
	}
	return u.Rank() >= role.Rank()
}

func (u *User) IsAdmin() bool {
	return u.AtLeast(RoleAdmin)
}

func (u *User) IsModerator() bool {
	return u.AtLeast(RoleModerator)
}

// IsReservedUsername reports whether username collides with
// [ReservedUsername].
func IsReservedUsername(username string) bool {
	return strings.EqualFold(username, ReservedUsername)
}

// UserUpdate is a partial update of a user record. Nil fields are left
// untouched.
type UserUpdate struct {
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Role      *Role   `json:"role,omitempty"`
}

// Empty reports whether the update carries no field at all.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.FirstName == nil &&
		u.LastName == nil && u.Bio == nil && u.Role == nil
}

// Apply returns a copy of user with every non-nil field of u written over it.
func (u UserUpdate) Apply(user User) User {
	if u.Username != nil {
		user.Username = *u.Username
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.FirstName != nil {
		user.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		user.LastName = *u.LastName
	}
	if u.Bio != nil {
		user.Bio = *u.Bio
	}
	if u.Role != nil {
		user.Role = *u.Role
	}
	return user
}

// SignupRequest is the body of POST /auth/signup. It is echoed back on
// success.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenRequest is the body of POST /auth/token.
type TokenRequest struct {
	Username         string `json:"username"`
	ConfirmationCode string `json:"confirmation_code"`
}

// TokenResponse is returned by a successful code exchange.
type TokenResponse struct {
	Token string `json:"token"`
}
