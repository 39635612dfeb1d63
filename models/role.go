// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the access level stored on a user record.
//
// The set of roles is closed: only [RoleUser], [RoleModerator] and
// [RoleAdmin] are valid. Privilege comparisons go through [Role.Rank] so that
// the ordering lives in one place.
type Role string

const (
	// RoleUser is the default role assigned at signup. Users may create
	// reviews and comments and edit only their own content.
	RoleUser Role = "user"

	// RoleModerator may additionally edit and delete any review or comment.
	RoleModerator Role = "moderator"

	// RoleAdmin may additionally manage categories, genres, titles and users.
	RoleAdmin Role = "admin"
)

// Rank is the integer privilege level of a role. Higher means more
// privileged.
type Rank int

const (
	// RankNone is returned for roles outside the closed set. It sits below
	// every valid role so an unknown value never grants anything.
	RankNone Rank = iota - 1
	RankUser
	RankModerator
	RankAdmin
)

// Roles lists every valid role in ascending order of privilege.
var Roles = []Role{RoleUser, RoleModerator, RoleAdmin}

// Rank maps the role onto the total order user < moderator < admin.
func (r Role) Rank() Rank {
	switch r {
	case RoleUser:
		return RankUser
	case RoleModerator:
		return RankModerator
	case RoleAdmin:
		return RankAdmin
	default:
		return RankNone
	}
}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	return r.Rank() != RankNone
}

func (r Role) String() string {
	return string(r)
}
