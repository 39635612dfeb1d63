// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import "errors"

const (
	// MsgNotYourContent is the denial message of the write-gating rules.
	MsgNotYourContent = "You do not have permission to perform this action."

	// MsgAdminOnly is the denial message of AdminOnly.
	MsgAdminOnly = "Only administrators can perform this action."

	// MsgNotAuthenticated is the text of ErrNotAuthenticated.
	MsgNotAuthenticated = "Authentication credentials were not provided."
)

var (
	// ErrNotAuthenticated is returned when a rule needs an actor and the
	// request is anonymous.
	ErrNotAuthenticated = errors.New(MsgNotAuthenticated)

	// ErrPermissionDenied is the class of every rank or ownership denial.
	// Match it with errors.Is; the concrete value is a *DeniedError.
	ErrPermissionDenied = errors.New("permission denied")
)

// DeniedError is an authorization denial carrying the rule's fixed message.
type DeniedError struct {
	Message string
}

func deny(message string) error {
	return &DeniedError{Message: message}
}

func (e *DeniedError) Error() string {
	return e.Message
}

// Is makes every DeniedError match ErrPermissionDenied.
func (e *DeniedError) Is(target error) bool {
	return target == ErrPermissionDenied
}
