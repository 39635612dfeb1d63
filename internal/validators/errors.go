// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrValidation is the class of every input validation failure. Match it
	// with errors.Is; the concrete value is usually a *FieldError.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// Messages rendered to clients.
const (
	MsgRequired         = "This field is required."
	MsgBlank            = "This field may not be blank."
	MsgInvalidUsername  = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	MsgReservedUsername = "Username 'me' is not allowed."
	MsgInvalidEmail     = "Enter a valid email address."
	MsgInvalidSlug      = "Enter a valid slug consisting of letters, numbers, underscores or hyphens."
	MsgFutureYear       = "Year cannot be greater than the current year."
	MsgInvalidScore     = "Score must be between %d and %d."
	MsgInvalidChoice    = "%q is not a valid choice."
	MsgMaxLength        = "Ensure this field has no more than %d characters."
	MsgUnknownSlug      = "Object with slug=%s does not exist."
)

// FieldError collects per-field validation messages. It renders to clients
// as {"field": ["message", ...]}.
type FieldError struct {
	Fields map[string][]string
}

// NewFieldError returns a FieldError holding a single message.
func NewFieldError(field, message string) *FieldError {
	e := &FieldError{}
	e.Add(field, message)
	return e
}

// Add appends message to field.
func (e *FieldError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Empty reports whether no message was added.
func (e *FieldError) Empty() bool {
	return len(e.Fields) == 0
}

// OrNil returns e as an error, or nil when it is empty.
func (e *FieldError) OrNil() error {
	if e == nil || e.Empty() {
		return nil
	}
	return e
}

func (e *FieldError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(e.Fields[name], " "))
	}
	return strings.Join(parts, "; ")
}

// Is makes every FieldError match ErrValidation.
func (e *FieldError) Is(target error) bool {
	return target == ErrValidation
}
