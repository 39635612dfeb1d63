// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package confirmation derives and verifies the one-time codes that prove
// ownership of an email address during signup.
//
// Codes are never stored. A code is an HMAC over the user's id, the user's
// last login time and the current time bucket. Changing LastLogin (which a
// successful code exchange does) invalidates every code issued before, and a
// code expires on its own once the bucket it was issued in falls out of the
// grace range.
package confirmation

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-yamdb/internal/utils"
	"github.com/MKhiriev/go-yamdb/models"
	"golang.org/x/crypto/hkdf"
)

const (
	// CodeLength is the number of hex characters in an issued code.
	CodeLength = 20

	// lastLoginLayout renders the normalized last-login value. Sub-second
	// precision and zone are dropped before formatting.
	lastLoginLayout = "2006-01-02 15:04:05"

	hkdfInfo = "confirmation-code"
)

var (
	ErrEmptySecret   = errors.New("confirmation code secret is empty")
	ErrInvalidWindow = errors.New("confirmation code window must be at least one second")
)

// Clock returns the current time. Tests inject a fixed clock.
type Clock func() time.Time

// Codec issues and verifies confirmation codes. It is safe for concurrent
// use: all fields are read-only after construction.
type Codec struct {
	key    []byte
	window time.Duration
	grace  int
	now    Clock
}

// NewCodec builds a codec keyed from secret.
//
// window is the width of one time bucket; grace is how many buckets before
// the current one are still accepted by Verify. A nil clock means time.Now.
func NewCodec(secret string, window time.Duration, grace int, now Clock) (*Codec, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if window < time.Second {
		return nil, ErrInvalidWindow
	}
	if grace < 0 {
		grace = 0
	}
	if now == nil {
		now = time.Now
	}

	key := make([]byte, sha256.Size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("error deriving confirmation code key: %w", err)
	}

	return &Codec{
		key:    key,
		window: window,
		grace:  grace,
		now:    now,
	}, nil
}

// Issue returns the code for user in the current time bucket. Two calls in
// the same bucket with the same LastLogin return the same code, so a resent
// email carries the code the user may already have.
func (c *Codec) Issue(user models.User) string {
	return c.derive(user, c.bucket(c.now()))
}

// Verify reports whether code was issued for user in the current bucket or
// in one of the grace buckets before it. It never fails loudly: an empty
// code, an unknown user or a stale LastLogin simply yield false.
func (c *Codec) Verify(user *models.User, code string) bool {
	if user == nil || user.UserID == 0 || len(code) != CodeLength {
		return false
	}

	current := c.bucket(c.now())
	for b := current; b >= current-int64(c.grace); b-- {
		if hmac.Equal([]byte(c.derive(*user, b)), []byte(code)) {
			return true
		}
	}

	return false
}

func (c *Codec) bucket(t time.Time) int64 {
	return t.Unix() / int64(c.window/time.Second)
}

// derive signs "<id>|<last_login>|<bucket>" with the codec key.
func (c *Codec) derive(user models.User, bucket int64) string {
	return utils.HashString(derivationInput(user, bucket), string(c.key))[:CodeLength]
}

func derivationInput(user models.User, bucket int64) string {
	return strconv.FormatInt(user.UserID, 10) + "|" + NormalizeLastLogin(user.LastLogin) + "|" + strconv.FormatInt(bucket, 10)
}

// NormalizeLastLogin renders lastLogin as the derivation input: UTC, whole
// seconds, no zone suffix. A user that never logged in maps to "".
func NormalizeLastLogin(lastLogin *time.Time) string {
	if lastLogin == nil {
		return ""
	}
	return lastLogin.UTC().Truncate(time.Second).Format(lastLoginLayout)
}
