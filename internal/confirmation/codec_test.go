// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package confirmation

import (
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-yamdb/internal/utils"
	"github.com/MKhiriev/go-yamdb/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a movable clock for bucket arithmetic.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCodec(t *testing.T, grace int) (*Codec, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	codec, err := NewCodec("test-secret", time.Hour, grace, clock.Now)
	require.NoError(t, err)
	return codec, clock
}

func TestNewCodec_Validation(t *testing.T) {
	_, err := NewCodec("", time.Hour, 1, nil)
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = NewCodec("secret", 0, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewCodec("secret", 500*time.Millisecond, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	codec, err := NewCodec("secret", time.Minute, -3, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, codec.grace)
	assert.NotNil(t, codec.now)
}

func TestIssue_VerifyRoundTrip(t *testing.T) {
	codec, _ := newTestCodec(t, 0)
	user := models.User{UserID: 7, Username: "alice"}

	code := codec.Issue(user)

	assert.Len(t, code, CodeLength)
	assert.True(t, codec.Verify(&user, code))
}

func TestIssue_SignsIDLastLoginAndBucket(t *testing.T) {
	codec, clock := newTestCodec(t, 0)
	lastLogin := time.Date(2026, 3, 9, 8, 15, 30, 0, time.UTC)
	user := models.User{UserID: 42, LastLogin: &lastLogin}

	bucket := clock.Now().Unix() / int64(time.Hour/time.Second)
	input := "42|" + NormalizeLastLogin(&lastLogin) + "|" + strconv.FormatInt(bucket, 10)
	want := utils.HashString(input, string(codec.key))[:CodeLength]

	assert.Equal(t, want, codec.Issue(user))
}

func TestIssue_IdempotentWithinWindow(t *testing.T) {
	codec, clock := newTestCodec(t, 0)
	user := models.User{UserID: 7}

	first := codec.Issue(user)
	clock.Advance(59 * time.Minute)
	second := codec.Issue(user)

	assert.Equal(t, first, second)
}

func TestIssue_DiffersAcrossUsersAndSecrets(t *testing.T) {
	codec, clock := newTestCodec(t, 0)
	other, err := NewCodec("another-secret", time.Hour, 0, clock.Now)
	require.NoError(t, err)

	alice := models.User{UserID: 1}
	bob := models.User{UserID: 2}

	assert.NotEqual(t, codec.Issue(alice), codec.Issue(bob))
	assert.NotEqual(t, codec.Issue(alice), other.Issue(alice))
	assert.False(t, other.Verify(&alice, codec.Issue(alice)))
}

func TestVerify_FailsAfterLastLoginChanges(t *testing.T) {
	codec, clock := newTestCodec(t, 1)
	user := models.User{UserID: 3}

	code := codec.Issue(user)
	require.True(t, codec.Verify(&user, code))

	loggedIn := clock.Now()
	user.LastLogin = &loggedIn

	assert.False(t, codec.Verify(&user, code))
	assert.True(t, codec.Verify(&user, codec.Issue(user)))
}

func TestVerify_GraceWindows(t *testing.T) {
	tests := []struct {
		name    string
		grace   int
		advance time.Duration
		want    bool
	}{
		{"same bucket", 0, 30 * time.Minute, true},
		{"next bucket without grace", 0, time.Hour, false},
		{"next bucket with one grace window", 1, time.Hour, true},
		{"two buckets later with one grace window", 1, 2 * time.Hour, false},
		{"a day later with 24 grace windows", 24, 24 * time.Hour, true},
		{"25 hours later with 24 grace windows", 24, 25 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, clock := newTestCodec(t, tt.grace)
			user := models.User{UserID: 11}

			code := codec.Issue(user)
			clock.Advance(tt.advance)

			assert.Equal(t, tt.want, codec.Verify(&user, code))
		})
	}
}

func TestVerify_CodeFromTheFutureIsRejected(t *testing.T) {
	codec, clock := newTestCodec(t, 5)
	user := models.User{UserID: 11}

	clock.Advance(2 * time.Hour)
	future := codec.Issue(user)
	clock.Advance(-2 * time.Hour)

	assert.False(t, codec.Verify(&user, future))
}

func TestVerify_InvalidInput(t *testing.T) {
	codec, _ := newTestCodec(t, 1)
	user := models.User{UserID: 5}
	code := codec.Issue(user)

	assert.False(t, codec.Verify(nil, code))
	assert.False(t, codec.Verify(&models.User{}, code))
	assert.False(t, codec.Verify(&user, ""))
	assert.False(t, codec.Verify(&user, code[:CodeLength-1]))
	assert.False(t, codec.Verify(&user, code+"0"))
	assert.False(t, codec.Verify(&user, "zzzzzzzzzzzzzzzzzzzz"))
}

func TestNormalizeLastLogin(t *testing.T) {
	assert.Equal(t, "", NormalizeLastLogin(nil))

	moscow := time.FixedZone("MSK", 3*60*60)
	withNanos := time.Date(2026, 1, 2, 15, 4, 5, 999_999_999, moscow)
	assert.Equal(t, "2026-01-02 12:04:05", NormalizeLastLogin(&withNanos))

	sameInstantUTC := time.Date(2026, 1, 2, 12, 4, 5, 0, time.UTC)
	assert.Equal(t, NormalizeLastLogin(&withNanos), NormalizeLastLogin(&sameInstantUTC))
}

func TestVerify_SubSecondLastLoginChangeKeepsCode(t *testing.T) {
	codec, _ := newTestCodec(t, 0)
	at := time.Date(2026, 3, 10, 11, 0, 0, 100, time.UTC)
	user := models.User{UserID: 9, LastLogin: &at}

	code := codec.Issue(user)

	reloaded := at.Add(500 * time.Millisecond)
	user.LastLogin = &reloaded
	assert.True(t, codec.Verify(&user, code))
}
