// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-yamdb/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newTestValidator() Validator {
	return NewRequestValidator(1, 10, func() time.Time {
		return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	})
}

// assertFields checks that err is a FieldError whose keys are exactly want.
func assertFields(t *testing.T, err error, want ...string) {
	t.Helper()
	if len(want) == 0 {
		assert.NoError(t, err)
		return
	}

	require.ErrorIs(t, err, ErrValidation)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)

	got := make([]string, 0, len(fieldErr.Fields))
	for k := range fieldErr.Fields {
		got = append(got, k)
	}
	assert.ElementsMatch(t, want, got)
}

func TestFieldError(t *testing.T) {
	e := &FieldError{}
	assert.True(t, e.Empty())
	assert.NoError(t, e.OrNil())

	e.Add("b", "second")
	e.Add("a", "first")
	e.Add("a", "again")

	assert.Equal(t, "a: first again; b: second", e.Error())
	assert.True(t, errors.Is(e, ErrValidation))
	assert.Error(t, e.OrNil())

	var nilErr *FieldError
	assert.NoError(t, nilErr.OrNil())

	single := NewFieldError(FieldScore, "bad")
	assert.Equal(t, map[string][]string{FieldScore: {"bad"}}, single.Fields)
}

func TestValidate_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, newTestValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_Signup(t *testing.T) {
	tests := []struct {
		name string
		req  models.SignupRequest
		want []string
	}{
		{"valid", models.SignupRequest{Username: "alice", Email: "alice@example.com"}, nil},
		{"valid with symbols", models.SignupRequest{Username: "a.l+i-c_e@x", Email: "a@b.co"}, nil},
		{"missing both", models.SignupRequest{}, []string{FieldUsername, FieldEmail}},
		{"reserved me", models.SignupRequest{Username: "me", Email: "me@example.com"}, []string{FieldUsername}},
		{"reserved ME", models.SignupRequest{Username: "ME", Email: "me@example.com"}, []string{FieldUsername}},
		{"bad characters", models.SignupRequest{Username: "al ice", Email: "alice@example.com"}, []string{FieldUsername}},
		{"too long username", models.SignupRequest{Username: strings.Repeat("a", 151), Email: "a@b.co"}, []string{FieldUsername}},
		{"bad email", models.SignupRequest{Username: "alice", Email: "not-an-email"}, []string{FieldEmail}},
		{"display name email", models.SignupRequest{Username: "alice", Email: "Alice <alice@example.com>"}, []string{FieldEmail}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestValidator().Validate(context.Background(), tt.req)
			assertFields(t, err, tt.want...)
		})
	}
}

func TestValidate_SignupReservedMessage(t *testing.T) {
	err := newTestValidator().Validate(context.Background(), &models.SignupRequest{Username: "Me", Email: "x@y.z"})

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, []string{MsgReservedUsername}, fieldErr.Fields[FieldUsername])
}

func TestValidate_TokenRequest(t *testing.T) {
	v := newTestValidator()
	assertFields(t, v.Validate(context.Background(), models.TokenRequest{Username: "a", ConfirmationCode: "c"}))
	assertFields(t, v.Validate(context.Background(), models.TokenRequest{Username: "a"}), FieldConfirmationCode)
	assertFields(t, v.Validate(context.Background(), &models.TokenRequest{}), FieldUsername, FieldConfirmationCode)
}

func TestValidate_User(t *testing.T) {
	valid := models.User{Username: "bob", Email: "bob@example.com", Role: models.RoleModerator}

	v := newTestValidator()
	assertFields(t, v.Validate(context.Background(), valid))

	badRole := valid
	badRole.Role = "superadmin"
	assertFields(t, v.Validate(context.Background(), badRole), FieldRole)

	longName := valid
	longName.FirstName = strings.Repeat("x", 151)
	assertFields(t, v.Validate(context.Background(), &longName), FieldFirstName)

	// field scoping skips the role check
	assertFields(t, v.Validate(context.Background(), badRole, FieldUsername, FieldEmail))
}

func TestValidate_UserUpdate(t *testing.T) {
	v := newTestValidator()

	assertFields(t, v.Validate(context.Background(), models.UserUpdate{}))
	assertFields(t, v.Validate(context.Background(), models.UserUpdate{Bio: ptr("anything")}))
	assertFields(t, v.Validate(context.Background(), models.UserUpdate{Username: ptr("me")}), FieldUsername)
	assertFields(t, v.Validate(context.Background(), models.UserUpdate{Email: ptr("")}), FieldEmail)
	assertFields(t, v.Validate(context.Background(), &models.UserUpdate{Role: ptr(models.Role("root"))}), FieldRole)
}

func TestValidate_CategoryAndGenre(t *testing.T) {
	tests := []struct {
		name string
		obj  any
		want []string
	}{
		{"valid category", models.Category{Name: "Films", Slug: "films"}, nil},
		{"valid genre", &models.Genre{Name: "Sci-Fi", Slug: "sci_fi-2"}, nil},
		{"blank name", models.Category{Slug: "x"}, []string{FieldName}},
		{"bad slug", models.Genre{Name: "Drama", Slug: "dr ama"}, []string{FieldSlug}},
		{"long slug", models.Genre{Name: "Drama", Slug: strings.Repeat("d", 51)}, []string{FieldSlug}},
		{"long name", models.Category{Name: strings.Repeat("n", 257), Slug: "n"}, []string{FieldName}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertFields(t, newTestValidator().Validate(context.Background(), tt.obj), tt.want...)
		})
	}
}

func TestValidate_TitleInput(t *testing.T) {
	required := []string{FieldName, FieldYear, FieldCategory, FieldGenre}

	tests := []struct {
		name     string
		input    models.TitleInput
		required []string
		want     []string
	}{
		{
			name:     "valid create",
			input:    models.TitleInput{Name: ptr("Dune"), Year: ptr(1965), Category: ptr("books"), Genres: &[]string{"sci-fi"}},
			required: required,
		},
		{
			name:     "current year allowed",
			input:    models.TitleInput{Name: ptr("New"), Year: ptr(2026), Category: ptr("films"), Genres: &[]string{}},
			required: required,
		},
		{
			name:     "future year",
			input:    models.TitleInput{Name: ptr("Later"), Year: ptr(2027), Category: ptr("films"), Genres: &[]string{}},
			required: required,
			want:     []string{FieldYear},
		},
		{
			name:     "missing everything on create",
			input:    models.TitleInput{},
			required: required,
			want:     required,
		},
		{
			name:  "partial update with only description",
			input: models.TitleInput{Description: ptr("")},
		},
		{
			name:  "partial update with blank genre slug",
			input: models.TitleInput{Genres: &[]string{"drama", ""}},
			want:  []string{FieldGenre},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestValidator().Validate(context.Background(), tt.input, tt.required...)
			assertFields(t, err, tt.want...)
		})
	}
}

func TestValidate_ReviewInput(t *testing.T) {
	v := newTestValidator()
	create := []string{FieldText, FieldScore}

	assertFields(t, v.Validate(context.Background(), models.ReviewInput{Text: ptr("Great"), Score: ptr(10)}, create...))
	assertFields(t, v.Validate(context.Background(), models.ReviewInput{Text: ptr("Bad"), Score: ptr(1)}, create...))
	assertFields(t, v.Validate(context.Background(), models.ReviewInput{Text: ptr("x")}, create...), FieldScore)
	assertFields(t, v.Validate(context.Background(), &models.ReviewInput{Score: ptr(5)}))
	assertFields(t, v.Validate(context.Background(), models.ReviewInput{Text: ptr("  ")}), FieldText)

	for _, score := range []int{0, 11, -3} {
		err := v.Validate(context.Background(), models.ReviewInput{Score: ptr(score)})

		var fieldErr *FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, []string{"Score must be between 1 and 10."}, fieldErr.Fields[FieldScore])
	}
}

func TestValidate_ReviewInputCustomRange(t *testing.T) {
	v := NewRequestValidator(0, 5, nil)

	assert.NoError(t, v.Validate(context.Background(), models.ReviewInput{Score: ptr(0)}))

	var fieldErr *FieldError
	require.ErrorAs(t, v.Validate(context.Background(), models.ReviewInput{Score: ptr(6)}), &fieldErr)
	assert.Equal(t, []string{"Score must be between 0 and 5."}, fieldErr.Fields[FieldScore])
}

func TestValidate_CommentInput(t *testing.T) {
	v := newTestValidator()

	assertFields(t, v.Validate(context.Background(), models.CommentInput{Text: ptr("Agreed")}, FieldText))
	assertFields(t, v.Validate(context.Background(), models.CommentInput{}, FieldText), FieldText)
	assertFields(t, v.Validate(context.Background(), &models.CommentInput{Text: ptr("")}), FieldText)
	assertFields(t, v.Validate(context.Background(), models.CommentInput{}))
}
