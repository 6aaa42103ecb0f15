//go:build unit

package user_test

import (
	"testing"
	"time"

	"carseat-rental/internal/domain/user"
	"carseat-rental/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		expected, err := user.NewUser(email, "hashed_password", "Taylor", "Rivera", "(555) 123-4567", time.Now())
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.Waiver().Signed())
		assert.Nil(t, actual.Waiver().SignedAt())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid email", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "mixed case is accepted", mutate: func(b *builder.UserBuilder) { b.WithEmail("Valid@Example.COM") }},
			{name: "empty email", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "invalid format", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") }, errIs: user.ErrInvalidEmail},
			{name: "missing at sign", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("profile validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "blank first name", mutate: func(b *builder.UserBuilder) { b.WithName(" ", "Rivera") }, errIs: user.ErrEmptyName},
			{name: "blank last name", mutate: func(b *builder.UserBuilder) { b.WithName("Taylor", "") }, errIs: user.ErrEmptyName},
			{name: "blank phone", mutate: func(b *builder.UserBuilder) { b.WithPhone("") }, errIs: user.ErrEmptyPhone},
		})
	})
}

func TestEmailNormalization(t *testing.T) {
	e, err := user.NewEmail("  Ada@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", e.Value())
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	p, err := user.NewPassword("longenough")
	require.NoError(t, err)
	assert.Equal(t, "longenough", p.Value())
}

func TestSignWaiver(t *testing.T) {
	now := time.Date(2024, 8, 2, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		hasRead bool
		agrees  bool
		errIs   error
	}{
		{name: "both accepted", hasRead: true, agrees: true},
		{name: "not read", hasRead: false, agrees: true, errIs: user.ErrWaiverTermsNotAccepted},
		{name: "not agreed", hasRead: true, agrees: false, errIs: user.ErrWaiverTermsNotAccepted},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			u := builder.NewUserBuilder().BuildStored()
			err := u.SignWaiver(c.hasRead, c.agrees, now)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.False(t, u.Waiver().Signed())
				return
			}
			require.NoError(t, err)
			assert.True(t, u.Waiver().Signed())
			assert.Equal(t, now, *u.Waiver().SignedAt())
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
