//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"beauty-booking/internal/domain/user"
	"beauty-booking/tests/common/builder"

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
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		name, _ := user.NewName("Maria Silva")
		email, _ := user.NewEmail("maria@example.com")
		expected := user.NewUser(name, email, "hashed_password", user.RoleClient, time.Now())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "maria@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleClient, actual.Role())
		assert.Nil(t, actual.LastLogin())
		assert.False(t, actual.Actor().IsOwner())
	})

	t.Run("名前検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効な名前OK",
				mutate: func(b *builder.UserBuilder) { b.WithName("Ana") },
			},
			{
				name:   "空の名前NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrInvalidName,
			},
			{
				name:   "長すぎる名前NG",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", 101)) },
				errIs:  user.ErrInvalidName,
			},
		})
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "大文字混在OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  Valid@Example.COM ") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "client ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("client") },
			},
			{
				name:   "owner ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("owner") },
			},
			{
				name:   "旧ロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestEmailNormalization(t *testing.T) {
	email, err := user.NewEmail("  Cliente@Salao.COM.br ")
	require.NoError(t, err)
	assert.Equal(t, "cliente@salao.com.br", email.Value())
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "8文字OK", input: "12345678"},
		{name: "7文字NG", input: "1234567", errIs: user.ErrPasswordTooWeak},
		{name: "72バイトOK", input: strings.Repeat("x", 72)},
		{name: "73バイトNG", input: strings.Repeat("x", 73), errIs: user.ErrPasswordTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := user.NewPassword(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, p.Value())
		})
	}
}

func TestActor(t *testing.T) {
	id := uuid.New()

	owner := user.NewActor(id, user.RoleOwner)
	assert.True(t, owner.IsOwner())
	assert.True(t, owner.IsAuthenticated())

	client := user.NewActor(id, user.RoleClient)
	assert.False(t, client.IsOwner())

	assert.False(t, user.Actor{}.IsAuthenticated())
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
