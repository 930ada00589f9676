//go:build unit

package user_test

import (
	"testing"
	"time"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}, user.Email{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	field  string
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, user.RoleFreeMember, actual.Role())
		assert.True(t, actual.Enabled())
		assert.Nil(t, actual.BillingCustomerID())
		assert.Equal(t, "test@example.com", actual.Email().Value())

		want := user.Profile{
			Name:        "名古屋 太郎",
			Furigana:    "ナゴヤ タロウ",
			PostalCode:  "4600002",
			Address:     "愛知県名古屋市中区丸の内1-1-1",
			PhoneNumber: "0521234567",
		}
		if diff := cmp.Diff(want, actual.Profile(), cmpOpts...); diff != "" {
			t.Errorf("Profile mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("プロフィール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "氏名空NG", mutate: func(b *builder.UserBuilder) { b.WithName("  ") }, field: "name"},
			{name: "郵便番号6桁NG", mutate: func(b *builder.UserBuilder) { b.WithPostalCode("460000") }, field: "postal_code"},
			{name: "郵便番号ハイフンNG", mutate: func(b *builder.UserBuilder) { b.WithPostalCode("460-0002") }, field: "postal_code"},
			{name: "電話番号9桁NG", mutate: func(b *builder.UserBuilder) { b.WithPhoneNumber("052123456") }, field: "phone_number"},
			{name: "電話番号11桁OK", mutate: func(b *builder.UserBuilder) { b.WithPhoneNumber("09012345678") }},
			{name: "誕生日空OK", mutate: func(b *builder.UserBuilder) { b.WithBirthday("") }},
			{name: "誕生日8桁OK", mutate: func(b *builder.UserBuilder) { b.WithBirthday("19900115") }},
			{name: "誕生日形式NG", mutate: func(b *builder.UserBuilder) { b.WithBirthday("1990-01-15") }, field: "birthday"},
			{name: "メール形式NG", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") }, field: "email"},
		})
	})

	t.Run("ロール変更", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		u.ChangeRole(user.RolePaidMember, now)
		assert.Equal(t, user.RolePaidMember, u.Role())
		assert.Equal(t, now, u.UpdatedAt())
	})
}

func TestValidateSignup(t *testing.T) {
	base := builder.NewUserBuilder().ProfileInput()

	t.Run("パスワード不一致は両方のフィールドに付く", func(t *testing.T) {
		_, _, err := user.ValidateSignup(user.SignupInput{
			ProfileInput:         base,
			Password:             "password123",
			PasswordConfirmation: "password124",
		})
		ve, ok := errs.AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "password")
		assert.Contains(t, ve.Fields, "password_confirmation")
	})

	t.Run("短いパスワードNG", func(t *testing.T) {
		_, _, err := user.ValidateSignup(user.SignupInput{
			ProfileInput:         base,
			Password:             "short",
			PasswordConfirmation: "short",
		})
		ve, ok := errs.AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "password")
	})

	t.Run("プロフィールとパスワードのエラーをまとめて返す", func(t *testing.T) {
		in := base
		in.Name = ""
		_, _, err := user.ValidateSignup(user.SignupInput{ProfileInput: in})
		ve, ok := errs.AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "name")
		assert.Contains(t, ve.Fields, "password")
		assert.Contains(t, ve.Fields, "password_confirmation")
	})

	t.Run("成功", func(t *testing.T) {
		profile, pw, err := user.ValidateSignup(user.SignupInput{
			ProfileInput:         base,
			Password:             "password123",
			PasswordConfirmation: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, "password123", pw.Value())
		assert.Nil(t, profile.Occupation)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.field == "" {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Nil(t, actual)
			require.ErrorIs(t, err, errs.ErrValidation)
			ve, ok := errs.AsValidation(err)
			require.True(t, ok)
			assert.Contains(t, ve.Fields, c.field)
		})
	}
}
