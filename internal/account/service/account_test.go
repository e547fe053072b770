package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()

	cases := []struct{ username, email, password string }{
		{"alice", "alice@x.com", "pw123"},
		{"bob", "  Bob@Example.COM ", "correct horse battery staple"},
		{"zoë", "zoe@example.com", "пароль🔒"},
		{"max", "max@example.com", strings.Repeat("p", 72)},
	}

	for _, tc := range cases {
		t.Run(tc.username, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)

			reg := env.register(t, tc.username, tc.email, tc.password)
			require.NotEmpty(t, reg.Token)
			require.Equal(t, NormalizeEmail(tc.email), reg.User.Email)

			login, err := env.accounts.Login(env.ctx, LoginInput{Email: tc.email, Password: tc.password})
			require.NoError(t, err)

			subject, err := env.tokens.Verify(login.Token)
			require.NoError(t, err)
			require.Equal(t, reg.User.ID, subject)
		})
	}
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	reg := env.register(t, "alice", "alice@x.com", "pw123")

	stored, err := env.store.Users().GetUserByID(env.ctx, reg.User.ID)
	require.NoError(t, err)
	require.NotEqual(t, "pw123", stored.PasswordHash)
	require.True(t, strings.HasPrefix(stored.PasswordHash, "$2a$"))
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	tests := []struct {
		name  string
		in    RegisterInput
		field string
	}{
		{"missing username", RegisterInput{Email: "a@x.com", Password: "pw"}, "username"},
		{"blank username", RegisterInput{Username: "   ", Email: "a@x.com", Password: "pw"}, "username"},
		{"missing email", RegisterInput{Username: "alice", Password: "pw"}, "email"},
		{"missing password", RegisterInput{Username: "alice", Email: "a@x.com"}, "password"},
		{"short username", RegisterInput{Username: " al ", Email: "a@x.com", Password: "pw"}, "username"},
		{"password too long", RegisterInput{Username: "alice", Email: "a@x.com", Password: strings.Repeat("p", 73)}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.accounts.Register(env.ctx, tt.in)
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.field, verr.Field)
		})
	}

	users, err := env.users.ListUsers(env.ctx)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestRegisterDuplicate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.register(t, "alice", "alice@x.com", "pw123")

	_, err := env.accounts.Register(env.ctx, RegisterInput{Username: "alice2", Email: "alice@x.com", Password: "pw"})
	require.ErrorIs(t, err, ErrDuplicateUser)

	// Emails are compared after normalisation
	_, err = env.accounts.Register(env.ctx, RegisterInput{Username: "alice3", Email: " ALICE@X.COM", Password: "pw"})
	require.ErrorIs(t, err, ErrDuplicateUser)

	_, err = env.accounts.Register(env.ctx, RegisterInput{Username: "alice", Email: "other@x.com", Password: "pw"})
	require.ErrorIs(t, err, ErrDuplicateUser)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.register(t, "alice", "alice@x.com", "pw123")

	_, unknown := env.accounts.Login(env.ctx, LoginInput{Email: "nobody@x.com", Password: "pw123"})
	_, wrong := env.accounts.Login(env.ctx, LoginInput{Email: "alice@x.com", Password: "wrongpw"})

	require.ErrorIs(t, unknown, ErrInvalidCredentials)
	require.ErrorIs(t, wrong, ErrInvalidCredentials)
	require.Equal(t, unknown.Error(), wrong.Error())
}

func TestNewAccountServicePreparesDummyHash(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	prepared := env.accounts.dummyHash
	require.NotEmpty(t, prepared)
	ok, err := env.accounts.Hasher.Verify("roster-timing-equaliser", prepared)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = env.accounts.Login(env.ctx, LoginInput{Email: "nobody@x.com", Password: "pw123"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, prepared, env.accounts.dummyHash, "unknown-email login rebuilt the dummy hash")
}

func TestLoginValidation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.accounts.Login(env.ctx, LoginInput{Password: "pw"})
	require.ErrorIs(t, err, ErrValidation)
	_, err = env.accounts.Login(env.ctx, LoginInput{Email: "a@x.com"})
	require.ErrorIs(t, err, ErrValidation)
}

// Register, a rejected duplicate, a bad password, login, then a first company.
func TestAliceScenario(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	companies := env.companies(env.store)

	alice := env.register(t, "alice", "alice@x.com", "pw123")

	_, err := env.accounts.Register(env.ctx, RegisterInput{Username: "alice-two", Email: "alice@x.com", Password: "pw123"})
	require.ErrorIs(t, err, ErrDuplicateUser)

	_, err = env.accounts.Login(env.ctx, LoginInput{Email: "alice@x.com", Password: "wrongpw"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	login, err := env.accounts.Login(env.ctx, LoginInput{Email: "alice@x.com", Password: "pw123"})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)

	principal, err := env.auth.Authenticate(env.ctx, "Bearer "+login.Token)
	require.NoError(t, err)
	require.Equal(t, alice.User.ID, principal.ID)

	created, err := companies.CreateCompany(env.ctx, principal, "Acme")
	require.NoError(t, err)
	require.Equal(t, "Acme", created.Company.Name)
	require.Equal(t, alice.User.ID, created.Company.CreatedBy)
	require.Equal(t, alice.User.ID, created.Membership.UserID)
	require.Equal(t, created.Company.ID, created.Membership.CompanyID)
	require.Equal(t, alice.User.ID, created.Membership.CreatedBy)

	list, err := companies.ListCompaniesForUser(env.ctx, principal)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Acme", list[0].Name)
}
