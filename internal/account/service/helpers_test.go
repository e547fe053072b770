package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/roster/internal/account/domain"
	"github.com/aussiebroadwan/roster/internal/account/store"
	"github.com/aussiebroadwan/roster/internal/account/store/drivers/sqlite"
	"github.com/aussiebroadwan/roster/pkg/cryptox"
	"github.com/aussiebroadwan/roster/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testIssuer = "roster-account"

var errInjected = errors.New("injected failure")

// testClock is a settable clock shared by the services under test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	ctx      context.Context
	store    store.Store
	clock    *testClock
	tokens   *TokenService
	accounts *AccountService
	auth     *AuthService
	users    *UserService
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "roster.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := newTestStore(t)
	clock := &testClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}

	secret := []byte("test-secret-0123456789abcdef0123")
	signer, err := jwtx.NewHS256Signer(secret)
	require.NoError(t, err)
	verifier, err := jwtx.NewHS256Verifier(secret, testIssuer)
	require.NoError(t, err)

	tokens := &TokenService{
		Signer:   signer,
		Verifier: verifier,
		Issuer:   testIssuer,
		TTL:      jwtx.DefaultTokenTTL,
		Now:      clock.Now,
	}

	accounts, err := NewAccountService(st, cryptox.NewPasswordHasher(bcrypt.MinCost), tokens)
	require.NoError(t, err)
	accounts.Now = clock.Now

	return &testEnv{
		ctx:      context.Background(),
		store:    st,
		clock:    clock,
		tokens:   tokens,
		accounts: accounts,
		auth:  &AuthService{Store: st, Tokens: tokens},
		users: &UserService{Store: st},
	}
}

func (e *testEnv) companies(st store.Store) *CompanyService {
	return &CompanyService{Store: st, Now: e.clock.Now}
}

func (e *testEnv) register(t *testing.T, username, email, password string) AuthResult {
	t.Helper()
	res, err := e.accounts.Register(e.ctx, RegisterInput{Username: username, Email: email, Password: password})
	require.NoError(t, err)
	return res
}

// failingStore wraps a real store and fails the membership insert made inside
// a transaction, after the company insert has already gone through. The
// refused membership is kept in attempted.
type failingStore struct {
	store.Store
	attempted domain.Membership
}

func (f *failingStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return f.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(&failingTx{innerTx: tx, owner: f})
	})
}

// innerTx lets failingTx embed a store.Tx without the embedded field
// shadowing the Tx method.
type innerTx = store.Tx

type failingTx struct {
	innerTx
	owner *failingStore
}

var _ store.Tx = (*failingTx)(nil)

func (t *failingTx) Memberships() store.Memberships {
	return failingMemberships{Memberships: t.innerTx.Memberships(), owner: t.owner}
}

type failingMemberships struct {
	store.Memberships
	owner *failingStore
}

func (f failingMemberships) CreateMembership(_ context.Context, m domain.Membership) error {
	f.owner.attempted = m
	return errInjected
}

// blindStore never finds an existing membership, so AddMember's pre-check
// always passes, as it would for the loser of a concurrent race.
type blindStore struct {
	store.Store
}

func (b *blindStore) Memberships() store.Memberships {
	return blindMemberships{Memberships: b.Store.Memberships()}
}

type blindMemberships struct {
	store.Memberships
}

func (blindMemberships) GetMembership(context.Context, string, string) (domain.Membership, error) {
	return domain.Membership{}, store.ErrNotFound
}
