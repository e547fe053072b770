package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/roster/internal/account/domain"
	"github.com/aussiebroadwan/roster/internal/account/store"
	"github.com/aussiebroadwan/roster/internal/account/store/drivers/sqlite"
	"github.com/aussiebroadwan/roster/pkg/idx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite

	ctx   context.Context
	store *sqlite.Store
	now   time.Time
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	st, err := sqlite.NewStore(filepath.Join(s.T().TempDir(), "roster.db"))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = st.Close() })

	s.Require().NoError(st.ApplyMigrations())
	// Running twice is a no-op
	s.Require().NoError(st.ApplyMigrations())
	s.store = st
}

func (s *StoreSuite) newUser(username, email string) domain.User {
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$notarealhash",
		CreatedAt:    s.now,
		UpdatedAt:    s.now,
	}
	s.Require().NoError(s.store.Users().CreateUser(s.ctx, u))
	return u
}

func (s *StoreSuite) newCompany(name, createdBy string) domain.Company {
	c := domain.Company{
		ID:        idx.New().String(),
		Name:      name,
		CreatedBy: createdBy,
		CreatedAt: s.now,
		UpdatedAt: s.now,
	}
	s.Require().NoError(s.store.Companies().CreateCompany(s.ctx, c))
	return c
}

func (s *StoreSuite) newMembership(userID, companyID string, at time.Time) domain.Membership {
	m := domain.Membership{
		ID:        idx.New().String(),
		UserID:    userID,
		CompanyID: companyID,
		CreatedBy: userID,
		CreatedAt: at,
	}
	s.Require().NoError(s.store.Memberships().CreateMembership(s.ctx, m))
	return m
}

func (s *StoreSuite) TestPing() {
	s.Require().NoError(s.store.Ping(s.ctx))
}

func (s *StoreSuite) TestUsers() {
	users := s.store.Users()

	empty, err := users.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Empty(empty)

	alice := s.newUser("alice", "alice@example.com")

	got, err := users.GetUserByID(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Require().Equal(alice.Username, got.Username)
	s.Require().Equal(alice.Email, got.Email)
	s.Require().Equal(alice.PasswordHash, got.PasswordHash)
	s.Require().True(alice.CreatedAt.Equal(got.CreatedAt))

	got, err = users.GetUserByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Require().Equal(alice.ID, got.ID)

	_, err = users.GetUserByID(s.ctx, idx.New().String())
	s.Require().ErrorIs(err, store.ErrNotFound)
	_, err = users.GetUserByEmail(s.ctx, "nobody@example.com")
	s.Require().ErrorIs(err, store.ErrNotFound)

	exists, err := users.ExistsByEmailOrUsername(s.ctx, "other@example.com", "alice")
	s.Require().NoError(err)
	s.Require().True(exists)
	exists, err = users.ExistsByEmailOrUsername(s.ctx, "alice@example.com", "other")
	s.Require().NoError(err)
	s.Require().True(exists)
	exists, err = users.ExistsByEmailOrUsername(s.ctx, "other@example.com", "other")
	s.Require().NoError(err)
	s.Require().False(exists)

	s.newUser("bob", "bob@example.com")
	all, err := users.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Require().Equal("alice", all[0].Username)
}

func (s *StoreSuite) TestCreateUserDuplicate() {
	s.newUser("alice", "alice@example.com")

	dupEmail := domain.User{ID: idx.New().String(), Username: "alice2", Email: "alice@example.com", PasswordHash: "x", CreatedAt: s.now, UpdatedAt: s.now}
	s.Require().ErrorIs(s.store.Users().CreateUser(s.ctx, dupEmail), store.ErrAlreadyExists)

	dupName := domain.User{ID: idx.New().String(), Username: "alice", Email: "a2@example.com", PasswordHash: "x", CreatedAt: s.now, UpdatedAt: s.now}
	s.Require().ErrorIs(s.store.Users().CreateUser(s.ctx, dupName), store.ErrAlreadyExists)
}

func (s *StoreSuite) TestCompaniesAndMemberships() {
	alice := s.newUser("alice", "alice@example.com")
	bob := s.newUser("bob", "bob@example.com")

	none, err := s.store.Companies().ListCompaniesForUser(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Require().Empty(none)

	acme := s.newCompany("Acme", alice.ID)
	globex := s.newCompany("Globex", bob.ID)

	got, err := s.store.Companies().GetCompanyByID(s.ctx, acme.ID)
	s.Require().NoError(err)
	s.Require().Equal("Acme", got.Name)
	s.Require().Equal(alice.ID, got.CreatedBy)

	_, err = s.store.Companies().GetCompanyByID(s.ctx, idx.New().String())
	s.Require().ErrorIs(err, store.ErrNotFound)

	// alice joins globex before acme, the listing follows membership order
	s.newMembership(alice.ID, globex.ID, s.now)
	s.newMembership(alice.ID, acme.ID, s.now.Add(time.Minute))
	s.newMembership(bob.ID, globex.ID, s.now)

	companies, err := s.store.Companies().ListCompaniesForUser(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Require().Len(companies, 2)
	s.Require().Equal(globex.ID, companies[0].ID)
	s.Require().Equal(acme.ID, companies[1].ID)

	none, err = s.store.Companies().ListCompaniesForUser(s.ctx, idx.New().String())
	s.Require().NoError(err)
	s.Require().Empty(none)

	m, err := s.store.Memberships().GetMembership(s.ctx, bob.ID, globex.ID)
	s.Require().NoError(err)
	s.Require().Equal(bob.ID, m.UserID)

	_, err = s.store.Memberships().GetMembership(s.ctx, bob.ID, acme.ID)
	s.Require().ErrorIs(err, store.ErrNotFound)

	members, err := s.store.Memberships().ListMembershipsByCompany(s.ctx, globex.ID)
	s.Require().NoError(err)
	s.Require().Len(members, 2)
}

func (s *StoreSuite) TestMembershipUniquePerUserAndCompany() {
	alice := s.newUser("alice", "alice@example.com")
	acme := s.newCompany("Acme", alice.ID)
	s.newMembership(alice.ID, acme.ID, s.now)

	dup := domain.Membership{ID: idx.New().String(), UserID: alice.ID, CompanyID: acme.ID, CreatedBy: alice.ID, CreatedAt: s.now}
	s.Require().ErrorIs(s.store.Memberships().CreateMembership(s.ctx, dup), store.ErrAlreadyExists)
}

func (s *StoreSuite) TestMembershipRequiresCompany() {
	m := domain.Membership{ID: idx.New().String(), UserID: idx.New().String(), CompanyID: idx.New().String(), CreatedBy: "x", CreatedAt: s.now}
	err := s.store.Memberships().CreateMembership(s.ctx, m)
	s.Require().Error(err)
	s.Require().NotErrorIs(err, store.ErrAlreadyExists)
}

func (s *StoreSuite) TestWithTxRollsBack() {
	alice := s.newUser("alice", "alice@example.com")
	c := domain.Company{ID: idx.New().String(), Name: "Acme", CreatedBy: alice.ID, CreatedAt: s.now, UpdatedAt: s.now}

	err := s.store.WithTx(s.ctx, func(tx store.Tx) error {
		s.Require().NoError(tx.Companies().CreateCompany(s.ctx, c))
		// A second insert with the same id fails and aborts the whole unit
		return tx.Companies().CreateCompany(s.ctx, c)
	})
	s.Require().ErrorIs(err, store.ErrAlreadyExists)

	_, err = s.store.Companies().GetCompanyByID(s.ctx, c.ID)
	s.Require().ErrorIs(err, store.ErrNotFound)
}

func (s *StoreSuite) TestWithTxCommits() {
	alice := s.newUser("alice", "alice@example.com")
	c := domain.Company{ID: idx.New().String(), Name: "Acme", CreatedBy: alice.ID, CreatedAt: s.now, UpdatedAt: s.now}
	m := domain.Membership{ID: idx.New().String(), UserID: alice.ID, CompanyID: c.ID, CreatedBy: alice.ID, CreatedAt: s.now}

	err := s.store.WithTx(s.ctx, func(tx store.Tx) error {
		if err := tx.Companies().CreateCompany(s.ctx, c); err != nil {
			return err
		}
		return tx.Memberships().CreateMembership(s.ctx, m)
	})
	s.Require().NoError(err)

	_, err = s.store.Memberships().GetMembership(s.ctx, alice.ID, c.ID)
	s.Require().NoError(err)
}

func TestNestedTxUnsupported(t *testing.T) {
	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "roster.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	err = st.WithTx(context.Background(), func(tx store.Tx) error {
		_, err := tx.Tx(context.Background())
		require.ErrorIs(t, err, sql.ErrTxDone)
		return tx.WithTx(context.Background(), func(store.Tx) error { return nil })
	})
	require.ErrorIs(t, err, sql.ErrTxDone)
}

func TestCustomPragmaKeepsForeignKeys(t *testing.T) {
	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "roster.db") + "?_pragma=busy_timeout(100)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	orphan := domain.Membership{
		ID:        idx.New().String(),
		UserID:    idx.New().String(),
		CompanyID: "no-such-company",
		CreatedBy: "x",
		CreatedAt: time.Now().UTC(),
	}
	require.Error(t, st.Memberships().CreateMembership(context.Background(), orphan))
}
