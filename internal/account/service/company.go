package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/roster/internal/account/domain"
	"github.com/aussiebroadwan/roster/internal/account/store"
	"github.com/aussiebroadwan/roster/pkg/idx"
	"github.com/aussiebroadwan/roster/pkg/otelx"
	"github.com/aussiebroadwan/roster/pkg/slogx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// CompanyService is the only writer of companies and memberships.
type CompanyService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *CompanyService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// CreateCompany creates a company and the principal's founding membership in
// one transaction. Either both rows exist afterwards or neither does.
func (s *CompanyService) CreateCompany(ctx context.Context, principal domain.User, name string) (domain.CompanyWithMembership, error) {
	ctx, span := otelx.Tracer().Start(ctx, "CompanyService.CreateCompany")
	defer span.End()
	log := slogx.FromContext(ctx)

	if principal.IsZero() {
		return domain.CompanyWithMembership{}, ErrUnauthenticated
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.CompanyWithMembership{}, invalid("name", "is required")
	}

	now := s.now()
	company := domain.Company{
		ID:        idx.New().String(),
		Name:      name,
		CreatedBy: principal.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	membership := domain.Membership{
		ID:        idx.New().String(),
		UserID:    principal.ID,
		CompanyID: company.ID,
		CreatedBy: principal.ID,
		CreatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Companies().CreateCompany(ctx, company); err != nil {
			return fmt.Errorf("create company: %w", err)
		}
		if err := tx.Memberships().CreateMembership(ctx, membership); err != nil {
			return fmt.Errorf("create founding membership: %w", err)
		}
		return nil
	})
	if err != nil {
		span.SetStatus(codes.Error, "transaction rolled back")
		log.Error("company creation rolled back",
			slog.String("user_id", principal.ID),
			slog.Any("error", err),
		)
		return domain.CompanyWithMembership{}, fmt.Errorf("%w: %w", ErrTransactionFailure, err)
	}

	span.SetAttributes(attribute.String("company.id", company.ID))
	log.Info("company created",
		slog.String("company_id", company.ID),
		slog.String("user_id", principal.ID),
	)
	return domain.CompanyWithMembership{Company: company, Membership: membership}, nil
}

// AddMember adds userID to companyID on behalf of principal.
//
// The duplicate check and the insert are separate statements, two concurrent
// calls for the same pair can both pass the check. The unique index on
// (user_id, company_id) rejects the second insert, which is reported as
// ErrDuplicateMembership as well.
func (s *CompanyService) AddMember(ctx context.Context, principal domain.User, companyID, userID string) (domain.Membership, error) {
	ctx, span := otelx.Tracer().Start(ctx, "CompanyService.AddMember")
	defer span.End()
	log := slogx.FromContext(ctx)

	if principal.IsZero() {
		return domain.Membership{}, ErrUnauthenticated
	}

	companyID = strings.TrimSpace(companyID)
	userID = strings.TrimSpace(userID)
	switch {
	case companyID == "":
		return domain.Membership{}, invalid("companyId", "is required")
	case userID == "":
		return domain.Membership{}, invalid("userId", "is required")
	}

	uid, err := idx.Parse(userID)
	if err != nil {
		return domain.Membership{}, invalid("userId", "is not a valid id")
	}
	// A malformed company id cannot name an existing company
	cid, err := idx.Parse(companyID)
	if err != nil {
		return domain.Membership{}, ErrNotFound
	}

	if _, err := s.Store.Companies().GetCompanyByID(ctx, cid.String()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, ErrNotFound
		}
		log.Error("failed to load company", slog.Any("error", err))
		return domain.Membership{}, err
	}

	_, err = s.Store.Memberships().GetMembership(ctx, uid.String(), cid.String())
	switch {
	case err == nil:
		return domain.Membership{}, ErrDuplicateMembership
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to check membership", slog.Any("error", err))
		return domain.Membership{}, err
	}

	membership := domain.Membership{
		ID:        idx.New().String(),
		UserID:    uid.String(),
		CompanyID: cid.String(),
		CreatedBy: principal.ID,
		CreatedAt: s.now(),
	}
	if err := s.Store.Memberships().CreateMembership(ctx, membership); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("concurrent add of the same member",
				slog.String("company_id", membership.CompanyID),
				slog.String("member_id", membership.UserID),
			)
			return domain.Membership{}, ErrDuplicateMembership
		}
		log.Error("failed to create membership", slog.Any("error", err))
		return domain.Membership{}, err
	}

	log.Info("member added",
		slog.String("company_id", membership.CompanyID),
		slog.String("member_id", membership.UserID),
		slog.String("user_id", principal.ID),
	)
	return membership, nil
}

// ListCompaniesForUser returns the companies principal belongs to, in the
// order the memberships were created.
func (s *CompanyService) ListCompaniesForUser(ctx context.Context, principal domain.User) ([]domain.Company, error) {
	if principal.IsZero() {
		return nil, ErrUnauthenticated
	}
	companies, err := s.Store.Companies().ListCompaniesForUser(ctx, principal.ID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list companies", slog.Any("error", err))
		return nil, err
	}
	return companies, nil
}

// ListMembers returns the memberships of companyID. Only members can see
// them, to anyone else the company does not exist.
func (s *CompanyService) ListMembers(ctx context.Context, principal domain.User, companyID string) ([]domain.Membership, error) {
	if principal.IsZero() {
		return nil, ErrUnauthenticated
	}

	cid, err := idx.Parse(strings.TrimSpace(companyID))
	if err != nil {
		return nil, ErrNotFound
	}

	if _, err := s.Store.Memberships().GetMembership(ctx, principal.ID, cid.String()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.Store.Memberships().ListMembershipsByCompany(ctx, cid.String())
}
