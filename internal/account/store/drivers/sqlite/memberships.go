package sqlite

import (
	"context"

	"github.com/aussiebroadwan/roster/internal/account/domain"
)

const membershipColumns = `id, user_id, company_id, created_by, created_at`

type membershipsRepo struct {
	db dbtx
}

func scanMembership(row rowScanner) (domain.Membership, error) {
	var m domain.Membership
	err := row.Scan(&m.ID, &m.UserID, &m.CompanyID, &m.CreatedBy, &m.CreatedAt)
	return m, err
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO memberships (`+membershipColumns+`) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.CompanyID, m.CreatedBy, m.CreatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *membershipsRepo) GetMembership(ctx context.Context, userID, companyID string) (domain.Membership, error) {
	m, err := scanMembership(r.db.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE user_id = ? AND company_id = ?`,
		userID, companyID))
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipsRepo) ListMembershipsByCompany(ctx context.Context, companyID string) ([]domain.Membership, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE company_id = ? ORDER BY created_at, id`,
		companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
