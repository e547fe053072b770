package sqlite

import (
	"context"

	"github.com/aussiebroadwan/roster/internal/account/domain"
)

type companiesRepo struct {
	db dbtx
}

func scanCompany(row rowScanner) (domain.Company, error) {
	var c domain.Company
	err := row.Scan(&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *companiesRepo) CreateCompany(ctx context.Context, c domain.Company) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO companies (id, name, created_by, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.CreatedBy, c.CreatedAt.UTC(), c.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *companiesRepo) GetCompanyByID(ctx context.Context, id string) (domain.Company, error) {
	c, err := scanCompany(r.db.QueryRowContext(ctx,
		`SELECT id, name, created_by, created_at, updated_at FROM companies WHERE id = ?`, id))
	if err != nil {
		return domain.Company{}, mapNotFound(err)
	}
	return c, nil
}

func (r *companiesRepo) ListCompaniesForUser(ctx context.Context, userID string) ([]domain.Company, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.created_by, c.created_at, c.updated_at
		FROM memberships m
		JOIN companies c ON c.id = m.company_id
		WHERE m.user_id = ?
		ORDER BY m.created_at, m.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
