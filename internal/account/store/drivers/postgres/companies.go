package postgres

import (
	"context"

	"github.com/aussiebroadwan/roster/internal/account/domain"
	"github.com/jackc/pgx/v5"
)

type companiesRepo struct {
	db querier
}

func scanCompany(row pgx.Row) (domain.Company, error) {
	var c domain.Company
	err := row.Scan(&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *companiesRepo) CreateCompany(ctx context.Context, c domain.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (id, name, created_by, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *companiesRepo) GetCompanyByID(ctx context.Context, id string) (domain.Company, error) {
	c, err := scanCompany(r.db.QueryRow(ctx,
		`SELECT id, name, created_by, created_at, updated_at FROM companies WHERE id = $1`, id))
	if err != nil {
		return domain.Company{}, mapNotFound(err)
	}
	return c, nil
}

func (r *companiesRepo) ListCompaniesForUser(ctx context.Context, userID string) ([]domain.Company, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.name, c.created_by, c.created_at, c.updated_at
		FROM memberships m
		JOIN companies c ON c.id = m.company_id
		WHERE m.user_id = $1
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
