package repository

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/domain/content"
	"nagoyameshi/internal/infra"
)

// ContentRepository appends rows; readers always take the latest one.
type ContentRepository struct {
	db     infra.DBTX
	logger *slog.Logger
}

func NewContentRepository(db infra.DBTX, logger *slog.Logger) *ContentRepository {
	return &ContentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ContentRepository) SaveTerm(ctx context.Context, body string) (*content.Term, error) {
	t := content.Term{Content: body}
	err := r.db.QueryRow(ctx, `
INSERT INTO terms (content, created_at, updated_at) VALUES ($1, now(), now())
RETURNING id, created_at, updated_at`, body).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to save term", err)
	}
	return &t, nil
}

func (r *ContentRepository) SaveCompany(ctx context.Context, c content.Company) (*content.Company, error) {
	err := r.db.QueryRow(ctx, `
INSERT INTO companies (
    name, postal_code, address, representative, establishment_date, capital, business, number_of_employees
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`,
		c.Name, c.PostalCode, c.Address, c.Representative, c.EstablishmentDate, c.Capital, c.Business, c.NumberOfEmployees,
	).Scan(&c.ID)
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to save company", err)
	}
	return &c, nil
}
