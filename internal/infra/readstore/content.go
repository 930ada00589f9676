package readstore

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/domain/content"
	"nagoyameshi/internal/infra"
)

type ContentReadStore struct {
	db     infra.DBTX
	logger *slog.Logger
}

func NewContentReadStore(db infra.DBTX, logger *slog.Logger) *ContentReadStore {
	return &ContentReadStore{
		db:     db,
		logger: logger,
	}
}

func (s *ContentReadStore) LatestTerm(ctx context.Context) (*content.Term, error) {
	var t content.Term
	err := s.db.QueryRow(ctx, `
SELECT id, content, created_at, updated_at FROM terms ORDER BY id DESC LIMIT 1`).
		Scan(&t.ID, &t.Content, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to get latest term", err)
	}
	return &t, nil
}

func (s *ContentReadStore) LatestCompany(ctx context.Context) (*content.Company, error) {
	var c content.Company
	err := s.db.QueryRow(ctx, `
SELECT id, name, postal_code, address, representative, establishment_date, capital, business, number_of_employees
FROM companies ORDER BY id DESC LIMIT 1`).Scan(
		&c.ID, &c.Name, &c.PostalCode, &c.Address, &c.Representative,
		&c.EstablishmentDate, &c.Capital, &c.Business, &c.NumberOfEmployees,
	)
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to get latest company", err)
	}
	return &c, nil
}
