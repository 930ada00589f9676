package readstore

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/domain/category"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type CategoryReadStore struct {
	db     infra.DBTX
	logger *slog.Logger
}

func NewCategoryReadStore(db infra.DBTX, logger *slog.Logger) *CategoryReadStore {
	return &CategoryReadStore{
		db:     db,
		logger: logger,
	}
}

func (s *CategoryReadStore) All(ctx context.Context) ([]queries.CategoryView, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to list categories", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[queries.CategoryView])
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to scan categories", err)
	}
	return out, nil
}

func (s *CategoryReadStore) Holidays(ctx context.Context) ([]category.RegularHoliday, error) {
	rows, err := s.db.Query(ctx, `SELECT id, day, day_index FROM regular_holidays ORDER BY day_index, id`)
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to list regular holidays", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[category.RegularHoliday])
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to scan regular holidays", err)
	}
	return out, nil
}

func (s *CategoryReadStore) Search(ctx context.Context, keyword string, limit, offset int) ([]queries.CategoryView, int64, error) {
	pattern := "%" + likeEscaper.Replace(keyword) + "%"

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE name ILIKE $1 ESCAPE '\'`, pattern).Scan(&total); err != nil {
		return nil, 0, infra.Classify(s.logger, "failed to count categories", err)
	}

	rows, err := s.db.Query(ctx, `
SELECT id, name FROM categories
WHERE name ILIKE $1 ESCAPE '\'
ORDER BY id DESC
LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, infra.Classify(s.logger, "failed to search categories", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[queries.CategoryView])
	if err != nil {
		return nil, 0, infra.Classify(s.logger, "failed to scan categories", err)
	}
	return out, total, nil
}

func (s *CategoryReadStore) FindByID(ctx context.Context, id int64) (*queries.CategoryView, error) {
	v := queries.CategoryView{ID: id}
	if err := s.db.QueryRow(ctx, `SELECT name FROM categories WHERE id = $1`, id).Scan(&v.Name); err != nil {
		return nil, infra.Classify(s.logger, "failed to get category", err)
	}
	return &v, nil
}
