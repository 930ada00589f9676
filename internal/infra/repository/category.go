package repository

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/domain/category"
	"nagoyameshi/internal/infra"
)

type CategoryRepository struct {
	db     infra.DBTX
	logger *slog.Logger
}

func NewCategoryRepository(db infra.DBTX, logger *slog.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, c.Name()).Scan(&id)
	if err != nil {
		return 0, infra.Classify(r.logger, "failed to create category", err)
	}
	return id, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	tag, err := r.db.Exec(ctx, `UPDATE categories SET name = $2 WHERE id = $1`, c.ID(), c.Name())
	if err != nil {
		return infra.Classify(r.logger, "failed to update category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound(r.logger, "category not found")
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM restaurant_categories WHERE category_id = $1`, id); err != nil {
		return infra.Classify(r.logger, "failed to delete category links", err)
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return infra.Classify(r.logger, "failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound(r.logger, "category not found")
	}
	return nil
}
