package repository

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/domain/association"
	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/pgconv"
)

const (
	createRestaurantSQL = `
INSERT INTO restaurants (
    name, image_name, description, lowest_price, highest_price, postal_code,
    address, opening_time, closing_time, seating_capacity, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

	updateRestaurantSQL = `
UPDATE restaurants SET
    name = $2, image_name = $3, description = $4, lowest_price = $5, highest_price = $6,
    postal_code = $7, address = $8, opening_time = $9, closing_time = $10,
    seating_capacity = $11, updated_at = $12
WHERE id = $1`

	listCategoryLinksSQL = `
SELECT id, category_id FROM restaurant_categories WHERE restaurant_id = $1 ORDER BY id`

	listHolidayLinksSQL = `
SELECT id, regular_holiday_id FROM restaurant_regular_holidays WHERE restaurant_id = $1 ORDER BY id`

	insertCategoryLinksSQL = `
INSERT INTO restaurant_categories (restaurant_id, category_id)
SELECT $1, unnest($2::bigint[])
ON CONFLICT (restaurant_id, category_id) DO NOTHING`

	insertHolidayLinksSQL = `
INSERT INTO restaurant_regular_holidays (restaurant_id, regular_holiday_id)
SELECT $1, unnest($2::bigint[])
ON CONFLICT (restaurant_id, regular_holiday_id) DO NOTHING`

	deleteCategoryLinksSQL = `DELETE FROM restaurant_categories WHERE id = ANY($1)`
	deleteHolidayLinksSQL  = `DELETE FROM restaurant_regular_holidays WHERE id = ANY($1)`
)

// children are removed before the parent row; FK cascades only back this up.
var deleteRestaurantSQL = []string{
	`DELETE FROM restaurant_categories WHERE restaurant_id = $1`,
	`DELETE FROM restaurant_regular_holidays WHERE restaurant_id = $1`,
	`DELETE FROM reviews WHERE restaurant_id = $1`,
	`DELETE FROM reservations WHERE restaurant_id = $1`,
	`DELETE FROM favorites WHERE restaurant_id = $1`,
}

type RestaurantRepository struct {
	db     infra.DBTX
	logger *slog.Logger
}

func NewRestaurantRepository(db infra.DBTX, logger *slog.Logger) *RestaurantRepository {
	return &RestaurantRepository{
		db:     db,
		logger: logger,
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, rs *restaurant.Restaurant) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, createRestaurantSQL,
		rs.Name(), rs.ImageName(), rs.Description(), rs.LowestPrice(), rs.HighestPrice(), rs.PostalCode(),
		rs.Address(), pgconv.TimeOfDayToPgtype(rs.OpeningTime().Duration()), pgconv.TimeOfDayToPgtype(rs.ClosingTime().Duration()),
		rs.SeatingCapacity(), rs.CreatedAt(), rs.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.Classify(r.logger, "failed to create restaurant", err)
	}
	return id, nil
}

func (r *RestaurantRepository) Update(ctx context.Context, rs *restaurant.Restaurant) error {
	tag, err := r.db.Exec(ctx, updateRestaurantSQL,
		rs.ID(), rs.Name(), rs.ImageName(), rs.Description(), rs.LowestPrice(), rs.HighestPrice(),
		rs.PostalCode(), rs.Address(), pgconv.TimeOfDayToPgtype(rs.OpeningTime().Duration()), pgconv.TimeOfDayToPgtype(rs.ClosingTime().Duration()),
		rs.SeatingCapacity(), rs.UpdatedAt(),
	)
	if err != nil {
		return infra.Classify(r.logger, "failed to update restaurant", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound(r.logger, "restaurant not found")
	}
	return nil
}

func (r *RestaurantRepository) Delete(ctx context.Context, id int64) error {
	for _, stmt := range deleteRestaurantSQL {
		if _, err := r.db.Exec(ctx, stmt, id); err != nil {
			return infra.Classify(r.logger, "failed to delete restaurant children", err)
		}
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return infra.Classify(r.logger, "failed to delete restaurant", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound(r.logger, "restaurant not found")
	}
	return nil
}

func (r *RestaurantRepository) CategoryLinks(ctx context.Context, restaurantID int64) ([]association.Link, error) {
	return r.links(ctx, listCategoryLinksSQL, restaurantID, "failed to list category links")
}

func (r *RestaurantRepository) HolidayLinks(ctx context.Context, restaurantID int64) ([]association.Link, error) {
	return r.links(ctx, listHolidayLinksSQL, restaurantID, "failed to list holiday links")
}

func (r *RestaurantRepository) InsertCategoryLinks(ctx context.Context, restaurantID int64, categoryIDs []int64) error {
	return r.exec(ctx, insertCategoryLinksSQL, "failed to insert category links", restaurantID, categoryIDs)
}

func (r *RestaurantRepository) InsertHolidayLinks(ctx context.Context, restaurantID int64, holidayIDs []int64) error {
	return r.exec(ctx, insertHolidayLinksSQL, "failed to insert holiday links", restaurantID, holidayIDs)
}

func (r *RestaurantRepository) DeleteCategoryLinks(ctx context.Context, linkIDs []int64) error {
	if len(linkIDs) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, deleteCategoryLinksSQL, linkIDs)
	return infra.Classify(r.logger, "failed to delete category links", err)
}

func (r *RestaurantRepository) DeleteHolidayLinks(ctx context.Context, linkIDs []int64) error {
	if len(linkIDs) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, deleteHolidayLinksSQL, linkIDs)
	return infra.Classify(r.logger, "failed to delete holiday links", err)
}

func (r *RestaurantRepository) exec(ctx context.Context, sql, msg string, restaurantID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, sql, restaurantID, ids)
	return infra.Classify(r.logger, msg, err)
}

func (r *RestaurantRepository) links(ctx context.Context, sql string, restaurantID int64, msg string) ([]association.Link, error) {
	rows, err := r.db.Query(ctx, sql, restaurantID)
	if err != nil {
		return nil, infra.Classify(r.logger, msg, err)
	}
	defer rows.Close()

	var links []association.Link
	for rows.Next() {
		var l association.Link
		if err := rows.Scan(&l.ID, &l.RelatedID); err != nil {
			return nil, infra.Classify(r.logger, msg, err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.Classify(r.logger, msg, err)
	}
	return links, nil
}
