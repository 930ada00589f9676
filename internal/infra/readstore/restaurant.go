package readstore

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"nagoyameshi/internal/domain/category"
	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/pgconv"
	"nagoyameshi/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const restaurantSelect = `
SELECT r.id, r.name, r.image_name, r.description, r.lowest_price, r.highest_price,
       r.postal_code, r.address, r.opening_time, r.closing_time, r.seating_capacity,
       rs.avg_score, COALESCE(rs.review_count, 0), r.created_at
FROM restaurants r
LEFT JOIN (
    SELECT restaurant_id, AVG(score)::float8 AS avg_score, COUNT(*) AS review_count
    FROM reviews
    GROUP BY restaurant_id
) rs ON rs.restaurant_id = r.id`

const (
	keywordPredicate = `(r.name ILIKE $1 ESCAPE '\' OR r.address ILIKE $1 ESCAPE '\' OR EXISTS (
    SELECT 1 FROM restaurant_categories rc
    JOIN categories c ON c.id = rc.category_id
    WHERE rc.restaurant_id = r.id AND c.name ILIKE $1 ESCAPE '\'))`

	categoryPredicate = `EXISTS (
    SELECT 1 FROM restaurant_categories rc
    WHERE rc.restaurant_id = r.id AND rc.category_id = $1)`

	pricePredicate = `r.lowest_price <= $1`
)

var orderClauses = map[queries.RestaurantOrder]string{
	queries.OrderCreatedAtDesc:  `r.created_at DESC, r.id DESC`,
	queries.OrderLowestPriceAsc: `r.lowest_price ASC, r.id ASC`,
	// unreviewed restaurants sort after every reviewed one
	queries.OrderRatingDesc: `rs.avg_score DESC NULLS LAST, r.id ASC`,
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ReadOnlyRunner runs fn inside one read-only snapshot.
type ReadOnlyRunner interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error
}

type RestaurantReadStore struct {
	db        infra.DBTX
	snapshots ReadOnlyRunner
	logger    *slog.Logger
}

func NewRestaurantReadStore(db infra.DBTX, snapshots ReadOnlyRunner, logger *slog.Logger) *RestaurantReadStore {
	return &RestaurantReadStore{
		db:        db,
		snapshots: snapshots,
		logger:    logger,
	}
}

// searchQuery holds the WHERE clause shared by the page and count queries.
type searchQuery struct {
	where   string
	args    []any
	orderBy string
}

func buildSearchQuery(f queries.RestaurantFilter, order queries.RestaurantOrder) searchQuery {
	q := searchQuery{orderBy: orderClauses[queries.OrderCreatedAtDesc]}
	if clause, ok := orderClauses[order]; ok {
		q.orderBy = clause
	}

	switch f.Kind {
	case queries.FilterKeyword:
		q.where = " WHERE " + keywordPredicate
		q.args = []any{"%" + likeEscaper.Replace(f.Keyword) + "%"}
	case queries.FilterCategory:
		q.where = " WHERE " + categoryPredicate
		q.args = []any{f.CategoryID}
	case queries.FilterPrice:
		q.where = " WHERE " + pricePredicate
		q.args = []any{f.Price}
	}
	return q
}

func (q searchQuery) pageSQL() string {
	n := len(q.args)
	return restaurantSelect + q.where +
		" ORDER BY " + q.orderBy +
		" LIMIT $" + strconv.Itoa(n+1) + " OFFSET $" + strconv.Itoa(n+2)
}

func (q searchQuery) countSQL() string {
	return `SELECT COUNT(*) FROM restaurants r` + q.where
}

// Search counts and pages in the same snapshot so the total matches the items.
func (s *RestaurantReadStore) Search(ctx context.Context, f queries.RestaurantFilter, order queries.RestaurantOrder, limit, offset int) ([]*queries.RestaurantListItem, int64, error) {
	q := buildSearchQuery(f, order)

	items := []*queries.RestaurantListItem{}
	var total int64
	err := s.snapshots.WithinReadOnly(ctx, func(ctx context.Context, db infra.DBTX) error {
		if err := db.QueryRow(ctx, q.countSQL(), q.args...).Scan(&total); err != nil {
			return infra.Classify(s.logger, "failed to count restaurants", err)
		}
		if total == 0 {
			return nil
		}

		args := append(append([]any{}, q.args...), limit, offset)
		rows, err := db.Query(ctx, q.pageSQL(), args...)
		if err != nil {
			return infra.Classify(s.logger, "failed to search restaurants", err)
		}
		items, err = pgx.CollectRows(rows, scanRestaurantItem)
		if err != nil {
			return infra.Classify(s.logger, "failed to scan restaurants", err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *RestaurantReadStore) FindByID(ctx context.Context, id int64) (*queries.RestaurantDetail, error) {
	rows, err := s.db.Query(ctx, restaurantSelect+` WHERE r.id = $1`, id)
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to get restaurant", err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, scanRestaurantItem)
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to get restaurant", err)
	}

	detail := &queries.RestaurantDetail{RestaurantListItem: *item}

	rows, err = s.db.Query(ctx, `
SELECT c.id, c.name
FROM restaurant_categories rc
JOIN categories c ON c.id = rc.category_id
WHERE rc.restaurant_id = $1
ORDER BY c.id`, id)
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to load restaurant categories", err)
	}
	detail.Categories, err = pgx.CollectRows(rows, pgx.RowToStructByPos[queries.CategoryView])
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to load restaurant categories", err)
	}

	rows, err = s.db.Query(ctx, `
SELECT h.id, h.day, h.day_index
FROM restaurant_regular_holidays rh
JOIN regular_holidays h ON h.id = rh.regular_holiday_id
WHERE rh.restaurant_id = $1
ORDER BY h.day_index`, id)
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to load restaurant holidays", err)
	}
	detail.RegularHolidays, err = pgx.CollectRows(rows, pgx.RowToStructByPos[category.RegularHoliday])
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to load restaurant holidays", err)
	}

	detail.CategoryNames = make([]string, 0, len(detail.Categories))
	for _, c := range detail.Categories {
		detail.CategoryNames = append(detail.CategoryNames, c.Name)
	}
	return detail, nil
}

func (s *RestaurantReadStore) CategoryNames(ctx context.Context, restaurantIDs []int64) (map[int64][]string, error) {
	names := make(map[int64][]string, len(restaurantIDs))
	if len(restaurantIDs) == 0 {
		return names, nil
	}

	rows, err := s.db.Query(ctx, `
SELECT rc.restaurant_id, c.name
FROM restaurant_categories rc
JOIN categories c ON c.id = rc.category_id
WHERE rc.restaurant_id = ANY($1)
ORDER BY rc.restaurant_id, c.id`, restaurantIDs)
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to load category names", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, infra.Classify(s.logger, "failed to scan category name", err)
		}
		names[id] = append(names[id], name)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.Classify(s.logger, "failed to load category names", err)
	}
	return names, nil
}

func (s *RestaurantReadStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&n); err != nil {
		return 0, infra.Classify(s.logger, "failed to count restaurants", err)
	}
	return n, nil
}

func scanRestaurantItem(row pgx.CollectableRow) (*queries.RestaurantListItem, error) {
	var (
		it            queries.RestaurantListItem
		opening, clos pgtype.Time
	)
	err := row.Scan(
		&it.ID, &it.Name, &it.ImageName, &it.Description, &it.LowestPrice, &it.HighestPrice,
		&it.PostalCode, &it.Address, &opening, &clos, &it.SeatingCapacity,
		&it.AverageScore, &it.ReviewCount, &it.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	it.OpeningTime = restaurant.TimeOfDay(pgconv.TimeOfDay(opening)).String()
	it.ClosingTime = restaurant.TimeOfDay(pgconv.TimeOfDay(clos)).String()
	return &it, nil
}
