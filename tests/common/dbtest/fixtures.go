//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"nagoyameshi/internal/domain/user"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of TestPassword
const (
	TestPassword     = "password123"
	testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

func CreateTestUser(t *testing.T, db DBLike, email string, role user.Role) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
INSERT INTO users (name, furigana, postal_code, address, phone_number, email, password_hash, role)
VALUES ('名古屋 太郎', 'ナゴヤ タロウ', '4600001', '愛知県名古屋市中区', '0521234567', $1, $2, $3)
ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
RETURNING id`, email, testPasswordHash, string(role)).Scan(&id)
	require.NoError(t, err)
	return id
}

func SetBillingCustomer(t *testing.T, db DBLike, userID int64, customerID string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `UPDATE users SET billing_customer_id = $2 WHERE id = $1`, userID, customerID)
	require.NoError(t, err)
}

type RestaurantRow struct {
	Name         string
	LowestPrice  int
	HighestPrice int
	CreatedAt    time.Time
}

func CreateTestRestaurant(t *testing.T, db DBLike, r RestaurantRow) int64 {
	t.Helper()

	if r.HighestPrice == 0 {
		r.LowestPrice, r.HighestPrice = 1000, 3000
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	var id int64
	err := db.QueryRow(context.Background(), `
INSERT INTO restaurants (
    name, description, lowest_price, highest_price, postal_code, address,
    opening_time, closing_time, seating_capacity, created_at, updated_at
) VALUES ($1, '名古屋めしの店', $2, $3, '4600008', '愛知県名古屋市中区栄', '11:00', '21:00', 30, $4, $4)
RETURNING id`, r.Name, r.LowestPrice, r.HighestPrice, r.CreatedAt).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestCategory(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `INSERT INTO categories (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func LinkCategory(t *testing.T, db DBLike, restaurantID, categoryID int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO restaurant_categories (restaurant_id, category_id) VALUES ($1, $2)`, restaurantID, categoryID)
	require.NoError(t, err)
}

func CreateTestReview(t *testing.T, db DBLike, restaurantID, userID int64, score int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
INSERT INTO reviews (restaurant_id, user_id, score, content) VALUES ($1, $2, $3, 'また来たい')
RETURNING id`, restaurantID, userID, score).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestReservation(t *testing.T, db DBLike, restaurantID, userID int64, reservedAt time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
INSERT INTO reservations (restaurant_id, user_id, reserved_at, number_of_people) VALUES ($1, $2, $3, 2)
RETURNING id`, restaurantID, userID, reservedAt).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestFavorite(t *testing.T, db DBLike, restaurantID, userID int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO favorites (restaurant_id, user_id) VALUES ($1, $2) RETURNING id`, restaurantID, userID).Scan(&id)
	require.NoError(t, err)
	return id
}

// HolidayID resolves a seeded regular holiday by its day index.
func HolidayID(t *testing.T, db DBLike, dayIndex int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `SELECT id FROM regular_holidays WHERE day_index = $1`, dayIndex).Scan(&id)
	require.NoError(t, err)
	return id
}

func Count(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO regular_holidays (day, day_index) VALUES
		    ('月曜日', 0), ('火曜日', 1), ('水曜日', 2), ('木曜日', 3),
		    ('金曜日', 4), ('土曜日', 5), ('日曜日', 6), ('不定休', 7)
		ON CONFLICT (day_index) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
