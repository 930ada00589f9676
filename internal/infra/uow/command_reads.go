package uow

import (
	"context"
	"log/slog"
	"time"

	"nagoyameshi/internal/domain/association"
	"nagoyameshi/internal/domain/category"
	"nagoyameshi/internal/domain/favorite"
	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/domain/review"
	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/pkg/pgconv"
	"nagoyameshi/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	restaurantColumns = `id, name, image_name, description, lowest_price, highest_price, postal_code,
    address, opening_time, closing_time, seating_capacity, created_at, updated_at`

	userColumns = `id, name, furigana, postal_code, address, phone_number, birthday, occupation,
    email, password_hash, role, enabled, billing_customer_id, created_at, updated_at`
)

// commandReads serves lookups over whichever DBTX it was built on: the pool
// outside a transaction, the pgx.Tx inside one.
type commandReads struct {
	db     infra.DBTX
	logger *slog.Logger
}

func newCommandReads(db infra.DBTX, logger *slog.Logger) *commandReads {
	return &commandReads{db: db, logger: logger}
}

var _ shared.CommandReads = (*commandReads)(nil)

func (r *commandReads) RestaurantByID(ctx context.Context, id int64) (*restaurant.Restaurant, error) {
	var (
		s             restaurant.Snapshot
		opening, clos pgtype.Time
	)
	err := r.db.QueryRow(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id).Scan(
		&s.ID, &s.Name, &s.ImageName, &s.Description, &s.LowestPrice, &s.HighestPrice, &s.PostalCode,
		&s.Address, &opening, &clos, &s.SeatingCapacity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to get restaurant", err)
	}
	s.OpeningTime = restaurant.TimeOfDay(pgconv.TimeOfDay(opening))
	s.ClosingTime = restaurant.TimeOfDay(pgconv.TimeOfDay(clos))
	return restaurant.Reconstruct(s), nil
}

func (r *commandReads) CategoryByID(ctx context.Context, id int64) (*category.Category, error) {
	var name string
	if err := r.db.QueryRow(ctx, `SELECT name FROM categories WHERE id = $1`, id).Scan(&name); err != nil {
		return nil, infra.Classify(r.logger, "failed to get category", err)
	}
	return category.Reconstruct(id, name), nil
}

func (r *commandReads) CategoryNameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	return r.exists(ctx, "failed to check category name",
		`SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1 AND id <> $2)`, name, excludeID)
}

func (r *commandReads) KnownCategoryIDs(ctx context.Context, ids []int64) (association.IDSet, error) {
	return r.knownIDs(ctx, `SELECT id FROM categories WHERE id = ANY($1)`, ids, "failed to resolve category ids")
}

func (r *commandReads) KnownHolidayIDs(ctx context.Context, ids []int64) (association.IDSet, error) {
	return r.knownIDs(ctx, `SELECT id FROM regular_holidays WHERE id = ANY($1)`, ids, "failed to resolve holiday ids")
}

func (r *commandReads) ReservationByID(ctx context.Context, id int64) (*shared.ReservationSnapshot, error) {
	snap := &shared.ReservationSnapshot{ID: id}
	err := r.db.QueryRow(ctx, `SELECT restaurant_id, user_id, reserved_at FROM reservations WHERE id = $1`, id).
		Scan(&snap.RestaurantID, &snap.UserID, &snap.ReservedAt)
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to get reservation", err)
	}
	return snap, nil
}

func (r *commandReads) ReviewByID(ctx context.Context, id int64) (*review.Review, error) {
	var (
		restaurantID, userID int64
		score                int
		body                 string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, `
SELECT restaurant_id, user_id, score, content, created_at, updated_at FROM reviews WHERE id = $1`, id).
		Scan(&restaurantID, &userID, &score, &body, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to get review", err)
	}

	sc, err := review.NewScore(score)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored review score out of range", err)
	}
	ct, err := review.NewContent(body)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored review content invalid", err)
	}
	return review.Reconstruct(id, restaurantID, userID, sc, ct, createdAt, updatedAt), nil
}

func (r *commandReads) ReviewExists(ctx context.Context, userID, restaurantID int64) (bool, error) {
	return r.exists(ctx, "failed to check review existence",
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE user_id = $1 AND restaurant_id = $2)`, userID, restaurantID)
}

func (r *commandReads) FavoriteByID(ctx context.Context, id int64) (*favorite.Favorite, error) {
	return r.favorite(ctx, `SELECT id, restaurant_id, user_id, created_at FROM favorites WHERE id = $1`, id)
}

func (r *commandReads) FavoriteFor(ctx context.Context, userID, restaurantID int64) (*favorite.Favorite, error) {
	return r.favorite(ctx, `
SELECT id, restaurant_id, user_id, created_at FROM favorites WHERE user_id = $1 AND restaurant_id = $2`, userID, restaurantID)
}

func (r *commandReads) UserByID(ctx context.Context, id int64) (*user.User, error) {
	return r.user(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.user(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *commandReads) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.exists(ctx, "failed to check email",
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`, email, excludeID)
}

func (r *commandReads) exists(ctx context.Context, msg, sql string, args ...any) (bool, error) {
	var ok bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&ok); err != nil {
		return false, infra.Classify(r.logger, msg, err)
	}
	return ok, nil
}

func (r *commandReads) knownIDs(ctx context.Context, sql string, ids []int64, msg string) (association.IDSet, error) {
	if len(ids) == 0 {
		return association.NewIDSet(), nil
	}
	rows, err := r.db.Query(ctx, sql, ids)
	if err != nil {
		return nil, infra.Classify(r.logger, msg, err)
	}
	defer rows.Close()

	set := association.NewIDSet()
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, infra.Classify(r.logger, msg, err)
		}
		set[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.Classify(r.logger, msg, err)
	}
	return set, nil
}

func (r *commandReads) favorite(ctx context.Context, sql string, args ...any) (*favorite.Favorite, error) {
	var (
		id, restaurantID, userID int64
		createdAt                time.Time
	)
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id, &restaurantID, &userID, &createdAt); err != nil {
		return nil, infra.Classify(r.logger, "failed to get favorite", err)
	}
	return favorite.Reconstruct(id, restaurantID, userID, createdAt), nil
}

func (r *commandReads) user(ctx context.Context, sql string, arg any) (*user.User, error) {
	var (
		s                      user.Snapshot
		email, role            string
		birthday               pgtype.Date
		occupation, customerID pgtype.Text
	)
	err := r.db.QueryRow(ctx, sql, arg).Scan(
		&s.ID, &s.Profile.Name, &s.Profile.Furigana, &s.Profile.PostalCode, &s.Profile.Address,
		&s.Profile.PhoneNumber, &birthday, &occupation, &email, &s.PasswordHash, &role, &s.Enabled,
		&customerID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to get user", err)
	}

	s.Role, err = user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored role invalid", errs.Wrap(err, role))
	}
	s.Profile.Email = user.ReconstructEmail(email)
	s.Profile.Birthday = pgconv.DatePtrFromPgtype(birthday)
	s.Profile.Occupation = pgconv.StringPtrFromPgtype(occupation)
	s.BillingCustomerID = pgconv.StringPtrFromPgtype(customerID)
	return user.Reconstruct(s), nil
}
