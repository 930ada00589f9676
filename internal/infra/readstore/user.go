package readstore

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/pgconv"
	"nagoyameshi/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userViewSelect = `
SELECT id, name, furigana, postal_code, address, phone_number, birthday, occupation,
       email, role, enabled, created_at
FROM users`

type UserReadStore struct {
	db     infra.DBTX
	logger *slog.Logger
}

func NewUserReadStore(db infra.DBTX, logger *slog.Logger) *UserReadStore {
	return &UserReadStore{
		db:     db,
		logger: logger,
	}
}

func (s *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	rows, err := s.db.Query(ctx, userViewSelect+` WHERE id = $1`, id)
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to get user", err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, scanUserView)
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to get user", err)
	}
	return v, nil
}

func (s *UserReadStore) Search(ctx context.Context, keyword string, limit, offset int) ([]*queries.UserView, int64, error) {
	pattern := "%" + likeEscaper.Replace(keyword) + "%"
	where := ` WHERE name ILIKE $1 ESCAPE '\' OR furigana ILIKE $1 ESCAPE '\'`

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, pattern).Scan(&total); err != nil {
		return nil, 0, infra.Classify(s.logger, "failed to count users", err)
	}

	rows, err := s.db.Query(ctx, userViewSelect+where+` ORDER BY id DESC LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, infra.Classify(s.logger, "failed to search users", err)
	}
	items, err := pgx.CollectRows(rows, scanUserView)
	if err != nil {
		return nil, 0, infra.Classify(s.logger, "failed to scan users", err)
	}
	return items, total, nil
}

func (s *UserReadStore) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, string(role)).Scan(&n); err != nil {
		return 0, infra.Classify(s.logger, "failed to count users by role", err)
	}
	return n, nil
}

func scanUserView(row pgx.CollectableRow) (*queries.UserView, error) {
	var (
		v          queries.UserView
		role       string
		birthday   pgtype.Date
		occupation pgtype.Text
	)
	err := row.Scan(
		&v.ID, &v.Name, &v.Furigana, &v.PostalCode, &v.Address, &v.PhoneNumber,
		&birthday, &occupation, &v.Email, &role, &v.Enabled, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.Role = user.Role(role)
	v.Birthday = pgconv.DatePtrFromPgtype(birthday)
	v.Occupation = pgconv.StringPtrFromPgtype(occupation)
	return &v, nil
}
