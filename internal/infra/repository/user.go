package repository

import (
	"context"
	"log/slog"
	"time"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/pgconv"
)

type UserRepository struct {
	db     infra.DBTX
	logger *slog.Logger
}

func NewUserRepository(db infra.DBTX, logger *slog.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	p := u.Profile()
	var id int64
	err := r.db.QueryRow(ctx, `
INSERT INTO users (
    name, furigana, postal_code, address, phone_number, birthday, occupation,
    email, password_hash, role, enabled, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`,
		p.Name, p.Furigana, p.PostalCode, p.Address, p.PhoneNumber,
		pgconv.DatePtrToPgtype(p.Birthday), pgconv.StringPtrToPgtype(p.Occupation),
		p.Email.Value(), u.PasswordHash(), string(u.Role()), u.Enabled(), u.CreatedAt(), u.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.Classify(r.logger, "failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, u *user.User) error {
	p := u.Profile()
	tag, err := r.db.Exec(ctx, `
UPDATE users SET
    name = $2, furigana = $3, postal_code = $4, address = $5, phone_number = $6,
    birthday = $7, occupation = $8, email = $9, updated_at = $10
WHERE id = $1`,
		u.ID(), p.Name, p.Furigana, p.PostalCode, p.Address, p.PhoneNumber,
		pgconv.DatePtrToPgtype(p.Birthday), pgconv.StringPtrToPgtype(p.Occupation), p.Email.Value(), u.UpdatedAt(),
	)
	if err != nil {
		return infra.Classify(r.logger, "failed to update user profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound(r.logger, "user not found")
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID int64, role user.Role) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET role = $2, updated_at = $3 WHERE id = $1`, userID, string(role), time.Now())
	if err != nil {
		return infra.Classify(r.logger, "failed to update user role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound(r.logger, "user not found")
	}
	return nil
}

func (r *UserRepository) SetBillingCustomerID(ctx context.Context, userID int64, customerID string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET billing_customer_id = $2, updated_at = $3 WHERE id = $1`, userID, customerID, time.Now())
	if err != nil {
		return infra.Classify(r.logger, "failed to set billing customer id", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound(r.logger, "user not found")
	}
	return nil
}
