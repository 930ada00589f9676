//go:build unit || e2e

package builder

import (
	"time"

	"nagoyameshi/internal/domain/user"
	reqdto "nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/internal/usecase/queries"
)

type UserBuilder struct {
	ID           int64
	Name         string
	Furigana     string
	PostalCode   string
	Address      string
	PhoneNumber  string
	Birthday     string
	Occupation   string
	Email        string
	PasswordHash string
	Role         user.Role
	Enabled      bool

	// BillingCustomerID is set once the user first subscribed.
	BillingCustomerID *string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           1,
		Name:         "名古屋 太郎",
		Furigana:     "ナゴヤ タロウ",
		PostalCode:   "4600002",
		Address:      "愛知県名古屋市中区丸の内1-1-1",
		PhoneNumber:  "0521234567",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         user.RoleFreeMember,
		Enabled:      true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) ProfileInput() user.ProfileInput {
	return user.ProfileInput{
		Name:        u.Name,
		Furigana:    u.Furigana,
		PostalCode:  u.PostalCode,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		Birthday:    u.Birthday,
		Occupation:  u.Occupation,
		Email:       u.Email,
	}
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	profile, err := user.NewProfile(u.ProfileInput())
	if err != nil {
		return nil, err
	}
	return user.NewUser(profile, u.PasswordHash, time.Now()), nil
}

// BuildPersisted returns the user as loaded from storage, id and role included.
func (u *UserBuilder) BuildPersisted() (*user.User, error) {
	profile, err := user.NewProfile(u.ProfileInput())
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return user.Reconstruct(user.Snapshot{
		ID:                u.ID,
		Profile:           profile,
		PasswordHash:      u.PasswordHash,
		Role:              u.Role,
		Enabled:           u.Enabled,
		BillingCustomerID: u.BillingCustomerID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}), nil
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:          u.ID,
		Name:        u.Name,
		Furigana:    u.Furigana,
		PostalCode:  u.PostalCode,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		Email:       u.Email,
		Role:        u.Role,
		Enabled:     u.Enabled,
		CreatedAt:   time.Now(),
	}
}

func (u *UserBuilder) BuildProfileDTO() reqdto.ProfileRequest {
	return reqdto.ProfileRequest{
		Name:        u.Name,
		Furigana:    u.Furigana,
		PostalCode:  u.PostalCode,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		Birthday:    u.Birthday,
		Occupation:  u.Occupation,
		Email:       u.Email,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithPostalCode(postalCode string) *UserBuilder {
	u.PostalCode = postalCode
	return u
}

func (u *UserBuilder) WithPhoneNumber(phone string) *UserBuilder {
	u.PhoneNumber = phone
	return u
}

func (u *UserBuilder) WithBirthday(birthday string) *UserBuilder {
	u.Birthday = birthday
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsDisabled() *UserBuilder {
	u.Enabled = false
	return u
}

func (u *UserBuilder) WithBillingCustomer(customerID string) *UserBuilder {
	u.BillingCustomerID = &customerID
	return u
}
