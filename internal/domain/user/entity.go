package user

import (
	"time"
)

type User struct {
	id                int64
	profile           Profile
	passwordHash      string
	role              Role
	enabled           bool
	billingCustomerID *string
	createdAt         time.Time
	updatedAt         time.Time
}

// NewUser registers a free member; accounts start enabled.
func NewUser(profile Profile, passwordHash string, now time.Time) *User {
	return &User{
		profile:      profile,
		passwordHash: passwordHash,
		role:         RoleFreeMember,
		enabled:      true,
		createdAt:    now,
		updatedAt:    now,
	}
}

type Snapshot struct {
	ID                int64
	Profile           Profile
	PasswordHash      string
	Role              Role
	Enabled           bool
	BillingCustomerID *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Reconstruct rebuilds a persisted user without re-running form validation.
func Reconstruct(s Snapshot) *User {
	return &User{
		id:                s.ID,
		profile:           s.Profile,
		passwordHash:      s.PasswordHash,
		role:              s.Role,
		enabled:           s.Enabled,
		billingCustomerID: s.BillingCustomerID,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
	}
}

func (u *User) ID() int64                  { return u.id }
func (u *User) Profile() Profile           { return u.profile }
func (u *User) Email() Email               { return u.profile.Email }
func (u *User) Name() string               { return u.profile.Name }
func (u *User) PasswordHash() string       { return u.passwordHash }
func (u *User) Role() Role                 { return u.role }
func (u *User) Enabled() bool              { return u.enabled }
func (u *User) BillingCustomerID() *string { return u.billingCustomerID }
func (u *User) CreatedAt() time.Time       { return u.createdAt }
func (u *User) UpdatedAt() time.Time       { return u.updatedAt }

func (u *User) SetID(id int64) { u.id = id }

func (u *User) UpdateProfile(p Profile, now time.Time) {
	u.profile = p
	u.updatedAt = now
}

func (u *User) ChangeRole(r Role, now time.Time) {
	u.role = r
	u.updatedAt = now
}

func (u *User) AttachBillingCustomer(customerID string, now time.Time) {
	u.billingCustomerID = &customerID
	u.updatedAt = now
}
