package access

import (
	"errors"

	"nagoyameshi/internal/domain/user"
)

// Role is the caller's role for authorization, including the anonymous caller.
type Role string

const (
	RoleAnonymous  Role = "ANONYMOUS"
	RoleFreeMember Role = Role(user.RoleFreeMember)
	RolePaidMember Role = Role(user.RolePaidMember)
	RoleAdmin      Role = Role(user.RoleAdmin)
)

func FromUserRole(r user.Role) Role {
	if !r.IsValid() {
		return RoleAnonymous
	}
	return Role(r)
}

type Class string

const (
	ClassPublic        Class = "PUBLIC"
	ClassMemberBasic   Class = "MEMBER_BASIC"
	ClassMemberPremium Class = "MEMBER_PREMIUM"
	ClassAdminOnly     Class = "ADMIN_ONLY"
	ClassAuthenticated Class = "AUTHENTICATED"
	ClassFreeOnly      Class = "FREE_ONLY"
)

type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectSubscription
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectSubscription:
		return "redirect_subscription"
	default:
		return "forbidden"
	}
}

var allowed = map[Class][]Role{
	ClassMemberBasic:   {RoleFreeMember, RolePaidMember},
	ClassMemberPremium: {RolePaidMember},
	ClassAdminOnly:     {RoleAdmin},
	ClassAuthenticated: {RoleFreeMember, RolePaidMember, RoleAdmin},
	ClassFreeOnly:      {RoleFreeMember},
}

// Evaluate is total over every (role, class) pair.
func Evaluate(role Role, class Class) Decision {
	if class == ClassPublic {
		return Allow
	}
	if role == RoleAnonymous || role == "" {
		return RedirectLogin
	}
	for _, r := range allowed[class] {
		if r == role {
			return Allow
		}
	}
	if role == RoleFreeMember && class == ClassMemberPremium {
		return RedirectSubscription
	}
	return Forbidden
}

var ErrNotOwner = errors.New("resource belongs to another user")

func EnsureOwner(actorID, ownerID int64) error {
	if actorID != ownerID {
		return ErrNotOwner
	}
	return nil
}
