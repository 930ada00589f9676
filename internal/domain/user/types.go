package user

type Role string

const (
	RoleFreeMember Role = "FREE_MEMBER"
	RolePaidMember Role = "PAID_MEMBER"
	RoleAdmin      Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleFreeMember, RolePaidMember, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) IsMember() bool {
	return r == RoleFreeMember || r == RolePaidMember
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
