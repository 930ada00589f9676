//go:build unit

package access_test

import (
	"net/http"
	"testing"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/domain/user"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	roles := []access.Role{access.RoleAnonymous, access.RoleFreeMember, access.RolePaidMember, access.RoleAdmin}

	want := map[access.Class]map[access.Role]access.Decision{
		access.ClassPublic: {
			access.RoleAnonymous: access.Allow, access.RoleFreeMember: access.Allow,
			access.RolePaidMember: access.Allow, access.RoleAdmin: access.Allow,
		},
		access.ClassMemberBasic: {
			access.RoleAnonymous: access.RedirectLogin, access.RoleFreeMember: access.Allow,
			access.RolePaidMember: access.Allow, access.RoleAdmin: access.Forbidden,
		},
		access.ClassMemberPremium: {
			access.RoleAnonymous: access.RedirectLogin, access.RoleFreeMember: access.RedirectSubscription,
			access.RolePaidMember: access.Allow, access.RoleAdmin: access.Forbidden,
		},
		access.ClassAdminOnly: {
			access.RoleAnonymous: access.RedirectLogin, access.RoleFreeMember: access.Forbidden,
			access.RolePaidMember: access.Forbidden, access.RoleAdmin: access.Allow,
		},
		access.ClassAuthenticated: {
			access.RoleAnonymous: access.RedirectLogin, access.RoleFreeMember: access.Allow,
			access.RolePaidMember: access.Allow, access.RoleAdmin: access.Allow,
		},
		access.ClassFreeOnly: {
			access.RoleAnonymous: access.RedirectLogin, access.RoleFreeMember: access.Allow,
			access.RolePaidMember: access.Forbidden, access.RoleAdmin: access.Forbidden,
		},
	}

	for class, byRole := range want {
		for _, role := range roles {
			t.Run(string(class)+"/"+string(role), func(t *testing.T) {
				assert.Equal(t, byRole[role], access.Evaluate(role, class))
			})
		}
	}
}

func TestEvaluate_FreeOnPremiumNeverForbidden(t *testing.T) {
	assert.Equal(t, access.RedirectSubscription, access.Evaluate(access.RoleFreeMember, access.ClassMemberPremium))
	assert.Equal(t, access.RedirectLogin, access.Evaluate(access.RoleAnonymous, access.ClassMemberPremium))
	assert.Equal(t, access.RedirectLogin, access.Evaluate("", access.ClassMemberPremium))
}

func TestFromUserRole(t *testing.T) {
	assert.Equal(t, access.RolePaidMember, access.FromUserRole(user.RolePaidMember))
	assert.Equal(t, access.RoleAnonymous, access.FromUserRole(user.Role("")))
}

func TestTable(t *testing.T) {
	table := access.NewTable()
	table.Set(http.MethodGet, "/api/restaurants", access.ClassPublic)
	table.Set(http.MethodDelete, "/api/reviews/:id", access.ClassMemberPremium)

	assert.Equal(t, access.ClassPublic, table.Classify(http.MethodGet, "/api/restaurants"))
	assert.Equal(t, access.ClassMemberPremium, table.Classify(http.MethodDelete, "/api/reviews/:id"))
	assert.Equal(t, access.ClassAuthenticated, table.Classify(http.MethodPost, "/api/restaurants"))
	assert.Equal(t, access.ClassAuthenticated, table.Classify(http.MethodGet, ""))
}

func TestEnsureOwner(t *testing.T) {
	assert.NoError(t, access.EnsureOwner(7, 7))
	assert.ErrorIs(t, access.EnsureOwner(7, 8), access.ErrNotOwner)
}
