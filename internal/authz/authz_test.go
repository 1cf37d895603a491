package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndgrowth/backoffice/internal/auth"
)

type fakeSource struct {
	account *auth.Account
}

func (f *fakeSource) CurrentUser() *auth.Account { return f.account }

func TestChecker_NoSession(t *testing.T) {
	c := NewChecker(&fakeSource{})

	assert.False(t, c.HasRole())
	assert.False(t, c.HasRole(auth.RoleStudent))
	assert.False(t, c.IsAdmin())
	assert.False(t, c.Snapshot().Authenticated())
}

func TestChecker_RoleMembership(t *testing.T) {
	src := &fakeSource{account: &auth.Account{ID: "1", Role: auth.RoleInstructor}}
	c := NewChecker(src)

	assert.True(t, c.HasRole(), "any session satisfies an empty role list")
	assert.True(t, c.HasRole(auth.RoleInstructor))
	assert.True(t, c.HasRole(auth.RoleStudent, auth.RoleInstructor))
	assert.False(t, c.HasRole(auth.RoleStudent))
	assert.False(t, c.IsAdmin())
}

func TestChecker_IsAdmin_BothAdminRoles(t *testing.T) {
	for _, role := range []auth.Role{auth.RoleAdmin, auth.RoleSuperAdmin} {
		c := NewChecker(&fakeSource{account: &auth.Account{ID: "1", Role: role}})
		assert.True(t, c.IsAdmin(), "role %s", role)
	}
}

func TestSnapshot_IsStableAcrossSourceChanges(t *testing.T) {
	src := &fakeSource{account: &auth.Account{ID: "1", Role: auth.RoleAdmin}}
	c := NewChecker(src)

	view := c.Snapshot()
	src.account = nil // logout happens mid-pass

	// The captured view keeps answering consistently.
	assert.True(t, view.Authenticated())
	assert.True(t, view.IsAdmin())

	// A fresh snapshot sees the logout.
	assert.False(t, c.Snapshot().Authenticated())
}
