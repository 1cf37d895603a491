// Package authz answers "may this session view X" for page-level guards.
// It owns no state and performs no I/O: everything is derived from the auth
// store's current session at the moment of the query.
package authz

import "github.com/ndgrowth/backoffice/internal/auth"

// SessionSource supplies the account bound to the current session, or nil
// when nobody is logged in. *auth.Store satisfies it.
type SessionSource interface {
	CurrentUser() *auth.Account
}

type Checker struct {
	src SessionSource
}

func NewChecker(src SessionSource) *Checker {
	return &Checker{src: src}
}

// HasRole reports whether an active session exists and its role is one of
// roles. An empty roles list only requires that a session exists.
func (c *Checker) HasRole(roles ...auth.Role) bool {
	return c.Snapshot().HasRole(roles...)
}

// IsAdmin is sugar for HasRole(RoleAdmin, RoleSuperAdmin).
func (c *Checker) IsAdmin() bool {
	return c.Snapshot().IsAdmin()
}

// Snapshot captures the current session once. Guards that ask several
// questions while rendering a single view should take one snapshot and query
// it, so the answers cannot disagree mid-pass.
func (c *Checker) Snapshot() View {
	return View{account: c.src.CurrentUser()}
}

// View is an immutable capture of the session at snapshot time.
type View struct {
	account *auth.Account
}

func (v View) Authenticated() bool {
	return v.account != nil
}

func (v View) HasRole(roles ...auth.Role) bool {
	if v.account == nil {
		return false
	}
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if v.account.Role == r {
			return true
		}
	}
	return false
}

func (v View) IsAdmin() bool {
	return v.HasRole(auth.RoleAdmin, auth.RoleSuperAdmin)
}
