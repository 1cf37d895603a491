package auth

import "time"

// Role is the closed set of account roles known to the back-office.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleConsultant Role = "consultant"
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
	RoleMember     Role = "member"
)

// Valid reports whether r is a member of the closed role enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleConsultant, RoleInstructor, RoleStudent, RoleMember:
		return true
	}
	return false
}

// Account is a registered identity. Email is the lookup key and is matched
// exactly, case-sensitively; no normalization is performed.
type Account struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Avatar        string     `json:"avatar,omitempty"`
	Department    string     `json:"department,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Bio           string     `json:"bio,omitempty"`
	Role          Role       `json:"role"`
	IsActive      bool       `json:"isActive"`
	EmailVerified bool       `json:"emailVerified"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty"`
}

// Credentials maps email to its cleartext password. Stored separately from
// accounts and kept in lockstep with the account collection by signup.
type Credentials map[string]string

// Session is the single authenticated context for this process. Token is
// self-issued; there is no server-side counterpart to validate against.
type Session struct {
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RoleHint optionally gates login on top of normal authentication. It never
// changes which account is matched.
type RoleHint string

const (
	RoleHintNone  RoleHint = ""
	RoleHintAdmin RoleHint = "admin"
	RoleHintUser  RoleHint = "user"
)

// ProfileUpdate carries the partial fields merged into the current account by
// UpdateProfile. Nil fields are left untouched. Passwords are deliberately
// not part of this structure.
type ProfileUpdate struct {
	Name       *string `json:"name,omitempty"`
	Avatar     *string `json:"avatar,omitempty"`
	Department *string `json:"department,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Bio        *string `json:"bio,omitempty"`
}
