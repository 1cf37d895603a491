package auth

import "time"

// The demo dataset is part of the onboarding contract: the emails, passwords,
// roles and ids below are documented elsewhere ("login with
// admin1@ndg.com/admin123") and must be reproduced byte-for-byte on every
// cold or corrupted start. Ids and CreatedAt are fixed so that re-seeding is
// fully deterministic.

var seedCreatedAt = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

type seedAccount struct {
	id       string
	email    string
	password string
	name     string
	role     Role
}

var seedAccounts = []seedAccount{
	{"a1b9f6e0-3c1d-4f6a-9b2e-101000000001", "user1@ndg.com", "user123", "Jordan Blake", RoleMember},
	{"a1b9f6e0-3c1d-4f6a-9b2e-101000000002", "consultant1@ndg.com", "consult123", "Maya Chen", RoleConsultant},
	{"a1b9f6e0-3c1d-4f6a-9b2e-101000000003", "instructor1@ndg.com", "instruct123", "Andre Silva", RoleInstructor},
	{"a1b9f6e0-3c1d-4f6a-9b2e-101000000004", "student1@ndg.com", "student123", "Priya Nair", RoleStudent},
	{"a1b9f6e0-3c1d-4f6a-9b2e-101000000005", "admin1@ndg.com", "admin123", "Natalie Gross", RoleSuperAdmin},
	{"a1b9f6e0-3c1d-4f6a-9b2e-101000000006", "admin2@ndg.com", "admin123", "Omar Haddad", RoleAdmin},
}

// DemoAccounts returns fresh copies of the fixed demo dataset: the account
// collection and the matching credential entries.
func DemoAccounts() ([]Account, Credentials) {
	accounts := make([]Account, 0, len(seedAccounts))
	creds := make(Credentials, len(seedAccounts))

	for _, s := range seedAccounts {
		accounts = append(accounts, Account{
			ID:            s.id,
			Email:         s.email,
			Name:          s.name,
			Role:          s.role,
			IsActive:      true,
			EmailVerified: true,
			CreatedAt:     seedCreatedAt,
		})
		creds[s.email] = s.password
	}

	return accounts, creds
}
