// Package auth owns "who exists" and "who is logged in": the account and
// credential collections, the single active session, demo-dataset seeding,
// and self-healing of corrupt persisted state.
//
// All state lives in an injected storage.Store; the package keeps an
// in-memory view of the current account and session that is refreshed by
// every mutating operation. Operations that touch the storage keys are
// serialized on one mutex, which is what upholds the single-session
// invariant when callers race.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ndgrowth/backoffice/internal/common"
	"github.com/ndgrowth/backoffice/internal/config"
	"github.com/ndgrowth/backoffice/internal/logging"
	"github.com/ndgrowth/backoffice/internal/storage"
)

type Store struct {
	mu  sync.Mutex
	kv  storage.Store
	log logging.Logger

	secretKey  []byte
	sessionTTL time.Duration
	demoMode   bool

	current *Account
	session *Session

	// Test seams.
	now   func() time.Time
	newID func() string
}

func NewStore(kv storage.Store, log logging.Logger, cfg *config.Config) *Store {
	return &Store{
		kv:         kv,
		log:        log.With("component", "auth"),
		secretKey:  []byte(cfg.SecretKey),
		sessionTTL: cfg.SessionTTL,
		demoMode:   cfg.DemoMode,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Initialize loads the persisted account and credential collections,
// re-seeding the demo dataset when either is missing, unparseable, or empty.
// Safe to call on every start: valid data is never touched, so re-running it
// is a no-op. With demo mode off, corrupt state is reported instead of being
// silently replaced.
//
// A persisted session, if any, is rehydrated as part of initialization;
// a session that fails validation is dropped, not reported.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, _, err := s.loadValidState(ctx)
	if err != nil {
		if !s.demoMode {
			return fmt.Errorf("%w: %w", common.ErrStoreCorrupt, err)
		}
		s.log.Warn(ctx, "auth state invalid, re-seeding demo dataset", "reason", err)
		accounts, _, err = s.seed(ctx)
		if err != nil {
			return fmt.Errorf("seeding demo dataset: %w", err)
		}
	}

	s.restoreSession(ctx, accounts)
	return nil
}

// Login authenticates email/password and replaces the active session.
// The optional hint gates admin logins on top of normal authentication; it
// never changes which account is matched. On any failure the prior session
// is left untouched.
func (s *Store) Login(ctx context.Context, email, password string, hint RoleHint) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.login(ctx, email, password, hint)
}

func (s *Store) login(ctx context.Context, email, password string, hint RoleHint) (*Session, error) {
	accounts, creds, err := s.loadValidState(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading auth state: %w", err)
	}

	idx := findByEmail(accounts, email)
	if idx < 0 {
		return nil, common.ErrNotFound
	}
	account := &accounts[idx]

	if creds[email] != password {
		return nil, common.ErrInvalidCredentials
	}

	if hint == RoleHintAdmin && account.Role != RoleAdmin && account.Role != RoleSuperAdmin {
		return nil, common.ErrUnauthorized
	}

	if !account.IsActive {
		return nil, common.ErrAccountDisabled
	}

	loginAt := s.now()
	account.LastLoginAt = &loginAt
	if err := s.persistAccounts(ctx, accounts); err != nil {
		return nil, fmt.Errorf("persisting accounts: %w", err)
	}

	token, err := GenerateToken(account.ID, s.secretKey, s.sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("issuing session token: %w", err)
	}

	session := &Session{
		UserID:    account.ID,
		Token:     token,
		ExpiresAt: loginAt.Add(s.sessionTTL),
	}
	if err := s.persistSession(ctx, session); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	accountCopy := *account
	s.current = &accountCopy
	s.session = session

	s.log.Info(ctx, "login succeeded", "email", email, "role", account.Role)
	return session, nil
}

// Signup registers a new account and logs it in, so a successful signup
// always results in an authenticated session. The account and credential
// collections are updated in lockstep. An empty role defaults to student.
func (s *Store) Signup(ctx context.Context, email, password, name string, role Role) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if role == "" {
		role = RoleStudent
	}

	accounts, creds, err := s.loadValidState(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading auth state: %w", err)
	}

	if findByEmail(accounts, email) >= 0 {
		return nil, common.ErrDuplicateAccount
	}

	account := Account{
		ID:            s.newID(),
		Email:         email,
		Name:          name,
		Role:          role,
		IsActive:      true,
		EmailVerified: true,
		CreatedAt:     s.now(),
	}

	accounts = append(accounts, account)
	creds[email] = password

	if err := s.persistAccounts(ctx, accounts); err != nil {
		return nil, fmt.Errorf("persisting accounts: %w", err)
	}
	if err := s.persistCredentials(ctx, creds); err != nil {
		return nil, fmt.Errorf("persisting credentials: %w", err)
	}

	s.log.Info(ctx, "account created", "email", email, "role", role)
	return s.login(ctx, email, password, RoleHintNone)
}

// Logout destroys the persisted session. Calling it with no active session
// is a no-op, not an error.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, common.KeySession); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	s.session = nil
	s.current = nil
	return nil
}

// UpdateProfile merges the non-nil fields of upd into the account bound to
// the current session and persists the full collection. Credentials are
// never touched; password changes are a separate concern.
func (s *Store) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeSession() == nil {
		return nil, common.ErrUnauthenticated
	}

	accounts, _, err := s.loadValidState(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading auth state: %w", err)
	}

	idx := -1
	for i := range accounts {
		if accounts[i].ID == s.session.UserID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, common.ErrNotFound
	}

	account := &accounts[idx]
	if upd.Name != nil {
		account.Name = *upd.Name
	}
	if upd.Avatar != nil {
		account.Avatar = *upd.Avatar
	}
	if upd.Department != nil {
		account.Department = *upd.Department
	}
	if upd.Phone != nil {
		account.Phone = *upd.Phone
	}
	if upd.Bio != nil {
		account.Bio = *upd.Bio
	}

	if err := s.persistAccounts(ctx, accounts); err != nil {
		return nil, fmt.Errorf("persisting accounts: %w", err)
	}

	accountCopy := *account
	s.current = &accountCopy
	return &accountCopy, nil
}

// HasRole reports whether an unexpired session exists and its account's role
// is one of roles.
func (s *Store) HasRole(roles ...Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeSession() == nil || s.current == nil {
		return false
	}
	for _, r := range roles {
		if s.current.Role == r {
			return true
		}
	}
	return false
}

// IsAdmin is sugar for HasRole(RoleAdmin, RoleSuperAdmin).
func (s *Store) IsAdmin() bool {
	return s.HasRole(RoleAdmin, RoleSuperAdmin)
}

// CurrentUser returns a copy of the account bound to the active session, or
// nil when no unexpired session exists.
func (s *Store) CurrentUser() *Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeSession() == nil || s.current == nil {
		return nil
	}
	accountCopy := *s.current
	return &accountCopy
}

// CurrentSession returns a copy of the active session, or nil.
func (s *Store) CurrentSession() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.activeSession()
	if sess == nil {
		return nil
	}
	sessionCopy := *sess
	return &sessionCopy
}

// SessionToken returns the active session's bearer token. The gateway uses
// it on outbound requests, falling back to the public token when absent.
func (s *Store) SessionToken() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.activeSession()
	if sess == nil {
		return "", false
	}
	return sess.Token, true
}

// activeSession returns the in-memory session if it has not expired, nil
// otherwise. Callers must hold s.mu.
func (s *Store) activeSession() *Session {
	if s.session == nil {
		return nil
	}
	if s.now().After(s.session.ExpiresAt) {
		return nil
	}
	return s.session
}

// loadValidState reads and validates both auth collections. Any read error,
// parse error, or empty collection is reported so the caller can decide
// between self-heal and failing loudly.
func (s *Store) loadValidState(ctx context.Context) ([]Account, Credentials, error) {
	rawAccounts, err := s.kv.Get(ctx, common.KeyAccounts)
	if err != nil {
		return nil, nil, fmt.Errorf("reading accounts: %w", err)
	}
	if rawAccounts == nil {
		return nil, nil, fmt.Errorf("accounts missing")
	}

	var accounts []Account
	if err := json.Unmarshal(rawAccounts, &accounts); err != nil {
		return nil, nil, fmt.Errorf("parsing accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, nil, fmt.Errorf("accounts empty")
	}

	rawCreds, err := s.kv.Get(ctx, common.KeyCredentials)
	if err != nil {
		return nil, nil, fmt.Errorf("reading credentials: %w", err)
	}
	if rawCreds == nil {
		return nil, nil, fmt.Errorf("credentials missing")
	}

	var creds Credentials
	if err := json.Unmarshal(rawCreds, &creds); err != nil {
		return nil, nil, fmt.Errorf("parsing credentials: %w", err)
	}
	if len(creds) == 0 {
		return nil, nil, fmt.Errorf("credentials empty")
	}

	return accounts, creds, nil
}

// seed overwrites both collections with the fixed demo dataset.
func (s *Store) seed(ctx context.Context) ([]Account, Credentials, error) {
	accounts, creds := DemoAccounts()

	if err := s.persistAccounts(ctx, accounts); err != nil {
		return nil, nil, err
	}
	if err := s.persistCredentials(ctx, creds); err != nil {
		return nil, nil, err
	}

	s.log.Info(ctx, "demo dataset seeded", "accounts", len(accounts))
	return accounts, creds, nil
}

// restoreSession rehydrates the persisted session. A missing, unparseable,
// expired, or dangling session is discarded without error. Callers must hold
// s.mu.
func (s *Store) restoreSession(ctx context.Context, accounts []Account) {
	s.session = nil
	s.current = nil

	raw, err := s.kv.Get(ctx, common.KeySession)
	if err != nil || raw == nil {
		return
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		s.dropSession(ctx, "unparseable")
		return
	}

	userID, err := GetUserIDFromToken(session.Token, s.secretKey)
	if err != nil || userID != session.UserID {
		s.dropSession(ctx, "invalid token")
		return
	}
	if s.now().After(session.ExpiresAt) {
		s.dropSession(ctx, "expired")
		return
	}

	for i := range accounts {
		if accounts[i].ID == session.UserID {
			accountCopy := accounts[i]
			s.current = &accountCopy
			s.session = &session
			return
		}
	}
	s.dropSession(ctx, "unknown account")
}

func (s *Store) dropSession(ctx context.Context, reason string) {
	s.log.Debug(ctx, "discarding persisted session", "reason", reason)
	_ = s.kv.Delete(ctx, common.KeySession)
}

func (s *Store) persistAccounts(ctx context.Context, accounts []Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, common.KeyAccounts, raw)
}

func (s *Store) persistCredentials(ctx context.Context, creds Credentials) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, common.KeyCredentials, raw)
}

func (s *Store) persistSession(ctx context.Context, session *Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, common.KeySession, raw)
}

func findByEmail(accounts []Account, email string) int {
	for i := range accounts {
		// Exact, case-sensitive match. "User@ndg.com" and "user@ndg.com"
		// are different accounts.
		if accounts[i].Email == email {
			return i
		}
	}
	return -1
}
