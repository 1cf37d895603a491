package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ndgrowth/backoffice/internal/common"
)

// Operational hooks: one entry point that wipes and re-seeds the
// credential/session storage, one that dumps the current state for
// inspection. The CLI exposes them as the `reseed` and `dump` commands.

// ResetDemoData wipes accounts, credentials, and the session, then re-seeds
// the fixed demo dataset. Unlike Initialize it always overwrites, even when
// the existing state is valid.
func (s *Store) ResetDemoData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{common.KeyAccounts, common.KeyCredentials, common.KeySession} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("wiping %s: %w", key, err)
		}
	}
	s.session = nil
	s.current = nil

	_, _, err := s.seed(ctx)
	return err
}

// Dump writes the current account and credential collections to w as
// indented JSON. Passwords appear in clear, matching how they are stored.
func (s *Store) Dump(ctx context.Context, w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, creds, err := s.loadValidState(ctx)
	if err != nil {
		return fmt.Errorf("loading auth state: %w", err)
	}

	state := struct {
		Accounts    []Account   `json:"accounts"`
		Credentials Credentials `json:"credentials"`
	}{accounts, creds}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(state)
}
