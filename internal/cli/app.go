// Package cli implements the interactive back-office console: login/signup,
// profile edits, collection browsing through the gateway, and the
// operational reseed/dump hooks.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"

	"github.com/ndgrowth/backoffice/internal/auth"
	"github.com/ndgrowth/backoffice/internal/authz"
	"github.com/ndgrowth/backoffice/internal/config"
	"github.com/ndgrowth/backoffice/internal/gateway"
	"github.com/ndgrowth/backoffice/internal/logging"
	"github.com/ndgrowth/backoffice/internal/storage"

	_ "modernc.org/sqlite"
)

// AuthService is the slice of the auth store the console needs. Split out as
// an interface so command tests can substitute a fake.
type AuthService interface {
	Login(ctx context.Context, email, password string, hint auth.RoleHint) (*auth.Session, error)
	Signup(ctx context.Context, email, password, name string, role auth.Role) (*auth.Session, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, upd auth.ProfileUpdate) (*auth.Account, error)
	CurrentUser() *auth.Account
	ResetDemoData(ctx context.Context) error
	Dump(ctx context.Context, w io.Writer) error
}

// DataService is the slice of the gateway the console needs.
type DataService interface {
	List(ctx context.Context, collection string, query url.Values) (*gateway.Result, error)
	Get(ctx context.Context, collection, id string) (*gateway.Result, error)
}

type App struct {
	config  *config.Config
	auth    AuthService
	data    DataService
	checker *authz.Checker
	reader  *bufio.Reader
	out     io.Writer
	close   func() error
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	kv, db, err := storage.OpenSQLite(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	authStore := auth.NewStore(kv, log, cfg)
	if err := authStore.Initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}

	gw := gateway.New(cfg, authStore, log)

	return &App{
		config:  cfg,
		auth:    authStore,
		data:    gw,
		checker: authz.NewChecker(authStore),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		close:   db.Close,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.close != nil {
			_ = a.close()
		}
	}()
	a.Root(ctx)
}
