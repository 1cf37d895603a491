package cli

import (
	"context"
	"fmt"

	"github.com/ndgrowth/backoffice/internal/auth"
)

func (a *App) Login(ctx context.Context) {
	a.loginWithHint(ctx, auth.RoleHintNone)
}

// AdminLogin is the back-office entrance: same authentication, plus the
// admin role gate.
func (a *App) AdminLogin(ctx context.Context) {
	a.loginWithHint(ctx, auth.RoleHintAdmin)
}

func (a *App) loginWithHint(ctx context.Context, hint auth.RoleHint) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	session, err := a.auth.Login(ctx, email, password, hint)
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", err.Error())
		return
	}

	fmt.Fprintf(a.out, "Login successful, session valid until %s\n", session.ExpiresAt.Format("2006-01-02 15:04"))
}

func (a *App) Logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Logged out")
}

func (a *App) WhoAmI() {
	view := a.checker.Snapshot()
	if !view.Authenticated() {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}

	user := a.auth.CurrentUser()
	fmt.Fprintf(a.out, "%s <%s> role=%s admin=%v\n", user.Name, user.Email, user.Role, view.IsAdmin())
}
