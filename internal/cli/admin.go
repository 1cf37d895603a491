package cli

import (
	"context"
	"fmt"
)

// Reseed wipes the credential/session storage and restores the demo
// dataset. Callable without a session so a locked-out operator can recover.
func (a *App) Reseed(ctx context.Context) {
	if err := a.auth.ResetDemoData(ctx); err != nil {
		fmt.Fprintf(a.out, "Reseed unsuccessful: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Demo accounts restored")
}

// DumpState prints the current accounts and credentials for inspection.
func (a *App) DumpState(ctx context.Context) {
	if err := a.auth.Dump(ctx, a.out); err != nil {
		fmt.Fprintf(a.out, "Dump unsuccessful: %s\n", err.Error())
	}
}
