package cli

import (
	"context"
	"fmt"
)

func (a *App) Signup(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	// New signups default to the student role.
	if _, err := a.auth.Signup(ctx, email, password, name, ""); err != nil {
		fmt.Fprintf(a.out, "Signup unsuccessful: %s\n", err.Error())
		return
	}

	fmt.Fprintf(a.out, "Welcome, %s! You are now logged in.\n", name)
}
