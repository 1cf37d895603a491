package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	user := a.auth.CurrentUser()
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", user.Email, user.Role)
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "NDG back-office console (type 'help' for commands)")
	scanner := bufio.NewScanner(a.reader)

	for {
		fmt.Fprintf(a.out, "ndg %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.auth.CurrentUser() != nil {
				fmt.Fprintln(a.out, "Available commands: whoami, profile, list, get, logout, reseed, dump, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, adminlogin, signup, reseed, dump, exit")
			}
		case "login":
			a.Login(ctx)
		case "adminlogin":
			a.AdminLogin(ctx)
		case "signup":
			a.Signup(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI()
		case "profile":
			a.Profile(ctx)
		case "list":
			a.List(ctx, args)
		case "get":
			a.GetRecord(ctx, args)
		case "reseed":
			a.Reseed(ctx)
		case "dump":
			a.DumpState(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
