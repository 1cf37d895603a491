package cli

import (
	"context"
	"fmt"

	"github.com/ndgrowth/backoffice/internal/auth"
)

// Profile prompts for the editable profile fields and applies the non-empty
// ones as a partial update. An empty answer leaves the field as is.
func (a *App) Profile(ctx context.Context) {
	upd := auth.ProfileUpdate{}

	fields := []struct {
		prompt string
		target **string
	}{
		{"New name (empty to keep)", &upd.Name},
		{"New department (empty to keep)", &upd.Department},
		{"New phone (empty to keep)", &upd.Phone},
		{"New bio (empty to keep)", &upd.Bio},
	}

	for _, f := range fields {
		value, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
		if value != "" {
			v := value
			*f.target = &v
		}
	}

	account, err := a.auth.UpdateProfile(ctx, upd)
	if err != nil {
		fmt.Fprintf(a.out, "Profile update unsuccessful: %s\n", err.Error())
		return
	}

	fmt.Fprintf(a.out, "Profile updated for %s\n", account.Email)
}
