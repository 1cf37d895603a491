package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/ndgrowth/backoffice/internal/gateway"
)

// List fetches a collection through the gateway. Extra arguments are query
// filters, e.g.: list blogs published=true
func (a *App) List(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Usage: list <collection> [field=value ...]\nCollections: %s\n",
			strings.Join(gateway.KnownCollections(), ", "))
		return
	}

	query := url.Values{}
	for _, arg := range args[1:] {
		if k, v, ok := strings.Cut(arg, "="); ok {
			query.Set(k, v)
		}
	}

	res, err := a.data.List(ctx, args[0], query)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	a.printResult(res)
}

func (a *App) GetRecord(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: get <collection> <id>")
		return
	}

	res, err := a.data.Get(ctx, args[0], args[1])
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	a.printResult(res)
}

func (a *App) printResult(res *gateway.Result) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, res.Data, "", "  "); err != nil {
		pretty.Write(res.Data)
	}
	fmt.Fprintf(a.out, "[source: %s]\n%s\n", res.Source, pretty.String())
}
