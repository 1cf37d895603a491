package main

import (
	"context"
	"log"
	"os"

	"github.com/ndgrowth/backoffice/internal/buildinfo"
	"github.com/ndgrowth/backoffice/internal/cli"
	"github.com/ndgrowth/backoffice/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
