// Command mockapi runs the development stand-in for the platform API. It
// serves the same demo collections the gateway falls back to, so the console
// can be exercised against a live endpoint without the real backend.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/ndgrowth/backoffice/internal/buildinfo"
	"github.com/ndgrowth/backoffice/internal/config"
	"github.com/ndgrowth/backoffice/internal/gateway"
	"github.com/ndgrowth/backoffice/internal/logging"
	"github.com/ndgrowth/backoffice/internal/mockapi"
	"github.com/ndgrowth/backoffice/internal/storage"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	st := storage.NewMemoryStore()
	if err := gateway.SeedStore(ctx, st); err != nil {
		log.Fatalf("%v", err)
	}

	srv := mockapi.NewServer(st, logger)

	logger.Info(ctx, "mock api listening", "addr", cfg.MockAPIAddr)
	if err := http.ListenAndServe(cfg.MockAPIAddr, srv.Router()); err != nil {
		log.Fatalf("%v", err)
	}
}
