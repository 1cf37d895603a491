package config

import (
	"flag"
	"os"
	"time"

	"github.com/ndgrowth/backoffice/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string   base URL of the back-office API
//	-p string   public bearer token
//	-d string   SQLite database path
//	-s string   session token HMAC secret key
//	-t int      session TTL, hours
//	-w int      gateway request timeout, seconds
//	-m bool     demo mode (silent self-heal of auth state)
//	-a string   dev mock backend bind address
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-p", "-d", "-s", "-t", "-w", "-m", "-a"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "base URL of the back-office API")
	fs.StringVar(&cfg.PublicToken, "p", cfg.PublicToken, "public bearer token")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "SQLite database path")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")

	sessionTTL := fs.Int("t", int(cfg.SessionTTL.Hours()), "session TTL (in hours)")
	requestTimeout := fs.Int("w", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	fs.BoolVar(&cfg.DemoMode, "m", cfg.DemoMode, "demo mode")
	fs.StringVar(&cfg.MockAPIAddr, "a", cfg.MockAPIAddr, "dev mock backend bind address")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTTL = time.Duration(*sessionTTL) * time.Hour
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
