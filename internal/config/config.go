// Package config handles configuration for the back-office core, including
// defaults, environment overlay (.env aware), JSON overlay, and command-line
// flags. Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the back-office core.
//
// Fields:
//   - APIBaseURL: base URL of the nominally remote back-office API.
//   - PublicToken: bearer token used when no session token is available.
//   - DatabasePath: SQLite file backing the local store (":memory:" allowed).
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - SessionTTL: lifetime of an issued session.
//   - RequestTimeout: hard timeout on gateway HTTP calls, so the mock
//     fallback is reached instead of hanging.
//   - DemoMode: when true, corrupt or missing auth state is silently
//     re-seeded from the demo dataset; when false, it fails loudly.
//   - MockAPIAddr: bind address for the dev mock backend.
type Config struct {
	APIBaseURL     string
	PublicToken    string
	DatabasePath   string
	SecretKey      string
	SessionTTL     time.Duration
	RequestTimeout time.Duration
	DemoMode       bool
	MockAPIAddr    string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8095/api"
	c.PublicToken = "public-anon-token"
	c.DatabasePath = "backoffice.db"
	c.SecretKey = "secretKey"
	c.SessionTTL = 24 * time.Hour
	c.RequestTimeout = 5 * time.Second
	c.DemoMode = true
	c.MockAPIAddr = ":8095"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), an optional JSON
// file, and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
