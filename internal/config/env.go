package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first if present; real environment
// variables win over .env entries (godotenv does not override existing vars).
//
// Recognized variables:
//
//	API_BASE_URL     string
//	PUBLIC_TOKEN     string
//	DATABASE_PATH    string
//	SECRET_KEY       string
//	SESSION_TTL      duration ("24h")
//	REQUEST_TIMEOUT  duration ("5s")
//	DEMO_MODE        bool ("true"/"false")
//	MOCKAPI_ADDR     string
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("API_BASE_URL"); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv("PUBLIC_TOKEN"); ok {
		cfg.PublicToken = v
	}
	if v, ok := os.LookupEnv("DATABASE_PATH"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		cfg.SecretKey = v
	}
	if v, ok := os.LookupEnv("SESSION_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SessionTTL = d
		}
	}
	if v, ok := os.LookupEnv("REQUEST_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v, ok := os.LookupEnv("DEMO_MODE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DemoMode = b
		}
	}
	if v, ok := os.LookupEnv("MOCKAPI_ADDR"); ok {
		cfg.MockAPIAddr = v
	}
}
