package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ndgrowth/backoffice/internal/flagx"
	"github.com/ndgrowth/backoffice/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "24h"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	PublicToken    string         `json:"public_token"`
	DatabasePath   string         `json:"database_path"`
	SecretKey      string         `json:"secret_key"`
	SessionTTL     timex.Duration `json:"session_ttl"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DemoMode       *bool          `json:"demo_mode"`
	MockAPIAddr    string         `json:"mockapi_addr"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags; when neither is set, no
// JSON is loaded. Zero-value fields in the file leave the Config untouched.
// Panics on read or unmarshal errors; a broken config file should not start
// the application.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.PublicToken != "" {
		cfg.PublicToken = jc.PublicToken
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.SessionTTL.Duration != 0 {
		cfg.SessionTTL = time.Duration(jc.SessionTTL.Duration)
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DemoMode != nil {
		cfg.DemoMode = *jc.DemoMode
	}
	if jc.MockAPIAddr != "" {
		cfg.MockAPIAddr = jc.MockAPIAddr
	}
}
