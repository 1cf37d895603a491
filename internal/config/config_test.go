package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8095/api", c.APIBaseURL)
	assert.Equal(t, "public-anon-token", c.PublicToken)
	assert.Equal(t, "backoffice.db", c.DatabasePath)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.True(t, c.DemoMode)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"testbin"}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "public-anon-token", cfg.PublicToken)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/v1")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("DEMO_MODE", "false")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://api.example.com/v1", c.APIBaseURL)
	assert.Equal(t, 2*time.Hour, c.SessionTTL)
	assert.False(t, c.DemoMode)
}

func TestParseEnv_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("DEMO_MODE", "not-a-bool")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.True(t, c.DemoMode)
}

func TestParseJson_OverlaysFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	body := `{
		"api_base_url": "https://json.example.com",
		"session_ttl": "90m",
		"demo_mode": false
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	origArgs := os.Args
	os.Args = []string{"testbin", "-c", path}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://json.example.com", c.APIBaseURL)
	assert.Equal(t, 90*time.Minute, c.SessionTTL)
	assert.False(t, c.DemoMode)
	// untouched fields keep defaults
	assert.Equal(t, "public-anon-token", c.PublicToken)
}

func TestParseFlags_Overlays(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"testbin", "-u", "https://flags.example.com", "-t", "48", "-w", "2"}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "https://flags.example.com", c.APIBaseURL)
	assert.Equal(t, 48*time.Hour, c.SessionTTL)
	assert.Equal(t, 2*time.Second, c.RequestTimeout)
}
