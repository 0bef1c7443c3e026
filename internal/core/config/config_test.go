package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("ESTES_USER")
	os.Unsetenv("ESTES_PASS")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 20000, cfg.RawBudgetBytes)
	assert.Equal(t, 2000, cfg.DebugExcerptBytes)

	assert.Equal(t, "https://www.estes-express.com/shipmenttracking/services/ShipmentTrackingService", cfg.Estes.Endpoint)
	assert.Equal(t, "search", cfg.Estes.SOAPAction)
	assert.Equal(t, `"search"`, cfg.Estes.SOAPActionAlt)
	assert.Equal(t, 10*time.Second, cfg.Estes.AttemptTimeout)
	assert.Equal(t, "query", cfg.Estes.LinkParam)
	assert.True(t, cfg.Estes.PreferDifferentStatus)
	assert.Empty(t, cfg.Estes.User)

	assert.Empty(t, cfg.Cache.RedisURL)
	assert.Equal(t, 60*time.Second, cfg.Cache.TTL)
	assert.False(t, cfg.Proxy.Enabled)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ESTES_USER", "acct")
	t.Setenv("ESTES_PASS", "secret")
	t.Setenv("ESTES_ATTEMPT_TIMEOUT", "3s")
	t.Setenv("RETRY_PREFER_DIFFERENT_STATUS", "false")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("PROXY_ENABLED", "true")
	t.Setenv("PROXY_HOST", "proxy.local")
	t.Setenv("PROXY_PORT", "3128")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "acct", cfg.Estes.User)
	assert.Equal(t, "secret", cfg.Estes.Password)
	assert.Equal(t, 3*time.Second, cfg.Estes.AttemptTimeout)
	assert.False(t, cfg.Estes.PreferDifferentStatus)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Cache.RedisURL)
	assert.True(t, cfg.Proxy.Enabled)
	assert.Equal(t, "proxy.local", cfg.Proxy.Hostname)
	assert.Equal(t, 3128, cfg.Proxy.Port)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
CORS_ALLOW=https://shop.example
ESTES_SOAP_ACTION_ALT=urn:search
RAW_BUDGET_BYTES=512
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "https://shop.example", cfg.CORSAllow)
	assert.Equal(t, "urn:search", cfg.Estes.SOAPActionAlt)
	assert.Equal(t, 512, cfg.RawBudgetBytes)
}

// TestValidateRequired verifies that every missing required field is reported.
func TestValidateRequired(t *testing.T) {
	cfg := &AppConfig{
		RawBudgetBytes:    1,
		DebugExcerptBytes: 1,
		Estes: EstesConfig{
			SOAPAction:     "search",
			SOAPActionAlt:  `"search"`,
			AttemptTimeout: time.Second,
			LinkURL:        "https://example.test",
			LinkParam:      "query",
		},
	}

	err := validateRequired(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required configuration: ESTES_ENDPOINT")
	assert.Len(t, multierr.Errors(err), 1)

	cfg.Estes.LinkParam = ""
	cfg.RawBudgetBytes = 0
	err = validateRequired(cfg)
	assert.Len(t, multierr.Errors(err), 3)

	cfg.Estes.Endpoint = "https://example.test"
	cfg.Estes.LinkParam = "query"
	cfg.RawBudgetBytes = 1
	assert.NoError(t, validateRequired(cfg))
}
