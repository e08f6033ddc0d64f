package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.fxratesapi.com", cfg.FXAPIURL)
	assert.Equal(t, 10*time.Second, cfg.FXHTTPTimeout)
	assert.Equal(t, 30*time.Second, cfg.FXFetchTimeout)
	assert.Equal(t, float64(2), cfg.FXRequestsPerSecond)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.NotEmpty(t, cfg.AppSecret)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "false")
	t.Setenv("FX_API_URL", "http://fx.internal/")
	t.Setenv("FX_HTTP_TIMEOUT", "3s")
	t.Setenv("FX_FETCH_TIMEOUT", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://fx.internal", cfg.FXAPIURL)
	assert.Equal(t, 3*time.Second, cfg.FXHTTPTimeout)
	assert.Equal(t, 30*time.Second, cfg.FXFetchTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadConfig_ProductionRequiresSecrets(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "prod-jwt-secret")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "APP_SECRET")

	t.Setenv("APP_SECRET", "prod-app-secret")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "prod-jwt-secret", cfg.JWTSecret)
}
