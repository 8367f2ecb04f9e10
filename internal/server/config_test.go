package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "GIN_MODE", "LOG_LEVEL", "LOG_FILE", "SENTRY_DSN", "SETTINGS_PATH", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "settings.json", cfg.SettingsPath)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "development")
	t.Setenv("CORS_ORIGINS", " https://a.example , https://b.example,, ")
	t.Setenv("SENTRY_DSN", "https://key@sentry.example/1")

	cfg := LoadConfig()
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "https://key@sentry.example/1", cfg.SentryDSN)
}

func TestOriginAllowed(t *testing.T) {
	assert.True(t, originAllowed([]string{"*"}, "https://x.example"))
	assert.True(t, originAllowed([]string{"https://x.example"}, "https://x.example"))
	assert.False(t, originAllowed([]string{"https://x.example"}, "https://y.example"))
	assert.True(t, originAllowed(nil, ""))
}
