package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "community-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, devJWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.False(t, cfg.Auth.CookieSecure)
	assert.Equal(t, 20, cfg.HelpDesk.DefaultPageSize)
	assert.Equal(t, 100, cfg.HelpDesk.MaxPageSize)
	assert.Equal(t, 30*time.Second, cfg.HelpDesk.CacheTTL())
	assert.True(t, cfg.Features.EmergencyEndpoint)
	assert.True(t, cfg.Features.Announcements)
	assert.False(t, cfg.Features.V2)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("HELPDESK_CACHE_TTL_SECONDS", "0")
	t.Setenv("FEATURE_EMERGENCY_ENDPOINT", "false")
	t.Setenv("FEATURE_V2", "true")
	t.Setenv("NOTIFY_WEBHOOK_BASE_DELAY_MS", "250")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.True(t, cfg.Auth.CookieSecure)
	assert.Zero(t, cfg.HelpDesk.CacheTTL())
	assert.False(t, cfg.Features.EmergencyEndpoint)
	assert.True(t, cfg.Features.V2)
	assert.Equal(t, 250*time.Millisecond, cfg.Notification.WebhookBaseDelay())
	assert.Equal(t, 30, cfg.App.RequestTimeoutSeconds)
}

func TestLoadRequiresSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "one")

	_, err := Load()
	require.Error(t, err)
}
