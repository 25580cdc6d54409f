package config

import (
	"testing"
	"time"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("ADMIN_API_KEY", "")
	t.Setenv("JWT_EXPIRY_DURATION", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "atm-backend", cfg.JWTIssuer)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, "config/application.yaml", cfg.SeedFile)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.Len(t, cfg.AdminAPIKey, 48)
	assert.True(t, cfg.AdminAPIKeyGenerated)
	assert.False(t, cfg.WithdrawAllowFullBalance)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	viper.Reset()
	t.Setenv("PORT", "9090")
	t.Setenv("ADMIN_API_KEY", "operator-key")
	t.Setenv("JWT_EXPIRY_DURATION", "2m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example,")
	t.Setenv("WITHDRAW_ALLOW_FULL_BALANCE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "operator-key", cfg.AdminAPIKey)
	assert.False(t, cfg.AdminAPIKeyGenerated)
	assert.Equal(t, 2*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.WithdrawAllowFullBalance)
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	viper.Reset()
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_ProductionRequiresAdminKey(t *testing.T) {
	viper.Reset()
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "a-real-production-secret")
	t.Setenv("ADMIN_API_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	assert.Contains(t, err.Error(), "ADMIN_API_KEY")
}
