package config

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("RECONCILIATION_THRESHOLD_PERCENT", defaultReconciliationThreshold)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSAllowedOrigins)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)

	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "excise-register-app", cfg.JWTIssuer)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, "1", cfg.ReconciliationThreshold.String())
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "9090")
	v.Set("IS_PRODUCTION", true)
	v.Set("RECONCILIATION_THRESHOLD_PERCENT", "0.25")
	v.Set("RATE_LIMIT", "10-S")
	v.Set("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	v.Set("LOG_LEVEL", "debug")

	cfg := fromViper(v)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "0.25", cfg.ReconciliationThreshold.String())
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestFromViperInvalidValuesFallBack(t *testing.T) {
	v := viper.New()
	v.Set("RECONCILIATION_THRESHOLD_PERCENT", "lots")
	v.Set("RATE_LIMIT", "fast")
	v.Set("LOG_LEVEL", "chatty")

	cfg := fromViper(v)

	assert.Equal(t, "1", cfg.ReconciliationThreshold.String())
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "excise-register-app", cfg.JWTIssuer)
}

func TestFromViperNegativeThresholdFallsBack(t *testing.T) {
	v := viper.New()
	v.Set("RECONCILIATION_THRESHOLD_PERCENT", "-2")

	assert.Equal(t, "1", fromViper(v).ReconciliationThreshold.String())
}
