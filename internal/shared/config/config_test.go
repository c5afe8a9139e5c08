package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/api/v1", cfg.GetAPIBasePath())
	assert.Equal(t, ":8080", cfg.GetServerAddress())
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Contains(t, cfg.Database.DSN, "dbname=buslink_db")
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.Redis.AvailabilityTTL)
	assert.Equal(t, "buslink-events", cfg.Kafka.EventsTopic)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_VERSION", "v2")
	t.Setenv("DB_NAME", "buslink_test")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("KAFKA_ENABLED", "false")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("RATE_LIMIT_DEFAULT_REQUESTS", "120")
	t.Setenv("JWT_EXPIRES_IN", "900")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/api/v2", cfg.GetAPIBasePath())
	assert.Contains(t, cfg.Database.DSN, "dbname=buslink_test")
	assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 120, cfg.RateLimit.DefaultRequests)
	assert.Equal(t, 15*time.Minute, cfg.JWT.JWTExpiresIn)
}

func TestGinModeHelpers(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())

	t.Setenv("GIN_MODE", "debug")
	cfg = Load()
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.IsDevelopment())
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_REQUESTS", "lots")
	t.Setenv("KAFKA_ENABLED", "definitely")
	t.Setenv("READ_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 60, cfg.RateLimit.DefaultRequests)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
}
