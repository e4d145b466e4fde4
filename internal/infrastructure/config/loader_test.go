package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
server:
  port: 9090
  readTimeout: 20
database:
  driver: sqlite
  path: ./data/rewards.db
  slowThresholdMs: 150
pool:
  minimumConversionPoints: 1000
  queueSize: 10
auth:
  sessionTTL: 120
  issuer: rewards-test
app:
  referralLinkBase: https://rewards.example/r/
  stagedProfileTTL: 5
`

func TestLoadFromReader(t *testing.T) {
	t.Run("should combine file values with defaults and convert units", func(t *testing.T) {
		// Act
		cfg, err := LoadFromReader(Test, sampleConfig)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "./data/rewards.db", cfg.Database.Path)
		assert.Equal(t, 150*time.Millisecond, cfg.Database.SlowThreshold)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, int64(1000), cfg.Pool.MinimumConversionPoints)
		assert.Equal(t, 10, cfg.Pool.QueueSize)
		assert.Equal(t, 5, cfg.Pool.TransactionRetries)
		assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
		assert.Equal(t, "rewards-test", cfg.Auth.Issuer)
		assert.Equal(t, 5*time.Minute, cfg.App.StagedProfileTTL)
		assert.Equal(t, 5, cfg.App.ReferralCodeAttempts)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("should let environment variables win", func(t *testing.T) {
		// Arrange
		t.Setenv("RP_DB_DRIVER", "postgres")
		t.Setenv("RP_DB_HOST", "db.internal")
		t.Setenv("RP_POOL_QUEUE_SIZE", "42")
		t.Setenv("RP_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

		// Act
		cfg, err := LoadFromReader(Production, sampleConfig)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 42, cfg.Pool.QueueSize)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("should reject malformed yaml", func(t *testing.T) {
		_, err := LoadFromReader(Test, "server: [unclosed")
		assert.Error(t, err)
	})
}
