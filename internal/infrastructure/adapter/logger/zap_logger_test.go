package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, ParseLevel("warning"))
	assert.Equal(t, core.LogLevelError, ParseLevel("error"))
	assert.Equal(t, core.LogLevelInfo, ParseLevel(""))
	assert.Equal(t, core.LogLevelInfo, ParseLevel("verbose"))

	for _, level := range []core.LogLevel{core.LogLevelDebug, core.LogLevelInfo, core.LogLevelWarn, core.LogLevelError} {
		assert.Equal(t, level, ParseLevel(level.String()))
	}
}

func TestZapLogger(t *testing.T) {
	t.Run("should drop entries below the configured level", func(t *testing.T) {
		obsCore, logs := observer.New(zapcore.DebugLevel)
		log := NewFromZap(zap.New(obsCore), core.LogLevelWarn)

		log.Info("ignored", nil)
		log.Warn("kept", map[string]any{"user_id": "u-1"})

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "kept", entry.Message)
		assert.Equal(t, "u-1", entry.ContextMap()["user_id"])
	})

	t.Run("should encode errors as strings", func(t *testing.T) {
		obsCore, logs := observer.New(zapcore.DebugLevel)
		log := NewFromZap(zap.New(obsCore), core.LogLevelDebug)

		log.Error("failed", map[string]any{"error": errors.New("boom")})

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "boom", logs.All()[0].ContextMap()["error"])
	})
}
