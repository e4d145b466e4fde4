package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
)

func TestRealTimeProvider(t *testing.T) {
	p := NewRealTimeProvider()

	t.Run("should return UTC time", func(t *testing.T) {
		assert.Equal(t, time.UTC, p.Now().Location())
	})

	t.Run("should stop sleeping when context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := p.Sleep(ctx, core.Hour)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("should sleep for short durations", func(t *testing.T) {
		start := time.Now()

		assert.NoError(t, p.Sleep(context.Background(), 5*core.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
	})
}
