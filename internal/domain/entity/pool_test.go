package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
)

func TestPoolStatus(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should estimate USD at the current rate", func(t *testing.T) {
		pool := &PoolStatus{ConversionRate: decimal.NewFromInt(1000)}

		usd, err := pool.EstimateUSD(1500)

		require.NoError(t, err)
		assert.True(t, usd.Equal(decimal.RequireFromString("1.5")))
	})

	t.Run("should accumulate pending points", func(t *testing.T) {
		pool := &PoolStatus{TotalPointsPending: 2000}

		require.NoError(t, pool.AddPending(1500, now))
		assert.Equal(t, int64(3500), pool.TotalPointsPending)
		assert.Equal(t, now, pool.UpdatedAt)
	})

	t.Run("should refuse overflow", func(t *testing.T) {
		pool := &PoolStatus{TotalPointsPending: maxInt64 - 1}

		assert.ErrorIs(t, pool.AddPending(2, now), errs.ErrAmountOverflow)
		assert.Equal(t, maxInt64-1, pool.TotalPointsPending)
	})

	t.Run("should reject non-positive rate", func(t *testing.T) {
		pool := &PoolStatus{ConversionRate: decimal.NewFromInt(1000)}

		assert.ErrorIs(t, pool.SetConversionRate(decimal.Zero, now), errs.ErrInvalidRate)
		assert.True(t, pool.ConversionRate.Equal(decimal.NewFromInt(1000)))

		require.NoError(t, pool.SetConversionRate(decimal.NewFromInt(800), now))
		assert.True(t, pool.ConversionRate.Equal(decimal.NewFromInt(800)))
	})

	t.Run("should store next settlement in UTC", func(t *testing.T) {
		pool := &PoolStatus{}
		at := time.Date(2025, 4, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))

		pool.SetNextSettlement(at, now)

		require.NotNil(t, pool.NextSettlementAt)
		assert.Equal(t, time.UTC, pool.NextSettlementAt.Location())
		assert.True(t, at.Equal(*pool.NextSettlementAt))
	})
}
