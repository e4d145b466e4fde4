package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
)

// PoolStatusID is the key of the singleton pool status record
const PoolStatusID = "current"

// DefaultConversionRate is the points-per-USD rate seeded on a fresh database
const DefaultConversionRate = 1000

// PoolStatus holds the pool-wide aggregates
type PoolStatus struct {
	ID                 string
	ConversionRate     decimal.Decimal // Points per currency unit, always positive
	TotalPointsPending int64
	CurrentPoolCents   int64
	NextSettlementAt   *time.Time
	UpdatedAt          time.Time
}

// EstimateUSD converts points to currency at the current rate
func (p *PoolStatus) EstimateUSD(points int64) (decimal.Decimal, error) {
	return PointsToUSD(points, p.ConversionRate)
}

// AddPending adds submitted points to the pool total
func (p *PoolStatus) AddPending(points int64, now time.Time) error {
	if points <= 0 {
		return errs.ErrInvalidAmount
	}
	if p.TotalPointsPending > maxInt64-points {
		return errs.ErrAmountOverflow
	}
	p.TotalPointsPending += points
	p.UpdatedAt = now
	return nil
}

// SetConversionRate replaces the rate used for future conversions
func (p *PoolStatus) SetConversionRate(rate decimal.Decimal, now time.Time) error {
	if !rate.IsPositive() {
		return errs.ErrInvalidRate
	}
	p.ConversionRate = rate
	p.UpdatedAt = now
	return nil
}

// SetNextSettlement schedules the next settlement run
func (p *PoolStatus) SetNextSettlement(at time.Time, now time.Time) {
	at = at.UTC()
	p.NextSettlementAt = &at
	p.UpdatedAt = now
}

// CurrentPoolUSD returns the pool liquidity with 2 decimal places
func (p *PoolStatus) CurrentPoolUSD() string {
	return CentsToString(p.CurrentPoolCents)
}

const maxInt64 = int64(^uint64(0) >> 1)
