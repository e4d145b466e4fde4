package pool

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
)

// SetNextSettlementTime schedules the next settlement
func (s *Service) SetNextSettlementTime(ctx context.Context, at time.Time) (*entity.PoolStatus, error) {
	if at.IsZero() {
		return nil, errs.NewFieldError("nextSettlementTime", "is required")
	}

	status, err := s.updatePool(ctx, func(status *entity.PoolStatus, now time.Time) error {
		status.SetNextSettlement(at, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Next settlement time updated", map[string]any{
		"next_settlement_time": status.NextSettlementAt,
	})
	return status, nil
}

// SetConversionRate changes the rate applied to future conversions. Pending requests keep their rate.
func (s *Service) SetConversionRate(ctx context.Context, rate decimal.Decimal) (*entity.PoolStatus, error) {
	if !rate.IsPositive() {
		return nil, errs.ErrInvalidRate
	}

	var previous decimal.Decimal
	status, err := s.updatePool(ctx, func(status *entity.PoolStatus, now time.Time) error {
		previous = status.ConversionRate
		return status.SetConversionRate(rate, now)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Conversion rate updated", map[string]any{
		"previous_rate": previous.String(),
		"rate":          rate.String(),
	})
	return status, nil
}

func (s *Service) updatePool(ctx context.Context, mutate func(*entity.PoolStatus, time.Time) error) (*entity.PoolStatus, error) {
	var updated *entity.PoolStatus

	err := s.uow.RunInTransaction(ctx, func(txCtx context.Context) error {
		pools := s.uow.GetPoolRepository(txCtx)

		status, err := pools.GetForUpdate(txCtx)
		if err != nil {
			return err
		}
		if err := mutate(status, s.timeProvider.Now()); err != nil {
			return err
		}
		if err := pools.Save(txCtx, status); err != nil {
			return err
		}

		updated = status
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to update pool status", map[string]any{"error": err.Error()})
		return nil, err
	}
	return updated, nil
}

// ListPendingConversions returns pending requests, oldest first
func (s *Service) ListPendingConversions(ctx context.Context, limit int) ([]*entity.ConversionRequest, error) {
	return s.uow.GetConversionRepository(ctx).ListPending(ctx, clampLimit(limit))
}

// TriggerSettlement is not available in this service
func (s *Service) TriggerSettlement(ctx context.Context) error {
	s.logger.Warn("Settlement trigger requested", map[string]any{
		"error": errs.ErrSettlementNotImplemented.Error(),
	})
	return errs.ErrSettlementNotImplemented
}
