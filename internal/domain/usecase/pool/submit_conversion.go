package pool

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
)

// SubmitConversion converts points into a pending pool request.
// The amount is validated first; storage is only touched for valid amounts.
// Submissions of one user are queued in-process, and each runs as a single
// storage transaction that locks the user and pool rows, re-checks the balance
// and writes the user, the pool and the new request together.
func (s *Service) SubmitConversion(ctx context.Context, userID string, points int64) (*usecase.ConversionResult, error) {
	if err := s.validator.ValidateConversion(userID, points); err != nil {
		return nil, err
	}

	return s.queue.Submit(ctx, userID, func(ctx context.Context) (*usecase.ConversionResult, error) {
		return s.convert(ctx, userID, points)
	})
}

func (s *Service) convert(ctx context.Context, userID string, points int64) (*usecase.ConversionResult, error) {
	var result *usecase.ConversionResult

	err := s.uow.RunInTransaction(ctx, func(txCtx context.Context) error {
		users := s.uow.GetUserRepository(txCtx)
		pools := s.uow.GetPoolRepository(txCtx)
		conversions := s.uow.GetConversionRepository(txCtx)

		user, err := users.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			if errors.Is(err, errs.ErrUserNotFound) {
				return errs.NewConversionError(userID, points, "user record missing", err)
			}
			return err
		}

		status, err := pools.GetForUpdate(txCtx)
		if err != nil {
			if errors.Is(err, errs.ErrPoolStatusNotFound) {
				return errs.NewConversionError(userID, points, "pool status record missing", err)
			}
			return err
		}

		usd, err := status.EstimateUSD(points)
		if err != nil {
			return errs.NewConversionError(userID, points, "pool rate is not usable", err)
		}

		now := s.timeProvider.Now()
		if err := user.ReservePointsForPool(points, now); err != nil {
			return err
		}
		if err := status.AddPending(points, now); err != nil {
			return err
		}

		if err := users.Update(txCtx, user); err != nil {
			return err
		}
		if err := pools.Save(txCtx, status); err != nil {
			return err
		}

		request := entity.NewConversionRequest(s.ids.NewID(), userID, points, usd, now)
		if err := conversions.Create(txCtx, request); err != nil {
			return err
		}

		result = &usecase.ConversionResult{Request: request, User: user, Pool: status}
		return nil
	})
	if err != nil {
		s.logConversionFailure(userID, points, err)
		return nil, err
	}

	s.logger.Info("Conversion submitted to pool", map[string]any{
		"user_id":        userID,
		"points":         points,
		"usd_equivalent": result.Request.USDEquivalent.String(),
		"request_id":     result.Request.ID,
		"points_left":    result.User.Points,
	})

	return result, nil
}

func (s *Service) logConversionFailure(userID string, points int64, err error) {
	fields := map[string]any{
		"user_id": userID,
		"points":  points,
		"error":   err.Error(),
	}

	var insufficient *errs.InsufficientPointsError
	var conversionErr *errs.ConversionError
	switch {
	case errors.As(err, &insufficient):
		for k, v := range insufficient.LogFields() {
			fields[k] = v
		}
		s.logger.Warn("Conversion rejected", fields)
	case errors.As(err, &conversionErr):
		for k, v := range conversionErr.LogFields() {
			fields[k] = v
		}
		s.logger.Error("Conversion failed on a missing prerequisite", fields)
	default:
		s.logger.Error("Conversion failed", fields)
	}
}

// ListConversions returns the user's requests, newest first
func (s *Service) ListConversions(ctx context.Context, userID string, limit int) ([]*entity.ConversionRequest, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	return s.uow.GetConversionRepository(ctx).ListByUser(ctx, userID, clampLimit(limit))
}

// GetPoolStatus returns the pool aggregates
func (s *Service) GetPoolStatus(ctx context.Context) (*entity.PoolStatus, error) {
	return s.uow.GetPoolRepository(ctx).Get(ctx)
}
