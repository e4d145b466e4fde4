package account

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
)

// GetDashboard assembles the signed-in user's overview
func (u *AccountUseCase) GetDashboard(ctx context.Context, userID string) (*usecase.Dashboard, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Warn("Dashboard requested without a profile", map[string]any{"user_id": userID})
			return nil, errs.ErrProfileNotFound
		}
		u.logger.Error("Failed to get user", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	referrals, err := u.ListReferralSummaries(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.Dashboard{
		UserID:                user.ID,
		Greeting:              user.DisplayName(),
		Balance:               user.Balance(),
		ReservedForOffers:     entity.CentsToString(user.ReservedForOffersCents),
		Points:                user.Points,
		PointsPendingPool:     user.PointsPendingPool,
		PrimeLevel:            user.PrimeLevel,
		StakedAmount:          entity.CentsToString(user.StakedAmountCents),
		UnstakeRequestedAt:    user.UnstakeRequestedAt,
		ReferralCode:          user.ReferralCode,
		ReferralLink:          entity.ReferralLink(u.referralLinkBase, user.ReferralCode),
		TotalReferralEarnings: user.TotalReferralEarnings,
		Referrals:             referrals,
	}, nil
}

// ListReferralSummaries aggregates the user's referral earnings per referred username
func (u *AccountUseCase) ListReferralSummaries(ctx context.Context, userID string) ([]entity.ReferralSummary, error) {
	earnings, err := u.uow.GetReferralRepository(ctx).ListByReferrer(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to list referral earnings", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	entity.SortEarningsNewestFirst(earnings)
	return entity.SummarizeReferrals(earnings), nil
}
