package account

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
)

// CreditReferralEarning records an earning and raises the referrer's total in one transaction
func (u *AccountUseCase) CreditReferralEarning(ctx context.Context, in usecase.ReferralCreditInput) (*entity.ReferralEarning, error) {
	if strings.TrimSpace(in.ReferrerID) == "" {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(in.ReferredUsername) == "" {
		return nil, errs.NewFieldError("referredUsername", "is required")
	}
	if in.Amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	var earning *entity.ReferralEarning
	err := u.uow.RunInTransaction(ctx, func(txCtx context.Context) error {
		users := u.uow.GetUserRepository(txCtx)

		referrer, err := users.GetByIDForUpdate(txCtx, in.ReferrerID)
		if err != nil {
			return err
		}

		now := u.timeProvider.Now()
		if err := referrer.CreditReferralEarning(in.Amount, now); err != nil {
			return err
		}
		if err := users.Update(txCtx, referrer); err != nil {
			return err
		}

		earning = &entity.ReferralEarning{
			ID:               u.ids.NewID(),
			ReferrerID:       referrer.ID,
			ReferredUsername: strings.TrimSpace(in.ReferredUsername),
			AmountEarned:     in.Amount,
			EarnedAt:         now,
		}
		return u.uow.GetReferralRepository(txCtx).Create(txCtx, earning)
	})
	if err != nil {
		u.logger.Error("Failed to credit referral earning", map[string]any{
			"referrer_id": in.ReferrerID,
			"amount":      in.Amount,
			"error":       err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Referral earning credited", map[string]any{
		"referrer_id":       in.ReferrerID,
		"referred_username": earning.ReferredUsername,
		"amount":            in.Amount,
	})
	return earning, nil
}
