package persistence

import (
	"context"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
)

// ReferralRepository stores append-only referral earnings
type ReferralRepository interface {
	Create(ctx context.Context, earning *entity.ReferralEarning) error

	// ListByReferrer returns the referrer's earnings ordered by time descending
	ListByReferrer(ctx context.Context, referrerID string) ([]*entity.ReferralEarning, error)
}
