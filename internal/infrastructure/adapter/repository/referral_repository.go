package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/model"
)

// ReferralRepository stores referral earnings using GORM
type ReferralRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.ReferralRepository = (*ReferralRepository)(nil)

// NewReferralRepository creates a new ReferralRepository instance
func NewReferralRepository(db *gorm.DB, logger coreport.Logger) *ReferralRepository {
	return &ReferralRepository{db: db, logger: logger, errorClassifier: NewErrorClassifier()}
}

// Create appends a referral earning
func (r *ReferralRepository) Create(ctx context.Context, earning *entity.ReferralEarning) error {
	if err := r.db.WithContext(ctx).Create(model.ReferralEarningFromEntity(earning)).Error; err != nil {
		r.logger.Error("Database error when creating referral earning", map[string]any{
			"referrer_id": earning.ReferrerID,
			"error":       err.Error(),
		})
		return r.errorClassifier.ToDomainError(err)
	}
	return nil
}

// ListByReferrer returns the referrer's earnings, newest first
func (r *ReferralRepository) ListByReferrer(ctx context.Context, referrerID string) ([]*entity.ReferralEarning, error) {
	var rows []model.ReferralEarning
	err := r.db.WithContext(ctx).
		Where("referrer_id = ?", referrerID).
		Order("earned_at DESC").
		Find(&rows).Error
	if err != nil {
		r.logger.Error("Database error when listing referral earnings", map[string]any{
			"referrer_id": referrerID,
			"error":       err.Error(),
		})
		return nil, r.errorClassifier.ToDomainError(err)
	}

	earnings := make([]*entity.ReferralEarning, 0, len(rows))
	for i := range rows {
		earnings = append(earnings, rows[i].ToEntity())
	}
	return earnings, nil
}
